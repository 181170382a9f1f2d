package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garageops/workshop-api/internal/audit"
	"github.com/garageops/workshop-api/internal/domain/access"
	"github.com/garageops/workshop-api/internal/httperr"
	"github.com/garageops/workshop-api/internal/httpresp"
	"github.com/garageops/workshop-api/internal/middleware"
	"github.com/garageops/workshop-api/internal/models"
)

type MechanicHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMechanicHandler(db *gorm.DB, audit *audit.Dispatcher) *MechanicHandler {
	return &MechanicHandler{db: db, audit: audit}
}

type MechanicRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
}

// ======================================================
// LIST (ADMIN), ordered for the record-creation dropdown
// ======================================================

func (h *MechanicHandler) List(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var mechanics []models.Mechanic
	if err := h.db.
		Where("is_active = ?", true).
		Order("first_name ASC, last_name ASC").
		Find(&mechanics).Error; err != nil {

		httperr.Internal(c, "failed_to_list_mechanics", "Failed to list mechanics.")
		return
	}

	httpresp.List(c, mechanics)
}

// ======================================================
// CREATE
// ======================================================

func (h *MechanicHandler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var req MechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Mechanic{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "A mechanic with this email already exists.")
		return
	}

	mechanic := models.Mechanic{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		IsActive:       true,
	}

	if err := h.db.Create(&mechanic).Error; err != nil {
		httperr.Internal(c, "failed_to_create_mechanic", "Failed to create mechanic.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "mechanic_created",
		Entity:     "mechanic",
		EntityID:   &mechanic.ID,
	})

	c.JSON(http.StatusCreated, mechanic)
}

// ======================================================
// UPDATE
// ======================================================

func (h *MechanicHandler) Update(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var req MechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var mechanic models.Mechanic
	if err := h.db.
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&mechanic).Error; err != nil {
		httperr.NotFound(c, "mechanic_not_found", "Mechanic not found.")
		return
	}

	mechanic.FirstName = req.FirstName
	mechanic.LastName = req.LastName
	mechanic.Email = strings.ToLower(strings.TrimSpace(req.Email))
	mechanic.Phone = req.Phone
	mechanic.Specialization = req.Specialization

	if err := h.db.Save(&mechanic).Error; err != nil {
		httperr.Internal(c, "failed_to_update_mechanic", "Failed to update mechanic.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "mechanic_updated",
		Entity:     "mechanic",
		EntityID:   &mechanic.ID,
	})

	httpresp.OK(c, mechanic)
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *MechanicHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var mechanic models.Mechanic
	if err := h.db.
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&mechanic).Error; err != nil {
		httperr.NotFound(c, "mechanic_not_found", "Mechanic not found.")
		return
	}

	mechanic.IsActive = false
	if err := h.db.Save(&mechanic).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_mechanic", "Failed to delete mechanic.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "mechanic_deleted",
		Entity:     "mechanic",
		EntityID:   &mechanic.ID,
	})

	c.Status(http.StatusNoContent)
}
