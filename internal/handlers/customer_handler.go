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

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, audit *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: audit}
}

type CustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ======================================================
// LIST (ADMIN)
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("is_active = ?", true)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("first_name ASC, last_name ASC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Failed to list customers.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Customer{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "A customer with this email already exists.")
		return
	}

	customer := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Phone:     req.Phone,
		Address:   req.Address,
		IsActive:  true,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Failed to create customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "customer_created",
		Entity:     "customer",
		EntityID:   &customer.ID,
	})

	c.JSON(http.StatusCreated, customer)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&customer).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = strings.ToLower(strings.TrimSpace(req.Email))
	customer.Phone = req.Phone
	customer.Address = req.Address

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Failed to update customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "customer_updated",
		Entity:     "customer",
		EntityID:   &customer.ID,
	})

	httpresp.OK(c, customer)
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&customer).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	customer.IsActive = false
	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Failed to delete customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "customer_deleted",
		Entity:     "customer",
		EntityID:   &customer.ID,
	})

	c.Status(http.StatusNoContent)
}
