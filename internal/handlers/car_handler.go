package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garageops/workshop-api/internal/audit"
	"github.com/garageops/workshop-api/internal/cache"
	"github.com/garageops/workshop-api/internal/domain/access"
	"github.com/garageops/workshop-api/internal/dto"
	"github.com/garageops/workshop-api/internal/httperr"
	"github.com/garageops/workshop-api/internal/httpresp"
	"github.com/garageops/workshop-api/internal/infra/repository"
	"github.com/garageops/workshop-api/internal/middleware"
	"github.com/garageops/workshop-api/internal/models"
	"github.com/garageops/workshop-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type CarHandler struct {
	db    *gorm.DB
	cache *cache.Client
	audit *audit.Dispatcher
}

func NewCarHandler(db *gorm.DB, c *cache.Client, audit *audit.Dispatcher) *CarHandler {
	return &CarHandler{db: db, cache: c, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCarRequest struct {
	RegistrationNumber string `json:"registration_number" binding:"required"`
	Make               string `json:"make" binding:"required"`
	Model              string `json:"model" binding:"required"`
	Color              string `json:"color"`
	Year               int    `json:"year"`
	Description        string `json:"description"`
	CustomerEmail      string `json:"customer_email" binding:"required,email"`
}

type UpdateCarRequest struct {
	RegistrationNumber string `json:"registration_number" binding:"required"`
	Make               string `json:"make" binding:"required"`
	Model              string `json:"model" binding:"required"`
	Color              string `json:"color"`
	Year               int    `json:"year"`
	Description        string `json:"description"`
	CustomerEmail      string `json:"customer_email" binding:"required,email"`
}

// ======================================================
// LIST (scoped: admin all, customer own cars)
// ======================================================

func (h *CarHandler) List(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	q := h.db.
		Preload("Customer").
		Where("cars.is_active = ?", true)

	switch actor.Role {
	case access.RoleAdministrator:
		// no extra filter
	case access.RoleCustomer:
		q = q.
			Joins("JOIN customers ON customers.id = cars.customer_id").
			Where("customers.email = ?", actor.Email)
	default:
		httpresp.List(c, []dto.CarListDTO{})
		return
	}

	var cars []models.Car
	if err := q.Order("cars.created_at DESC").Find(&cars).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cars", "Failed to list cars.")
		return
	}

	out := make([]dto.CarListDTO, 0, len(cars))
	for i := range cars {
		var count int64
		h.db.Model(&models.ServiceRecord{}).
			Where("car_id = ? AND is_active = ?", cars[i].ID, true).
			Count(&count)
		out = append(out, dto.NewCarListDTO(&cars[i], int(count)))
	}

	httpresp.List(c, out)
}

// ======================================================
// GET
// ======================================================

func (h *CarHandler) Get(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var car models.Car
	if err := h.db.
		Preload("Customer").
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&car).Error; err != nil {
		httperr.NotFound(c, "car_not_found", "Car not found.")
		return
	}

	if actor.Role != access.RoleAdministrator &&
		!(actor.Role == access.RoleCustomer && car.Customer.Email == actor.Email) {
		httperr.Forbidden(c, "forbidden", "You may not access this car.")
		return
	}

	var count int64
	h.db.Model(&models.ServiceRecord{}).
		Where("car_id = ? AND is_active = ?", car.ID, true).
		Count(&count)

	httpresp.OK(c, dto.NewCarListDTO(&car, int(count)))
}

// ======================================================
// CREATE
// ======================================================

func (h *CarHandler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	reg := strings.ToUpper(strings.TrimSpace(req.RegistrationNumber))

	var count int64
	h.db.Model(&models.Car{}).Where("registration_number = ?", reg).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "registration_already_exists", "A car with this registration already exists.")
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("email = ? AND is_active = ?", strings.ToLower(req.CustomerEmail), true).
		First(&customer).Error; err != nil {
		httperr.BadRequest(c, "reference_not_found", "Owning customer not found.")
		return
	}

	car := models.Car{
		RegistrationNumber: reg,
		Make:               req.Make,
		Model:              req.Model,
		Color:              req.Color,
		Year:               req.Year,
		Description:        req.Description,
		CustomerID:         customer.ID,
		RegistrationDate:   timezone.Now(),
		IsActive:           true,
	}

	if err := h.db.Create(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_create_car", "Failed to create car.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "car_created",
		Entity:     "car",
		EntityID:   &car.ID,
	})

	c.JSON(http.StatusCreated, car)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CarHandler) Update(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_car_id", "Invalid car id.")
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var car models.Car
	if err := h.db.
		Where("id = ? AND is_active = ?", uint(id), true).
		First(&car).Error; err != nil {
		httperr.NotFound(c, "car_not_found", "Car not found.")
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("email = ? AND is_active = ?", strings.ToLower(req.CustomerEmail), true).
		First(&customer).Error; err != nil {
		httperr.BadRequest(c, "reference_not_found", "Owning customer not found.")
		return
	}

	oldReg := car.RegistrationNumber

	car.RegistrationNumber = strings.ToUpper(strings.TrimSpace(req.RegistrationNumber))
	car.Make = req.Make
	car.Model = req.Model
	car.Color = req.Color
	car.Year = req.Year
	car.Description = req.Description
	car.CustomerID = customer.ID

	if err := h.db.Save(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_update_car", "Failed to update car.")
		return
	}

	h.invalidateLookup(c, oldReg, car.RegistrationNumber)

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "car_updated",
		Entity:     "car",
		EntityID:   &car.ID,
	})

	httpresp.OK(c, car)
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *CarHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if !access.CanManageFleet(actor) {
		httperr.Forbidden(c, "forbidden", "Administrator role required.")
		return
	}

	var car models.Car
	if err := h.db.
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&car).Error; err != nil {
		httperr.NotFound(c, "car_not_found", "Car not found.")
		return
	}

	car.IsActive = false
	if err := h.db.Save(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_car", "Failed to delete car.")
		return
	}

	h.invalidateLookup(c, car.RegistrationNumber)

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor.Email,
		ActorRole:  string(actor.Role),
		Action:     "car_deleted",
		Entity:     "car",
		EntityID:   &car.ID,
	})

	c.Status(http.StatusNoContent)
}

// the cached registration lookup must not serve stale cars
func (h *CarHandler) invalidateLookup(c *gin.Context, regs ...string) {
	if h.cache == nil {
		return
	}
	keys := make([]string, 0, len(regs))
	for _, reg := range regs {
		keys = append(keys, repository.CarCacheKey(reg))
	}
	_ = h.cache.Del(c.Request.Context(), keys...)
}
