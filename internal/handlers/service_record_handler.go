package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garageops/workshop-api/internal/httperr"
	"github.com/garageops/workshop-api/internal/httpresp"
	"github.com/garageops/workshop-api/internal/middleware"
	ucServiceRecord "github.com/garageops/workshop-api/internal/usecase/servicerecord"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceRecordHandler struct {
	createUC     *ucServiceRecord.CreateServiceRecord
	updateUC     *ucServiceRecord.UpdateServiceRecord
	completeUC   *ucServiceRecord.CompleteServiceRecord
	softDeleteUC *ucServiceRecord.SoftDeleteServiceRecord
	listUC       *ucServiceRecord.ListRecordsForActor
	getUC        *ucServiceRecord.GetServiceRecord
}

func NewServiceRecordHandler(
	createUC *ucServiceRecord.CreateServiceRecord,
	updateUC *ucServiceRecord.UpdateServiceRecord,
	completeUC *ucServiceRecord.CompleteServiceRecord,
	softDeleteUC *ucServiceRecord.SoftDeleteServiceRecord,
	listUC *ucServiceRecord.ListRecordsForActor,
	getUC *ucServiceRecord.GetServiceRecord,
) *ServiceRecordHandler {
	return &ServiceRecordHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		completeUC:   completeUC,
		softDeleteUC: softDeleteUC,
		listUC:       listUC,
		getUC:        getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRecordRequest struct {
	CustomerEmail         string `json:"customer_email" binding:"required,email"`
	CarRegistrationNumber string `json:"car_registration_number" binding:"required"`
	MechanicEmail         string `json:"mechanic_email" binding:"required,email"`
	ServiceDate           string `json:"service_date" binding:"required"`
}

type UpdateServiceRecordRequest struct {
	Description string  `json:"description" binding:"required"`
	HoursWorked float64 `json:"hours_worked"`
	IsCompleted bool    `json:"is_completed"`
}

type CompleteServiceRecordRequest struct {
	WorkDescription string  `json:"work_description" binding:"required"`
	HoursWorked     float64 `json:"hours_worked"`
}

// ======================================================
// HELPERS
// ======================================================

func recordIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_record_id", "Invalid service record id.")
		return 0, false
	}
	return uint(id), true
}

func writeRecordError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "forbidden"):
		httperr.Forbidden(c, "forbidden", "You may not access this service record.")
	case httperr.IsBusiness(err, "record_not_found"):
		httperr.NotFound(c, "record_not_found", "Service record not found.")
	case httperr.IsBusiness(err, "reference_not_found"):
		httperr.BadRequest(c, "reference_not_found", "Referenced customer, car or mechanic not found.")
	case httperr.IsBusiness(err, "already_completed"):
		httperr.Conflict(c, "already_completed", "Service record is already completed.")
	case httperr.IsBusiness(err, "invalid_service_date"):
		httperr.BadRequest(c, "invalid_service_date", "Invalid service date.")
	default:
		httperr.Internal(c, "service_record_error", "Service record operation failed.")
	}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ServiceRecordHandler) List(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	views, err := h.listUC.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Internal(c, "failed_to_list_records", "Failed to list service records.")
		return
	}

	httpresp.List(c, views)
}

func (h *ServiceRecordHandler) Get(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, ok := recordIDParam(c)
	if !ok {
		return
	}

	view, err := h.getUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		writeRecordError(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceRecordHandler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req CreateServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rec, err := h.createUC.Execute(c.Request.Context(), actor, ucServiceRecord.CreateServiceRecordInput{
		CustomerEmail:         req.CustomerEmail,
		CarRegistrationNumber: req.CarRegistrationNumber,
		MechanicEmail:         req.MechanicEmail,
		ServiceDate:           req.ServiceDate,
	})
	if err != nil {
		writeRecordError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceRecordHandler) Update(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, ok := recordIDParam(c)
	if !ok {
		return
	}

	var req UpdateServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rec, err := h.updateUC.Execute(c.Request.Context(), actor, id, ucServiceRecord.UpdateServiceRecordInput{
		Description: req.Description,
		HoursWorked: req.HoursWorked,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		writeRecordError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *ServiceRecordHandler) Complete(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, ok := recordIDParam(c)
	if !ok {
		return
	}

	var req CompleteServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rec, err := h.completeUC.Execute(c.Request.Context(), actor, id, ucServiceRecord.CompleteServiceRecordInput{
		WorkDescription: req.WorkDescription,
		HoursWorked:     req.HoursWorked,
	})
	if err != nil {
		writeRecordError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *ServiceRecordHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, ok := recordIDParam(c)
	if !ok {
		return
	}

	if err := h.softDeleteUC.Execute(c.Request.Context(), actor, id); err != nil {
		writeRecordError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
