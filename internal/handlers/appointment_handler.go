package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/httpresp"
	"github.com/rsetcampus/atspam-api/internal/rbac"
	ucAppointment "github.com/rsetcampus/atspam-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book        *ucAppointment.BookAppointment
	review      *ucAppointment.ReviewAppointment
	setStatus   *ucAppointment.SetAppointmentStatus
	cancel      *ucAppointment.CancelAppointment
	listMine    *ucAppointment.ListMyAppointments
	listPending *ucAppointment.ListPendingAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	review *ucAppointment.ReviewAppointment,
	setStatus *ucAppointment.SetAppointmentStatus,
	cancel *ucAppointment.CancelAppointment,
	listMine *ucAppointment.ListMyAppointments,
	listPending *ucAppointment.ListPendingAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:        book,
		review:      review,
		setStatus:   setStatus,
		cancel:      cancel,
		listMine:    listMine,
		listPending: listPending,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	TimeSlotID uint   `json:"time_slot_id" binding:"required"`
	Purpose    string `json:"purpose" binding:"required"`
}

type ReviewRequest struct {
	Action string `json:"action" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, _ := currentUser(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "time_slot_id and purpose are required.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		UserID:     userID,
		TimeSlotID: req.TimeSlotID,
		Purpose:    req.Purpose,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, _ := currentUser(c)

	aps, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListPending(c *gin.Context) {
	if !requireAction(c, rbac.ActionReview) {
		return
	}

	aps, err := h.listPending.Execute(c.Request.Context())
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Review(c *gin.Context) {
	userID, _ := currentUser(c)

	apID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "action is required.")
		return
	}

	ap, err := h.review.Execute(c.Request.Context(), ucAppointment.ReviewAppointmentInput{
		AppointmentID: apID,
		ReviewerID:    userID,
		Action:        req.Action,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID, _ := currentUser(c)

	apID, ok := paramID(c, "id")
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		httperr.BadRequest(c, "missing_status", "Status is required.")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), userID, apID, status)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, _ := currentUser(c)

	apID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), userID, apID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
