package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/httpresp"
	"github.com/rsetcampus/atspam-api/internal/rbac"
	ucSchedule "github.com/rsetcampus/atspam-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	createSlot      *ucSchedule.CreateSlot
	listSlots       *ucSchedule.ListSlots
	setAvailability *ucSchedule.SetAvailability
}

func NewScheduleHandler(
	createSlot *ucSchedule.CreateSlot,
	listSlots *ucSchedule.ListSlots,
	setAvailability *ucSchedule.SetAvailability,
) *ScheduleHandler {
	return &ScheduleHandler{
		createSlot:      createSlot,
		listSlots:       listSlots,
		setAvailability: setAvailability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	if !requireAction(c, rbac.ActionManageSchedule) {
		return
	}
	userID, _ := currentUser(c)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot payload.")
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	slot, err := h.createSlot.Execute(c.Request.Context(), ucSchedule.CreateSlotInput{
		Start:       req.StartTime,
		End:         req.EndTime,
		IsAvailable: available,
		CreatedBy:   userID,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, slot)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	day := c.Query("date")
	if day == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *ScheduleHandler) SetAvailability(c *gin.Context) {
	if !requireAction(c, rbac.ActionManageSchedule) {
		return
	}

	slotID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "is_available is required.")
		return
	}

	slot, err := h.setAvailability.Execute(c.Request.Context(), slotID, *req.IsAvailable)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, slot)
}
