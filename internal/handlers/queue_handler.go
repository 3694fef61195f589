package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/httpresp"
	"github.com/rsetcampus/atspam-api/internal/rbac"
	ucAppointment "github.com/rsetcampus/atspam-api/internal/usecase/appointment"
)

type QueueHandler struct {
	todaysQueue *ucAppointment.TodaysQueue
}

func NewQueueHandler(todaysQueue *ucAppointment.TodaysQueue) *QueueHandler {
	return &QueueHandler{todaysQueue: todaysQueue}
}

func (h *QueueHandler) Today(c *gin.Context) {
	if !requireAction(c, rbac.ActionViewQueue) {
		return
	}

	queue, err := h.todaysQueue.Execute(c.Request.Context())
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, queue)
}
