package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/httpresp"
	"github.com/rsetcampus/atspam-api/internal/rbac"
	ucStats "github.com/rsetcampus/atspam-api/internal/usecase/stats"
)

type StatsHandler struct {
	dashboard *ucStats.Dashboard
}

func NewStatsHandler(dashboard *ucStats.Dashboard) *StatsHandler {
	return &StatsHandler{dashboard: dashboard}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	if !requireAction(c, rbac.ActionViewStats) {
		return
	}

	out, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, out)
}
