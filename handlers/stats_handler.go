package handlers

import (
	"newshub-api/helper"
	"newshub-api/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService services.StatsService
	Helper       *helper.HTTPHelper
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService, Helper: &helper.HTTPHelper{}}
}

func (h *StatsHandler) PublicStats(c *gin.Context) {
	stats, err := h.statsService.GetPublicStats()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", stats)
}

func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.statsService.GetAdminStats()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", stats)
}

func (h *StatsHandler) UserStats(c *gin.Context) {
	stats, err := h.statsService.GetUserStats(c.GetString("email"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", stats)
}
