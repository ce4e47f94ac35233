package handlers

import (
	"newshub-api/helper"
	"newshub-api/models"
	"newshub-api/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
	Helper         *helper.HTTPHelper
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, Helper: &helper.HTTPHelper{}}
}

func (h *PaymentHandler) GetPlans(c *gin.Context) {
	plans, err := h.paymentService.ListPlans()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", plans)
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	session, err := h.paymentService.CreateIntent(c.Request.Context(), c.GetString("email"), req.PlanID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Checkout session created", gin.H{
		"session_id": session.ID,
		"url":        session.URL,
	})
}

func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		h.Helper.SendBadRequest(c, "session_id is required")
		return
	}

	payment, err := h.paymentService.CompleteSession(c.Request.Context(), sessionID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Payment recorded", payment)
}
