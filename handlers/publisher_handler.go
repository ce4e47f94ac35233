package handlers

import (
	"newshub-api/helper"
	"newshub-api/models"
	"newshub-api/services"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherService services.PublisherService
	Helper           *helper.HTTPHelper
}

func NewPublisherHandler(publisherService services.PublisherService) *PublisherHandler {
	return &PublisherHandler{publisherService: publisherService, Helper: &helper.HTTPHelper{}}
}

func (h *PublisherHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.publisherService.GetPublishers()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", publishers)
}

func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req models.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	publisher, err := h.publisherService.CreatePublisher(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Publisher created", publisher)
}
