package handlers

import (
	"strconv"

	"newshub-api/helper"
	"newshub-api/models"
	"newshub-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService  services.UserService
	subscription services.SubscriptionService
	Helper       *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, subscription services.SubscriptionService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		subscription: subscription,
		Helper:       &helper.HTTPHelper{},
	}
}

// Register creates the user record on first sign-in. An existing email is
// reported as success=false in the body, not as an HTTP error.
func (h *UserHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Register(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "User created", user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.userService.UpdateProfile(email, req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile updated", nil)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	users, total, err := h.userService.GetUsers(params.Page, params.Limit)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"users":      users,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *UserHandler) IsAdmin(c *gin.Context) {
	isAdmin, err := h.userService.IsAdmin(c.Param("email"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"is_admin": isAdmin})
}

func (h *UserHandler) MakeAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.MakeAdmin(uint(id)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User is now an admin", nil)
}

func (h *UserHandler) SubscriptionStatus(c *gin.Context) {
	status, err := h.subscription.Status(c.Param("email"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", status)
}
