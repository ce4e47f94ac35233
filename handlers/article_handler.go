package handlers

import (
	"strconv"

	"newshub-api/helper"
	"newshub-api/models"
	"newshub-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: &helper.HTTPHelper{}}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	// The public listing shows approved articles unless a status filter is
	// passed explicitly.
	if params.Status == "" {
		params.Status = string(models.StatusApproved)
	}

	articles, total, err := h.articleService.GetArticles(params, false)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *ArticleHandler) GetTrending(c *gin.Context) {
	articles, err := h.articleService.GetTrending()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) GetPremiumArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	params.Status = string(models.StatusApproved)

	articles, total, err := h.articleService.GetArticles(params, true)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.articleService.GetArticle(uint(id), c.GetString("email"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.CreateArticle(req, c.GetString("email"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article submitted for review", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.UpdateArticle(uint(id), c.GetString("email"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	if err := h.articleService.DeleteArticle(uint(id), c.GetString("email")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", nil)
}

func (h *ArticleHandler) SetPremium(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	var req models.SetPremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.articleService.SetPremium(uint(id), *req.IsPremium); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article premium flag updated", nil)
}

func (h *ArticleHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	var req models.UpdateArticleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.articleService.UpdateStatus(uint(id), req.Status, req.DeclineReason); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article status updated", nil)
}

// GetMyArticles lists the requester's own articles in every workflow state.
// The path email must match the authenticated identity.
func (h *ArticleHandler) GetMyArticles(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		h.Helper.SendForbiddenError(c, "You can only view your own articles")
		return
	}

	articles, err := h.articleService.GetMyArticles(email)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) GetAuthorArticles(c *gin.Context) {
	articles, err := h.articleService.GetAuthorArticles(c.Param("email"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) RecordView(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	if err := h.articleService.RecordView(uint(id)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "View recorded", nil)
}
