package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"newshub-api/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// HTTPHelper renders every response into the shared envelope:
// {"success": bool, "message": string, "data": ...}.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// GetStatusCode maps service sentinel errors onto HTTP status codes.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrSubscriptionExpired),
		errors.Is(err, models.ErrArticleLimit):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrPaymentIncomplete):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SendError converts a service error into the envelope using the sentinel
// mapping. Duplicate-key failures are a soft failure: HTTP 200 with
// success=false, so clients treat "already exists" as a no-op.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrDuplicate) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(u.GetStatusCode(err), gin.H{"success": false, "message": err.Error()})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"success": false, "message": message})
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

// SendValidationError ...
// Send translated field errors to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.Field())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "validation error",
		"data":    errorResponse,
	})
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	if message == "" {
		message = "success"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

// SendCreated ...
// Send success response for a newly created resource.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}

// GetPagingUrl builds the absolute URL for a pagination link.
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
}

// GeneratePaging builds the pagination block returned by listing endpoints.
// totalPages is always ceil(total/limit); limit is never capped, only
// floored at 1 so an explicit limit=0 cannot divide by zero.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page int, totalRecord int64) map[string]interface{} {
	if limit < 1 {
		limit = 1
	}
	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	prevURL, nextURL := "", ""
	if page > 1 && page <= totalPages {
		prevURL = u.GetPagingUrl(c, page-1, limit)
	}
	if page < totalPages {
		nextURL = u.GetPagingUrl(c, page+1, limit)
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links": map[string]interface{}{
			"previous": prevURL,
			"next":     nextURL,
		},
	}
}
