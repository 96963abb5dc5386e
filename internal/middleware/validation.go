package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwss/sevaportal/internal/app/models/dto"
)

// BindJSON binds and validates a JSON body, writing the validation error
// envelope on failure. Returns false when the request was rejected.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
