package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itemshare/item-rental-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// categories maps status codes to the short error label of the response body.
var categories = map[int]string{
	http.StatusBadRequest: "validation error",
	http.StatusForbidden:  "access denied",
	http.StatusNotFound:   "resource not found",
	http.StatusConflict:   "duplicated data",
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		category, ok := categories[appErr.Code]
		if !ok {
			category = "internal server error"
		}
		c.JSON(appErr.Code, ErrorResponse{Error: category, Message: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal server error",
		Message: "internal server error",
	})
}
