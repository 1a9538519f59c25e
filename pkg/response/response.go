package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

// ErrorBody is the failure payload shared by every endpoint. Successful
// responses write the resource JSON directly; only failures are wrapped.
type ErrorBody struct {
	Error *appErrors.Error `json:"error"`
}

// JSON sends a success response with the payload as the response body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, ErrorBody{Error: appErr})
}
