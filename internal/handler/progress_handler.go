package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/service"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
	"github.com/educonnect/educonnect-api/pkg/response"
)

// ProgressHandler exposes progress update endpoints.
type ProgressHandler struct {
	service *service.ProgressService
}

// NewProgressHandler constructs a progress handler.
func NewProgressHandler(svc *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: svc}
}

// List godoc
// @Summary List progress updates for a student
// @Tags Progress
// @Produce json
// @Param student_id query string true "Student ID"
// @Success 200 {array} models.ProgressUpdate
// @Failure 400 {object} response.ErrorBody
// @Router /progress-updates [get]
func (h *ProgressHandler) List(c *gin.Context) {
	studentID := c.Query("student_id")
	if studentID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "student_id is required"))
		return
	}

	updates, err := h.service.List(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updates)
}

// Create godoc
// @Summary Record progress update
// @Tags Progress
// @Accept json
// @Produce json
// @Param payload body service.CreateProgressUpdateRequest true "Progress payload"
// @Success 201 {object} models.ProgressUpdate
// @Failure 400 {object} response.ErrorBody
// @Router /progress-updates [post]
func (h *ProgressHandler) Create(c *gin.Context) {
	var req service.CreateProgressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid progress payload"))
		return
	}

	update, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, update)
}
