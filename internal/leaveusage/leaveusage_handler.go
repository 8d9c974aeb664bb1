package leaveusage

import (
	"net/http"

	leaveusageerrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage/errors"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/request"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leaveusage.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveusage.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave usage request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetByTeacher(c *gin.Context) {
	teacherID, ok := request.UintParam(c, "id")
	if !ok {
		h.writeServiceError(c, leaveusageerrors.ErrInvalidTeacherID)
		return
	}

	resp, err := h.service.GetByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBalance(c *gin.Context) {
	teacherID, ok := request.UintParam(c, "id")
	if !ok {
		h.writeServiceError(c, leaveusageerrors.ErrInvalidTeacherID)
		return
	}

	resp, err := h.service.GetBalance(c.Request.Context(), teacherID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetLimits(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Limits(), nil)
}
