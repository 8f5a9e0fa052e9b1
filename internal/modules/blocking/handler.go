package blocking

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelcore/internal/domain"
	"hotelcore/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms/:id/blockings", h.CreateBlocking)
	rg.GET("/rooms/:id/blockings", h.ListByRoom)
	rg.GET("/blockings", h.List)
	rg.PATCH("/blockings/:id/activate", h.Activate)
	rg.PATCH("/blockings/:id/complete", h.Complete)
	rg.PATCH("/blockings/:id/cancel", h.Cancel)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateBlocking(c *gin.Context) {
	roomID, ok := paramID(c)
	if !ok {
		return
	}

	var req CreateBlockingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBlocking(c.Request.Context(), roomID, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create blocking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"blocking": b})
}

func (h *Handler) Activate(c *gin.Context) { h.lifecycle(c, h.service.Activate) }
func (h *Handler) Complete(c *gin.Context) { h.lifecycle(c, h.service.Complete) }
func (h *Handler) Cancel(c *gin.Context)   { h.lifecycle(c, h.service.Cancel) }

func (h *Handler) lifecycle(c *gin.Context, fn func(ctx context.Context, id int64) (*domain.RoomBlocking, error)) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := fn(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to update blocking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blocking": b})
}

func (h *Handler) ListByRoom(c *gin.Context) {
	roomID, ok := paramID(c)
	if !ok {
		return
	}

	list, err := h.service.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		h.writeError(c, err, "Failed to list blockings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blockings": list})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list blockings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blockings": list})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Blocking not found")
	case ErrRoomNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid blocking dates or type")
	case ErrInvalidLifecycle:
		response.Error(c, http.StatusConflict, "INVALID_LIFECYCLE", "Blocking status does not allow this change")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
