package rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelcore/internal/domain"
	"hotelcore/internal/pkg/response"
	"hotelcore/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the operational endpoints available to every
// authenticated user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id", h.GetRoom)
	rg.POST("/rooms/:id/transitions", h.Transition)
	rg.GET("/rooms/:id/actions", h.Actions)
	rg.GET("/rooms/:id/history", h.History)
	rg.GET("/rooms/:id/availability", h.Availability)
}

// RegisterManagerRoutes registers room management endpoints; the caller
// wraps the group with the manager role middleware.
func (h *Handler) RegisterManagerRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.CreateRoom)
	rg.PATCH("/rooms/:id", h.UpdateRoom)
	rg.POST("/rooms/:id/archive", h.ArchiveRoom)
}

func roomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid room fields", errs)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrDuplicate:
			response.Error(c, http.StatusConflict, "DUPLICATE", "Room number already exists on this floor")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		if err == ErrDuplicate {
			response.Error(c, http.StatusConflict, "DUPLICATE", "Room number already exists on this floor")
			return
		}
		h.writeError(c, err, "Failed to update room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) ArchiveRoom(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	if err := h.service.ArchiveRoom(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to archive room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"archived": true})
}

func (h *Handler) Transition(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid transition request", errs)
		return
	}

	actorID := c.GetInt64("user_id")
	res, err := h.service.Transition(c.Request.Context(), id, actorID, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
			return
		}
		if err == ErrArchived {
			response.Error(c, http.StatusConflict, "ROOM_ARCHIVED", "Archived rooms cannot change status")
			return
		}
		h.writeError(c, err, "Failed to apply transition")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Actions(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	res, err := h.service.Actions(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load actions")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) History(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	res, err := h.service.History(c.Request.Context(), id, limit, (page-1)*limit)
	if err != nil {
		h.writeError(c, err, "Failed to load history")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Availability(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	start, err1 := time.Parse("2006-01-02", c.Query("start_date"))
	end, err2 := time.Parse("2006-01-02", c.Query("end_date"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date and end_date must be YYYY-MM-DD")
		return
	}

	res, err := h.service.Availability(c.Request.Context(), id, start, end)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must not be before start_date")
			return
		}
		h.writeError(c, err, "Failed to compute availability")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
