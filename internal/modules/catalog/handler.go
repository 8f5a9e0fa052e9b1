package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelcore/internal/pkg/response"
	"hotelcore/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers read-only catalog endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/room-types", h.ListRoomTypes)
	rg.GET("/floors", h.ListFloors)
}

// RegisterManagerRoutes registers catalog write endpoints; the caller
// wraps the group with the manager role middleware.
func (h *Handler) RegisterManagerRoutes(rg *gin.RouterGroup) {
	rg.POST("/room-types", h.CreateRoomType)
	rg.PATCH("/room-types/:id", h.UpdateRoomType)
	rg.DELETE("/room-types/:id", h.DeleteRoomType)

	rg.POST("/floors", h.CreateFloor)
	rg.PATCH("/floors/:id", h.UpdateFloor)
	rg.DELETE("/floors/:id", h.DeleteFloor)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid room type fields", errs)
		return
	}

	rt, err := h.service.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create room type")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room_type": rt})
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rt, err := h.service.UpdateRoomType(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update room type")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": rt})
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoomType(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete room type")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListRoomTypes(c *gin.Context) {
	types, err := h.service.ListRoomTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list room types")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_types": types})
}

func (h *Handler) CreateFloor(c *gin.Context) {
	var req CreateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid floor fields", errs)
		return
	}

	f, err := h.service.CreateFloor(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create floor")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"floor": f})
}

func (h *Handler) UpdateFloor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.UpdateFloor(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update floor")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"floor": f})
}

func (h *Handler) DeleteFloor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteFloor(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete floor")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListFloors(c *gin.Context) {
	floors, err := h.service.ListFloors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list floors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"floors": floors})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case ErrDuplicate:
		response.Error(c, http.StatusConflict, "DUPLICATE", "Code or name already in use")
	case ErrInUse:
		response.Error(c, http.StatusConflict, "IN_USE", "Record is still referenced by rooms")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
