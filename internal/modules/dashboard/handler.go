package dashboard

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "hotelcore/internal/pkg/jwt"
	"hotelcore/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwtsvc.Service
}

func NewHandler(service *Service, hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwt}
}

// RegisterRoutes registers read-only dashboard routes under the protected
// group. The websocket endpoint authenticates via ?token= because browsers
// cannot set headers on websocket requests.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/dashboard")
	{
		group.GET("/kpis", h.KPIs)
		group.GET("/rooms", h.Rooms)
		group.GET("/room-types", h.RoomTypes)
	}
}

func (h *Handler) RegisterWS(r gin.IRoutes) {
	r.GET("/api/v1/dashboard/ws", h.WebSocket)
}

func (h *Handler) KPIs(c *gin.Context) {
	filters := KPIFilters{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if v := c.Query("room_type_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_type_id must be integer")
			return
		}
		filters.RoomTypeID = id
	}
	if v := c.Query("floor"); v != "" {
		floor, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "floor must be integer")
			return
		}
		filters.Floor = &floor
	}

	kpis, err := h.service.ComputeKPIs(c.Request.Context(), filters)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date and end_date must be YYYY-MM-DD, end not before start")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute KPIs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"kpis": kpis})
}

func (h *Handler) Rooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	var roomTypeID int64
	if v := c.Query("room_type_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_type_id must be integer")
			return
		}
		roomTypeID = id
	}
	var floor *int
	if v := c.Query("floor"); v != "" {
		f, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "floor must be integer")
			return
		}
		floor = &f
	}

	list, err := h.service.ListRooms(c.Request.Context(), c.Query("status"), roomTypeID, floor, page, pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) RoomTypes(c *gin.Context) {
	list, err := h.service.RoomTypeSummaries(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date and end_date must be YYYY-MM-DD, end not before start")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_types": list})
}

func (h *Handler) WebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token required")
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: user_id=%d err=%v", claims.UserID, err)
		return
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	// Broadcast-only: drain inbound frames until the client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
