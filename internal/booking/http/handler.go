package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itemshare/item-rental-backend/internal/booking"
	"github.com/itemshare/item-rental-backend/internal/identity"
	"github.com/itemshare/item-rental-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID, booking.CreateRequest{
		ItemID: body.ItemID,
		Start:  body.Start.Time,
		End:    body.End.Time,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": "invalid booking id"})
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": "approved query parameter must be a boolean"})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), userID, id, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": "invalid booking id"})
		return
	}

	b, err := h.service.FindByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListForBooker(c *gin.Context) {
	h.list(c, h.service.ListByBooker)
}

func (h *Handler) ListForOwner(c *gin.Context) {
	h.list(c, h.service.ListByOwner)
}

type listQuery func(ctx context.Context, userID string, state booking.State) ([]*booking.Booking, error)

func (h *Handler) list(c *gin.Context, query listQuery) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	state, err := booking.ParseState(c.DefaultQuery("state", string(booking.StateAll)))
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := query(c.Request.Context(), userID, state)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}
