package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itemshare/item-rental-backend/internal/identity"
	"github.com/itemshare/item-rental-backend/internal/pkg/response"
	"github.com/itemshare/item-rental-backend/internal/request"
)

type Handler struct {
	service request.Service
}

func NewHandler(service request.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": err.Error()})
		return
	}

	req, err := h.service.Create(c.Request.Context(), userID, body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestResponse(req))
}

func (h *Handler) ListOwn(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	details, err := h.service.ListOwn(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newDetailsList(details))
}

func (h *Handler) ListAll(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		response.Error(c, request.ErrInvalidPaging)
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		response.Error(c, request.ErrInvalidPaging)
		return
	}

	details, err := h.service.ListAll(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newDetailsList(details))
}

func (h *Handler) Get(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": "invalid request id"})
		return
	}

	d, err := h.service.FindByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestDetailsResponse(d))
}

func newDetailsList(details []*request.Details) []RequestDetailsResponse {
	items := make([]RequestDetailsResponse, len(details))
	for i, d := range details {
		items[i] = NewRequestDetailsResponse(d)
	}
	return items
}
