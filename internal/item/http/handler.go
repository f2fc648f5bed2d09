package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itemshare/item-rental-backend/internal/identity"
	"github.com/itemshare/item-rental-backend/internal/item"
	"github.com/itemshare/item-rental-backend/internal/pkg/response"
)

type Handler struct {
	service item.Service
}

func NewHandler(service item.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	var body CreateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": err.Error()})
		return
	}

	it, err := h.service.Create(c.Request.Context(), userID, item.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   *body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": "invalid item id"})
		return
	}

	var body UpdateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": err.Error()})
		return
	}

	it, err := h.service.Update(c.Request.Context(), userID, id, item.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *Handler) Get(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": "invalid item id"})
		return
	}

	d, err := h.service.FindByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemDetailsResponse(d))
}

func (h *Handler) ListOwned(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	details, err := h.service.FindByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemDetailsResponse, len(details))
	for i, d := range details {
		items[i] = NewItemDetailsResponse(d)
	}
	c.JSON(http.StatusOK, items)
}

// Search is anonymous: no X-Sharer-User-Id required, blank text yields an
// empty list.
func (h *Handler) Search(c *gin.Context) {
	found, err := h.service.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemResponse, len(found))
	for i, it := range found {
		items[i] = NewItemResponse(it)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddComment(c *gin.Context) {
	userID, ok := identity.RequireUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": "invalid item id"})
		return
	}

	var body CreateCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "message": err.Error()})
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), userID, id, body.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCommentResponse(cm))
}
