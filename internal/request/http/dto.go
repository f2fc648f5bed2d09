package http

import (
	itemHttp "github.com/itemshare/item-rental-backend/internal/item/http"
	"github.com/itemshare/item-rental-backend/internal/pkg/jsontime"
	"github.com/itemshare/item-rental-backend/internal/request"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type RequestResponse struct {
	ID          string                 `json:"id"`
	Description string                 `json:"description"`
	Created     jsontime.LocalDateTime `json:"created"`
}

func NewRequestResponse(req *request.Request) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     jsontime.New(req.Created),
	}
}

type RequestDetailsResponse struct {
	RequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

func NewRequestDetailsResponse(d *request.Details) RequestDetailsResponse {
	resp := RequestDetailsResponse{
		RequestResponse: NewRequestResponse(&d.Request),
		Items:           make([]itemHttp.ItemResponse, len(d.Items)),
	}
	for i, it := range d.Items {
		resp.Items[i] = itemHttp.NewItemResponse(it)
	}
	return resp
}
