package http

import (
	"time"

	itemHttp "github.com/gearshare/gearshare-backend/internal/item/http"
	"github.com/gearshare/gearshare-backend/internal/itemrequest"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type RequestResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Requester   string    `json:"requester"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRequestResponse(req *itemrequest.Request) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Requester:   req.RequesterName,
		CreatedAt:   req.CreatedAt,
	}
}

type RequestDetailResponse struct {
	RequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

func NewRequestDetailResponse(rwa *itemrequest.RequestWithAnswers) RequestDetailResponse {
	items := make([]itemHttp.ItemResponse, len(rwa.Answers))
	for i, it := range rwa.Answers {
		items[i] = itemHttp.NewItemResponse(it)
	}
	return RequestDetailResponse{
		RequestResponse: NewRequestResponse(rwa.Request),
		Items:           items,
	}
}
