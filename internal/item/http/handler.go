package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gearshare/gearshare-backend/internal/auth"
	"github.com/gearshare/gearshare-backend/internal/booking"
	"github.com/gearshare/gearshare-backend/internal/comment"
	"github.com/gearshare/gearshare-backend/internal/item"
	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
	"github.com/gearshare/gearshare-backend/internal/pkg/response"
)

type Handler struct {
	service        item.Service
	commentService comment.Service
	bookingService booking.Service
}

func NewHandler(service item.Service, commentService comment.Service, bookingService booking.Service) *Handler {
	return &Handler{
		service:        service,
		commentService: commentService,
		bookingService: bookingService,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	it, err := h.service.Create(c.Request.Context(), item.CreateRequest{
		OwnerID:     auth.GetUserID(c),
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	it, err := h.service.Update(c.Request.Context(), id, auth.GetUserID(c), item.UpdateRequest{
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
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ctx := c.Request.Context()

	it, err := h.service.GetByID(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := h.commentService.ListByItem(ctx, it.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	detail := ItemDetailResponse{
		ItemResponse: NewItemResponse(it),
		Comments:     make([]CommentResponse, len(comments)),
	}
	for i, cm := range comments {
		detail.Comments[i] = NewCommentResponse(cm)
	}

	// Booking info is only shown to the item's owner.
	if auth.GetUserID(c) == it.OwnerID {
		last, err := h.bookingService.LastForItem(ctx, it.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		next, err := h.bookingService.NextForItem(ctx, it.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		detail.LastBooking = NewBookingTag(last)
		detail.NextBooking = NewBookingTag(next)
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListOwn(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	items, total, err := h.service.ListByOwner(c.Request.Context(), auth.GetUserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPageResponse(toItemResponses(items), total))
}

func (h *Handler) Search(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	items, total, err := h.service.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPageResponse(toItemResponses(items), total))
}

func (h *Handler) CreateComment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CreateCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cm, err := h.commentService.Create(c.Request.Context(), id, auth.GetUserID(c), body.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(cm))
}

func toItemResponses(items []*item.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it)
	}
	return out
}

// pageFromQuery parses optional from/size query parameters into a PageSpec.
// It writes an error response and reports false when they are invalid.
func pageFromQuery(c *gin.Context) (pagination.PageSpec, bool) {
	var from, size *int
	if v := c.Query("from"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'from' must be an integer"})
			return pagination.PageSpec{}, false
		}
		from = &n
	}
	if v := c.Query("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'size' must be an integer"})
			return pagination.PageSpec{}, false
		}
		size = &n
	}

	page, err := pagination.New(from, size)
	if err != nil {
		response.Error(c, err)
		return pagination.PageSpec{}, false
	}
	return page, true
}
