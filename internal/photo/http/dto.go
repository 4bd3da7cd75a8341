package http

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/photo"
)

type PhotoResponse struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		ItemID:      p.ItemID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         "/photos/" + p.ID,
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		thumbURL := "/photos/" + p.ID + "/thumbnail"
		resp.ThumbnailURL = &thumbURL
	}
	return resp
}
