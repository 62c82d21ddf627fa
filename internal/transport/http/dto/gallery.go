package dto

import "photogallery/internal/domain/models"

// CreateEntryRequest тело POST /, обязательность полей проверяет сервис
type CreateEntryRequest struct {
	Author      string `json:"author" form:"author"`
	Alt         string `json:"alt" form:"alt"`
	Tags        string `json:"tags" form:"tags"`
	Image       string `json:"image" form:"image"`
	Description string `json:"description" form:"description"`
}

func (r CreateEntryRequest) Fields() models.EntryFields {
	return models.EntryFields{
		Author:      r.Author,
		Alt:         r.Alt,
		Tags:        r.Tags,
		Image:       r.Image,
		Description: r.Description,
	}
}

// UpdateEntryRequest тело PATCH /, пустые поля не изменяются
type UpdateEntryRequest struct {
	ID          int64  `json:"id" form:"id" validate:"required"`
	Author      string `json:"author" form:"author"`
	Alt         string `json:"alt" form:"alt"`
	Tags        string `json:"tags" form:"tags"`
	Image       string `json:"image" form:"image"`
	Description string `json:"description" form:"description"`
}

func (r UpdateEntryRequest) Fields() models.EntryFields {
	return models.EntryFields{
		Author:      r.Author,
		Alt:         r.Alt,
		Tags:        r.Tags,
		Image:       r.Image,
		Description: r.Description,
	}
}

type DeleteEntryRequest struct {
	ID int64 `json:"id" query:"id" form:"id" validate:"required"`
}

// EntryResponse представляет собой запись галереи в ответе API
type EntryResponse struct {
	ID          int64  `json:"id"`
	Author      string `json:"author"`
	Alt         string `json:"alt"`
	Tags        string `json:"tags"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func NewEntryResponse(e models.Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Author:      e.Author,
		Alt:         e.Alt,
		Tags:        e.Tags,
		Image:       e.Image,
		Description: e.Description,
	}
}

func NewEntryListResponse(entries []models.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewEntryResponse(e))
	}

	return out
}
