// Package client talks to the gallery HTTP API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/carlmjohnson/requests"

	"photogallery/internal/domain/models"
	"photogallery/internal/transport/http/dto"
	"photogallery/internal/transport/http/dto/response"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API rooted at baseURL. A nil httpClient
// means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) request() *requests.Builder {
	return requests.URL(c.baseURL).
		Client(c.httpClient).
		Accept("application/json")
}

func (c *Client) ListEntries(ctx context.Context) ([]models.Entry, error) {
	const op = "client.ListEntries"

	var out []dto.EntryResponse
	if err := c.fetch(ctx, c.request().ToJSON(&out), http.StatusOK); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toEntries(out), nil
}

func (c *Client) CreateEntry(ctx context.Context, fields models.EntryFields) error {
	const op = "client.CreateEntry"

	req := c.request().
		Post().
		BodyJSON(dto.CreateEntryRequest{
			Author:      fields.Author,
			Alt:         fields.Alt,
			Tags:        fields.Tags,
			Image:       fields.Image,
			Description: fields.Description,
		})

	if err := c.fetch(ctx, req, http.StatusCreated); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) UpdateEntry(ctx context.Context, id int64, fields models.EntryFields) (models.Entry, error) {
	const op = "client.UpdateEntry"

	var out dto.EntryResponse
	req := c.request().
		Patch().
		BodyJSON(dto.UpdateEntryRequest{
			ID:          id,
			Author:      fields.Author,
			Alt:         fields.Alt,
			Tags:        fields.Tags,
			Image:       fields.Image,
			Description: fields.Description,
		}).
		ToJSON(&out)

	if err := c.fetch(ctx, req, http.StatusOK); err != nil {
		return models.Entry{}, fmt.Errorf("%s: %w", op, err)
	}

	return toEntry(out), nil
}

func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	const op = "client.DeleteEntry"

	req := c.request().
		Delete().
		Param("id", strconv.FormatInt(id, 10))

	if err := c.fetch(ctx, req, http.StatusOK); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) ResetEntries(ctx context.Context) ([]models.Entry, error) {
	const op = "client.ResetEntries"

	var out []dto.EntryResponse
	req := c.request().
		Path("reset").
		ToJSON(&out)

	if err := c.fetch(ctx, req, http.StatusOK); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toEntries(out), nil
}

// fetch runs the request and turns any other status into *APIError.
func (c *Client) fetch(ctx context.Context, rb *requests.Builder, status int) error {
	return rb.
		AddValidator(func(res *http.Response) error {
			if res.StatusCode == status {
				return nil
			}

			apiErr := &APIError{StatusCode: res.StatusCode}

			var body response.ErrorResponse
			if err := requests.ToJSON(&body)(res); err == nil {
				apiErr.Message = body.Error
				apiErr.Fields = body.Fields
			}

			return apiErr
		}).
		Fetch(ctx)
}

func toEntry(r dto.EntryResponse) models.Entry {
	return models.Entry{
		ID:          r.ID,
		Author:      r.Author,
		Alt:         r.Alt,
		Tags:        r.Tags,
		Image:       r.Image,
		Description: r.Description,
	}
}

func toEntries(rs []dto.EntryResponse) []models.Entry {
	out := make([]models.Entry, 0, len(rs))
	for _, r := range rs {
		out = append(out, toEntry(r))
	}

	return out
}
