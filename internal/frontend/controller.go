// Package frontend drives the gallery view from API responses.
package frontend

import (
	"context"
	"fmt"
	"log/slog"

	"photogallery/internal/domain/models"
	"photogallery/internal/lib/logger/sl"
	"photogallery/internal/view"
)

type API interface {
	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, fields models.EntryFields) error
	ResetEntries(ctx context.Context) ([]models.Entry, error)
}

// Controller owns the displayed entries and the view state. State changes
// only after the API call succeeds. Not safe for concurrent use.
type Controller struct {
	log     *slog.Logger
	api     API
	state   *view.State
	entries []models.Entry
}

func NewController(log *slog.Logger, api API) *Controller {
	return &Controller{
		log:   log,
		api:   api,
		state: view.NewState(),
	}
}

// Load fetches every entry and re-renders.
func (c *Controller) Load(ctx context.Context) error {
	const op = "frontend.Controller.Load"
	log := c.log.With(slog.String("op", op))

	entries, err := c.api.ListEntries(ctx)
	if err != nil {
		log.Error("failed to load entries", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	c.renderAll(entries)

	return nil
}

// Submit creates an entry and appends it to the current view. The server
// does not return the new id, so the appended entry has ID 0 until the next
// Load.
func (c *Controller) Submit(ctx context.Context, fields models.EntryFields) error {
	const op = "frontend.Controller.Submit"
	log := c.log.With(slog.String("op", op))

	if err := c.api.CreateEntry(ctx, fields); err != nil {
		log.Error("failed to submit entry", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	entry := fields.Entry(0)
	c.entries = append(c.entries, entry)
	c.state.AddEntry(entry)

	return nil
}

// Reset restores the seed entries on the server and re-renders from them.
func (c *Controller) Reset(ctx context.Context) error {
	const op = "frontend.Controller.Reset"
	log := c.log.With(slog.String("op", op))

	entries, err := c.api.ResetEntries(ctx)
	if err != nil {
		log.Error("failed to reset gallery", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	c.renderAll(entries)

	return nil
}

func (c *Controller) renderAll(entries []models.Entry) {
	c.entries = append(c.entries[:0:0], entries...)
	c.state.RenderAll(c.entries)
}

func (c *Controller) ToggleAuthorFilter(author string) bool {
	return c.state.ToggleAuthorFilter(author)
}

func (c *Controller) Search(text string) {
	c.state.SetSearch(text)
}

func (c *Controller) Rows() []view.Row {
	return c.state.Rows(c.entries)
}

func (c *Controller) Chips() []view.Chip {
	return c.state.Chips()
}

// Edit does nothing yet.
func (c *Controller) Edit(id int64) {
	c.log.Debug("edit is not implemented", slog.Int64("id", id))
}
