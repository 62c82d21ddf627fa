package frontend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photogallery/internal/domain/models"
	"photogallery/internal/frontend"
	"photogallery/internal/lib/logger/handlers/slogdiscard"
	"photogallery/internal/view"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListEntries(ctx context.Context) ([]models.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

func (m *MockAPI) CreateEntry(ctx context.Context, fields models.EntryFields) error {
	args := m.Called(ctx, fields)
	return args.Error(0)
}

func (m *MockAPI) ResetEntries(ctx context.Context) ([]models.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

func seeds() []models.Entry {
	s := models.SeedEntries()
	return []models.Entry{s[0].Entry(1), s[1].Entry(2)}
}

func authors(rows []view.Row) []string {
	var out []string
	for _, r := range view.VisibleRows(rows) {
		out = append(out, r.Entry.Author)
	}
	return out
}

func newController(t *testing.T) (*frontend.Controller, *MockAPI) {
	t.Helper()

	api := new(MockAPI)
	t.Cleanup(func() { api.AssertExpectations(t) })

	return frontend.NewController(slogdiscard.NewDiscardLogger(), api), api
}

func TestController_Load(t *testing.T) {
	ctx := context.Background()
	c, api := newController(t)

	api.On("ListEntries", ctx).Return(seeds(), nil).Once()

	require.NoError(t, c.Load(ctx))
	assert.Equal(t, []string{"Tim Berners-Lee", "Grace Hopper"}, authors(c.Rows()))
	assert.Equal(t, []view.Chip{{Name: "Tim Berners-Lee"}, {Name: "Grace Hopper"}}, c.Chips())
}

func TestController_LoadFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	c, api := newController(t)

	api.On("ListEntries", ctx).Return(seeds(), nil).Once()
	api.On("ListEntries", ctx).Return(nil, errors.New("connection refused")).Once()

	require.NoError(t, c.Load(ctx))
	require.Error(t, c.Load(ctx))

	assert.Len(t, c.Rows(), 2)
}

func TestController_Submit(t *testing.T) {
	ctx := context.Background()
	c, api := newController(t)

	fields := models.EntryFields{Author: "Ada Lovelace", Alt: "Ada", Tags: "math", Image: "img", Description: "d"}
	bad := models.EntryFields{Author: "Nobody"}

	api.On("ListEntries", ctx).Return(seeds(), nil).Once()
	api.On("CreateEntry", ctx, fields).Return(nil).Once()
	api.On("CreateEntry", ctx, bad).Return(errors.New("Error! alt, tags, image, description must be not empty")).Once()

	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.Submit(ctx, fields))

	rows := c.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, fields.Entry(0), rows[2].Entry)
	assert.Equal(t, "Ada Lovelace", c.Chips()[2].Name)

	require.Error(t, c.Submit(ctx, bad))
	assert.Len(t, c.Rows(), 3)
	assert.Len(t, c.Chips(), 3)
}

func TestController_FiltersAndSearch(t *testing.T) {
	ctx := context.Background()
	c, api := newController(t)

	api.On("ListEntries", ctx).Return(seeds(), nil).Once()
	require.NoError(t, c.Load(ctx))

	assert.True(t, c.ToggleAuthorFilter("Grace Hopper"))
	assert.Equal(t, []string{"Grace Hopper"}, authors(c.Rows()))

	c.Search("web")
	assert.Empty(t, authors(c.Rows()))

	assert.False(t, c.ToggleAuthorFilter("Grace Hopper"))
	assert.Equal(t, []string{"Tim Berners-Lee"}, authors(c.Rows()))

	c.Search("")
	assert.Len(t, authors(c.Rows()), 2)

	c.Edit(1)
}

func TestController_Reset(t *testing.T) {
	ctx := context.Background()
	c, api := newController(t)

	extra := models.Entry{ID: 3, Author: "Ada Lovelace"}

	api.On("ListEntries", ctx).Return(append(seeds(), extra), nil).Once()
	api.On("ResetEntries", ctx).Return(nil, errors.New("boom")).Once()
	api.On("ResetEntries", ctx).Return(seeds(), nil).Once()

	require.NoError(t, c.Load(ctx))
	c.ToggleAuthorFilter("Grace Hopper")

	require.Error(t, c.Reset(ctx))
	assert.Len(t, c.Rows(), 3)

	require.NoError(t, c.Reset(ctx))
	assert.Len(t, c.Rows(), 2)
	assert.Len(t, c.Chips(), 2)
	assert.Equal(t, []string{"Grace Hopper"}, authors(c.Rows()))
}
