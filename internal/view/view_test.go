package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photogallery/internal/domain/models"
	"photogallery/internal/view"
)

func entries() []models.Entry {
	seeds := models.SeedEntries()
	return []models.Entry{
		seeds[0].Entry(1),
		seeds[1].Entry(2),
		{ID: 3, Author: "Ada Lovelace", Alt: "Ada", Tags: "math", Image: "https://example.com/a.jpg", Description: "Notes on the engine"},
		{ID: 4, Author: "Grace Hopper", Alt: "Hopper at Harvard", Tags: "cobol", Image: "https://example.com/g.jpg", Description: "Mark I"},
	}
}

func visibleIDs(rows []view.Row) []int64 {
	var ids []int64
	for _, r := range view.VisibleRows(rows) {
		ids = append(ids, r.Entry.ID)
	}
	return ids
}

func TestRows(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string]bool
		search  string
		want    []int64
	}{
		{
			name: "no filters no search",
			want: []int64{1, 2, 3, 4},
		},
		{
			name:    "inactive filters show everything",
			filters: map[string]bool{"Grace Hopper": false, "Ada Lovelace": false},
			want:    []int64{1, 2, 3, 4},
		},
		{
			name:    "one author",
			filters: map[string]bool{"Grace Hopper": true, "Ada Lovelace": false},
			want:    []int64{2, 4},
		},
		{
			name:    "two authors",
			filters: map[string]bool{"Grace Hopper": true, "Tim Berners-Lee": true},
			want:    []int64{1, 2, 4},
		},
		{
			name:   "search is case insensitive",
			search: "GRACE",
			want:   []int64{2, 4},
		},
		{
			name:   "search is trimmed",
			search: "  engine\t",
			want:   []int64{3},
		},
		{
			name:   "search matches tags",
			search: "cern",
			want:   []int64{1},
		},
		{
			name:   "image url is not visible text",
			search: "example.com",
			want:   nil,
		},
		{
			name:   "edit button caption is visible text",
			search: "edit",
			want:   []int64{1, 2, 3, 4},
		},
		{
			name:   "blank search shows everything",
			search: "   ",
			want:   []int64{1, 2, 3, 4},
		},
		{
			name:    "filter and search combine",
			filters: map[string]bool{"Grace Hopper": true},
			search:  "univac",
			want:    []int64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := view.Rows(entries(), tt.filters, tt.search)
			require.Len(t, rows, len(entries()))
			assert.Equal(t, tt.want, visibleIDs(rows))
		})
	}
}

func TestRows_FlagsAreIndependent(t *testing.T) {
	rows := view.Rows(entries(), map[string]bool{"Ada Lovelace": true}, "grace")

	tim := rows[0]
	assert.True(t, tim.Hidden)
	assert.True(t, tim.HiddenSearch)

	grace := rows[1]
	assert.True(t, grace.Hidden)
	assert.False(t, grace.HiddenSearch)

	ada := rows[2]
	assert.False(t, ada.Hidden)
	assert.True(t, ada.HiddenSearch)
}

func TestRows_SplitsTags(t *testing.T) {
	rows := view.Rows(entries()[:1], nil, "")
	assert.Equal(t, []string{"html", "http", "url", "cern", "mit"}, rows[0].Tags)
}

func TestState(t *testing.T) {
	st := view.NewState()
	st.RenderAll(entries())

	assert.Equal(t, []string{"Tim Berners-Lee", "Grace Hopper", "Ada Lovelace"}, st.Authors())
	assert.False(t, st.AnyActive())

	t.Run("toggle on and off", func(t *testing.T) {
		assert.True(t, st.ToggleAuthorFilter("Ada Lovelace"))
		assert.Equal(t, []int64{3}, visibleIDs(st.Rows(entries())))

		assert.False(t, st.ToggleAuthorFilter("Ada Lovelace"))
		assert.Equal(t, []int64{1, 2, 3, 4}, visibleIDs(st.Rows(entries())))
	})

	t.Run("chips follow insertion order", func(t *testing.T) {
		st.ToggleAuthorFilter("Grace Hopper")
		defer st.ToggleAuthorFilter("Grace Hopper")

		assert.Equal(t, []view.Chip{
			{Name: "Tim Berners-Lee"},
			{Name: "Grace Hopper", Active: true},
			{Name: "Ada Lovelace"},
		}, st.Chips())
	})

	t.Run("add entry registers new author once", func(t *testing.T) {
		st.AddEntry(models.Entry{Author: "Alan Turing"})
		st.AddEntry(models.Entry{Author: "Alan Turing"})
		assert.Equal(t, []string{"Tim Berners-Lee", "Grace Hopper", "Ada Lovelace", "Alan Turing"}, st.Authors())
	})

	t.Run("render all rebuilds authors and keeps filters", func(t *testing.T) {
		st.ToggleAuthorFilter("Ada Lovelace")
		st.RenderAll(entries()[:2])

		assert.Equal(t, []string{"Tim Berners-Lee", "Grace Hopper"}, st.Authors())
		assert.True(t, st.Filters()["Ada Lovelace"])
		// the active filter matches no remaining author, so nothing shows
		assert.Empty(t, visibleIDs(st.Rows(entries()[:2])))
	})

	t.Run("search", func(t *testing.T) {
		st := view.NewState()
		st.RenderAll(entries())
		st.SetSearch("grace")

		assert.Equal(t, "grace", st.Search())
		assert.Equal(t, []int64{2, 4}, visibleIDs(st.Rows(entries())))
	})
}

func TestState_FiltersIsACopy(t *testing.T) {
	st := view.NewState()
	st.RenderAll(entries())

	f := st.Filters()
	f["Grace Hopper"] = true

	assert.False(t, st.AnyActive())
}
