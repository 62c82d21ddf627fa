// Package view holds the gallery front-end state and the pure function that
// decides which rows are visible. Nothing here touches the network or a
// particular presentation; the HTML page and the terminal client both render
// from the rows it produces.
package view

import (
	"strings"

	"photogallery/internal/domain/models"
)

// Row is one rendered entry. Hidden and HiddenSearch are set independently:
// the first by author filters, the second by the text search.
type Row struct {
	Entry        models.Entry
	Tags         []string
	Hidden       bool
	HiddenSearch bool
}

// Visible reports whether neither mechanism hides the row.
func (r Row) Visible() bool {
	return !r.Hidden && !r.HiddenSearch
}

// EditLabel is the caption of the per-row edit button.
const EditLabel = "Edit"

// Text is the row's visible text, the haystack for searches. It includes the
// edit button caption but not the image URL.
func (r Row) Text() string {
	parts := make([]string, 0, 4+len(r.Tags))
	parts = append(parts, r.Entry.Author, r.Entry.Alt)
	parts = append(parts, r.Tags...)
	parts = append(parts, r.Entry.Description, EditLabel)

	return strings.Join(parts, " ")
}

// Chip is an author filter toggle.
type Chip struct {
	Name   string
	Active bool
}

// NormalizeQuery trims and upper-cases a search query.
func NormalizeQuery(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// AnyActive reports whether at least one author filter is on.
func AnyActive(filters map[string]bool) bool {
	for _, on := range filters {
		if on {
			return true
		}
	}

	return false
}

// Rows renders entries in order and applies both visibility rules.
//
// A row is hidden by the author filters when at least one filter is active
// and the row's author is not among the active ones. A row is hidden by the
// search when the normalized query is not empty and is not a substring of the
// upper-cased row text.
func Rows(entries []models.Entry, filters map[string]bool, search string) []Row {
	anyActive := AnyActive(filters)
	query := NormalizeQuery(search)

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			Entry: e,
			Tags:  e.TagList(),
		}

		row.Hidden = anyActive && !filters[e.Author]
		row.HiddenSearch = query != "" && !strings.Contains(strings.ToUpper(row.Text()), query)

		rows = append(rows, row)
	}

	return rows
}

// VisibleRows keeps only rows that are shown.
func VisibleRows(rows []Row) []Row {
	visible := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Visible() {
			visible = append(visible, r)
		}
	}

	return visible
}
