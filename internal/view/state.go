package view

import "photogallery/internal/domain/models"

// State is owned by one front-end. It is not safe for concurrent use.
type State struct {
	authors []string
	filters map[string]bool
	search  string
}

func NewState() *State {
	return &State{
		filters: make(map[string]bool),
	}
}

// RenderAll forgets the known authors and registers those of entries in
// order of first appearance. Filter toggles survive a re-render.
func (s *State) RenderAll(entries []models.Entry) {
	s.authors = s.authors[:0]
	for _, e := range entries {
		s.addAuthor(e.Author)
	}
}

// AddEntry registers the author of a newly added entry.
func (s *State) AddEntry(e models.Entry) {
	s.addAuthor(e.Author)
}

func (s *State) addAuthor(name string) {
	for _, a := range s.authors {
		if a == name {
			return
		}
	}

	s.authors = append(s.authors, name)
	if _, ok := s.filters[name]; !ok {
		s.filters[name] = false
	}
}

// ToggleAuthorFilter flips the author's filter and returns the new value.
func (s *State) ToggleAuthorFilter(author string) bool {
	s.filters[author] = !s.filters[author]
	return s.filters[author]
}

func (s *State) SetSearch(text string) {
	s.search = text
}

func (s *State) Search() string {
	return s.search
}

// Authors returns the known authors in insertion order.
func (s *State) Authors() []string {
	out := make([]string, len(s.authors))
	copy(out, s.authors)

	return out
}

// Filters returns a copy of the author -> active mapping.
func (s *State) Filters() map[string]bool {
	out := make(map[string]bool, len(s.filters))
	for k, v := range s.filters {
		out[k] = v
	}

	return out
}

func (s *State) AnyActive() bool {
	return AnyActive(s.filters)
}

// Chips returns one chip per known author, in insertion order.
func (s *State) Chips() []Chip {
	chips := make([]Chip, 0, len(s.authors))
	for _, a := range s.authors {
		chips = append(chips, Chip{Name: a, Active: s.filters[a]})
	}

	return chips
}

// Rows renders entries with the state's filters and search text.
func (s *State) Rows(entries []models.Entry) []Row {
	return Rows(entries, s.filters, s.search)
}
