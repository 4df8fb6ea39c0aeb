package modal

import (
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// ListItem is one selectable row.
type ListItem struct {
	ID    string
	Label string
	Data  any
}

// ListOption configures a List section.
type ListOption func(*listSection)

// WithMaxVisible sets the number of rows shown before scrolling.
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

// WithListLabel sets the heading rendered above the rows.
func WithListLabel(label string) ListOption {
	return func(s *listSection) {
		s.label = label
	}
}

// WithListPlaceholder sets the text shown while nothing is selected.
func WithListPlaceholder(text string) ListOption {
	return func(s *listSection) {
		s.placeholder = text
	}
}

// WithListError supplies the validation message shown under the rows.
func WithListError(fn func() string) ListOption {
	return func(s *listSection) {
		s.errFn = fn
	}
}

// WithFilter lets typed characters narrow the rows with fuzzy matching.
func WithFilter() ListOption {
	return func(s *listSection) {
		s.filterable = true
	}
}

type listSection struct {
	id           string
	label        string
	placeholder  string
	items        []ListItem
	selectedIdx  *int // -1 means nothing selected
	maxVisible   int
	scrollOffset int
	filterable   bool
	filter       string
	errFn        func() string
}

// List creates a list section. selectedIdx indexes items and is updated in
// place by arrow keys and typed filters.
func List(id string, items []ListItem, selectedIdx *int, opts ...ListOption) Section {
	s := &listSection{
		id:          id,
		items:       items,
		selectedIdx: selectedIdx,
		maxVisible:  5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ItemRegionID is the hit region ID of item idx of list id.
func ItemRegionID(listID string, idx int) string {
	return listID + "#" + strconv.Itoa(idx)
}

// ParseItemRegionID splits a region ID produced by ItemRegionID.
func ParseItemRegionID(regionID string) (string, int, bool) {
	i := strings.LastIndexByte(regionID, '#')
	if i < 0 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(regionID[i+1:])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return regionID[:i], idx, true
}

// visible returns item indexes matching the filter, in list order.
func (s *listSection) visible() []int {
	if s.filter == "" {
		idx := make([]int, len(s.items))
		for i := range s.items {
			idx[i] = i
		}
		return idx
	}
	labels := make([]string, len(s.items))
	for i, it := range s.items {
		labels[i] = it.Label
	}
	matches := fuzzy.Find(s.filter, labels)
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	slices.Sort(idx)
	return idx
}

func (s *listSection) selected() int {
	if s.selectedIdx == nil {
		return -1
	}
	return *s.selectedIdx
}

func (s *listSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	listIsFocused := focusID == s.id
	var lines []string
	var focusables []FocusableInfo

	if s.label != "" {
		style := InputLabel
		if listIsFocused {
			style = InputLabelFocused
		}
		lines = append(lines, style.Render(s.label))
	}
	if s.filter != "" {
		lines = append(lines, MutedText.Render("filter: "+s.filter))
	}

	rows := s.visible()
	sel := s.selected()
	if sel < 0 && s.placeholder != "" {
		lines = append(lines, MutedText.Render("  "+s.placeholder))
	}

	if len(rows) == 0 {
		lines = append(lines, MutedText.Render("(no matches)"))
	} else {
		visibleCount := min(s.maxVisible, len(rows))
		pos := slices.Index(rows, sel)
		if pos >= 0 {
			if pos < s.scrollOffset {
				s.scrollOffset = pos
			} else if pos >= s.scrollOffset+visibleCount {
				s.scrollOffset = pos - visibleCount + 1
			}
		}
		s.scrollOffset = clamp(s.scrollOffset, 0, max(0, len(rows)-visibleCount))

		if s.scrollOffset > 0 {
			lines = append(lines, MutedText.Render("↑ more above"))
		}
		for i := 0; i < visibleCount; i++ {
			itemIdx := rows[s.scrollOffset+i]
			item := s.items[itemIdx]
			regionID := ItemRegionID(s.id, itemIdx)
			isSelected := itemIdx == sel

			style := ListItemNormal
			switch {
			case isSelected && listIsFocused:
				style = ListItemFocused
			case isSelected, hoverID == regionID:
				style = ListItemSelected
			}
			cursor := "  "
			if isSelected {
				cursor = ListCursor.Render("> ")
			}
			focusables = append(focusables, FocusableInfo{
				ID:      regionID,
				OffsetY: len(lines),
				Width:   contentWidth,
				Height:  1,
				Data:    itemIdx,
			})
			lines = append(lines, cursor+style.Render(item.Label))
		}
		if s.scrollOffset+visibleCount < len(rows) {
			lines = append(lines, MutedText.Render("↓ more below"))
		}
	}

	if s.errFn != nil {
		if msg := s.errFn(); msg != "" {
			lines = append(lines, ErrorText.Width(contentWidth).Render(msg))
		}
	}

	// The list is one focus stop; its rows are registered after it so they
	// win the hit test.
	focusables = append([]FocusableInfo{{
		ID:     s.id,
		Width:  contentWidth,
		Height: len(lines),
	}}, focusables...)

	return RenderedSection{
		Content:    strings.Join(lines, "\n"),
		Focusables: focusables,
	}
}

func (s *listSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id || s.selectedIdx == nil {
		return "", nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	rows := s.visible()
	pos := slices.Index(rows, *s.selectedIdx)

	key := keyMsg.String()
	if !s.filterable {
		// vim keys only when typing does not filter
		switch key {
		case "k":
			key = "up"
		case "j":
			key = "down"
		}
	}

	switch key {
	case "up":
		if len(rows) > 0 {
			if pos < 0 {
				pos = len(rows)
			}
			*s.selectedIdx = rows[max(pos-1, 0)]
		}
		return "", nil
	case "down":
		if len(rows) > 0 {
			*s.selectedIdx = rows[min(pos+1, len(rows)-1)]
		}
		return "", nil
	case "home":
		if len(rows) > 0 {
			*s.selectedIdx = rows[0]
		}
		return "", nil
	case "end":
		if len(rows) > 0 {
			*s.selectedIdx = rows[len(rows)-1]
		}
		return "", nil
	case "enter":
		s.filter = ""
		if *s.selectedIdx >= 0 && *s.selectedIdx < len(s.items) {
			return s.items[*s.selectedIdx].ID, nil
		}
		return "", nil
	case "backspace":
		if s.filterable && s.filter != "" {
			r := []rune(s.filter)
			s.filter = string(r[:len(r)-1])
			s.snapToVisible()
		}
		return "", nil
	}

	if s.filterable && keyMsg.Type == tea.KeyRunes && !keyMsg.Alt {
		s.filter += string(keyMsg.Runes)
		s.snapToVisible()
	}
	return "", nil
}

// snapToVisible moves the selection onto the first filtered row when the
// current one was filtered out.
func (s *listSection) snapToVisible() {
	rows := s.visible()
	if len(rows) == 0 || slices.Contains(rows, *s.selectedIdx) {
		return
	}
	*s.selectedIdx = rows[0]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
