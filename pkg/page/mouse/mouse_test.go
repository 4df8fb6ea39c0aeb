package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 4, Y: 2, W: 10, H: 3}

	cases := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left", 4, 2, true},
		{"last column", 13, 2, true},
		{"last row", 4, 4, true},
		{"bottom-right", 13, 4, true},
		{"left of", 3, 3, false},
		{"right edge exclusive", 14, 3, false},
		{"above", 5, 1, false},
		{"bottom edge exclusive", 5, 5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestHitMapLaterRegionsWin(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("backdrop", 0, 0, 80, 24, nil)
	hm.AddRect("signup-dialog", 20, 4, 40, 16, nil)
	hm.AddRect("field-email", 22, 8, 36, 1, "email")

	cases := []struct {
		x, y int
		want string
	}{
		{30, 8, "field-email"},
		{21, 5, "signup-dialog"},
		{2, 2, "backdrop"},
	}
	for _, tc := range cases {
		r := hm.Test(tc.x, tc.y)
		if r == nil || r.ID != tc.want {
			t.Errorf("Test(%d, %d) = %v, want %s", tc.x, tc.y, r, tc.want)
		}
	}

	if r := hm.Test(100, 100); r != nil {
		t.Errorf("expected miss, got %v", r)
	}
	if r := hm.Test(30, 8); r.Data != "email" {
		t.Errorf("region data = %v, want email", r.Data)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 1, 1, nil)
	hm.AddRect("b", 1, 0, 1, 1, nil)
	if n := len(hm.Regions()); n != 2 {
		t.Fatalf("expected 2 regions, got %d", n)
	}
	hm.Clear()
	if n := len(hm.Regions()); n != 0 {
		t.Errorf("expected 0 regions after clear, got %d", n)
	}
}

func TestHandlerDoubleClick(t *testing.T) {
	h := NewHandler()
	clock := time.Unix(0, 0)
	h.now = func() time.Time { return clock }
	h.HitMap.AddRect("signup-submit", 10, 10, 10, 1, nil)
	h.HitMap.AddRect("signup-cancel", 22, 10, 10, 1, nil)

	if res := h.HandleClick(12, 10); res.IsDoubleClick || res.Region == nil {
		t.Fatalf("first click: %+v", res)
	}

	clock = clock.Add(100 * time.Millisecond)
	if res := h.HandleClick(12, 10); !res.IsDoubleClick {
		t.Error("second quick click should be a double click")
	}

	clock = clock.Add(100 * time.Millisecond)
	if res := h.HandleClick(12, 10); res.IsDoubleClick {
		t.Error("third click starts a new sequence")
	}

	clock = clock.Add(DoubleClickThreshold + time.Millisecond)
	if res := h.HandleClick(12, 10); res.IsDoubleClick {
		t.Error("slow click should not be a double click")
	}

	clock = clock.Add(50 * time.Millisecond)
	if res := h.HandleClick(24, 10); res.IsDoubleClick {
		t.Error("click on another region should not be a double click")
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("trigger", 0, 0, 12, 1, nil)

	press := h.HandleMouse(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if press.Type != ActionClick || press.Region == nil || press.Region.ID != "trigger" {
		t.Errorf("press = %+v", press)
	}

	hover := h.HandleMouse(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion})
	if hover.Type != ActionHover || hover.Region == nil {
		t.Errorf("hover = %+v", hover)
	}

	miss := h.HandleMouse(tea.MouseMsg{X: 40, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if miss.Type != ActionClick || miss.Region != nil {
		t.Errorf("click outside every region = %+v", miss)
	}

	wheel := []struct {
		button tea.MouseButton
		shift  bool
		want   ActionType
	}{
		{tea.MouseButtonWheelUp, false, ActionScrollUp},
		{tea.MouseButtonWheelDown, false, ActionScrollDown},
		{tea.MouseButtonWheelUp, true, ActionScrollLeft},
		{tea.MouseButtonWheelDown, true, ActionScrollRight},
	}
	for _, tc := range wheel {
		got := h.HandleMouse(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tc.button, Shift: tc.shift})
		if got.Type != tc.want {
			t.Errorf("wheel %v shift=%v: got %v, want %v", tc.button, tc.shift, got.Type, tc.want)
		}
	}
}

func TestHandleMouseDrag(t *testing.T) {
	h := NewHandler()
	h.StartDrag(10, 10, "page", 3)
	if !h.IsDragging() || h.DragRegion() != "page" || h.DragStartValue() != 3 {
		t.Fatalf("drag state not recorded")
	}

	move := h.HandleMouse(tea.MouseMsg{X: 14, Y: 7, Action: tea.MouseActionMotion})
	if move.Type != ActionDrag || move.DragDX != 4 || move.DragDY != -3 {
		t.Errorf("drag = %+v", move)
	}

	end := h.HandleMouse(tea.MouseMsg{X: 14, Y: 7, Action: tea.MouseActionRelease})
	if end.Type != ActionDragEnd {
		t.Errorf("release = %+v", end)
	}
	if h.IsDragging() {
		t.Error("drag should end on release")
	}

	if rel := h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionRelease}); rel.Type != ActionNone {
		t.Errorf("release without drag = %v", rel.Type)
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("x", 0, 0, 1, 1, nil)
	h.Clear()
	if n := len(h.HitMap.Regions()); n != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", n)
	}
}
