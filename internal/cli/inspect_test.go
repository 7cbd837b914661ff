package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/scene"
)

func landingIndex(t *testing.T) *scene.Index {
	t.Helper()
	doc, err := scene.ImportJSON(landing)
	if err != nil {
		t.Fatal(err)
	}
	rects, err := doc.Rects()
	if err != nil {
		t.Fatal(err)
	}
	return scene.NewIndex(rects)
}

func press(m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestInspectModelMeasuresAgainstCursor(t *testing.T) {
	page := geom.Page{Width: 1000, Height: 1000}
	var m tea.Model = NewInspectModel(landingIndex(t), page)

	if v := m.View(); !strings.Contains(v, "Select a rectangle") {
		t.Errorf("initial view should prompt for a selection:\n%s", v)
	}

	// Select the card; measuring it against itself yields nothing.
	m, _ = press(m, keyDown, keyEnter)
	im := m.(InspectModel)
	if im.Selected == nil || im.Selected.Title != "Card" {
		t.Fatalf("Selected = %+v, want Card", im.Selected)
	}
	if !im.Marks.IsEmpty() {
		t.Errorf("self measurement = %+v, want empty", im.Marks)
	}

	m, _ = press(m, keyDown)
	im = m.(InspectModel)
	if im.Relation != "partial" || len(im.Marks.DistanceLabels) != 1 {
		t.Errorf("card → button = %s with %d labels, want partial with 1", im.Relation, len(im.Marks.DistanceLabels))
	}

	m, _ = press(m, keyDown)
	im = m.(InspectModel)
	if im.Relation != "diagonal" || len(im.Marks.RulerGuides) != 2 {
		t.Errorf("card → dot = %s with %d guides, want diagonal with 2", im.Relation, len(im.Marks.RulerGuides))
	}
	if v := m.View(); !strings.Contains(v, "guide") {
		t.Errorf("view should list the guides:\n%s", v)
	}

	m, _ = press(m, keyEsc)
	im = m.(InspectModel)
	if im.Selected != nil || !im.Marks.IsEmpty() {
		t.Errorf("esc should clear the selection, got %+v", im)
	}
}

func TestInspectModelCursorBounds(t *testing.T) {
	var m tea.Model = NewInspectModel(landingIndex(t), geom.Page{Width: 1000, Height: 1000})

	m, _ = press(m, keyUp, keyUp)
	if c := m.(InspectModel).Cursor; c != 0 {
		t.Errorf("Cursor = %d after moving up at the top, want 0", c)
	}

	m, _ = press(m, keyDown, keyDown, keyDown, keyDown, keyDown)
	if c := m.(InspectModel).Cursor; c != 3 {
		t.Errorf("Cursor = %d after moving past the end, want 3", c)
	}
}

func TestInspectModelScrolls(t *testing.T) {
	var m tea.Model = NewInspectModel(landingIndex(t), geom.Page{Width: 1000, Height: 1000})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if h := m.(InspectModel).Height; h != 5 {
		t.Fatalf("Height = %d, want minimum 5", h)
	}

	im := m.(InspectModel)
	im.Height = 2
	m, _ = press(im, keyDown, keyDown, keyDown)
	im = m.(InspectModel)
	if im.Offset != 2 {
		t.Errorf("Offset = %d with cursor %d and height 2, want 2", im.Offset, im.Cursor)
	}
	if v := im.View(); !strings.Contains(v, "Dot") || strings.Contains(v, "Card") {
		t.Errorf("view should show only the scrolled window:\n%s", v)
	}
}

func TestInspectModelDegeneratePage(t *testing.T) {
	var m tea.Model = NewInspectModel(landingIndex(t), geom.Page{})
	m, _ = press(m, keyEnter, keyDown)
	im := m.(InspectModel)
	if im.Err == nil {
		t.Fatal("Err should be set for a degenerate page")
	}
	if v := im.View(); !strings.Contains(v, "page width") {
		t.Errorf("view should show the error:\n%s", v)
	}
}

func TestInspectModelQuit(t *testing.T) {
	m := NewInspectModel(landingIndex(t), geom.Page{Width: 1000, Height: 1000})
	if _, cmd := press(m, keyQuit); cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestInspectModelHelp(t *testing.T) {
	m := NewInspectModel(landingIndex(t), geom.Page{Width: 1000, Height: 1000})
	v := m.View()
	for _, want := range []string{"select", "clear", "quit"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing help for %q:\n%s", want, v)
		}
	}

	// vim-style keys move the cursor like the arrows do.
	next, _ := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if c := next.(InspectModel).Cursor; c != 1 {
		t.Errorf("Cursor after j = %d, want 1", c)
	}
}
