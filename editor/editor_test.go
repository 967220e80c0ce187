package editor

import (
	"encoding/json"
	"fmt"
	"testing"

	"pageforge/models"
)

// fakeStore keeps pages in memory and mimics the backend's
// replace-and-return persistence contract.
type fakeStore struct {
	pages map[string]*models.Page
}

func newFakeStore() *fakeStore {
	return &fakeStore{pages: map[string]*models.Page{}}
}

func (f *fakeStore) CreatePage(input models.PageInput) (*models.Page, error) {
	title := input.Title
	if title == "" {
		title = fmt.Sprintf("Page %d", len(f.pages)+1)
	}
	color := input.BackgroundColor
	if color == "" {
		color = "#000000"
	}
	theme := input.Theme
	if theme == "" {
		theme = "dark"
	}

	page := &models.Page{
		ID:              fmt.Sprintf("page-%d", len(f.pages)+1),
		Title:           title,
		BackgroundColor: color,
		Theme:           theme,
		Components:      []models.Component{},
	}
	f.pages[page.ID] = page
	return clonePage(page), nil
}

func (f *fakeStore) GetPage(id string) (*models.Page, error) {
	page, ok := f.pages[id]
	if !ok {
		return nil, nil
	}
	return clonePage(page), nil
}

func (f *fakeStore) ReplaceComponents(id string, comps []models.Component) (*models.Page, error) {
	page, ok := f.pages[id]
	if !ok {
		return nil, nil
	}
	page.Components = comps
	return clonePage(page), nil
}

func clonePage(p *models.Page) *models.Page {
	cp := *p
	cp.Components = append([]models.Component{}, p.Components...)
	return &cp
}

func newEditingSession(t *testing.T) (*Session, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	s := NewSession(store)
	if _, err := s.CreatePage(models.PageInput{}); err != nil {
		t.Fatalf("create page failed: %v", err)
	}
	return s, store
}

func TestSessionStartsWithNoPage(t *testing.T) {
	s := NewSession(newFakeStore())
	if s.State() != StateNoPage {
		t.Errorf("new session state = %s, want no-page", s.State())
	}
	if s.CurrentPage() != nil {
		t.Error("new session should have no page")
	}
}

// TestCreatePageDefaults verifies incrementing titles and that color
// and theme are persisted at creation time.
func TestCreatePageDefaults(t *testing.T) {
	store := newFakeStore()
	s := NewSession(store)

	first, err := s.CreatePage(models.PageInput{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.Title != "Page 1" {
		t.Errorf("first page title = %q, want Page 1", first.Title)
	}
	if first.BackgroundColor != "#000000" || first.Theme != "dark" {
		t.Errorf("creation defaults not persisted: %q %q", first.BackgroundColor, first.Theme)
	}

	second, err := s.CreatePage(models.PageInput{BackgroundColor: "#112233", Theme: "light"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if second.Title != "Page 2" {
		t.Errorf("second page title = %q, want Page 2", second.Title)
	}
	if store.pages[second.ID].BackgroundColor != "#112233" || store.pages[second.ID].Theme != "light" {
		t.Error("explicit color/theme should persist at creation")
	}

	if s.State() != StateEditing {
		t.Errorf("state after create = %s, want editing", s.State())
	}
}

// TestEditsAreNoOpsOutsideEditing covers the state-machine guards:
// no page selected and previewing both ignore edits.
func TestEditsAreNoOpsOutsideEditing(t *testing.T) {
	s := NewSession(newFakeStore())

	comp, err := s.AddComponent(models.TypeText, models.Position{})
	if err != nil || comp != nil {
		t.Errorf("add with no page should no-op, got %v, %v", comp, err)
	}

	if _, err := s.CreatePage(models.PageInput{}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	s.TogglePreview()
	if s.State() != StatePreviewing {
		t.Fatalf("state = %s, want previewing", s.State())
	}

	comp, err = s.AddComponent(models.TypeText, models.Position{})
	if err != nil || comp != nil {
		t.Errorf("add while previewing should no-op, got %v, %v", comp, err)
	}
	if err := s.DeleteComponent("anything"); err != nil {
		t.Errorf("delete while previewing should no-op, got %v", err)
	}

	// Preview must not have touched the data
	if len(s.CurrentPage().Components) != 0 {
		t.Error("preview toggling must not mutate components")
	}
}

func TestTogglePreviewRoundTrip(t *testing.T) {
	s, _ := newEditingSession(t)

	if st := s.TogglePreview(); st != StatePreviewing {
		t.Errorf("toggle = %s, want previewing", st)
	}
	if st := s.TogglePreview(); st != StateEditing {
		t.Errorf("toggle back = %s, want editing", st)
	}

	// With no page open, toggling stays put
	empty := NewSession(newFakeStore())
	if st := empty.TogglePreview(); st != StateNoPage {
		t.Errorf("toggle with no page = %s, want no-page", st)
	}
}

func TestAddComponentAppends(t *testing.T) {
	s, store := newEditingSession(t)

	comp, err := s.AddComponent(models.TypeButton, models.Position{X: 30, Y: 40})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if comp == nil {
		t.Fatal("add in editing state should return the component")
	}
	if comp.Position.X != 30 || comp.Position.Y != 40 {
		t.Errorf("position = %+v", comp.Position)
	}
	if _, ok := comp.Content.(models.ButtonContent); !ok {
		t.Errorf("content = %T, want ButtonContent", comp.Content)
	}

	// Session adopted the persisted copy
	if len(s.CurrentPage().Components) != 1 {
		t.Errorf("session page has %d components, want 1", len(s.CurrentPage().Components))
	}
	if len(store.pages[s.CurrentPage().ID].Components) != 1 {
		t.Error("component was not persisted")
	}
}

// TestDeleteComponentRemovesExactlyOne also checks selection clearing.
func TestDeleteComponentRemovesExactlyOne(t *testing.T) {
	s, _ := newEditingSession(t)

	first, _ := s.AddComponent(models.TypeText, models.Position{})
	firstID := first.ID
	// Factory ids are timestamp based; a second add in the same
	// millisecond could collide, so rename the second one
	second, _ := s.AddComponent(models.TypeText, models.Position{})
	if second.ID == firstID {
		comps := append([]models.Component{}, s.CurrentPage().Components...)
		comps[1].ID = firstID + "-b"
		if _, err := s.store.ReplaceComponents(s.CurrentPage().ID, comps); err != nil {
			t.Fatal(err)
		}
		if _, err := s.SelectPage(s.CurrentPage().ID); err != nil {
			t.Fatal(err)
		}
	}

	s.SelectComponent(firstID)
	if s.SelectedID() != firstID {
		t.Fatalf("selection = %q, want %q", s.SelectedID(), firstID)
	}

	if err := s.DeleteComponent(firstID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(s.CurrentPage().Components) != 1 {
		t.Errorf("%d components remain, want 1", len(s.CurrentPage().Components))
	}
	for _, c := range s.CurrentPage().Components {
		if c.ID == firstID {
			t.Error("deleted component still present")
		}
	}
	if s.SelectedID() != "" {
		t.Error("selection should clear when the selected component is deleted")
	}
}

func TestDeleteKeepsOtherSelection(t *testing.T) {
	s, _ := newEditingSession(t)

	kept, _ := s.AddComponent(models.TypeText, models.Position{})
	s.SelectComponent(kept.ID)

	if err := s.DeleteComponent("not-present"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if s.SelectedID() != kept.ID {
		t.Error("unrelated delete should not clear selection")
	}
}

// TestUpdateComponentPositionNonNumeric verifies the raw-input rule:
// non-numeric coordinates default to 0.
func TestUpdateComponentPositionNonNumeric(t *testing.T) {
	s, _ := newEditingSession(t)

	comp, _ := s.AddComponent(models.TypeText, models.Position{X: 50, Y: 60})

	x, y := "abc", "12.5"
	updated, err := s.UpdateComponent(comp.ID, ComponentPatch{X: &x, Y: &y})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Position.X != 0 {
		t.Errorf("non-numeric x = %v, want 0", updated.Position.X)
	}
	if updated.Position.Y != 12.5 {
		t.Errorf("y = %v, want 12.5", updated.Position.Y)
	}
}

func TestUpdateComponentMergesContentAndStyle(t *testing.T) {
	s, _ := newEditingSession(t)

	comp, _ := s.AddComponent(models.TypeText, models.Position{})

	updated, err := s.UpdateComponent(comp.ID, ComponentPatch{
		Content: json.RawMessage(`{"text":"New copy"}`),
		Style:   map[string]string{"color": "#ff0000"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	tc := updated.Content.(models.TextContent)
	if tc.Text != "New copy" {
		t.Errorf("content patch not applied: %+v", tc)
	}
	if tc.Tag != "p" {
		t.Errorf("unpatched content field lost: %+v", tc)
	}
	if updated.Style["color"] != "#ff0000" {
		t.Errorf("style patch not applied: %v", updated.Style)
	}
	if updated.Style["fontSize"] != "16" {
		t.Errorf("existing style lost: %v", updated.Style)
	}
}

func TestUpdateUnknownComponentNoOps(t *testing.T) {
	s, _ := newEditingSession(t)

	updated, err := s.UpdateComponent("missing", ComponentPatch{})
	if err != nil {
		t.Fatalf("update errored: %v", err)
	}
	if updated != nil {
		t.Error("updating a missing component should no-op")
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"-7.25", -7.25},
		{"abc", 0},
		{"", 0},
		{"12px", 0},
	}
	for _, tt := range tests {
		if got := ParseCoord(tt.in); got != tt.want {
			t.Errorf("ParseCoord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelectComponentUnknownClears(t *testing.T) {
	s, _ := newEditingSession(t)

	comp, _ := s.AddComponent(models.TypeText, models.Position{})
	s.SelectComponent(comp.ID)
	s.SelectComponent("nope")
	if s.SelectedID() != "" {
		t.Error("selecting an unknown id should clear the selection")
	}
}
