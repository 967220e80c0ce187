// Package editor holds the canvas editing session: which page is open,
// which component is selected, and whether the builder is previewing.
// Every edit follows the same cycle: replace the components array,
// persist, then adopt the persisted copy. Last write wins.
package editor

import (
	"encoding/json"
	"strconv"

	"pageforge/models"

	"github.com/rohanthewiz/serr"
)

// State is the editor's position in its lifecycle.
type State int

const (
	StateNoPage State = iota
	StateEditing
	StatePreviewing
)

func (s State) String() string {
	switch s {
	case StateNoPage:
		return "no-page"
	case StateEditing:
		return "editing"
	case StatePreviewing:
		return "previewing"
	}
	return "unknown"
}

// PageStore is the persistence boundary for editor sessions.
// The production implementation is DBStore; tests use a fake.
type PageStore interface {
	CreatePage(input models.PageInput) (*models.Page, error)
	GetPage(id string) (*models.Page, error)
	ReplaceComponents(id string, comps []models.Component) (*models.Page, error)
}

// DBStore persists through the models layer.
type DBStore struct{}

func (DBStore) CreatePage(input models.PageInput) (*models.Page, error) {
	return models.CreatePage(input)
}

func (DBStore) GetPage(id string) (*models.Page, error) {
	return models.GetPageByID(id)
}

func (DBStore) ReplaceComponents(id string, comps []models.Component) (*models.Page, error) {
	return models.ReplacePageComponents(id, comps)
}

// Session is one builder editing session. Not safe for concurrent use;
// the builder is a single event-driven client.
type Session struct {
	store      PageStore
	state      State
	page       *models.Page
	selectedID string
}

// NewSession starts a session with no page open.
func NewSession(store PageStore) *Session {
	return &Session{store: store, state: StateNoPage}
}

func (s *Session) State() State              { return s.state }
func (s *Session) CurrentPage() *models.Page { return s.page }
func (s *Session) SelectedID() string        { return s.selectedID }

// CreatePage creates and opens a new page, moving the session to editing.
// Background color and theme persist at creation time; an empty title
// gets the next "Page N" default from the store.
func (s *Session) CreatePage(input models.PageInput) (*models.Page, error) {
	page, err := s.store.CreatePage(input)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create page")
	}
	s.page = page
	s.state = StateEditing
	s.selectedID = ""
	return page, nil
}

// SelectPage opens an existing page for editing.
func (s *Session) SelectPage(id string) (*models.Page, error) {
	page, err := s.store.GetPage(id)
	if err != nil {
		return nil, serr.Wrap(err, "failed to load page")
	}
	if page == nil {
		return nil, serr.New("page not found")
	}
	s.page = page
	s.state = StateEditing
	s.selectedID = ""
	return page, nil
}

// TogglePreview flips between editing and previewing without touching
// data. With no page open it does nothing.
func (s *Session) TogglePreview() State {
	switch s.state {
	case StateEditing:
		s.state = StatePreviewing
	case StatePreviewing:
		s.state = StateEditing
	}
	return s.state
}

// SelectComponent marks a component as selected. Only meaningful while
// editing; an id not on the page clears the selection.
func (s *Session) SelectComponent(id string) {
	if s.state != StateEditing || s.page == nil {
		return
	}
	for _, c := range s.page.Components {
		if c.ID == id {
			s.selectedID = id
			return
		}
	}
	s.selectedID = ""
}

// AddComponent drops a new component of the given type onto the canvas
// with its factory defaults. A no-op (nil, nil) unless editing a page.
func (s *Session) AddComponent(t models.ComponentType, pos models.Position) (*models.Component, error) {
	if s.state != StateEditing || s.page == nil {
		return nil, nil
	}

	comp := models.NewComponent(t, pos)
	comps := append(append([]models.Component{}, s.page.Components...), comp)

	if err := s.persist(comps); err != nil {
		return nil, err
	}
	return s.find(comp.ID), nil
}

// ComponentPatch is a partial component edit. Content merges shallowly
// over the existing payload; style merges key-wise; X/Y are the raw
// coordinate inputs from the canvas and default to 0 when non-numeric.
type ComponentPatch struct {
	Content json.RawMessage   `json:"content,omitempty"`
	Style   map[string]string `json:"style,omitempty"`
	X       *string           `json:"x,omitempty"`
	Y       *string           `json:"y,omitempty"`
}

// UpdateComponent applies a patch to one component and persists the
// replaced array. A no-op (nil, nil) unless editing; an unknown id
// leaves the page untouched.
func (s *Session) UpdateComponent(id string, patch ComponentPatch) (*models.Component, error) {
	if s.state != StateEditing || s.page == nil {
		return nil, nil
	}

	comps := append([]models.Component{}, s.page.Components...)
	found := false
	for i := range comps {
		if comps[i].ID != id {
			continue
		}
		found = true

		if len(patch.Content) > 0 {
			merged, err := models.MergeContent(comps[i].Type, comps[i].Content, patch.Content)
			if err != nil {
				return nil, err
			}
			comps[i].Content = merged
		}
		if patch.Style != nil {
			comps[i].Style = models.MergeStyle(comps[i].Style, patch.Style)
		}
		if patch.X != nil {
			comps[i].Position.X = ParseCoord(*patch.X)
		}
		if patch.Y != nil {
			comps[i].Position.Y = ParseCoord(*patch.Y)
		}
		break
	}
	if !found {
		return nil, nil
	}

	if err := s.persist(comps); err != nil {
		return nil, err
	}
	return s.find(id), nil
}

// DeleteComponent removes exactly one component by id and clears the
// selection if it pointed at the deleted component. A no-op unless
// editing a page.
func (s *Session) DeleteComponent(id string) error {
	if s.state != StateEditing || s.page == nil {
		return nil
	}

	comps := make([]models.Component, 0, len(s.page.Components))
	for _, c := range s.page.Components {
		if c.ID != id {
			comps = append(comps, c)
		}
	}

	if err := s.persist(comps); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = ""
	}
	return nil
}

// persist replaces the page's components and adopts the backend's copy.
func (s *Session) persist(comps []models.Component) error {
	page, err := s.store.ReplaceComponents(s.page.ID, comps)
	if err != nil {
		return serr.Wrap(err, "failed to persist components")
	}
	if page == nil {
		return serr.New("page vanished during edit")
	}
	s.page = page
	return nil
}

func (s *Session) find(id string) *models.Component {
	for i := range s.page.Components {
		if s.page.Components[i].ID == id {
			return &s.page.Components[i]
		}
	}
	return nil
}

// ParseCoord parses a raw canvas coordinate. Non-numeric input
// defaults to 0.
func ParseCoord(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
