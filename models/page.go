package models

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Page is a named canvas holding an ordered collection of components
// plus page-level styling. The backend owns pages; clients cache copies.
type Page struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	BackgroundColor string         `json:"background_color"`
	BackgroundImage sql.NullString `json:"-"`
	Theme           string         `json:"theme"` // dark, light
	Components      []Component    `json:"components"`
	Settings        map[string]any `json:"settings"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// PageInput contains the data required to create a page.
type PageInput struct {
	Title           string `json:"title"`
	BackgroundColor string `json:"background_color"`
	Theme           string `json:"theme"`
}

// PageUpdateInput is a partial update; nil fields are left untouched.
// Mirrors the original API's free-form PUT body.
type PageUpdateInput struct {
	Title           *string         `json:"title,omitempty"`
	BackgroundColor *string         `json:"background_color,omitempty"`
	BackgroundImage *string         `json:"background_image,omitempty"`
	Theme           *string         `json:"theme,omitempty"`
	Components      *[]Component    `json:"components,omitempty"`
	Settings        *map[string]any `json:"settings,omitempty"`
}

// PageOutput is the JSON shape returned by the API.
type PageOutput struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	BackgroundColor string         `json:"background_color"`
	BackgroundImage *string        `json:"background_image"`
	Theme           string         `json:"theme"`
	Components      []Component    `json:"components"`
	Settings        map[string]any `json:"settings"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ToOutput converts a Page to its API representation.
func (p *Page) ToOutput() PageOutput {
	out := PageOutput{
		ID:              p.ID,
		Title:           p.Title,
		BackgroundColor: p.BackgroundColor,
		Theme:           p.Theme,
		Components:      p.Components,
		Settings:        p.Settings,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.BackgroundImage.Valid {
		out.BackgroundImage = &p.BackgroundImage.String
	}
	if out.Components == nil {
		out.Components = []Component{}
	}
	if out.Settings == nil {
		out.Settings = map[string]any{}
	}
	return out
}

// CreatePage inserts a new page. Empty title gets the next "Page N" default;
// empty color/theme get the dark defaults, persisted at creation time.
func CreatePage(input PageInput) (*Page, error) {
	title := input.Title
	if title == "" {
		next, err := NextPageTitle()
		if err != nil {
			return nil, err
		}
		title = next
	}

	color := input.BackgroundColor
	if color == "" {
		color = "#000000"
	}
	theme := input.Theme
	if theme == "" {
		theme = "dark"
	}

	now := time.Now().UTC()
	page := &Page{
		ID:              uuid.NewString(),
		Title:           title,
		BackgroundColor: color,
		Theme:           theme,
		Components:      []Component{},
		Settings:        map[string]any{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := db.Exec(`
		INSERT INTO pages (id, title, background_color, background_image, theme,
		                   components, settings, created_at, updated_at)
		VALUES (?, ?, ?, NULL, ?, '[]', '{}', ?, ?)`,
		page.ID, page.Title, page.BackgroundColor, page.Theme, page.CreatedAt, page.UpdatedAt)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create page")
	}

	return page, nil
}

// NextPageTitle returns the incrementing default title for a new page.
func NextPageTitle() (string, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count); err != nil {
		return "", serr.Wrap(err, "failed to count pages")
	}
	return fmt.Sprintf("Page %d", count+1), nil
}

// GetPageByID retrieves a single page, or nil if not found.
func GetPageByID(id string) (*Page, error) {
	row := db.QueryRow(`
		SELECT id, title, background_color, background_image, theme,
		       components, settings, created_at, updated_at
		FROM pages WHERE id = ?`, id)

	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to get page")
	}
	return page, nil
}

// ListPages returns all pages, most recently updated first.
func ListPages() ([]Page, error) {
	rows, err := db.Query(`
		SELECT id, title, background_color, background_image, theme,
		       components, settings, created_at, updated_at
		FROM pages ORDER BY updated_at DESC`)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list pages")
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, serr.Wrap(err, "failed to scan page")
		}
		pages = append(pages, *page)
	}
	return pages, rows.Err()
}

// UpdatePage applies a partial update and returns the persisted copy,
// or nil if the page does not exist. Each successful update appends a
// revision snapshot (best effort).
func UpdatePage(id string, input PageUpdateInput) (*Page, error) {
	page, err := GetPageByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	if input.Title != nil {
		page.Title = *input.Title
	}
	if input.BackgroundColor != nil {
		page.BackgroundColor = *input.BackgroundColor
	}
	if input.BackgroundImage != nil {
		page.BackgroundImage = sql.NullString{String: *input.BackgroundImage, Valid: *input.BackgroundImage != ""}
	}
	if input.Theme != nil {
		page.Theme = *input.Theme
	}
	if input.Components != nil {
		page.Components = *input.Components
	}
	if input.Settings != nil {
		page.Settings = *input.Settings
	}

	return savePage(page)
}

// ReplacePageComponents swaps the full component array, matching the
// builder's replace-then-persist edit cycle. Last write wins.
func ReplacePageComponents(id string, comps []Component) (*Page, error) {
	return UpdatePage(id, PageUpdateInput{Components: &comps})
}

// AddComponentToPage appends a component to the page's array.
func AddComponentToPage(id string, comp Component) (*Page, error) {
	page, err := GetPageByID(id)
	if err != nil || page == nil {
		return page, err
	}
	page.Components = append(page.Components, comp)
	return savePage(page)
}

// UpdatePageComponent replaces the component with a matching id.
// A component id that is not on the page leaves the page unchanged.
func UpdatePageComponent(id string, comp Component) (*Page, error) {
	page, err := GetPageByID(id)
	if err != nil || page == nil {
		return page, err
	}
	for i := range page.Components {
		if page.Components[i].ID == comp.ID {
			page.Components[i] = comp
			break
		}
	}
	return savePage(page)
}

// DeletePageComponent filters the component with the given id out of
// the page's array.
func DeletePageComponent(id string, componentID string) (*Page, error) {
	page, err := GetPageByID(id)
	if err != nil || page == nil {
		return page, err
	}
	kept := page.Components[:0]
	for _, c := range page.Components {
		if c.ID != componentID {
			kept = append(kept, c)
		}
	}
	page.Components = kept
	return savePage(page)
}

// DeletePage removes a page and its revisions. Returns false if the
// page did not exist.
func DeletePage(id string) (bool, error) {
	res, err := db.Exec("DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return false, serr.Wrap(err, "failed to delete page")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, serr.Wrap(err, "failed to read delete result")
	}
	if n == 0 {
		return false, nil
	}
	if _, err := db.Exec("DELETE FROM page_revisions WHERE page_id = ?", id); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to delete page revisions"), "page_id", id)
	}
	return true, nil
}

// savePage writes the full page row and records a revision snapshot.
func savePage(page *Page) (*Page, error) {
	compJSON, err := MarshalComponents(page.Components)
	if err != nil {
		return nil, err
	}

	settings := page.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, serr.Wrap(err, "failed to marshal page settings")
	}

	page.UpdatedAt = time.Now().UTC()

	_, err = db.Exec(`
		UPDATE pages
		SET title = ?, background_color = ?, background_image = ?, theme = ?,
		    components = ?, settings = ?, updated_at = ?
		WHERE id = ?`,
		page.Title, page.BackgroundColor, page.BackgroundImage, page.Theme,
		compJSON, string(settingsJSON), page.UpdatedAt, page.ID)
	if err != nil {
		return nil, serr.Wrap(err, "failed to update page")
	}

	// Revision history is best effort; an update never fails over it
	if err := SaveRevision(page); err != nil {
		logger.LogErr(err, "failed to record page revision", "page_id", page.ID)
	}

	return page, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*Page, error) {
	page := &Page{}
	var compJSON, settingsJSON string

	err := row.Scan(&page.ID, &page.Title, &page.BackgroundColor, &page.BackgroundImage,
		&page.Theme, &compJSON, &settingsJSON, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, err
	}

	page.Components, err = UnmarshalComponents(compJSON)
	if err != nil {
		return nil, err
	}

	if settingsJSON != "" {
		if err := json.Unmarshal([]byte(settingsJSON), &page.Settings); err != nil {
			return nil, serr.Wrap(err, "failed to unmarshal page settings")
		}
	}
	if page.Settings == nil {
		page.Settings = map[string]any{}
	}

	return page, nil
}
