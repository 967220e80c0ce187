package models_test

import (
	"os"
	"testing"

	"pageforge/models"
)

// setupTestDB initializes a clean test database for each test
func setupTestDB(t *testing.T, name string) func() {
	t.Helper()

	path := "./" + name + ".ddb"
	os.Remove(path)
	os.Remove(path + ".wal")

	if err := models.InitTestDB(path); err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}

	return func() {
		models.CloseDB()
		os.Remove(path)
		os.Remove(path + ".wal")
	}
}

// TestCreatePageDefaults verifies empty inputs get the fixed defaults
// and the incrementing "Page N" title.
func TestCreatePageDefaults(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_create")
	defer cleanup()

	first, err := models.CreatePage(models.PageInput{})
	if err != nil {
		t.Fatalf("CreatePage() unexpected error: %v", err)
	}
	if first.Title != "Page 1" {
		t.Errorf("first default title = %q, want Page 1", first.Title)
	}
	if first.BackgroundColor != "#000000" {
		t.Errorf("default color = %q, want #000000", first.BackgroundColor)
	}
	if first.Theme != "dark" {
		t.Errorf("default theme = %q, want dark", first.Theme)
	}
	if first.ID == "" {
		t.Error("page should get a generated id")
	}

	second, err := models.CreatePage(models.PageInput{})
	if err != nil {
		t.Fatalf("CreatePage() unexpected error: %v", err)
	}
	if second.Title != "Page 2" {
		t.Errorf("second default title = %q, want Page 2", second.Title)
	}
}

// TestCreatePageExplicitValues verifies color and theme persist at
// creation time, not on first render.
func TestCreatePageExplicitValues(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_explicit")
	defer cleanup()

	created, err := models.CreatePage(models.PageInput{
		Title:           "Promo",
		BackgroundColor: "#221144",
		Theme:           "light",
	})
	if err != nil {
		t.Fatalf("CreatePage() unexpected error: %v", err)
	}

	stored, err := models.GetPageByID(created.ID)
	if err != nil {
		t.Fatalf("GetPageByID() unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("created page not found")
	}
	if stored.Title != "Promo" || stored.BackgroundColor != "#221144" || stored.Theme != "light" {
		t.Errorf("stored page = %+v", stored)
	}
	if len(stored.Components) != 0 {
		t.Errorf("new page should have no components, got %d", len(stored.Components))
	}
}

func TestGetPageByIDMissing(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_missing")
	defer cleanup()

	page, err := models.GetPageByID("does-not-exist")
	if err != nil {
		t.Fatalf("GetPageByID() unexpected error: %v", err)
	}
	if page != nil {
		t.Error("missing page should return nil, nil")
	}
}

func TestListPages(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_list")
	defer cleanup()

	a, _ := models.CreatePage(models.PageInput{Title: "A"})
	b, _ := models.CreatePage(models.PageInput{Title: "B"})

	// Touch A so it becomes the most recently updated
	title := "A updated"
	if _, err := models.UpdatePage(a.ID, models.PageUpdateInput{Title: &title}); err != nil {
		t.Fatalf("UpdatePage() unexpected error: %v", err)
	}

	pages, err := models.ListPages()
	if err != nil {
		t.Fatalf("ListPages() unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("ListPages() returned %d pages, want 2", len(pages))
	}
	if pages[0].ID != a.ID {
		t.Errorf("most recently updated page should come first, got %q", pages[0].Title)
	}
	if pages[1].ID != b.ID {
		t.Errorf("second page = %q, want %q", pages[1].Title, "B")
	}
}

// TestUpdatePagePartial verifies nil fields are left untouched.
func TestUpdatePagePartial(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_update")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Keep Me"})

	color := "#ff0000"
	img := "/api/uploads/bg.jpg"
	updated, err := models.UpdatePage(created.ID, models.PageUpdateInput{
		BackgroundColor: &color,
		BackgroundImage: &img,
	})
	if err != nil {
		t.Fatalf("UpdatePage() unexpected error: %v", err)
	}
	if updated.Title != "Keep Me" {
		t.Errorf("untouched title changed to %q", updated.Title)
	}
	if updated.BackgroundColor != "#ff0000" {
		t.Errorf("color not updated: %q", updated.BackgroundColor)
	}
	if !updated.BackgroundImage.Valid || updated.BackgroundImage.String != img {
		t.Errorf("background image not updated: %+v", updated.BackgroundImage)
	}

	// Round trip through the database
	stored, _ := models.GetPageByID(created.ID)
	if stored.BackgroundColor != "#ff0000" || stored.Title != "Keep Me" {
		t.Errorf("stored page = %+v", stored)
	}
}

func TestUpdatePageMissing(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_update_missing")
	defer cleanup()

	title := "Ghost"
	page, err := models.UpdatePage("nope", models.PageUpdateInput{Title: &title})
	if err != nil {
		t.Fatalf("UpdatePage() unexpected error: %v", err)
	}
	if page != nil {
		t.Error("updating a missing page should return nil, nil")
	}
}

// TestComponentLifecycle runs add, update, and delete against one page
// and verifies the array survives each persistence round trip.
func TestComponentLifecycle(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_components")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Canvas"})

	comp := models.NewComponent(models.TypeText, models.Position{X: 10, Y: 20})
	page, err := models.AddComponentToPage(created.ID, comp)
	if err != nil {
		t.Fatalf("AddComponentToPage() unexpected error: %v", err)
	}
	if len(page.Components) != 1 {
		t.Fatalf("page has %d components after add, want 1", len(page.Components))
	}

	stored, _ := models.GetPageByID(created.ID)
	tc, ok := stored.Components[0].Content.(models.TextContent)
	if !ok {
		t.Fatalf("stored content decoded as %T, want TextContent", stored.Components[0].Content)
	}
	if tc.Text != "Edit this text" {
		t.Errorf("stored content = %+v", tc)
	}

	// Update the component in place
	comp.Content = models.TextContent{Text: "Changed", Tag: "h2"}
	comp.Position = models.Position{X: 99, Y: 88}
	page, err = models.UpdatePageComponent(created.ID, comp)
	if err != nil {
		t.Fatalf("UpdatePageComponent() unexpected error: %v", err)
	}

	stored, _ = models.GetPageByID(created.ID)
	tc = stored.Components[0].Content.(models.TextContent)
	if tc.Text != "Changed" || tc.Tag != "h2" {
		t.Errorf("updated content = %+v", tc)
	}
	if stored.Components[0].Position.X != 99 {
		t.Errorf("updated position = %+v", stored.Components[0].Position)
	}

	// Delete filters exactly the matching id
	page, err = models.DeletePageComponent(created.ID, comp.ID)
	if err != nil {
		t.Fatalf("DeletePageComponent() unexpected error: %v", err)
	}
	if len(page.Components) != 0 {
		t.Errorf("page has %d components after delete, want 0", len(page.Components))
	}
}

func TestReplacePageComponents(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_replace")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Canvas"})

	comps := []models.Component{
		models.NewComponent(models.TypeButton, models.Position{X: 1, Y: 2}),
	}
	page, err := models.ReplacePageComponents(created.ID, comps)
	if err != nil {
		t.Fatalf("ReplacePageComponents() unexpected error: %v", err)
	}
	if len(page.Components) != 1 {
		t.Fatalf("replace left %d components, want 1", len(page.Components))
	}

	// Replacing with an empty array clears the page
	page, err = models.ReplacePageComponents(created.ID, []models.Component{})
	if err != nil {
		t.Fatalf("ReplacePageComponents() unexpected error: %v", err)
	}
	if len(page.Components) != 0 {
		t.Errorf("replace with empty left %d components", len(page.Components))
	}
}

func TestDeletePage(t *testing.T) {
	cleanup := setupTestDB(t, "test_page_delete")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Doomed"})

	ok, err := models.DeletePage(created.ID)
	if err != nil {
		t.Fatalf("DeletePage() unexpected error: %v", err)
	}
	if !ok {
		t.Error("deleting an existing page should report true")
	}

	page, _ := models.GetPageByID(created.ID)
	if page != nil {
		t.Error("deleted page still retrievable")
	}

	ok, err = models.DeletePage(created.ID)
	if err != nil {
		t.Fatalf("DeletePage() unexpected error: %v", err)
	}
	if ok {
		t.Error("deleting a missing page should report false")
	}
}

// TestToOutput verifies the API shape normalizes nils and optional fields.
func TestToOutput(t *testing.T) {
	page := &models.Page{ID: "p1", Title: "T", BackgroundColor: "#000000", Theme: "dark"}
	out := page.ToOutput()

	if out.Components == nil {
		t.Error("output components should never be nil")
	}
	if out.Settings == nil {
		t.Error("output settings should never be nil")
	}
	if out.BackgroundImage != nil {
		t.Error("unset background image should be null in output")
	}
}
