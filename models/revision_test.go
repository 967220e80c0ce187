package models_test

import (
	"strings"
	"testing"

	"pageforge/models"
)

// TestRevisionsAppendOnUpdate verifies each successful update snapshots
// the page, with sequence numbers incrementing and newest first.
func TestRevisionsAppendOnUpdate(t *testing.T) {
	cleanup := setupTestDB(t, "test_revisions")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Rev Page"})

	titles := []string{"First Edit", "Second Edit", "Third Edit"}
	for i := range titles {
		if _, err := models.UpdatePage(created.ID, models.PageUpdateInput{Title: &titles[i]}); err != nil {
			t.Fatalf("UpdatePage() unexpected error: %v", err)
		}
	}

	metas, err := models.ListRevisions(created.ID)
	if err != nil {
		t.Fatalf("ListRevisions() unexpected error: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("got %d revisions, want 3", len(metas))
	}

	// Newest first: seq 3, 2, 1
	for i, meta := range metas {
		wantSeq := 3 - i
		if meta.Seq != wantSeq {
			t.Errorf("revision %d seq = %d, want %d", i, meta.Seq, wantSeq)
		}
	}
	if metas[0].Title != "Third Edit" {
		t.Errorf("newest revision title = %q, want Third Edit", metas[0].Title)
	}
	if metas[0].Size <= 0 {
		t.Error("revision size should be recorded")
	}
}

func TestGetRevisionJSON(t *testing.T) {
	cleanup := setupTestDB(t, "test_revision_get")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Snap"})
	title := "Snap v2"
	if _, err := models.UpdatePage(created.ID, models.PageUpdateInput{Title: &title}); err != nil {
		t.Fatalf("UpdatePage() unexpected error: %v", err)
	}

	body, err := models.GetRevisionJSON(created.ID, 1)
	if err != nil {
		t.Fatalf("GetRevisionJSON() unexpected error: %v", err)
	}
	if !strings.Contains(body, `"Snap v2"`) {
		t.Errorf("snapshot body missing updated title: %s", body)
	}
	if !strings.Contains(body, created.ID) {
		t.Error("snapshot body missing page id")
	}

	missing, err := models.GetRevisionJSON(created.ID, 99)
	if err != nil {
		t.Fatalf("GetRevisionJSON() unexpected error: %v", err)
	}
	if missing != "" {
		t.Error("missing revision should return an empty body")
	}
}

// TestDiffRevisions verifies the line diff marks the changed title.
func TestDiffRevisions(t *testing.T) {
	cleanup := setupTestDB(t, "test_revision_diff")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Before"})

	first := "Version One"
	if _, err := models.UpdatePage(created.ID, models.PageUpdateInput{Title: &first}); err != nil {
		t.Fatalf("UpdatePage() unexpected error: %v", err)
	}
	second := "Version Two"
	if _, err := models.UpdatePage(created.ID, models.PageUpdateInput{Title: &second}); err != nil {
		t.Fatalf("UpdatePage() unexpected error: %v", err)
	}

	diff, err := models.DiffRevisions(created.ID, 1, 2)
	if err != nil {
		t.Fatalf("DiffRevisions() unexpected error: %v", err)
	}
	if !strings.Contains(diff, "- ") || !strings.Contains(diff, "+ ") {
		t.Errorf("diff should carry removal and addition markers:\n%s", diff)
	}
	if !strings.Contains(diff, "Version One") || !strings.Contains(diff, "Version Two") {
		t.Errorf("diff missing the changed titles:\n%s", diff)
	}
}

func TestDiffRevisionsMissing(t *testing.T) {
	cleanup := setupTestDB(t, "test_revision_diff_missing")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Lonely"})

	if _, err := models.DiffRevisions(created.ID, 1, 2); err == nil {
		t.Error("diffing missing revisions should error")
	}
}

// TestDiffJSONIgnoresFormatting verifies re-indentation keeps
// formatting noise out of the diff.
func TestDiffJSONIgnoresFormatting(t *testing.T) {
	compact := `{"title":"Same","theme":"dark"}`
	spaced := `{
		"title": "Same",
		"theme": "dark"
	}`

	diff, err := models.DiffJSON(compact, spaced)
	if err != nil {
		t.Fatalf("DiffJSON() unexpected error: %v", err)
	}
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+ ") || strings.HasPrefix(line, "- ") {
			t.Errorf("semantically equal documents produced a change line: %q", line)
		}
	}
}

// TestDeletePageRemovesRevisions verifies the history goes with the page.
func TestDeletePageRemovesRevisions(t *testing.T) {
	cleanup := setupTestDB(t, "test_revision_cascade")
	defer cleanup()

	created, _ := models.CreatePage(models.PageInput{Title: "Short Lived"})
	title := "Edited"
	if _, err := models.UpdatePage(created.ID, models.PageUpdateInput{Title: &title}); err != nil {
		t.Fatalf("UpdatePage() unexpected error: %v", err)
	}

	if _, err := models.DeletePage(created.ID); err != nil {
		t.Fatalf("DeletePage() unexpected error: %v", err)
	}

	metas, err := models.ListRevisions(created.ID)
	if err != nil {
		t.Fatalf("ListRevisions() unexpected error: %v", err)
	}
	if len(metas) != 0 {
		t.Errorf("%d revisions survived page deletion", len(metas))
	}
}
