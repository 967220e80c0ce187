package models

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/rohanthewiz/serr"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/vmihailenco/msgpack/v5"
)

// pageSnapshot is the msgpack envelope stored per revision. The page body
// rides as canonical JSON inside the envelope; msgpack keeps snapshots
// compact while the metadata stays directly queryable after decode.
type pageSnapshot struct {
	PageID   string    `msgpack:"page_id"`
	Title    string    `msgpack:"title"`
	TakenAt  time.Time `msgpack:"taken_at"`
	PageJSON string    `msgpack:"page_json"`
}

// RevisionMeta describes one entry of a page's revision history.
type RevisionMeta struct {
	Seq       int       `json:"seq"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Size      int       `json:"size"` // snapshot size in bytes
}

// SaveRevision appends a snapshot of the page's current state to its
// revision history.
func SaveRevision(page *Page) error {
	pageJSON, err := json.Marshal(page.ToOutput())
	if err != nil {
		return serr.Wrap(err, "failed to marshal page for snapshot")
	}

	snap := pageSnapshot{
		PageID:   page.ID,
		Title:    page.Title,
		TakenAt:  time.Now().UTC(),
		PageJSON: string(pageJSON),
	}

	blob, err := msgpack.Marshal(snap)
	if err != nil {
		return serr.Wrap(err, "failed to encode snapshot")
	}

	var maxSeq sql.NullInt64
	if err := db.QueryRow(
		"SELECT MAX(seq) FROM page_revisions WHERE page_id = ?", page.ID).Scan(&maxSeq); err != nil {
		return serr.Wrap(err, "failed to read revision sequence")
	}

	_, err = db.Exec(`
		INSERT INTO page_revisions (page_id, seq, snapshot, created_at)
		VALUES (?, ?, ?, ?)`,
		page.ID, maxSeq.Int64+1, blob, snap.TakenAt)
	if err != nil {
		return serr.Wrap(err, "failed to insert revision")
	}

	return nil
}

// ListRevisions returns a page's revision history, newest first.
func ListRevisions(pageID string) ([]RevisionMeta, error) {
	rows, err := db.Query(`
		SELECT seq, snapshot, created_at
		FROM page_revisions WHERE page_id = ?
		ORDER BY seq DESC`, pageID)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list revisions")
	}
	defer rows.Close()

	var metas []RevisionMeta
	for rows.Next() {
		var (
			meta RevisionMeta
			blob []byte
		)
		if err := rows.Scan(&meta.Seq, &blob, &meta.CreatedAt); err != nil {
			return nil, serr.Wrap(err, "failed to scan revision")
		}

		var snap pageSnapshot
		if err := msgpack.Unmarshal(blob, &snap); err != nil {
			return nil, serr.Wrap(err, "failed to decode snapshot", "seq", strconv.Itoa(meta.Seq))
		}
		meta.Title = snap.Title
		meta.Size = len(blob)
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// GetRevisionJSON returns the canonical JSON of one revision, or ""
// if the revision does not exist.
func GetRevisionJSON(pageID string, seq int) (string, error) {
	var blob []byte
	err := db.QueryRow(
		"SELECT snapshot FROM page_revisions WHERE page_id = ? AND seq = ?",
		pageID, seq).Scan(&blob)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", serr.Wrap(err, "failed to get revision")
	}

	var snap pageSnapshot
	if err := msgpack.Unmarshal(blob, &snap); err != nil {
		return "", serr.Wrap(err, "failed to decode snapshot")
	}
	return snap.PageJSON, nil
}

// DiffRevisions renders a line diff between two revisions of a page.
// Lines are prefixed "+ ", "- ", or "  ". Either revision missing
// yields an error.
func DiffRevisions(pageID string, fromSeq, toSeq int) (string, error) {
	fromJSON, err := GetRevisionJSON(pageID, fromSeq)
	if err != nil {
		return "", err
	}
	toJSON, err := GetRevisionJSON(pageID, toSeq)
	if err != nil {
		return "", err
	}
	if fromJSON == "" || toJSON == "" {
		return "", serr.New("revision not found")
	}

	return DiffJSON(fromJSON, toJSON)
}

// DiffJSON produces a readable line diff between two JSON documents.
// Both sides are re-indented first so formatting noise never shows up
// as a change.
func DiffJSON(fromJSON, toJSON string) (string, error) {
	from, err := indentJSON(fromJSON)
	if err != nil {
		return "", err
	}
	to, err := indentJSON(toJSON)
	if err != nil {
		return "", err
	}

	dmp := diffmatchpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(fromRunes, toRunes, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func indentJSON(raw string) (string, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return "", serr.Wrap(err, "invalid JSON in snapshot")
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", serr.Wrap(err, "failed to indent JSON")
	}
	return string(out) + "\n", nil
}
