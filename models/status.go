package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// StatusCheck is a client heartbeat record.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateStatusCheck records a heartbeat for the named client.
func CreateStatusCheck(clientName string) (*StatusCheck, error) {
	sc := &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	_, err := db.Exec(
		"INSERT INTO status_checks (id, client_name, created_at) VALUES (?, ?, ?)",
		sc.ID, sc.ClientName, sc.Timestamp)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create status check")
	}
	return sc, nil
}

// ListStatusChecks returns recent status checks, newest first.
func ListStatusChecks(limit int) ([]StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}

	rows, err := db.Query(
		"SELECT id, client_name, created_at FROM status_checks ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list status checks")
	}
	defer rows.Close()

	var checks []StatusCheck
	for rows.Next() {
		var sc StatusCheck
		if err := rows.Scan(&sc.ID, &sc.ClientName, &sc.Timestamp); err != nil {
			return nil, serr.Wrap(err, "failed to scan status check")
		}
		checks = append(checks, sc)
	}
	return checks, rows.Err()
}
