package repository

import (
	"database/sql"
	"time"
)

const timeLayout = time.RFC3339Nano

// nullableString stores "" as SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func stringFromNull(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
