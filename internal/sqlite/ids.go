package sqlite

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ID prefixes per entity type. Notes are the exception: their IDs derive from
// the creation timestamp instead of a sequence.
const (
	projectIDPrefix = "p"
	taskIDPrefix    = "task"
	tagIDPrefix     = "t"
	linkIDPrefix    = "ln"
)

// noteIDLayout formats a creation instant into a note ID, second precision.
// Two notes created within the same second collide; accepted for a
// single-user interactive tool.
const noteIDLayout = "20060102T150405"

// nextSequentialID scans every ID in table, extracts the three-digit numeric
// suffix of IDs matching "<prefix>-NNN", and returns "<prefix>-NNN+1"
// zero-padded. IDs that do not match the pattern are ignored; an empty table
// yields "<prefix>-001". Max-based, not count-based, so gaps left by purges
// are never reused behind the newest ID.
func (s *Store) nextSequentialID(table, prefix string) (string, error) {
	rows, err := s.db.Query("SELECT id FROM " + table)
	if err != nil {
		return "", fmt.Errorf("scanning %s ids: %w", table, err)
	}
	defer rows.Close()

	re := regexp.MustCompile(regexp.QuoteMeta(prefix) + `-(\d{3})`)

	maxNum := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning %s id: %w", table, err)
		}
		m := re.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating %s ids: %w", table, err)
	}

	return fmt.Sprintf("%s-%03d", prefix, maxNum+1), nil
}

// noteID derives a note ID from the given creation instant.
func noteID(t time.Time) string {
	return t.UTC().Format(noteIDLayout)
}
