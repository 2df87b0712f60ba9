package domain

import (
	"fmt"
	"strings"
	"time"
)

// ParseClock accepts HH:MM or HH:MM:SS and returns the canonical HH:MM:SS form
// stored in TIME columns.
func ParseClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", raw)
}
