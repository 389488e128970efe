package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// ParseTimestamp accepts RFC3339 timestamps, with or without fractional
// seconds, and returns them in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// NormalizeIATA upper-cases and trims an airport code.
func NormalizeIATA(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
