package util

import (
	"fmt"
	"strings"
	"time"
)

// HumanizeDuration renders d for people, e.g. "10 minutes", "1 hour 30 minutes" or "45 seconds".
// Sub-second parts are rounded away and zero units are omitted.
func HumanizeDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d <= 0 {
		return "0 seconds"
	}

	units := []struct {
		size time.Duration
		name string
	}{
		{time.Hour, "hour"},
		{time.Minute, "minute"},
		{time.Second, "second"},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		n := int(d / u.size)
		d -= time.Duration(n) * u.size
		switch {
		case n == 1:
			parts = append(parts, "1 "+u.name)
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %ss", n, u.name))
		}
	}

	return strings.Join(parts, " ")
}
