package view

import (
	"fmt"
	"time"
)

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Ago describes t relative to now in the coarsest sensible unit. Future
// times are described as "in ...".
func Ago(t, now time.Time) string {
	d := now.Sub(t)

	suffix := " ago"
	prefix := ""

	if d < 0 {
		d = -d
		suffix = ""
		prefix = "in "
	}

	var amount string

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		amount = plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		amount = plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		amount = plural(int(d/(24*time.Hour)), "day")
	default:
		return FormatDate(t)
	}

	return prefix + amount + suffix
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
