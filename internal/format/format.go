// Package format holds the pure display helpers shared by templates.
package format

import (
	"html/template"
	"strconv"
	"time"
)

// Money renders an integer amount with thousands grouping: 1234567 -> "1,234,567".
// Amounts are integer tugrik, there is no decimal part.
func Money(amount int64) string {
	if amount == 0 {
		return "0"
	}

	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Timestamps arrive from the core platform as RFC 3339 strings.
// Unparseable or empty values render as empty rather than erroring
// mid-template.

func Date(s string) string {
	t, err := parseTime(s)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func DateTime(s string) string {
	t, err := parseTime(s)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmpty
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

var errEmpty = &time.ParseError{Message: "empty time value"}

var statusTexts = map[string]string{
	"pending":       "Хүлээгдэж байна",
	"approved":      "Зөвшөөрөгдсөн",
	"rejected":      "Татгалзсан",
	"active":        "Идэвхтэй",
	"extended":      "Сунгагдсан",
	"overdue":       "Хугацаа хэтэрсэн",
	"completed":     "Дууссан",
	"not_submitted": "Илгээгээгүй",
	"blocked":       "Блоклогдсон",
}

var statusClasses = map[string]string{
	"pending":       "status-pending",
	"approved":      "status-approved",
	"rejected":      "status-rejected",
	"active":        "status-active",
	"extended":      "status-active",
	"overdue":       "status-rejected",
	"completed":     "status-done",
	"not_submitted": "status-done",
	"blocked":       "status-rejected",
}

// StatusText returns the Mongolian display label for a status value.
// Unrecognized statuses come back unchanged.
func StatusText(status string) string {
	if text, ok := statusTexts[status]; ok {
		return text
	}
	return status
}

// StatusClass returns the badge CSS class for a status value.
func StatusClass(status string) string {
	if class, ok := statusClasses[status]; ok {
		return class
	}
	return "status-done"
}

// FuncMap exposes the helpers to html/template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money":       Money,
		"date":        Date,
		"datetime":    DateTime,
		"statusText":  StatusText,
		"statusClass": StatusClass,
	}
}
