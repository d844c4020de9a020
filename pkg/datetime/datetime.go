package datetime

import (
	"fmt"
	"time"
)

// Accepted inputs, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseError reports a value that none of the accepted layouts could parse.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("must be a valid date, got %q", e.Value)
}

// Parse accepts RFC 3339 timestamps and the looser forms clients send
// ("2023-10-01", "2023-10-01 09:30:00"). Values without a zone are UTC.
func Parse(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Value: value}
}
