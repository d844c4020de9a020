package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"interview-tracker/pkg/datetime"
)

// DateTime is a time.Time that unmarshals from any datetime.Parse layout.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &datetime.ParseError{Value: string(data)}
	}
	t, err := datetime.Parse(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}
