package timeutil

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the wire and storage format for every timestamp in the API.
// Rendered in local time, no timezone field.
const Layout = "2006-01-02 15:04:05"

// dateLayout is the accepted date-only input shape for due dates.
const dateLayout = "2006-01-02"

var ErrInvalidFormat = errors.New("invalid timestamp format")

// Timestamp is a time.Time that marshals to the Layout format in JSON
// and in the database.
type Timestamp struct {
	time.Time
}

// Now returns the current time truncated to second precision.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

// String renders the timestamp in the wire format.
func (t Timestamp) String() string {
	return t.Format(Layout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	t.Time = parsed
	return nil
}

// GormDataType tells GORM to treat Timestamp columns like time.Time.
func (Timestamp) GormDataType() string {
	return "time"
}

// Value implements driver.Valuer so Timestamp can back a database column.
func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

func (t *Timestamp) scanString(s string) error {
	parsed, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		// SQLite stores time.Time values in RFC 3339.
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}
	t.Time = parsed
	return nil
}

// NormalizeDueDate parses a flexible due date input into the canonical
// wire format. Empty input means "no due date" and returns nil. Accepted
// shapes are the full Layout and a date-only form, which normalizes to
// midnight of that day.
func NormalizeDueDate(input string) (*Timestamp, error) {
	if input == "" {
		return nil, nil
	}
	if parsed, err := time.ParseInLocation(Layout, input, time.Local); err == nil {
		return &Timestamp{parsed}, nil
	}
	if parsed, err := time.ParseInLocation(dateLayout, input, time.Local); err == nil {
		return &Timestamp{parsed}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
}
