package predictionio

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the textual form of eventTime: ISO-8601 with milliseconds
// and a numeric offset, "Z" for UTC. Example: 2004-12-13T21:39:45.618-08:00.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// parseLayouts are tried in order by ParseTime.
var parseLayouts = []string{
	TimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
}

// FormatTime renders t in TimeLayout, keeping t's offset.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a timestamp written by FormatTime. RFC 3339 timestamps
// with any fractional precision and offsets without a colon are accepted too.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event time %q", s)
}

// jsonTime adapts time.Time to TimeLayout for JSON.
type jsonTime time.Time

func (t jsonTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatTime(time.Time(t)))
}

func (t *jsonTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("event time must be a string: %w", err)
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = jsonTime(parsed)
	return nil
}
