package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day. The zero value doubles as "not punched":
// the punch sheets this system replaced kept empty cells and midnight
// indistinguishable, and the calculation rules below depend on that.
type Clock struct {
	Hour   int `json:"h"`
	Minute int `json:"m"`
}

// ParseClock reads an "HH:MM" value. Empty or malformed components collapse
// to zero rather than erroring.
func ParseClock(raw string) Clock {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Clock{}
	}
	parts := strings.SplitN(raw, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute := 0
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return Clock{Hour: hour, Minute: minute}
}

// Minutes returns the offset from midnight in minutes.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) IsZero() bool {
	return c.Hour == 0 && c.Minute == 0
}

func (c Clock) String() string {
	if c.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
