package tools

import (
	"context"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// TimeName is the agent-facing name of the clock tool.
const TimeName = "Time"

// TimeLayout renders times like "2026-03-01 07:05 PM".
const TimeLayout = "2006-01-02 03:04 PM"

var _ ports.Tool = (*Clock)(nil)

// Clock reports the current time in a fixed-offset zone. The zone never
// observes daylight saving.
type Clock struct {
	zone *time.Location
	now  ports.Clock
}

// NewClock creates the tool for a zone offsetHours from UTC. A nil now uses
// time.Now.
func NewClock(zoneName string, offsetHours int, now ports.Clock) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{
		zone: time.FixedZone(zoneName, offsetHours*int(time.Hour/time.Second)),
		now:  now,
	}
}

func (c *Clock) Name() string { return TimeName }

func (c *Clock) Description() string {
	return "Provides the current time in " + c.zone.String() + " timezone."
}

// Args is empty: the tool takes no input.
func (c *Clock) Args() map[string]any { return nil }

// Run ignores input and returns the formatted current time.
func (c *Clock) Run(_ context.Context, _ string) (string, error) {
	return c.Now(), nil
}

// Now returns the current time in the tool's zone, formatted with TimeLayout.
func (c *Clock) Now() string {
	return c.now().In(c.zone).Format(TimeLayout)
}
