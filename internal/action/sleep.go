package action

import (
	"fmt"
	"time"

	"github.com/daryltucker/echoer/internal/model"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour

	// MaxSleepSeconds is the longest accepted waiting interval: one day.
	MaxSleepSeconds = day
)

// Sleep suspends the single flow of control for a fixed interval.
type Sleep struct {
	Duration time.Duration
}

// NewSleep validates seconds against [0, MaxSleepSeconds].
func NewSleep(seconds int) (*Sleep, error) {
	if seconds < 0 {
		return nil, &model.ValidationError{
			Flag:   FlagWait,
			Value:  fmt.Sprint(seconds),
			Reason: fmt.Sprintf("%d is an invalid waiting interval.", seconds),
		}
	}
	if seconds > MaxSleepSeconds {
		return nil, &model.ValidationError{
			Flag:   FlagWait,
			Value:  fmt.Sprint(seconds),
			Reason: fmt.Sprintf("%d is more than maximum waiting interval (%d).", seconds, MaxSleepSeconds),
		}
	}
	return &Sleep{Duration: time.Duration(seconds) * time.Second}, nil
}

func (s *Sleep) Run(rt *model.Runtime) error {
	rt.Sleep(s.Duration)
	return nil
}

func (s *Sleep) Describe() string {
	return fmt.Sprintf("Wait for %s.", formatInterval(s.Duration))
}

// formatInterval renders d as hh:mm:ss, prefixed with "<days>." once it
// reaches a full day.
func formatInterval(d time.Duration) string {
	total := int(d / time.Second)
	days, rem := total/day, total%day
	h, m, s := rem/hour, rem%hour/minute, rem%minute
	if days > 0 {
		return fmt.Sprintf("%d.%02d:%02d:%02d", days, h, m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
