package scheduler

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

// clockPattern accepts 24-hour "HH:MM" values, with or without a leading zero
// on the hour.
var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock parses an "HH:MM" time-of-day string.
func ParseClock(value string) (hour, minute int, err error) {
	if !clockPattern.MatchString(value) {
		return 0, 0, domain.WrapError(
			domain.ErrCodeInvalid,
			fmt.Sprintf("time of day %q does not match HH:MM", value),
			domain.ErrInvalidWorkdayConfig,
		)
	}
	// The pattern guarantees a single ':' with numeric fields on both sides.
	fmt.Sscanf(value, "%d:%d", &hour, &minute)
	return hour, minute, nil
}

// Window is a resolved workday interval on a concrete date.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ValidateWorkdayConfig checks a configuration without resolving it against a
// date: both clocks must parse, the start must precede the end, and the break
// must not be negative. Used by the settings layer before persisting.
func ValidateWorkdayConfig(cfg domain.WorkdayConfig) error {
	startH, startM, err := ParseClock(cfg.StartTime)
	if err != nil {
		return err
	}
	endH, endM, err := ParseClock(cfg.EndTime)
	if err != nil {
		return err
	}
	if startH*60+startM >= endH*60+endM {
		return domain.WrapError(
			domain.ErrCodeInvalid,
			fmt.Sprintf("workday start %q must precede end %q", cfg.StartTime, cfg.EndTime),
			domain.ErrInvalidWorkdayConfig,
		)
	}
	if cfg.BreakMinutes < 0 {
		return domain.WrapError(
			domain.ErrCodeInvalid,
			fmt.Sprintf("break duration %d minutes is negative", cfg.BreakMinutes),
			domain.ErrInvalidWorkdayConfig,
		)
	}
	return nil
}

// ResolveWindow combines the configured clocks with the reference date to
// produce absolute start and end timestamps in the reference location.
// Workdays wrapping past midnight are not supported.
func ResolveWindow(cfg domain.WorkdayConfig, referenceDate time.Time) (Window, error) {
	if err := ValidateWorkdayConfig(cfg); err != nil {
		return Window{}, err
	}

	startH, startM, _ := ParseClock(cfg.StartTime)
	endH, endM, _ := ParseClock(cfg.EndTime)

	year, month, day := referenceDate.Date()
	loc := referenceDate.Location()
	return Window{
		Start: time.Date(year, month, day, startH, startM, 0, 0, loc),
		End:   time.Date(year, month, day, endH, endM, 0, 0, loc),
	}, nil
}
