package tracking

import "time"

// TimedLaunch measures a launch and delegates to Tracker.
type TimedLaunch struct {
	tracker   *Tracker
	startTime time.Time
}

// Start creates a new TimedLaunch.
func Start(tracker *Tracker) *TimedLaunch {
	return &TimedLaunch{
		tracker:   tracker,
		startTime: time.Now(),
	}
}

// Track records the launch with elapsed duration.
func (tl *TimedLaunch) Track(args string, debug bool, exitCode int) error {
	if tl.tracker == nil {
		return nil
	}
	ms := time.Since(tl.startTime).Milliseconds()
	return tl.tracker.Record(args, debug, exitCode, ms)
}
