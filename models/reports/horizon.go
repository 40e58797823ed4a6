package reports

import "time"

// DefaultDueSoonWindow is how far ahead a maintenance due date still counts
// as "due soon".
const DefaultDueSoonWindow = 7 * 24 * time.Hour

// Horizon is the instant a pass is computed at plus the due-soon look-ahead.
type Horizon struct {
	Now     time.Time
	DueSoon time.Duration
}

// At returns a Horizon for now with the default seven-day window.
func At(now time.Time) Horizon {
	return Horizon{Now: now, DueSoon: DefaultDueSoonWindow}
}

func (h Horizon) WithDueSoon(window time.Duration) Horizon {
	if window > 0 {
		h.DueSoon = window
	}
	return h
}

func (h Horizon) dueSoonLimit() time.Time {
	window := h.DueSoon
	if window <= 0 {
		window = DefaultDueSoonWindow
	}
	return h.Now.Add(window)
}

// compareInstants orders nil after every real instant.
func compareInstants(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	}
	return 0
}
