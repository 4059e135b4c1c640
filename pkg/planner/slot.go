package planner

// Interval is a half-open [Start, End) range in minutes from midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not count.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

// FindFirstSlot returns the earliest interval of durationMinutes inside the
// planning window that overlaps none of busy, scanning candidate starts at
// the configured step. A nil result means the day is full; that is a normal
// outcome, not an error.
func FindFirstSlot(cfg Config, busy []Interval, durationMinutes int) *Interval {
	if durationMinutes <= 0 {
		return nil
	}
	for start := cfg.WindowStart(); start+durationMinutes <= cfg.WindowEnd(); start += cfg.StepMinutes {
		cand := Interval{Start: start, End: start + durationMinutes}
		free := true
		for _, b := range busy {
			if cand.Overlaps(b) {
				free = false
				break
			}
		}
		if free {
			return &cand
		}
	}
	return nil
}
