package order

// Stats are order counts per status. Active is the sum of the statuses the
// kitchen still works on.
type Stats struct {
	Received  int `json:"received"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Active    int `json:"active"`
	Total     int `json:"total"`
}

// NewStats folds per-status counts. Unknown statuses are ignored.
func NewStats(counts map[Status]int) Stats {
	s := Stats{
		Received:  counts[Received],
		Preparing: counts[Preparing],
		Ready:     counts[Ready],
		Completed: counts[Completed],
		Cancelled: counts[Cancelled],
	}
	s.Active = s.Received + s.Preparing + s.Ready
	s.Total = s.Active + s.Completed + s.Cancelled
	return s
}

// Count returns the number of orders in status.
func (s Stats) Count(status Status) int {
	switch status {
	case Received:
		return s.Received
	case Preparing:
		return s.Preparing
	case Ready:
		return s.Ready
	case Completed:
		return s.Completed
	case Cancelled:
		return s.Cancelled
	default:
		return 0
	}
}
