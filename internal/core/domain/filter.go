package domain

import "fmt"

// StatusFilter narrows the committed campaign list for display.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterPaused    StatusFilter = "paused"
	FilterCompleted StatusFilter = "completed"
)

// Filters lists every filter in display order.
var Filters = []StatusFilter{FilterAll, FilterActive, FilterPaused, FilterCompleted}

// ParseStatusFilter converts s into a StatusFilter. An empty string selects
// FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := StatusFilter(s)
	for _, known := range Filters {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Match reports whether c passes the filter.
func (f StatusFilter) Match(c Campaign) bool {
	return f == FilterAll || string(c.Status) == string(f)
}

// FilterCampaigns returns clones of the campaigns matching f in their
// original order. The result shares no memory with campaigns.
func FilterCampaigns(campaigns []Campaign, f StatusFilter) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if f.Match(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// CountByFilter returns, for every filter, how many campaigns it matches.
func CountByFilter(campaigns []Campaign) map[StatusFilter]int {
	counts := make(map[StatusFilter]int, len(Filters))
	for _, f := range Filters {
		counts[f] = 0
	}
	for _, c := range campaigns {
		counts[FilterAll]++
		switch c.Status {
		case StatusActive:
			counts[FilterActive]++
		case StatusPaused:
			counts[FilterPaused]++
		case StatusCompleted:
			counts[FilterCompleted]++
		}
	}
	return counts
}
