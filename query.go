package transitrouting

import (
	"time"

	"github.com/theoremus-urban-solutions/transit-routing/network"
)

// Objective selects which candidate path a search returns.
type Objective int

const (
	// Fastest returns the minimum-duration path.
	Fastest Objective = iota
	// Slowest returns the maximum-duration path.
	Slowest
	// Median returns the middle candidate by duration, taking the lower of
	// the two central candidates for an even count.
	Median
)

func (o Objective) String() string {
	switch o {
	case Fastest:
		return "fastest"
	case Slowest:
		return "slowest"
	case Median:
		return "median"
	}
	return "unknown"
}

// RouteQuery describes one search. MaxHops bounds the number of segments a
// candidate path may use; zero or negative means stationCount-1, the longest
// a simple path can be.
type RouteQuery struct {
	Origin      network.StationID
	Destination network.StationID
	Departure   time.Time
	Objective   Objective
	MaxHops     int
}
