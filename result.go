package transitrouting

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/transit-routing/geomath"
	"github.com/theoremus-urban-solutions/transit-routing/network"
)

// Stop is one entry of a route. Departure is the instant the passenger boards
// the next segment: arrival plus wait plus any transfer penalty. Line is the
// line ridden to the next stop and is empty on the final stop.
type Stop struct {
	Station   network.StationID
	Name      string
	Location  geomath.Coordinate
	Arrival   time.Time
	Departure time.Time
	Line      network.LineID
}

// RouteResult is the immutable outcome of a search: the ordered stops with
// their instants, the total duration from query departure to final arrival,
// and the number of line changes.
type RouteResult struct {
	Stops         []Stop
	TotalDuration time.Duration
	Transfers     int
}

// evaluatePath replays a station/line sequence from the departure instant,
// charging wait, transfer penalty and travel in that order at every boarding.
// stations holds the full stop sequence including the origin; lines holds one
// entry per segment.
func (e *Engine) evaluatePath(stations []network.StationID, lines []network.LineID, departure time.Time) (*RouteResult, error) {
	stops := make([]Stop, len(stations))
	at := departure
	transfers := 0
	var prevLine network.LineID

	for i, sid := range stations {
		st, ok := e.net.GetStation(sid)
		if !ok {
			return nil, fmt.Errorf("%w: unknown station %s", ErrInvalidQuery, sid)
		}
		stop := Stop{
			Station:   sid,
			Name:      st.Name,
			Location:  st.Location,
			Arrival:   at,
			Departure: at,
		}
		if i < len(lines) {
			edge, ok := e.findEdge(sid, stations[i+1], lines[i])
			if !ok {
				return nil, fmt.Errorf("%w: no segment %s-%s on line %s", ErrInvalidQuery, sid, stations[i+1], lines[i])
			}
			wait, penalty, travel, err := e.legCost(at, sid, prevLine, edge)
			if err != nil {
				return nil, err
			}
			if prevLine != "" && prevLine != lines[i] {
				transfers++
			}
			stop.Departure = at.Add(wait + penalty)
			stop.Line = lines[i]
			at = stop.Departure.Add(travel)
			prevLine = lines[i]
		}
		stops[i] = stop
	}

	return &RouteResult{
		Stops:         stops,
		TotalDuration: at.Sub(departure),
		Transfers:     transfers,
	}, nil
}

func (e *Engine) zeroLengthResult(q RouteQuery) *RouteResult {
	st, _ := e.net.GetStation(q.Origin)
	return &RouteResult{
		Stops: []Stop{{
			Station:   q.Origin,
			Name:      st.Name,
			Location:  st.Location,
			Arrival:   q.Departure,
			Departure: q.Departure,
		}},
	}
}
