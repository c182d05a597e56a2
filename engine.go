package transitrouting

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-routing/costmodel"
	"github.com/theoremus-urban-solutions/transit-routing/geomath"
	"github.com/theoremus-urban-solutions/transit-routing/network"
)

// memoBucket quantizes arrival instants for the fastest-path memo key. Wait
// times change only at band boundaries, so minute-level buckets keep the memo
// effective without materially distorting results.
const memoBucket = time.Minute

// Engine runs route searches against a fixed network and cost model. It holds
// no per-search state and is safe for concurrent use.
type Engine struct {
	net   *network.Network
	costs *costmodel.Model
}

// NewEngine creates an engine over a built network and cost model.
func NewEngine(net *network.Network, costs *costmodel.Model) *Engine {
	return &Engine{net: net, costs: costs}
}

// Search produces the route satisfying the query's objective, restricted to
// simple paths of at most MaxHops segments. It fails as a whole or succeeds
// as a whole; no partial result is ever returned.
func (e *Engine) Search(q RouteQuery) (*RouteResult, error) {
	if !e.net.HasStation(q.Origin) {
		return nil, fmt.Errorf("%w: unknown origin %s", ErrInvalidQuery, q.Origin)
	}
	if !e.net.HasStation(q.Destination) {
		return nil, fmt.Errorf("%w: unknown destination %s", ErrInvalidQuery, q.Destination)
	}
	// Fail fast on bad line data so the error cannot surface mid-recursion.
	for _, id := range e.net.LineIDs() {
		l, _ := e.net.GetLine(id)
		if l.SpeedKMH <= 0 {
			return nil, fmt.Errorf("line %s: %w", id, geomath.ErrInvalidSpeed)
		}
	}

	if q.Origin == q.Destination {
		return e.zeroLengthResult(q), nil
	}

	maxHops := q.MaxHops
	if maxHops <= 0 {
		maxHops = e.net.NumStations() - 1
	}

	switch q.Objective {
	case Fastest:
		return e.searchFastest(q, maxHops)
	case Slowest, Median:
		return e.searchByEnumeration(q, maxHops)
	default:
		return nil, fmt.Errorf("%w: unknown objective %d", ErrInvalidQuery, int(q.Objective))
	}
}

func (e *Engine) searchByEnumeration(q RouteQuery, maxHops int) (*RouteResult, error) {
	cands, err := e.enumeratePaths(q.Origin, q.Destination, q.Departure, maxHops)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: %s to %s within %d hops", ErrRouteNotFound, q.Origin, q.Destination, maxHops)
	}

	var winner candidate
	if q.Objective == Slowest {
		winner = selectSlowest(cands)
	} else {
		winner = selectMedian(cands)
	}

	log.Debug().
		Str("origin", string(q.Origin)).
		Str("destination", string(q.Destination)).
		Str("objective", q.Objective.String()).
		Int("candidates", len(cands)).
		Dur("duration", winner.duration).
		Msg("route selected")

	return e.evaluatePath(winner.stations, winner.lines, q.Departure)
}

// legCost returns the wait, transfer penalty and travel duration for boarding
// edge at the given instant, having arrived on prevLine (empty before the
// first boarding). The caller applies them in that order.
func (e *Engine) legCost(at time.Time, station network.StationID, prevLine network.LineID, edge network.Edge) (wait, penalty, travel time.Duration, err error) {
	wait = e.costs.WaitTime(at, station)
	penalty = e.costs.TransferPenalty(prevLine, edge.Line)
	line, ok := e.net.GetLine(edge.Line)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: unknown line %s", ErrInvalidQuery, edge.Line)
	}
	travel, err = geomath.TravelTime(edge.DistanceKM, line.SpeedKMH)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("line %s: %w", edge.Line, err)
	}
	return wait, penalty, travel, nil
}

func (e *Engine) findEdge(from, to network.StationID, line network.LineID) (network.Edge, bool) {
	for _, edge := range e.net.GetEdges(from) {
		if edge.To == to && edge.Line == line {
			return edge, true
		}
	}
	return network.Edge{}, false
}
