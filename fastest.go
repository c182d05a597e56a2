package transitrouting

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-routing/network"
)

// memoKey identifies a fastest-path subproblem. The key deliberately excludes
// the visited set: keying on the full set would make every branch a distinct
// subproblem and reduce the memo to a no-op. The arrival instant is quantized
// to memoBucket-sized buckets instead of being used exactly.
type memoKey struct {
	station network.StationID
	line    network.LineID
	bucket  int64
}

// leg is one memoized suffix step: ride line to the next station.
type leg struct {
	to   network.StationID
	line network.LineID
}

// memoEntry caches the best known suffix from a station to the destination.
// budget records the hop budget the entry was computed under, so a cached
// failure is only trusted when the current budget is no larger.
type memoEntry struct {
	found  bool
	suffix []leg
	budget int
}

type fastestSearch struct {
	engine  *Engine
	dest    network.StationID
	memo    map[memoKey]memoEntry
	onStack map[network.StationID]bool
}

// searchFastest runs the memoized recursive minimum-duration search. Cycle
// pruning checks only the current call stack, and memo reuse is guarded by
// the suffix fitting the remaining hop budget and staying disjoint from the
// stack, so the returned path is always simple. Bucket quantization of the
// arrival instant is the accepted approximation: a cached suffix may have
// been optimal for a slightly different instant within the same bucket.
func (e *Engine) searchFastest(q RouteQuery, maxHops int) (*RouteResult, error) {
	s := &fastestSearch{
		engine:  e,
		dest:    q.Destination,
		memo:    make(map[memoKey]memoEntry),
		onStack: make(map[network.StationID]bool),
	}

	suffix, duration, found, err := s.from(q.Origin, "", q.Departure, maxHops)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s to %s within %d hops", ErrRouteNotFound, q.Origin, q.Destination, maxHops)
	}

	stations := make([]network.StationID, 0, len(suffix)+1)
	lines := make([]network.LineID, 0, len(suffix))
	stations = append(stations, q.Origin)
	for _, l := range suffix {
		stations = append(stations, l.to)
		lines = append(lines, l.line)
	}

	log.Debug().
		Str("origin", string(q.Origin)).
		Str("destination", string(q.Destination)).
		Str("objective", q.Objective.String()).
		Int("hops", len(lines)).
		Dur("duration", duration).
		Msg("route selected")

	return e.evaluatePath(stations, lines, q.Departure)
}

// from returns the fastest suffix from cur to the destination using at most
// hopsLeft segments, having arrived on prevLine at the given instant.
func (s *fastestSearch) from(cur network.StationID, prevLine network.LineID, at time.Time, hopsLeft int) ([]leg, time.Duration, bool, error) {
	if cur == s.dest {
		return nil, 0, true, nil
	}
	if hopsLeft == 0 {
		return nil, 0, false, nil
	}

	key := memoKey{station: cur, line: prevLine, bucket: at.Unix() / int64(memoBucket/time.Second)}
	if entry, ok := s.memo[key]; ok {
		if entry.found && len(entry.suffix) <= hopsLeft && !s.touchesStack(entry.suffix) {
			// Replay at the exact instant so the reported duration is not
			// subject to bucket rounding.
			d, err := s.replay(cur, prevLine, at, entry.suffix)
			if err != nil {
				return nil, 0, false, err
			}
			return entry.suffix, d, true, nil
		}
		if !entry.found && entry.budget >= hopsLeft {
			return nil, 0, false, nil
		}
	}

	s.onStack[cur] = true
	defer delete(s.onStack, cur)

	var best []leg
	var bestDuration time.Duration
	found := false

	for _, edge := range s.engine.net.GetEdges(cur) {
		if s.onStack[edge.To] {
			continue
		}
		wait, penalty, travel, err := s.engine.legCost(at, cur, prevLine, edge)
		if err != nil {
			return nil, 0, false, err
		}
		legDuration := wait + penalty + travel

		subSuffix, subDuration, ok, err := s.from(edge.To, edge.Line, at.Add(legDuration), hopsLeft-1)
		if err != nil {
			return nil, 0, false, err
		}
		if !ok {
			continue
		}

		total := legDuration + subDuration
		if !found || total < bestDuration {
			found = true
			bestDuration = total
			best = make([]leg, 0, len(subSuffix)+1)
			best = append(best, leg{to: edge.To, line: edge.Line})
			best = append(best, subSuffix...)
		}
	}

	s.memo[key] = memoEntry{found: found, suffix: best, budget: hopsLeft}
	return best, bestDuration, found, nil
}

func (s *fastestSearch) touchesStack(suffix []leg) bool {
	for _, l := range suffix {
		if s.onStack[l.to] {
			return true
		}
	}
	return false
}

// replay accumulates the exact cost of riding a suffix from cur at the given
// instant.
func (s *fastestSearch) replay(cur network.StationID, prevLine network.LineID, at time.Time, suffix []leg) (time.Duration, error) {
	var total time.Duration
	for _, l := range suffix {
		edge, ok := s.engine.findEdge(cur, l.to, l.line)
		if !ok {
			return 0, fmt.Errorf("%w: no segment %s-%s on line %s", ErrInvalidQuery, cur, l.to, l.line)
		}
		wait, penalty, travel, err := s.engine.legCost(at, cur, prevLine, edge)
		if err != nil {
			return 0, err
		}
		step := wait + penalty + travel
		total += step
		at = at.Add(step)
		cur = l.to
		prevLine = l.line
	}
	return total, nil
}
