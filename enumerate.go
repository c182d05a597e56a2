package transitrouting

import (
	"sort"
	"time"

	"github.com/theoremus-urban-solutions/transit-routing/network"
)

// candidate is one fully evaluated simple path from origin to destination.
type candidate struct {
	stations  []network.StationID
	lines     []network.LineID
	duration  time.Duration
	transfers int
}

// enumeratePaths collects every simple path from origin to destination using
// at most maxHops segments, each fully evaluated hop by hop from the
// departure instant. No cross-branch memoization happens here: the slowest
// and median objectives need the complete candidate distribution.
func (e *Engine) enumeratePaths(origin, dest network.StationID, departure time.Time, maxHops int) ([]candidate, error) {
	en := &enumerator{
		engine:   e,
		dest:     dest,
		maxHops:  maxHops,
		visited:  make(map[network.StationID]bool),
		stations: []network.StationID{origin},
	}
	if err := en.walk(origin, "", departure, 0, 0); err != nil {
		return nil, err
	}
	return en.out, nil
}

type enumerator struct {
	engine   *Engine
	dest     network.StationID
	maxHops  int
	visited  map[network.StationID]bool
	stations []network.StationID
	lines    []network.LineID
	out      []candidate
}

func (en *enumerator) walk(cur network.StationID, prevLine network.LineID, at time.Time, elapsed time.Duration, transfers int) error {
	if cur == en.dest {
		en.out = append(en.out, candidate{
			stations:  append([]network.StationID(nil), en.stations...),
			lines:     append([]network.LineID(nil), en.lines...),
			duration:  elapsed,
			transfers: transfers,
		})
		return nil
	}
	if len(en.lines) == en.maxHops {
		return nil
	}

	en.visited[cur] = true
	defer delete(en.visited, cur)

	for _, edge := range en.engine.net.GetEdges(cur) {
		if en.visited[edge.To] {
			continue
		}
		wait, penalty, travel, err := en.engine.legCost(at, cur, prevLine, edge)
		if err != nil {
			return err
		}
		hopTransfers := transfers
		if prevLine != "" && prevLine != edge.Line {
			hopTransfers++
		}
		leg := wait + penalty + travel

		en.stations = append(en.stations, edge.To)
		en.lines = append(en.lines, edge.Line)
		err = en.walk(edge.To, edge.Line, at.Add(leg), elapsed+leg, hopTransfers)
		en.stations = en.stations[:len(en.stations)-1]
		en.lines = en.lines[:len(en.lines)-1]
		if err != nil {
			return err
		}
	}
	return nil
}

// pathLess orders candidates by duration, then fewest transfers, then the
// lexicographically smallest station sequence, then line sequence. The full
// ordering makes every selection reproducible.
func pathLess(a, b candidate) bool {
	if a.duration != b.duration {
		return a.duration < b.duration
	}
	if a.transfers != b.transfers {
		return a.transfers < b.transfers
	}
	if c := compareIDs(a.stations, b.stations); c != 0 {
		return c < 0
	}
	return compareLines(a.lines, b.lines) < 0
}

func compareIDs(a, b []network.StationID) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

func compareLines(a, b []network.LineID) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// selectSlowest picks the maximum-duration candidate; ties go to the fewest
// transfers, then the lexicographically smallest station sequence.
func selectSlowest(cands []candidate) candidate {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.duration != b.duration {
			return a.duration > b.duration
		}
		if a.transfers != b.transfers {
			return a.transfers < b.transfers
		}
		if c := compareIDs(a.stations, b.stations); c != 0 {
			return c < 0
		}
		return compareLines(a.lines, b.lines) < 0
	})
	return cands[0]
}

// selectMedian sorts candidates ascending and picks index (n-1)/2, the lower
// of the two central candidates for an even count.
func selectMedian(cands []candidate) candidate {
	sort.Slice(cands, func(i, j int) bool { return pathLess(cands[i], cands[j]) })
	return cands[(len(cands)-1)/2]
}
