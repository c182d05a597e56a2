package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-routing/geomath"
)

var (
	// ErrDuplicateStation is returned when two stations share an identifier.
	ErrDuplicateStation = errors.New("duplicate station id")
	// ErrDuplicateLine is returned when two lines share an identifier.
	ErrDuplicateLine = errors.New("duplicate line id")
	// ErrUnknownStation is returned when a line references a station that is
	// not part of the station set.
	ErrUnknownStation = errors.New("unknown station in line")
	// ErrInvalidCoordinate is returned when a station location is outside the
	// valid latitude/longitude range.
	ErrInvalidCoordinate = errors.New("invalid station coordinate")
)

// StationID uniquely identifies a station.
type StationID string

// LineID uniquely identifies a line.
type LineID string

// Station is a stop on the network. Lines is derived during BuildNetwork and
// lists the lines serving the station; any value supplied by the caller is
// overwritten.
type Station struct {
	ID       StationID
	Name     string
	Location geomath.Coordinate
	Lines    []LineID
}

// Line is an ordered stopping pattern with an average operating speed.
// Consecutive stations in the pattern are directly connected segments.
type Line struct {
	ID       LineID
	Name     string
	Stations []StationID
	SpeedKMH float64
}

// Edge is one directed entry of the adjacency index. DistanceKM is the
// geodesic distance of the segment.
type Edge struct {
	To         StationID
	Line       LineID
	DistanceKM float64
}

// Network is the immutable station/line graph.
type Network struct {
	stations  map[StationID]Station
	lines     map[LineID]Line
	adjacency map[StationID][]Edge
}

// BuildNetwork validates the station and line definitions and derives the
// adjacency index. Segments are undirected: each consecutive station pair in
// a line's pattern produces an edge in both directions.
func BuildNetwork(stations []Station, lines []Line) (*Network, error) {
	n := &Network{
		stations:  make(map[StationID]Station, len(stations)),
		lines:     make(map[LineID]Line, len(lines)),
		adjacency: make(map[StationID][]Edge, len(stations)),
	}

	for _, s := range stations {
		if _, ok := n.stations[s.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStation, s.ID)
		}
		if !s.Location.Valid() {
			return nil, fmt.Errorf("%w: station %s at (%f, %f)", ErrInvalidCoordinate, s.ID, s.Location.Lat, s.Location.Lon)
		}
		s.Lines = nil
		n.stations[s.ID] = s
	}

	serving := make(map[StationID]map[LineID]struct{})
	for _, l := range lines {
		if _, ok := n.lines[l.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLine, l.ID)
		}
		for _, sid := range l.Stations {
			if _, ok := n.stations[sid]; !ok {
				return nil, fmt.Errorf("%w: line %s references %s", ErrUnknownStation, l.ID, sid)
			}
			if serving[sid] == nil {
				serving[sid] = make(map[LineID]struct{})
			}
			serving[sid][l.ID] = struct{}{}
		}
		n.lines[l.ID] = l

		for i := 0; i+1 < len(l.Stations); i++ {
			a := l.Stations[i]
			b := l.Stations[i+1]
			d := geomath.DistanceKM(n.stations[a].Location, n.stations[b].Location)
			n.adjacency[a] = append(n.adjacency[a], Edge{To: b, Line: l.ID, DistanceKM: d})
			n.adjacency[b] = append(n.adjacency[b], Edge{To: a, Line: l.ID, DistanceKM: d})
		}
	}

	for sid, set := range serving {
		s := n.stations[sid]
		for lid := range set {
			s.Lines = append(s.Lines, lid)
		}
		sort.Slice(s.Lines, func(i, j int) bool { return s.Lines[i] < s.Lines[j] })
		n.stations[sid] = s
	}

	// Deterministic neighbour order keeps searches reproducible.
	for sid := range n.adjacency {
		edges := n.adjacency[sid]
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].To != edges[j].To {
				return edges[i].To < edges[j].To
			}
			return edges[i].Line < edges[j].Line
		})
	}

	log.Debug().
		Int("stations", len(n.stations)).
		Int("lines", len(n.lines)).
		Msg("built network adjacency index")

	return n, nil
}

// GetStation returns the station for an id.
func (n *Network) GetStation(id StationID) (Station, bool) {
	s, ok := n.stations[id]
	return s, ok
}

// HasStation reports whether the station exists.
func (n *Network) HasStation(id StationID) bool {
	_, ok := n.stations[id]
	return ok
}

// GetLine returns the line for an id.
func (n *Network) GetLine(id LineID) (Line, bool) {
	l, ok := n.lines[id]
	return l, ok
}

// GetEdges returns the adjacency entries for a station, sorted by
// (neighbour, line). Callers must not mutate the returned slice.
func (n *Network) GetEdges(id StationID) []Edge {
	return n.adjacency[id]
}

// NumStations returns the number of stations in the network.
func (n *Network) NumStations() int { return len(n.stations) }

// LineIDs returns all line identifiers in lexical order.
func (n *Network) LineIDs() []LineID {
	ids := make([]LineID, 0, len(n.lines))
	for id := range n.lines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
