package encode

import (
	"encoding/json"
	"time"

	transitrouting "github.com/theoremus-urban-solutions/transit-routing"
)

// StopPoint is one rendered stop: where it is and when the route arrives and
// leaves.
type StopPoint struct {
	Station   string  `json:"station"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Arrival   string  `json:"arrival"`
	Departure string  `json:"departure"`
}

// Segment is one rendered connection between consecutive stops.
type Segment struct {
	From string `json:"from"`
	To   string `json:"to"`
	Line string `json:"line"`
}

// Document is the complete hand-off artifact for a renderer.
type Document struct {
	Stops        []StopPoint `json:"stops"`
	Segments     []Segment   `json:"segments"`
	TotalMinutes float64     `json:"totalMinutes"`
	Transfers    int         `json:"transfers"`
}

// Build converts a route result into a renderer document.
func Build(res *transitrouting.RouteResult) Document {
	doc := Document{
		Stops:        make([]StopPoint, 0, len(res.Stops)),
		Segments:     make([]Segment, 0),
		TotalMinutes: res.TotalDuration.Minutes(),
		Transfers:    res.Transfers,
	}
	for i, stop := range res.Stops {
		doc.Stops = append(doc.Stops, StopPoint{
			Station:   string(stop.Station),
			Name:      stop.Name,
			Latitude:  stop.Location.Lat,
			Longitude: stop.Location.Lon,
			Arrival:   stop.Arrival.UTC().Format(time.RFC3339),
			Departure: stop.Departure.UTC().Format(time.RFC3339),
		})
		if i+1 < len(res.Stops) {
			doc.Segments = append(doc.Segments, Segment{
				From: string(stop.Station),
				To:   string(res.Stops[i+1].Station),
				Line: string(stop.Line),
			})
		}
	}
	return doc
}

// BuildJSON serializes a route result document to JSON.
func BuildJSON(res *transitrouting.RouteResult) []byte {
	b, _ := json.Marshal(Build(res))
	return b
}
