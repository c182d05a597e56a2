package transitrouting

import (
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/transit-routing/costmodel"
	"github.com/theoremus-urban-solutions/transit-routing/network"
)

func TestFastestRespectsHopBound(t *testing.T) {
	engine := NewEngine(threeWayNetwork(t), costmodel.Default())

	res, err := engine.Search(RouteQuery{
		Origin: "x", Destination: "z", Departure: midday(), Objective: Fastest, MaxHops: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(pathOf(res), []network.StationID{"x", "z"}) {
		t.Errorf("expected direct path, got %v", pathOf(res))
	}
}

func TestFastestReturnsSimplePath(t *testing.T) {
	engine := NewEngine(londonNetwork(t), costmodel.Default())

	res, err := engine.Search(RouteQuery{
		Origin: "paddington", Destination: "victoria", Departure: midday(), Objective: Fastest,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[network.StationID]bool{}
	for _, stop := range res.Stops {
		if seen[stop.Station] {
			t.Errorf("path revisits %s: %v", stop.Station, pathOf(res))
		}
		seen[stop.Station] = true
	}
}

func TestFastestAgreesAcrossHopBudgets(t *testing.T) {
	// A wider budget can never make the fastest route slower.
	engine := NewEngine(londonNetwork(t), costmodel.Default())

	tight, err := engine.Search(RouteQuery{
		Origin: "kings-cross", Destination: "victoria", Departure: midday(), Objective: Fastest, MaxHops: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wide, err := engine.Search(RouteQuery{
		Origin: "kings-cross", Destination: "victoria", Departure: midday(), Objective: Fastest, MaxHops: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wide.TotalDuration > tight.TotalDuration {
		t.Errorf("expected wider budget duration %v <= %v", wide.TotalDuration, tight.TotalDuration)
	}
}
