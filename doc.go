/*
Package transitrouting computes optimal routes between two stations on a rail
network whose costs vary with time of day and with line changes.

The engine supports three objectives over simple paths (no station visited
twice) bounded by a maximum hop count:

  - Fastest: minimum total duration, found by a memoized recursive search.
  - Slowest: maximum total duration over all enumerated candidate paths.
  - Median: the middle candidate by duration (lower of the two central
    candidates for an even count).

Every hop charges the wait time for the departure station's time band, a
transfer penalty when the line changes, and the geodesic travel time of the
segment, in that order.

# Basic Usage

	net, err := network.BuildNetwork(stations, lines)
	if err != nil {
	    log.Fatal().Err(err).Msg("bad network")
	}

	engine := transitrouting.NewEngine(net, costmodel.Default())
	result, err := engine.Search(transitrouting.RouteQuery{
	    Origin:      "kings-cross",
	    Destination: "victoria",
	    Departure:   time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
	    Objective:   transitrouting.Fastest,
	})

The returned RouteResult lists every stop with its arrival and departure
instants and the line ridden to the next stop; it is the artifact handed to an
external renderer.

# Concurrency

Network and Model are read-only after construction, and each Search owns its
memoization table and visited set, so a single Engine may serve concurrent
searches.
*/
package transitrouting
