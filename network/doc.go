/*
Package network models a rail network as stations, lines and a derived
adjacency index.

A Network is built once from station and line definitions and is read-only
afterwards, so a single instance can be shared by any number of concurrent
route searches.

Build a network:

	stations := []network.Station{
	    {ID: "kings-cross", Name: "King's Cross", Location: geomath.Coordinate{Lat: 51.5308, Lon: -0.1238}},
	    {ID: "euston", Name: "Euston", Location: geomath.Coordinate{Lat: 51.5281, Lon: -0.1337}},
	}
	lines := []network.Line{
	    {ID: "northern", Name: "Northern", Stations: []network.StationID{"kings-cross", "euston"}, SpeedKMH: 35},
	}

	net, err := network.BuildNetwork(stations, lines)

Adjacent stations in a line's stopping pattern are connected in both
directions. The adjacency index stores the geodesic distance of every
segment; travel time is derived from the owning line's average speed at
query time.
*/
package network
