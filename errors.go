package transitrouting

import "errors"

var (
	// ErrRouteNotFound is returned when no simple path exists between origin
	// and destination within the query's hop bound.
	ErrRouteNotFound = errors.New("no route found within hop bound")
	// ErrInvalidQuery is returned when the origin or destination is unknown
	// to the network, or the objective is unrecognised.
	ErrInvalidQuery = errors.New("invalid query")
)
