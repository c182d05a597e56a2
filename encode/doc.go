// Package encode serializes route results into the document an external
// renderer consumes: ordered stop points with coordinates and arrival
// instants, plus the line used for each segment.
//
// The package only builds the artifact; map drawing, file output and any
// presentation concerns belong to the consumer.
package encode
