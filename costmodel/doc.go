// Package costmodel encapsulates the time-dependent cost policy of a rail
// network: how long a passenger waits before boarding at a given time of day,
// and how much a change of line costs.
//
// Both WaitTime and TransferPenalty are pure functions of their inputs, which
// the search engine relies on for memoization. The peak/off-peak policy is an
// ordered first-match rule list, so it is data rather than code and can be
// tested and replaced independently of the search engine.
package costmodel
