package costmodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/transit-routing/config"
	"github.com/theoremus-urban-solutions/transit-routing/network"
)

// ErrInvalidBand is returned when a configured band has an unparseable time
// range.
var ErrInvalidBand = errors.New("invalid time band")

const minutesPerDay = 24 * 60

// Band is one time-of-day rule. Start is inclusive and End exclusive, both in
// minutes since midnight. A band with End <= Start wraps past midnight.
type Band struct {
	Name  string
	Start int
	End   int
	Wait  time.Duration
}

// Matches reports whether the band covers the given minute of day.
func (b Band) Matches(minuteOfDay int) bool {
	if b.End <= b.Start {
		return minuteOfDay >= b.Start || minuteOfDay < b.End
	}
	return minuteOfDay >= b.Start && minuteOfDay < b.End
}

// Model maps instants to wait durations and line pairs to transfer penalties.
// A Model is immutable and safe for concurrent use.
type Model struct {
	bands           []Band
	defaultWait     time.Duration
	transferPenalty time.Duration
}

// New builds a model from an ordered band list, evaluated first-match.
func New(bands []Band, defaultWait, transferPenalty time.Duration) *Model {
	return &Model{
		bands:           append([]Band(nil), bands...),
		defaultWait:     defaultWait,
		transferPenalty: transferPenalty,
	}
}

// Default returns the standard policy: 1.5 minute waits before 11:00, 2
// minutes from 18:00, 1 minute otherwise, and a 3 minute transfer penalty.
func Default() *Model {
	return New([]Band{
		{Name: "morning", Start: 0, End: 11 * 60, Wait: 90 * time.Second},
		{Name: "evening", Start: 18 * 60, End: minutesPerDay, Wait: 2 * time.Minute},
	}, time.Minute, 3*time.Minute)
}

// FromConfig builds a model from a loaded cost-policy configuration.
func FromConfig(cfg config.CostPolicyConfig) (*Model, error) {
	bands := make([]Band, 0, len(cfg.Bands))
	for _, bc := range cfg.Bands {
		start, err := minutesOfDay(bc.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: band %s start: %v", ErrInvalidBand, bc.Name, err)
		}
		end, err := minutesOfDay(bc.End)
		if err != nil {
			return nil, fmt.Errorf("%w: band %s end: %v", ErrInvalidBand, bc.Name, err)
		}
		bands = append(bands, Band{
			Name:  bc.Name,
			Start: start,
			End:   end,
			Wait:  minutesToDuration(bc.WaitMinutes),
		})
	}
	return New(bands, minutesToDuration(cfg.DefaultWaitMinutes), minutesToDuration(cfg.TransferPenaltyMinutes)), nil
}

// WaitTime returns the wait before boarding at the given instant. The station
// argument is part of the contract to allow per-station policies; the current
// policy is network-wide.
func (m *Model) WaitTime(at time.Time, _ network.StationID) time.Duration {
	minute := at.Hour()*60 + at.Minute()
	for _, b := range m.bands {
		if b.Matches(minute) {
			return b.Wait
		}
	}
	return m.defaultWait
}

// TransferPenalty returns the penalty for boarding line to after riding line
// from. It is zero for the first boarding (from is empty) and when continuing
// on the same line.
func (m *Model) TransferPenalty(from, to network.LineID) time.Duration {
	if from == "" || from == to {
		return 0
	}
	return m.transferPenalty
}

func minutesOfDay(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	if hh < 0 || hh > 24 || mm < 0 || mm > 59 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return hh*60 + mm, nil
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
