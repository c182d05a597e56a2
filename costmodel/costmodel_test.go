package costmodel

import (
	"errors"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/transit-routing/config"
	"github.com/theoremus-urban-solutions/transit-routing/network"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 12, hour, minute, 0, 0, time.UTC)
}

func TestDefaultWaitTime(t *testing.T) {
	m := Default()

	tests := []struct {
		name     string
		at       time.Time
		expected time.Duration
	}{
		{"early morning", at(6, 0), 90 * time.Second},
		{"just before eleven", at(10, 59), 90 * time.Second},
		{"eleven exactly is midday", at(11, 0), time.Minute},
		{"midday", at(14, 30), time.Minute},
		{"just before evening", at(17, 59), time.Minute},
		{"evening start", at(18, 0), 2 * time.Minute},
		{"late night", at(23, 45), 2 * time.Minute},
		{"midnight", at(0, 0), 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.WaitTime(tt.at, "any-station"); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWaitTimeNonNegative(t *testing.T) {
	m := Default()
	for hour := 0; hour < 24; hour++ {
		if got := m.WaitTime(at(hour, 0), "s"); got < 0 {
			t.Errorf("expected non-negative wait at %02d:00, got %v", hour, got)
		}
	}
}

func TestWrappingBand(t *testing.T) {
	m := New([]Band{
		{Name: "night", Start: 22 * 60, End: 5 * 60, Wait: 5 * time.Minute},
	}, time.Minute, 3*time.Minute)

	if got := m.WaitTime(at(23, 30), "s"); got != 5*time.Minute {
		t.Errorf("expected night wait before midnight, got %v", got)
	}
	if got := m.WaitTime(at(3, 0), "s"); got != 5*time.Minute {
		t.Errorf("expected night wait after midnight, got %v", got)
	}
	if got := m.WaitTime(at(12, 0), "s"); got != time.Minute {
		t.Errorf("expected default wait at midday, got %v", got)
	}
}

func TestFirstMatchWins(t *testing.T) {
	m := New([]Band{
		{Name: "narrow", Start: 8 * 60, End: 9 * 60, Wait: 4 * time.Minute},
		{Name: "wide", Start: 0, End: minutesPerDay, Wait: time.Minute},
	}, 30*time.Second, 3*time.Minute)

	if got := m.WaitTime(at(8, 30), "s"); got != 4*time.Minute {
		t.Errorf("expected narrow band to win, got %v", got)
	}
	if got := m.WaitTime(at(10, 0), "s"); got != time.Minute {
		t.Errorf("expected wide band, got %v", got)
	}
}

func TestTransferPenalty(t *testing.T) {
	m := Default()

	tests := []struct {
		name     string
		from, to string
		expected time.Duration
	}{
		{"first boarding", "", "victoria", 0},
		{"same line", "victoria", "victoria", 0},
		{"line change", "victoria", "northern", 3 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TransferPenalty(network.LineID(tt.from), network.LineID(tt.to))
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if got < 0 {
				t.Errorf("expected non-negative penalty, got %v", got)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.CostPolicyConfig{
		Bands: []config.BandConfig{
			{Name: "morning", Start: "00:00", End: "11:00", WaitMinutes: 1.5},
			{Name: "evening", Start: "18:00", End: "24:00", WaitMinutes: 2},
		},
		DefaultWaitMinutes:     1,
		TransferPenaltyMinutes: 3,
	}

	m, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m.WaitTime(at(9, 0), "s"); got != 90*time.Second {
		t.Errorf("expected 1m30s morning wait, got %v", got)
	}
	if got := m.WaitTime(at(19, 0), "s"); got != 2*time.Minute {
		t.Errorf("expected 2m evening wait, got %v", got)
	}
	if got := m.TransferPenalty("a", "b"); got != 3*time.Minute {
		t.Errorf("expected 3m penalty, got %v", got)
	}
}

func TestFromConfigInvalidBand(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"missing colon", "0800", "11:00"},
		{"hour out of range", "25:00", "26:00"},
		{"minute out of range", "08:61", "11:00"},
		{"bad end", "08:00", "24:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.CostPolicyConfig{
				Bands: []config.BandConfig{{Name: "bad", Start: tt.start, End: tt.end, WaitMinutes: 1}},
			}
			_, err := FromConfig(cfg)
			if !errors.Is(err, ErrInvalidBand) {
				t.Errorf("expected ErrInvalidBand, got %v", err)
			}
		})
	}
}
