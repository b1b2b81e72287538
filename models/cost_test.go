package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseCostRange(t *testing.T) {
	tests := []struct {
		raw  string
		want CostRange
	}{
		{"$15,000 - $25,000", CostRange{15000, 25000}},
		{"$0 - $0", CostRange{0, 0}},
		{" $ 1,200.50 -$2,000 ", CostRange{1200.50, 2000}},
		{"$30000 - $50000", CostRange{30000, 50000}},
	}

	for _, tt := range tests {
		got, err := ParseCostRange(tt.raw)
		if err != nil {
			t.Errorf("ParseCostRange(%q): unexpected error %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCostRange(%q) = %+v; want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestParseCostRangeRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "TBD", "$15,000", "15000 - 25000", "$25,000 - $15,000", "$1,0.0.0 - $2", "$1.555 - $2", "$0 - $99999999999999999999"} {
		_, err := ParseCostRange(raw)
		if !errors.Is(err, ErrMalformedCost) {
			t.Errorf("ParseCostRange(%q): got %v, want ErrMalformedCost", raw, err)
		}
		var perr *CostParseError
		if !errors.As(err, &perr) || perr.Input != raw {
			t.Errorf("ParseCostRange(%q): want *CostParseError carrying the input", raw)
		}
	}
}

func TestCostRangeString(t *testing.T) {
	tests := []struct {
		c    CostRange
		want string
	}{
		{CostRange{15000, 25000}, "$15,000 - $25,000"},
		{CostRange{0, 500}, "$0 - $500"},
		{CostRange{1000000, 2500000}, "$1,000,000 - $2,500,000"},
		{CostRange{19.99, 25.5}, "$19.99 - $25.5"},
		{CostRange{0, MaxCost}, "$0 - $1,000,000,000,000,000"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
		back, err := ParseCostRange(tt.want)
		if err != nil || back != tt.c {
			t.Errorf("ParseCostRange(%q) = %+v, %v; want %+v", tt.want, back, err, tt.c)
		}
	}
}

func TestCostRangeValidate(t *testing.T) {
	tests := []struct {
		c     CostRange
		valid bool
	}{
		{CostRange{10, 20}, true},
		{CostRange{20, 20}, true},
		{CostRange{-1, 20}, false},
		{CostRange{20, 10}, false},
		{CostRange{19.99, 25.5}, true},
		{CostRange{0, MaxCost}, true},
		{CostRange{0, MaxCost * 2}, false},
		{CostRange{0, 1e19}, false},
		{CostRange{0.001, 1}, false},
		{CostRange{math.NaN(), 1}, false},
		{CostRange{0, math.Inf(1)}, false},
	}
	for _, tt := range tests {
		err := tt.c.Validate()
		if tt.valid && err != nil {
			t.Errorf("Validate(%+v): unexpected error %v", tt.c, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidCost) {
			t.Errorf("Validate(%+v): got %v, want ErrInvalidCost", tt.c, err)
		}
	}
}

func TestCostRangeJSON(t *testing.T) {
	bp := BestPractice{Title: "x", Cost: CostRange{15000, 25000}}
	data, err := json.Marshal(bp)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if got := fields["cost_estimate"]; got != "$15,000 - $25,000" {
		t.Errorf("cost_estimate: got %v, want $15,000 - $25,000", got)
	}

	var bad BestPractice
	err = json.Unmarshal([]byte(`{"cost_estimate":"about 20k"}`), &bad)
	if !errors.Is(err, ErrMalformedCost) {
		t.Errorf("unmarshal malformed cost: got %v, want ErrMalformedCost", err)
	}
}

func TestTierForPriority(t *testing.T) {
	tests := []struct {
		priority int
		want     Tier
		window   string
	}{
		{5, TierImmediate, "0-30 days"},
		{4, TierShortTerm, "1-3 months"},
		{3, TierMediumTerm, "3-6 months"},
		{2, TierLongTerm, "6-12 months"},
		{1, TierStrategic, "12+ months"},
		{0, TierStrategic, "12+ months"},
		{9, TierStrategic, "12+ months"},
	}
	for _, tt := range tests {
		got := TierForPriority(tt.priority)
		if got != tt.want {
			t.Errorf("TierForPriority(%d) = %q; want %q", tt.priority, got, tt.want)
		}
		if got.Window() != tt.window {
			t.Errorf("%s.Window() = %q; want %q", got, got.Window(), tt.window)
		}
	}
}

func TestLevelWeight(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelLow, 1},
		{LevelMedium, 2},
		{LevelHigh, 3},
		{"", 1},
		{"critical", 1},
	}
	for _, tt := range tests {
		if got := tt.level.Weight(); got != tt.want {
			t.Errorf("Level(%q).Weight() = %d; want %d", tt.level, got, tt.want)
		}
	}
}
