package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	// ErrMalformedCost is matched by every CostParseError.
	ErrMalformedCost = errors.New("malformed cost estimate")
	// ErrInvalidCost reports a range Validate rejects.
	ErrInvalidCost = errors.New("invalid cost range")

	// costRegexp matches "$15,000 - $25,000" with optional cents and spacing.
	costRegexp = regexp.MustCompile(`^\s*\$\s*([\d,]+(?:\.\d+)?)\s*-\s*\$\s*([\d,]+(?:\.\d+)?)\s*$`)
)

// CostParseError carries the input that failed to parse.
type CostParseError struct {
	Input  string
	Reason string
}

func (e *CostParseError) Error() string {
	return fmt.Sprintf("cost estimate %q: %s", e.Input, e.Reason)
}

func (e *CostParseError) Unwrap() error { return ErrMalformedCost }

// CostRange is a monetary estimate in dollars. ROI math uses Low.
type CostRange struct {
	Low  float64
	High float64
}

// MaxCost bounds both ends of a range so formatting stays exact.
const MaxCost = 1e15

// Validate rejects negative, inverted or oversized bounds and bounds with
// fractions of a cent, none of which survive String and ParseCostRange.
func (c CostRange) Validate() error {
	for _, v := range []float64{c.Low, c.High} {
		if math.IsNaN(v) || v < 0 || v > MaxCost || math.Round(v*100)/100 != v {
			return fmt.Errorf("%w: %v - %v", ErrInvalidCost, c.Low, c.High)
		}
	}
	if c.High < c.Low {
		return fmt.Errorf("%w: %v - %v", ErrInvalidCost, c.Low, c.High)
	}
	return nil
}

// String renders the range the way reports show it: "$15,000 - $25,000".
func (c CostRange) String() string {
	return formatDollars(c.Low) + " - " + formatDollars(c.High)
}

func (c CostRange) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CostRange) UnmarshalText(text []byte) error {
	parsed, err := ParseCostRange(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCostRange parses "$<low> - $<high>". Anything else is a
// *CostParseError rather than a silent zero.
func ParseCostRange(s string) (CostRange, error) {
	m := costRegexp.FindStringSubmatch(s)
	if len(m) != 3 {
		return CostRange{}, &CostParseError{Input: s, Reason: `want "$<low> - $<high>"`}
	}

	low, err := parseDollars(m[1])
	if err != nil {
		return CostRange{}, &CostParseError{Input: s, Reason: "bad lower bound"}
	}
	high, err := parseDollars(m[2])
	if err != nil {
		return CostRange{}, &CostParseError{Input: s, Reason: "bad upper bound"}
	}

	c := CostRange{Low: low, High: high}
	if err := c.Validate(); err != nil {
		return CostRange{}, &CostParseError{Input: s, Reason: "bounds out of range or inverted"}
	}
	return c, nil
}

func parseDollars(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

func formatDollars(v float64) string {
	if v == math.Trunc(v) {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}
