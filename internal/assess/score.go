package assess

import (
	"fmt"
	"math"
)

// Score evaluates an ordered response set against a definition.
// Responses must match the question count and lie within the scale range.
// Band selection walks bands in definition order and picks the first whose
// inclusive range contains the total.
func Score(def Definition, responses []int) (ScoreResult, error) {
	if len(responses) == 0 {
		return ScoreResult{}, NewInvalidError("no responses provided")
	}
	if len(responses) != len(def.Questions) {
		return ScoreResult{}, NewInvalidError(fmt.Sprintf(
			"expected %d responses, got %d", len(def.Questions), len(responses)))
	}
	total := 0
	for _, r := range responses {
		if r < def.Scale.Min || r > def.Scale.Max {
			return ScoreResult{}, NewInvalidError(fmt.Sprintf(
				"responses must be integers between %d and %d", def.Scale.Min, def.Scale.Max))
		}
		total += r
	}
	band, ok := selectBand(def.Bands, total)
	if !ok {
		return ScoreResult{}, NewConfigError(fmt.Sprintf(
			"assessment %q: no band covers score %d", def.ID, total))
	}
	return ScoreResult{
		AssessmentID:   def.ID,
		Score:          total,
		MaxScore:       def.MaxTotal(),
		Average:        roundTo(float64(total)/float64(len(responses)), 2),
		Interpretation: band.Interpretation,
		Guidance:       band.Guidance,
	}, nil
}

func selectBand(bands []Band, total int) (Band, bool) {
	for _, b := range bands {
		if total >= b.Min && total <= b.Max {
			return b, true
		}
	}
	return Band{}, false
}

// ValidateBands checks that a definition's bands cover every reachable total
// in [MinTotal, MaxTotal]. Runs once at catalog load so a gap in the band
// table is caught at startup, not when a user happens to land in it.
func ValidateBands(def Definition) error {
	if def.Scale.Min > def.Scale.Max {
		return NewConfigError(fmt.Sprintf("assessment %q: scale min exceeds max", def.ID))
	}
	if len(def.Questions) == 0 {
		return NewConfigError(fmt.Sprintf("assessment %q: no questions", def.ID))
	}
	if len(def.Bands) == 0 {
		return NewConfigError(fmt.Sprintf("assessment %q: no bands", def.ID))
	}
	for total := def.MinTotal(); total <= def.MaxTotal(); total++ {
		if _, ok := selectBand(def.Bands, total); !ok {
			return NewConfigError(fmt.Sprintf("assessment %q: no band covers score %d", def.ID, total))
		}
	}
	return nil
}

// roundTo rounds half away from zero to the given number of decimal places,
// matching how averages have always been displayed (2 places).
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
