package harness

import (
	"math"

	"github.com/halfeq/burette/internal/sweep"
)

// Monotonicity tolerates a tiny reversal because dilution inside the
// equivalence window can shave fractions of a millipH off the trend.
const monotonicSlack = 0.01

// Continuity ignores sample pairs inside the innermost steep window
// around an equivalence volume, where the curve is legitimately near
// vertical, and bounds the jump everywhere else. The window is kept
// narrow so a seam at a regime boundary cannot hide in it.
const (
	continuityWindow  = 0.001 // fraction of the equivalence volume
	continuityMaxJump = 0.5
)

func checkProperty(result *Result, prop string, rec *sweep.Record) {
	switch prop {
	case PropMonotonic:
		checkMonotonic(result, rec)
	case PropClamped:
		checkClamped(result, rec)
	case PropContinuous:
		checkContinuous(result, rec)
	}
}

func checkMonotonic(result *Result, rec *sweep.Record) {
	// Adding base raises pH, adding acid lowers it.
	sign := 1.0
	if rec.State.Type.AcidTitrant() {
		sign = -1.0
	}

	for i := 1; i < len(rec.Samples); i++ {
		prev, cur := rec.Samples[i-1], rec.Samples[i]
		if sign*(cur.PH-prev.PH) < -monotonicSlack {
			result.AddFailure("monotonic: pH reverses between %.4g mL (%.4f) and %.4g mL (%.4f)",
				prev.TitrantVol, prev.PH, cur.TitrantVol, cur.PH)
		}
	}
}

func checkClamped(result *Result, rec *sweep.Record) {
	for _, s := range rec.Samples {
		if math.IsNaN(s.PH) {
			result.AddFailure("clamped: pH is NaN at %.4g mL", s.TitrantVol)
			continue
		}
		if s.PH < 0 || s.PH > 14 {
			result.AddFailure("clamped: pH %.4f at %.4g mL outside [0, 14]", s.PH, s.TitrantVol)
		}
	}
}

func checkContinuous(result *Result, rec *sweep.Record) {
	for i := 1; i < len(rec.Samples); i++ {
		prev, cur := rec.Samples[i-1], rec.Samples[i]
		if nearEquivalence(rec, prev.TitrantVol) || nearEquivalence(rec, cur.TitrantVol) {
			continue
		}
		if math.Abs(cur.PH-prev.PH) > continuityMaxJump {
			result.AddFailure("continuous: pH jumps %.4f between %.4g mL and %.4g mL",
				math.Abs(cur.PH-prev.PH), prev.TitrantVol, cur.TitrantVol)
		}
	}
}

func nearEquivalence(rec *sweep.Record, vol float64) bool {
	for _, ep := range rec.Points {
		if math.Abs(vol-ep.VolumeML) <= continuityWindow*ep.VolumeML {
			return true
		}
	}
	return false
}
