package config

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/easing"
)

// Report is the outcome of a validation pass. Problems are aggregated so a
// caller can surface every configuration mistake at once instead of fixing
// them one render attempt at a time.
type Report struct {
	Valid  bool
	Errors []string
}

// Validate checks a raw config before resolution. It never panics and
// never stops at the first problem.
//
// Hard errors: malformed or non-monotonic phase boundaries, out-of-range
// transition width, alpha/opacity ramps outside [0, 1], and non-integer
// speed-class parameter values (a fractional oscillation speed cannot close
// the loop, so it is rejected here rather than allowed to seam the render).
// Unknown easing names are only warned about; they fall back to linear at
// interpolation time.
func Validate(raw Raw) Report {
	var errs []string

	boundaries, problems := phaseBoundaries(raw)
	errs = append(errs, problems...)

	phases := make([]string, len(boundaries))
	for i, b := range boundaries {
		phases[i] = b.name
	}

	if _, present := raw["transitionZoneWidth"]; present {
		w, ok := raw.floatVal("transitionZoneWidth")
		if !ok {
			errs = append(errs, "transitionZoneWidth is not a number")
		} else if w < 0 || w >= 0.5 {
			errs = append(errs, fmt.Sprintf("transitionZoneWidth %v must lie in [0, 0.5)", w))
		}
	}

	elements, _ := raw.stringList("elements")
	speedParams, _ := raw.stringList("speedParams")

	for _, phaseName := range phases {
		params, problems := paramsForPhase(raw, phaseName, phases)
		errs = append(errs, problems...)

		for name, p := range params {
			if isAlphaParam(name) {
				if p.start < 0 || p.start > 1 || p.end < 0 || p.end > 1 {
					errs = append(errs, fmt.Sprintf(
						"%s %s ramp [%v, %v] escapes the [0, 1] alpha range",
						phaseName, name, p.start, p.end))
				}
			}
			if containsString(speedParams, name) {
				if !isInteger(p.start) || !isInteger(p.end) {
					errs = append(errs, fmt.Sprintf(
						"%s %s is a speed parameter; values [%v, %v] must be whole cycle counts or the loop will not close",
						phaseName, name, p.start, p.end))
				}
			}
		}

		_, problems = ranksForPhase(raw, phaseName, phases, elements)
		errs = append(errs, problems...)

		if names, ok := raw.stringList(phaseName + easingSuffix); ok {
			for _, name := range names {
				if _, known := easing.Lookup(name); !known {
					log.Printf("[Config] Warning: %s%s names unknown easing %q (will fall back to linear)",
						phaseName, easingSuffix, name)
				}
			}
		}
	}

	return Report{Valid: len(errs) == 0, Errors: errs}
}

func isAlphaParam(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "alpha") || strings.Contains(lower, "opacity")
}

func isInteger(v float64) bool {
	return v == math.Trunc(v)
}
