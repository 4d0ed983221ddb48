// Package synth implements the frame config synthesizer: it consumes a
// phase detection result plus a declarative per-phase parameter table and
// produces one fully resolved, continuous-in-time parameter bundle per
// frame.
//
// Synthesize is a pure function of its inputs. The parameter table is built
// once at effect construction and never mutated; the bundle is transient,
// recomputed every frame and never cached, so frames can be rendered
// out of order and concurrently.
package synth

import (
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/interp"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/phase"
)

// ParamClass selects the cross-phase blending rule for a parameter.
type ParamClass int

const (
	// ClassScalar parameters (opacity, intensity, glow) cross-fade linearly
	// against the raw transition blend factor.
	ClassScalar ParamClass = iota

	// ClassSpeed parameters (oscillation and rotation speeds) cross-fade
	// against a smoothstepped blend factor. The extra smoothing keeps the
	// derivative of speed changes gentle regardless of the phases' own
	// easings; abrupt speed changes are the most visible source of stutter.
	ClassSpeed
)

// ParamSpec declares one animation parameter within one phase: its value
// ramp across the phase's local progress, the easing shaping that ramp, and
// the blending class.
type ParamSpec struct {
	Start  float64
	End    float64
	Easing string
	Class  ParamClass
}

// ParameterTable is the per-phase parameter declaration consumed by
// Synthesize. Built once at effect construction (see pkg/config.Resolve)
// and treated as immutable thereafter.
type ParameterTable struct {
	// Phases maps phase name → parameter name → spec. A parameter missing
	// from a phase is simply not active during that phase.
	Phases map[string]map[string]ParamSpec

	// Ranks maps phase name → element ID → activation rank. Elements are
	// revealed in ascending rank order within each phase.
	Ranks map[string]map[string]int

	// Elements is the fixed element set in declaration order. Declaration
	// order breaks rank ties and orders unranked elements.
	Elements []string
}

// Bundle is the synthesizer's per-frame output: a flat mapping of parameter
// name to resolved value, the current phase name, and the element activation
// order. Transient; carries no ownership and no identity across frames.
type Bundle struct {
	Phase      string
	Values     map[string]float64
	Activation []string
}

// Value returns the named parameter, or def when the parameter is not
// active in the current phase. Callers own their defaults.
func (b Bundle) Value(name string, def float64) float64 {
	if v, ok := b.Values[name]; ok {
		return v
	}
	return def
}

// Has reports whether the named parameter is active this frame.
func (b Bundle) Has(name string) bool {
	_, ok := b.Values[name]
	return ok
}

// Synthesize resolves every parameter declared for the detected phase,
// cross-fading with the adjacent phase inside transition zones.
//
// Scalar parameters blend linearly against the raw blend factor; speed
// parameters blend against a fixed smoothstep of it (see ParamClass). This
// asymmetry is deliberate. A parameter the next phase does not declare keeps
// its current-phase value through the transition.
func Synthesize(table *ParameterTable, det phase.Result) Bundle {
	cur := det.Current.Name
	params := table.Phases[cur]

	values := make(map[string]float64, len(params))
	for name, spec := range params {
		v := interp.Lerp(spec.Start, spec.End, det.PhaseProgress, spec.Easing)

		if det.Blend > 0 && det.Next.Name != cur {
			if nspec, ok := table.Phases[det.Next.Name][name]; ok {
				nv := interp.Lerp(nspec.Start, nspec.End, det.NextPhaseProgress, nspec.Easing)
				t := det.Blend
				if spec.Class == ClassSpeed {
					t = interp.Smoothstep(t)
				}
				v += (nv - v) * t
			}
		}

		values[name] = v
	}

	return Bundle{
		Phase:      cur,
		Values:     values,
		Activation: activationOrder(table, cur),
	}
}
