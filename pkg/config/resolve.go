package config

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/phase"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/synth"
)

// Resolved is the frozen form of a raw config: the validated timeline, the
// parameter table, and every "pick one of these" choice already made.
// Immutable after Resolve returns; an effect holds one Resolved for its
// lifetime and the per-frame path reads it without ever re-rolling
// anything. Reconstructing an effect from the same raw config and seed
// yields an identical Resolved, which is what makes per-worker
// reconstruction safe.
type Resolved struct {
	Timeline *phase.Timeline
	Table    *synth.ParameterTable

	// Colors holds the resolved color per {role}Color key, e.g.
	// Colors["primaryColor"] = "#e8c872".
	Colors map[string]string

	// Seed is the seed the choices were drawn with, kept for diagnostics.
	Seed int64
}

// Resolve validates raw and freezes it into a Resolved config. All discrete
// random choices (easing candidates, color candidates) are drawn here, once,
// from a generator seeded with seed; the consumption order is deterministic
// (timeline order for easings, sorted key order for colors) so equal inputs
// always freeze into equal outputs.
func Resolve(raw Raw, seed int64) (*Resolved, error) {
	report := Validate(raw)
	if !report.Valid {
		return nil, fmt.Errorf("invalid effect config: %s", strings.Join(report.Errors, "; "))
	}

	boundaries, _ := phaseBoundaries(raw)
	phases := make([]phase.Phase, len(boundaries))
	names := make([]string, len(boundaries))
	for i, b := range boundaries {
		end := 1.0
		if i+1 < len(boundaries) {
			end = boundaries[i+1].start
		}
		phases[i] = phase.Phase{Name: b.name, Start: b.start, End: end}
		names[i] = b.name
	}

	width := defaultTransitionWidth
	if w, ok := raw.floatVal("transitionZoneWidth"); ok {
		width = w
	}

	timeline, err := phase.NewTimeline(phases, width)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	elements, _ := raw.stringList("elements")
	speedParams, _ := raw.stringList("speedParams")

	table := &synth.ParameterTable{
		Phases:   make(map[string]map[string]synth.ParamSpec, len(names)),
		Ranks:    make(map[string]map[string]int, len(names)),
		Elements: elements,
	}

	// Timeline order keeps the rng consumption sequence stable.
	for _, phaseName := range names {
		easingName := "linear"
		if candidates, ok := raw.stringList(phaseName + easingSuffix); ok && len(candidates) > 0 {
			easingName = pick(candidates, rng)
		}

		params, _ := paramsForPhase(raw, phaseName, names)
		specs := make(map[string]synth.ParamSpec, len(params))
		for name, p := range params {
			class := synth.ClassScalar
			if containsString(speedParams, name) {
				class = synth.ClassSpeed
			}
			specs[name] = synth.ParamSpec{
				Start:  p.start,
				End:    p.end,
				Easing: easingName,
				Class:  class,
			}
		}
		table.Phases[phaseName] = specs

		ranks, _ := ranksForPhase(raw, phaseName, names, elements)
		if len(ranks) > 0 {
			table.Ranks[phaseName] = ranks
		}
	}

	return &Resolved{
		Timeline: timeline,
		Table:    table,
		Colors:   resolveColors(raw, rng),
		Seed:     seed,
	}, nil
}

// resolveColors freezes every {role}Color key, picking from candidate lists
// in sorted key order so the draw sequence is reproducible.
func resolveColors(raw Raw, rng *rand.Rand) map[string]string {
	var keys []string
	for key := range raw {
		if strings.HasSuffix(key, "Color") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	colors := make(map[string]string, len(keys))
	for _, key := range keys {
		if candidates, ok := raw.stringList(key); ok && len(candidates) > 0 {
			colors[key] = pick(candidates, rng)
		}
	}
	return colors
}

// pick draws one candidate uniformly. A single-element list consumes no
// randomness, so fixed-value configs resolve identically under any seed.
func pick(candidates []string, rng *rand.Rand) string {
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[rng.Intn(len(candidates))]
}
