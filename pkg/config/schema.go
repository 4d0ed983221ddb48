package config

import (
	"sort"
	"strings"
	"unicode"
)

const (
	boundaryPrefix = "phase"
	startSuffix    = "_start"
	endSuffix      = "_end"
	rankSuffix     = "Rank"
	easingSuffix   = "Easing"

	// defaultTransitionWidth is used when a config omits transitionZoneWidth.
	defaultTransitionWidth = 0.05
)

// boundary is one parsed phase{Name}_start entry.
type boundary struct {
	name  string // canonical phase name, lower-first
	start float64
}

// phaseBoundaries extracts and orders the phase boundary declarations.
// Problems are returned as messages, not errors, so Validate can aggregate.
func phaseBoundaries(r Raw) ([]boundary, []string) {
	var bs []boundary
	var problems []string

	for key := range r {
		if !strings.HasPrefix(key, boundaryPrefix) || !strings.HasSuffix(key, startSuffix) {
			continue
		}
		middle := key[len(boundaryPrefix) : len(key)-len(startSuffix)]
		if middle == "" || !startsUpper(middle) {
			continue
		}
		v, ok := r.floatVal(key)
		if !ok {
			problems = append(problems, key+" is not a number")
			continue
		}
		if v < 0 || v >= 1 {
			problems = append(problems, key+" must lie in [0, 1)")
			continue
		}
		bs = append(bs, boundary{name: lowerFirst(middle), start: v})
	}

	sort.Slice(bs, func(i, j int) bool {
		if bs[i].start != bs[j].start {
			return bs[i].start < bs[j].start
		}
		return bs[i].name < bs[j].name
	})

	for i := 1; i < len(bs); i++ {
		if bs[i].start == bs[i-1].start {
			problems = append(problems,
				"phases "+bs[i-1].name+" and "+bs[i].name+" declare the same start fraction")
		}
	}
	if len(bs) > 0 && bs[0].start != 0 {
		problems = append(problems, "no phase starts at 0.0")
	}
	if len(bs) == 0 {
		problems = append(problems, "no phase boundaries declared (phase{Name}_start keys)")
	}

	return bs, problems
}

// owningPhase finds the phase whose name prefixes key, preferring the
// longest match so a phase named "rise" never swallows keys belonging to a
// phase named "riseFall". Returns the remainder of the key after the phase
// name.
func owningPhase(key string, phases []string) (phase, rest string, ok bool) {
	for _, name := range phases {
		if strings.HasPrefix(key, name) && len(name) > len(phase) {
			phase, rest, ok = name, key[len(name):], true
		}
	}
	return phase, rest, ok
}

// rawParam is one parameter ramp declaration within a phase. A missing
// _end makes the parameter constant across the phase.
type rawParam struct {
	start  float64
	end    float64
	hasEnd bool
}

// paramsForPhase collects the {phase}{Param}_start/_end declarations
// belonging to one phase. Returned map keys are canonical (lower-first)
// parameter names.
func paramsForPhase(r Raw, phaseName string, allPhases []string) (map[string]rawParam, []string) {
	params := make(map[string]rawParam)
	var problems []string

	for key := range r {
		if !strings.HasSuffix(key, startSuffix) || strings.HasPrefix(key, boundaryPrefix) {
			continue
		}
		owner, rest, ok := owningPhase(key, allPhases)
		if !ok || owner != phaseName {
			continue
		}
		middle := rest[:len(rest)-len(startSuffix)]
		if middle == "" || !startsUpper(middle) {
			continue
		}

		start, ok := r.floatVal(key)
		if !ok {
			problems = append(problems, key+" is not a number")
			continue
		}
		p := rawParam{start: start, end: start}
		endKey := phaseName + middle + endSuffix
		if _, present := r[endKey]; present {
			end, ok := r.floatVal(endKey)
			if !ok {
				problems = append(problems, endKey+" is not a number")
				continue
			}
			p.end = end
			p.hasEnd = true
		}
		params[lowerFirst(middle)] = p
	}

	return params, problems
}

// ranksForPhase collects the {phase}{Element}Rank declarations for one
// phase, matched against the declared element set.
func ranksForPhase(r Raw, phaseName string, allPhases, elements []string) (map[string]int, []string) {
	ranks := make(map[string]int)
	var problems []string

	for key := range r {
		if !strings.HasSuffix(key, rankSuffix) {
			continue
		}
		owner, rest, ok := owningPhase(key, allPhases)
		if !ok || owner != phaseName {
			continue
		}
		middle := rest[:len(rest)-len(rankSuffix)]
		if middle == "" || !startsUpper(middle) {
			continue
		}

		element := lowerFirst(middle)
		if !containsString(elements, element) {
			problems = append(problems, key+" ranks undeclared element "+element)
			continue
		}
		rank, ok := r.intVal(key)
		if !ok {
			problems = append(problems, key+" is not an integer")
			continue
		}
		ranks[element] = rank
	}

	return ranks, problems
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
