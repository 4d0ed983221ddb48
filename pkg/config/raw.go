// Package config implements the effect configuration surface: validation of
// the flat key-convention config consumed from the host (or from YAML preset
// catalogs), and its one-time resolution into the immutable timeline and
// parameter table the synthesis engine runs on.
//
// Key convention for a raw config:
//
//	phase{Name}_start            phase boundary fraction, e.g. phaseAwakening_start
//	transitionZoneWidth          width of the cross-phase blend zones
//	{phase}{Param}_start/_end    per-phase parameter ramp, e.g. awakeningNodeAlpha_start
//	{phase}Easing                easing name, or a list of candidates to pick from
//	{phase}{Element}Rank         per-phase activation rank for a declared element
//	elements                     ordered element ID list
//	speedParams                  parameter names blended as speed-class
//	{role}Color                  color string, or a list of candidates
//
// All candidate lists are resolved exactly once, at effect construction,
// with a seeded generator (see Resolve); nothing random survives into the
// per-frame path.
package config

import "unicode"

// Raw is an unresolved flat configuration object, typically decoded from
// YAML or handed over by the host framework.
type Raw map[string]any

// floatVal reads a numeric key, accepting the int/float variants YAML
// decoding produces.
func (r Raw) floatVal(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// intVal reads an integer key.
func (r Raw) intVal(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// stringList reads a key holding either a single string or a list of
// strings (YAML decodes lists as []any).
func (r Raw) stringList(key string) ([]string, bool) {
	switch v := r[key].(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
