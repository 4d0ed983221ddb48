package easing

import "log"

// registry maps the configuration-facing easing names to their curves.
// Names follow the CSS/easings.net convention used by effect configs.
var registry = map[string]Func{
	"linear":           Linear,
	"easeInQuad":       InQuad,
	"easeOutQuad":      OutQuad,
	"easeInOutQuad":    InOutQuad,
	"easeInCubic":      InCubic,
	"easeOutCubic":     OutCubic,
	"easeInOutCubic":   InOutCubic,
	"easeInQuart":      InQuart,
	"easeOutQuart":     OutQuart,
	"easeInOutQuart":   InOutQuart,
	"easeInQuint":      InQuint,
	"easeOutQuint":     OutQuint,
	"easeInOutQuint":   InOutQuint,
	"easeInOutSine":    InOutSine,
	"easeOutExpo":      OutExpo,
	"smoothstep":       Smoothstep,
	"smootherstep":     Smootherstep,
	"easeOutBack":      OutBack,
	"easeOutElastic":   OutElastic,
}

// Names returns the set of registered easing names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// ForName returns the curve registered under name, falling back to Linear
// with a logged warning when the name is unknown. An unknown easing is a
// cosmetic problem and must never abort a render.
func ForName(name string) Func {
	if name == "" {
		return Linear
	}
	fn, ok := registry[name]
	if !ok {
		log.Printf("[Easing] Warning: unknown easing %q, falling back to linear", name)
		return Linear
	}
	return fn
}
