package effects

import (
	"fmt"
	"sort"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
)

// constructors maps effect names to their builders. Registering here is
// all a new effect needs to become visible to the preview tool and the
// preset catalog.
var constructors = map[string]func(raw config.Raw, seed int64) (Effect, error){
	"tree_of_life": func(raw config.Raw, seed int64) (Effect, error) {
		return NewTreeOfLife(raw, seed)
	},
	"chakra_mandala": func(raw config.Raw, seed int64) (Effect, error) {
		return NewChakraMandala(raw, seed)
	},
}

// Names returns the registered effect names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named effect. A nil raw selects the effect's built-in
// default configuration.
func New(name string, raw config.Raw, seed int64) (Effect, error) {
	build, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect %q", name)
	}
	return build(raw, seed)
}
