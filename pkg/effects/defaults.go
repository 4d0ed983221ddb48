package effects

import (
	"strings"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
)

// Built-in default configurations. Presets shipped under data/presets
// override these; the defaults keep the pack renderable with no files at
// all and serve as the reference loop-closed parameter sets (every
// parameter's value at progress 0 equals its value at progress 1, and all
// speed-class endpoints are whole cycle counts).

// DefaultTreeOfLifeConfig returns the stock four-phase Tree of Life
// configuration.
func DefaultTreeOfLifeConfig() config.Raw {
	raw := config.Raw{
		"phaseAwakening_start": 0.0,
		"phaseAscension_start": 0.2,
		"phaseRadiance_start":  0.6,
		"phaseDescent_start":   0.85,
		"transitionZoneWidth":  0.05,

		"awakeningNodeAlpha_start":     0.0,
		"awakeningNodeAlpha_end":       0.6,
		"awakeningPathAlpha_start":     0.0,
		"awakeningPathAlpha_end":       0.35,
		"awakeningNodeReveal_start":    0.0,
		"awakeningNodeReveal_end":      1.0,
		"awakeningGlowIntensity_start": 0.2,
		"awakeningGlowIntensity_end":   0.5,
		"awakeningPulseSpeed_start":    1,
		"awakeningPulseSpeed_end":      2,
		"awakeningEasing":              "easeOutCubic",

		"ascensionNodeAlpha_start":     0.6,
		"ascensionNodeAlpha_end":       1.0,
		"ascensionPathAlpha_start":     0.35,
		"ascensionPathAlpha_end":       0.5,
		"ascensionNodeReveal_start":    1.0,
		"ascensionGlowIntensity_start": 0.5,
		"ascensionGlowIntensity_end":   0.9,
		"ascensionPulseSpeed_start":    2,
		"ascensionPulseSpeed_end":      3,
		"ascensionEasing":              []string{"linear", "easeInOutCubic", "smoothstep"},

		"radianceNodeAlpha_start":     1.0,
		"radiancePathAlpha_start":     0.5,
		"radianceNodeReveal_start":    1.0,
		"radianceGlowIntensity_start": 0.9,
		"radianceGlowIntensity_end":   1.0,
		"radiancePulseSpeed_start":    3,
		"radianceEasing":              "easeInOutSine",

		"descentNodeAlpha_start":     1.0,
		"descentNodeAlpha_end":       0.0,
		"descentPathAlpha_start":     0.5,
		"descentPathAlpha_end":       0.0,
		"descentNodeReveal_start":    1.0,
		"descentNodeReveal_end":      0.0,
		"descentGlowIntensity_start": 1.0,
		"descentGlowIntensity_end":   0.2,
		"descentPulseSpeed_start":    3,
		"descentPulseSpeed_end":      1,
		"descentEasing":              "easeInOutQuint",

		"speedParams": []string{"pulseSpeed"},

		"elements":     sephirotIDs(),
		"primaryColor": "#e8c872",
		"accentColor":  []string{"#8a2be2", "#4b0082", "#6a5acd"},
		"glowColor":    "#fff4d6",
	}

	// The lightning-flash order: awakening reveals the tree top-down,
	// descent withdraws it bottom-up.
	for i, id := range sephirotIDs() {
		raw["awakening"+upperFirst(id)+"Rank"] = i
		raw["descent"+upperFirst(id)+"Rank"] = len(sephirot) - 1 - i
	}

	return raw
}

// DefaultChakraMandalaConfig returns the stock four-phase Chakra Mandala
// configuration.
func DefaultChakraMandalaConfig() config.Raw {
	raw := config.Raw{
		"phaseRooting_start":  0.0,
		"phaseRising_start":   0.25,
		"phaseBlooming_start": 0.6,
		"phaseSettling_start": 0.85,
		"transitionZoneWidth": 0.05,

		"rootingPetalAlpha_start":    0.0,
		"rootingPetalAlpha_end":      0.5,
		"rootingCenterAlpha_start":   0.2,
		"rootingCenterAlpha_end":     0.7,
		"rootingChakraReveal_start":  0.0,
		"rootingChakraReveal_end":    0.6,
		"rootingRingScale_start":     0.5,
		"rootingRingScale_end":       0.8,
		"rootingColorShift_start":    0.0,
		"rootingRotationSpeed_start": 1,
		"rootingPulseSpeed_start":    2,
		"rootingEasing":              "easeOutQuad",

		"risingPetalAlpha_start":    0.5,
		"risingPetalAlpha_end":      0.9,
		"risingCenterAlpha_start":   0.7,
		"risingCenterAlpha_end":     1.0,
		"risingChakraReveal_start":  0.6,
		"risingChakraReveal_end":    1.0,
		"risingRingScale_start":     0.8,
		"risingRingScale_end":       1.0,
		"risingColorShift_start":    0.0,
		"risingColorShift_end":      0.4,
		"risingRotationSpeed_start": 1,
		"risingRotationSpeed_end":   2,
		"risingPulseSpeed_start":    2,
		"risingPulseSpeed_end":      4,
		"risingEasing":              []string{"easeInOutCubic", "easeInOutSine"},

		"bloomingPetalAlpha_start":    0.9,
		"bloomingPetalAlpha_end":      1.0,
		"bloomingCenterAlpha_start":   1.0,
		"bloomingChakraReveal_start":  1.0,
		"bloomingRingScale_start":     1.0,
		"bloomingColorShift_start":    0.4,
		"bloomingColorShift_end":      0.6,
		"bloomingRotationSpeed_start": 2,
		"bloomingPulseSpeed_start":    4,
		"bloomingEasing":              "smootherstep",

		"settlingPetalAlpha_start":    1.0,
		"settlingPetalAlpha_end":      0.0,
		"settlingCenterAlpha_start":   1.0,
		"settlingCenterAlpha_end":     0.2,
		"settlingChakraReveal_start":  1.0,
		"settlingChakraReveal_end":    0.0,
		"settlingRingScale_start":     1.0,
		"settlingRingScale_end":       0.5,
		"settlingColorShift_start":    0.6,
		"settlingColorShift_end":      0.0,
		"settlingRotationSpeed_start": 2,
		"settlingRotationSpeed_end":   1,
		"settlingPulseSpeed_start":    4,
		"settlingPulseSpeed_end":      2,
		"settlingEasing":              "easeInOutCubic",

		"speedParams": []string{"rotationSpeed", "pulseSpeed"},

		"elements":    chakraIDs(),
		"accentColor": []string{"#f5f0ff", "#ffe9f0"},
		"axisColor":   "#d8d0e8",
	}

	// Rooting ascends root → crown; settling withdraws crown → root.
	for i, id := range chakraIDs() {
		raw["rooting"+upperFirst(id)+"Rank"] = i
		raw["settling"+upperFirst(id)+"Rank"] = len(chakras) - 1 - i
	}

	return raw
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
