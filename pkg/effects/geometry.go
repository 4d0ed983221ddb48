package effects

// Static geometry tables. Positions are normalized to [0, 1] of the
// surface's shorter dimension and mapped to pixels at draw time.

// sephira is one node of the Tree of Life layout.
type sephira struct {
	id string
	x  float64
	y  float64
}

// sephirot lists the ten nodes in traditional top-down order. The order
// here is the declaration order used for activation-rank tie-breaking.
var sephirot = []sephira{
	{"keter", 0.50, 0.08},
	{"chokmah", 0.74, 0.20},
	{"binah", 0.26, 0.20},
	{"chesed", 0.74, 0.40},
	{"gevurah", 0.26, 0.40},
	{"tiferet", 0.50, 0.50},
	{"netzach", 0.74, 0.64},
	{"hod", 0.26, 0.64},
	{"yesod", 0.50, 0.78},
	{"malkuth", 0.50, 0.92},
}

// treePaths are the twenty-two connecting paths, as index pairs into
// sephirot.
var treePaths = [22][2]int{
	{0, 1}, {0, 2}, {0, 5}, // keter → chokmah, binah, tiferet
	{1, 2}, {1, 3}, {1, 5}, // chokmah → binah, chesed, tiferet
	{2, 4}, {2, 5}, // binah → gevurah, tiferet
	{3, 4}, {3, 5}, {3, 6}, // chesed → gevurah, tiferet, netzach
	{4, 5}, {4, 7}, // gevurah → tiferet, hod
	{5, 6}, {5, 7}, {5, 8}, // tiferet → netzach, hod, yesod
	{6, 7}, {6, 8}, {6, 9}, // netzach → hod, yesod, malkuth
	{7, 8}, {7, 9}, // hod → yesod, malkuth
	{8, 9}, // yesod → malkuth
}

// sephirotIDs returns the node IDs in declaration order, for the
// configuration element set.
func sephirotIDs() []string {
	ids := make([]string, len(sephirot))
	for i, s := range sephirot {
		ids[i] = s.id
	}
	return ids
}

// chakra is one energy center of the Chakra Mandala layout.
type chakra struct {
	id     string
	y      float64 // position along the vertical axis
	petals int
	color  string
}

// chakras lists the seven centers bottom-up; declaration order is the
// activation tie-break order.
var chakras = []chakra{
	{"root", 0.88, 4, "#c0392b"},
	{"sacral", 0.76, 6, "#e67e22"},
	{"solarPlexus", 0.64, 10, "#f1c40f"},
	{"heart", 0.52, 12, "#27ae60"},
	{"throat", 0.40, 16, "#2980b9"},
	{"thirdEye", 0.28, 2, "#34495e"},
	{"crown", 0.14, 12, "#8e44ad"},
}

func chakraIDs() []string {
	ids := make([]string, len(chakras))
	for i, c := range chakras {
		ids[i] = c.id
	}
	return ids
}

func chakraByID(id string) (chakra, bool) {
	for _, c := range chakras {
		if c.id == id {
			return c, true
		}
	}
	return chakra{}, false
}
