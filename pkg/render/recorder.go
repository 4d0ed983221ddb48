package render

// Call is one recorded draw operation.
type Call struct {
	Op    string // "line", "strokeCircle", "fillCircle", "strokePolygon", "fillPolygon"
	Args  []float64
	Color string
	Alpha float64
}

// Recorder is a Surface that captures draw calls instead of rasterizing
// them. Tests use it to assert that effects are deterministic and that
// parameter bundles reach the draw routines intact.
type Recorder struct {
	W, H  float64
	alpha float64
	Calls []Call
}

// NewRecorder returns a recorder with the given logical size and full
// opacity.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, alpha: 1}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) SetAlpha(alpha float64) { r.alpha = alpha }

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, hexColor string) {
	r.record("line", []float64{x0, y0, x1, y1, width}, hexColor)
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, hexColor string) {
	r.record("strokeCircle", []float64{cx, cy, radius, width}, hexColor)
}

func (r *Recorder) FillCircle(cx, cy, radius float64, hexColor string) {
	r.record("fillCircle", []float64{cx, cy, radius}, hexColor)
}

func (r *Recorder) StrokePolygon(pts []Point, width float64, hexColor string) {
	r.record("strokePolygon", append(flatten(pts), width), hexColor)
}

func (r *Recorder) FillPolygon(pts []Point, hexColor string) {
	r.record("fillPolygon", flatten(pts), hexColor)
}

func (r *Recorder) record(op string, args []float64, hexColor string) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args, Color: hexColor, Alpha: r.alpha})
}

func flatten(pts []Point) []float64 {
	out := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		out = append(out, p.X, p.Y)
	}
	return out
}
