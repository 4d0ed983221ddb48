package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1x1 texture used as the triangle source for filled
// polygons (the standard Ebitengine technique: sample the center of a 3x3
// white image to avoid bleeding at the texel edges).
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface renders draw calls onto an *ebiten.Image. One surface is
// created per frame by the preview tool; it holds no state beyond the
// current alpha multiplier.
type EbitenSurface struct {
	dst   *ebiten.Image
	alpha float64
}

// NewEbitenSurface wraps the destination image as a drawing surface.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, alpha: 1}
}

func (s *EbitenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) SetAlpha(alpha float64) {
	s.alpha = alpha
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, hexColor string) {
	vector.StrokeLine(s.dst,
		float32(x0), float32(y0), float32(x1), float32(y1),
		float32(width), parseColor(hexColor, s.alpha), true)
}

func (s *EbitenSurface) StrokeCircle(cx, cy, r, width float64, hexColor string) {
	vector.StrokeCircle(s.dst,
		float32(cx), float32(cy), float32(r),
		float32(width), parseColor(hexColor, s.alpha), true)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, hexColor string) {
	vector.DrawFilledCircle(s.dst,
		float32(cx), float32(cy), float32(r),
		parseColor(hexColor, s.alpha), true)
}

func (s *EbitenSurface) StrokePolygon(pts []Point, width float64, hexColor string) {
	if len(pts) < 2 {
		return
	}
	clr := parseColor(hexColor, s.alpha)
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(s.dst,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(width), clr, true)
	}
}

// FillPolygon fills a convex polygon as a triangle fan over the white
// texture. Vertex colors are premultiplied, matching the default color
// scale mode of DrawTriangles.
func (s *EbitenSurface) FillPolygon(pts []Point, hexColor string) {
	if len(pts) < 3 {
		return
	}
	clr := parseColor(hexColor, s.alpha)
	ca := float32(clr.A) / 255
	cr := float32(clr.R) / 255 * ca
	cg := float32(clr.G) / 255 * ca
	cb := float32(clr.B) / 255 * ca

	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vertices, indices, whiteSubImage, op)
}
