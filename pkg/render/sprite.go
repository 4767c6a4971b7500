package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// sprite is the visual handle of one boid.
type sprite struct {
	position    geometry.Vector3
	orientation geometry.Quaternion
	radius      float64
}

var _ behavior.Drawable = (*sprite)(nil)

func (s *sprite) SetTransform(position geometry.Vector3, orientation geometry.Quaternion) {
	s.position = position
	s.orientation = orientation
}

// minTriangle keeps small fish visible when the window is small.
const minTriangle = 4.0

// triangle computes the three screen vertices of the sprite in v, or ok=false
// when the boid swims straight toward or away from the viewer.
func (s *sprite) triangle(v View) (pts [3][2]float64, ok bool) {
	heading := s.orientation.Rotate(behavior.Forward)
	dx, dy := v.Direction(heading)
	l := math.Hypot(dx, dy)
	if l < 0.2 {
		return pts, false
	}
	angle := math.Atan2(dy, dx)
	size := math.Max(minTriangle, s.radius*v.Scale()*1.5)
	// foreshortening: a boid diving away from the viewer looks shorter
	length := size * l

	cx, cy := v.Project(s.position)
	pts[0] = [2]float64{cx + math.Cos(angle)*length, cy + math.Sin(angle)*length}
	pts[1] = [2]float64{cx + math.Cos(angle+2.5)*size*0.6, cy + math.Sin(angle+2.5)*size*0.6}
	pts[2] = [2]float64{cx + math.Cos(angle-2.5)*size*0.6, cy + math.Sin(angle-2.5)*size*0.6}
	return pts, true
}

func (s *sprite) draw(screen *ebiten.Image, v View, clr color.RGBA) {
	pts, ok := s.triangle(v)
	if !ok {
		cx, cy := v.Project(s.position)
		r := math.Max(minTriangle, s.radius*v.Scale()) * 0.5
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 1.5, clr, true)
		return
	}

	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vertices := make([]ebiten.Vertex, 3)
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}
