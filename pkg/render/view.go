package render

import (
	"math"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

// Plane selects which two world axes a view shows.
type Plane int

const (
	// TopView looks down the y axis: x to the right, z downwards.
	TopView Plane = iota
	// SideView looks along the z axis: x to the right, y upwards.
	SideView
)

func (p Plane) String() string {
	if p == SideView {
		return "side (x/y)"
	}
	return "top (x/z)"
}

// axes returns the horizontal and vertical screen components of v.
// Screen y grows downwards, so the vertical component is already flipped.
func (p Plane) axes(v geometry.Vector3) (h, v2 float64) {
	if p == SideView {
		return v.X, -v.Y
	}
	return v.X, v.Z
}

// View maps one plane of the tank onto a rectangle of the screen,
// keeping the aspect ratio and centering the tank in it.
type View struct {
	Plane         Plane
	X, Y          float64 // top-left corner on screen
	Width, Height float64
	scale         float64
	tankW, tankH  float64
}

// NewView fits the tank projection into the given screen rectangle.
func NewView(plane Plane, tank geometry.Vector3, x, y, width, height float64) View {
	tw, th := plane.axes(tank)
	th = math.Abs(th)
	scale := 0.0
	if tw > 0 && th > 0 {
		scale = math.Min(width/tw, height/th)
	}
	return View{Plane: plane, X: x, Y: y, Width: width, Height: height, scale: scale, tankW: tw, tankH: th}
}

// Scale returns screen pixels per world unit.
func (v View) Scale() float64 {
	return v.scale
}

// Project returns the screen position of a world point.
func (v View) Project(p geometry.Vector3) (float64, float64) {
	h, vert := v.Plane.axes(p)
	return v.X + v.Width/2 + h*v.scale, v.Y + v.Height/2 + vert*v.scale
}

// Direction returns the on-screen direction of a world vector, not normalised.
func (v View) Direction(d geometry.Vector3) (float64, float64) {
	return v.Plane.axes(d)
}

// TankRect returns the screen rectangle covered by the tank walls.
func (v View) TankRect() (x, y, w, h float64) {
	w, h = v.tankW*v.scale, v.tankH*v.scale
	return v.X + (v.Width-w)/2, v.Y + (v.Height-h)/2, w, h
}
