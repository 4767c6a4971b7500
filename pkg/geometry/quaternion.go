package geometry

import (
	"fmt"
	"math"
)

// Quaternion is a rotation in 3D space stored as (X, Y, Z, W), W being the scalar part.
type Quaternion struct {
	X, Y, Z, W float64
}

// Identity is the rotation that leaves every vector unchanged.
var Identity = Quaternion{W: 1}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", q.X, q.Y, q.Z, q.W)
}

// QuaternionFromUnitVectors returns the shortest rotation taking the unit vector
// from onto the unit vector to. Both arguments must already be normalized.
func QuaternionFromUnitVectors(from, to Vector3) Quaternion {
	r := from.Dot(to) + 1
	if r < Epsilon {
		// Opposite vectors: rotate half a turn around any axis orthogonal to from.
		if math.Abs(from.X) > math.Abs(from.Z) {
			return Quaternion{X: -from.Y, Y: from.X, Z: 0, W: 0}.Normalize()
		}
		return Quaternion{X: 0, Y: -from.Z, Z: from.Y, W: 0}.Normalize()
	}
	c := from.Cross(to)
	return Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: r}.Normalize()
}

// Dot returns the 4D dot product of two quaternions.
func (q Quaternion) Dot(o Quaternion) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Len returns the norm of the quaternion.
func (q Quaternion) Len() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns the unit quaternion, or Identity for a null quaternion.
func (q Quaternion) Normalize() Quaternion {
	l := q.Len()
	if l < Epsilon {
		return Identity
	}
	return Quaternion{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Mul returns the Hamilton product q * o (apply o first, then q).
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	// v' = v + 2w(u × v) + 2u × (u × v), u being the vector part
	u := Vector3{q.X, q.Y, q.Z}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// Slerp spherically interpolates from q toward to by t in [0, 1],
// always following the shortest arc.
func (q Quaternion) Slerp(to Quaternion, t float64) Quaternion {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return to
	}
	cosHalf := q.Dot(to)
	if cosHalf < 0 {
		to = Quaternion{-to.X, -to.Y, -to.Z, -to.W}
		cosHalf = -cosHalf
	}
	if cosHalf >= 1-Epsilon {
		return to
	}

	halfTheta := math.Acos(cosHalf)
	sinHalf := math.Sin(halfTheta)
	if sinHalf < 1e-6 {
		// nearly parallel, fall back to normalized lerp
		return Quaternion{
			X: q.X + (to.X-q.X)*t,
			Y: q.Y + (to.Y-q.Y)*t,
			Z: q.Z + (to.Z-q.Z)*t,
			W: q.W + (to.W-q.W)*t,
		}.Normalize()
	}
	a := math.Sin((1-t)*halfTheta) / sinHalf
	b := math.Sin(t*halfTheta) / sinHalf
	return Quaternion{
		X: q.X*a + to.X*b,
		Y: q.Y*a + to.Y*b,
		Z: q.Z*a + to.Z*b,
		W: q.W*a + to.W*b,
	}
}

// Eq checks if two quaternions describe the same rotation within Epsilon.
// q and -q are the same rotation.
func (q Quaternion) Eq(o Quaternion) bool {
	return math.Abs(math.Abs(q.Dot(o))-1) <= 1e-6
}
