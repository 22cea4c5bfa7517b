package geom

import (
	"encoding/json"
	"fmt"
	"math"
)

// Quat is a rotation quaternion. The wire format is a JSON array in
// [x, y, z, w] component order, matching the existing client encoding.
type Quat struct {
	X, Y, Z, W float32
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// AxisAngle builds a rotation of angle radians about the given axis.
// The axis is normalized first.
func AxisAngle(axis Vec3, angle float32) Quat {
	axis = axis.Normalize()
	half := float64(angle) / 2
	s := float32(math.Sin(half))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(half)),
	}
}

// Mul composes two rotations: the result applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u = (x, y, z)
	u := Vec3{q.X, q.Y, q.Z}
	c1 := cross(u, v)
	c2 := cross(u, c1)
	return v.Add(c1.Scale(2 * q.W)).Add(c2.Scale(2))
}

func (q Quat) Norm() float32 {
	return float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
}

// Normalize rescales q to unit length. A degenerate zero quaternion
// falls back to the identity.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n == 0 {
		return IdentityQuat()
	}
	return Quat{q.X / n, q.Y / n, q.Z / n, q.W / n}
}

func (q Quat) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float32{q.X, q.Y, q.Z, q.W})
}

func (q *Quat) UnmarshalJSON(data []byte) error {
	var arr [4]float32
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("parsing quaternion: %w", err)
	}
	q.X, q.Y, q.Z, q.W = arr[0], arr[1], arr[2], arr[3]
	return nil
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
