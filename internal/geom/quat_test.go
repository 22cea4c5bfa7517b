package geom

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestQuatRotate(t *testing.T) {
	halfPi := float32(math.Pi / 2)

	tests := map[string]struct {
		q   Quat
		in  Vec3
		exp Vec3
	}{
		"identity": {
			q:   IdentityQuat(),
			in:  NewVec3(1, 2, 3),
			exp: NewVec3(1, 2, 3),
		},
		"yaw 90 turns forward to right": {
			q:   AxisAngle(AxisY, halfPi),
			in:  AxisZ,
			exp: AxisX,
		},
		"pitch 90 turns forward to up": {
			q:   AxisAngle(AxisX, -halfPi),
			in:  AxisZ,
			exp: AxisY,
		},
		"roll leaves forward alone": {
			q:   AxisAngle(AxisZ, halfPi),
			in:  AxisZ,
			exp: AxisZ,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assertVecNear(t, "rotated", tt.q.Rotate(tt.in), tt.exp)
		})
	}
}

func TestQuatMulComposes(t *testing.T) {
	quarter := AxisAngle(AxisY, float32(math.Pi/4))

	// Two 45 degree yaws are one 90 degree yaw.
	got := quarter.Mul(quarter).Rotate(AxisZ)
	assertVecNear(t, "composed", got, AxisX)
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 0, Y: 2, Z: 0, W: 2}

	n := q.Normalize()
	if math.Abs(float64(n.Norm()-1)) > eps {
		t.Errorf("norm: got %v, want 1", n.Norm())
	}

	// A degenerate quaternion falls back to identity instead of NaN.
	testutil.AssertEqual(t, "zero", Quat{}.Normalize(), IdentityQuat())
}

func TestQuatJSON(t *testing.T) {
	q := AxisAngle(AxisY, float32(math.Pi))

	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back Quat
	err = json.Unmarshal(data, &back)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "round trip", back, q)

	// Component order on the wire is [x, y, z, w].
	var arr [4]float32
	err = json.Unmarshal(data, &arr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "w last", arr[3], q.W)
}
