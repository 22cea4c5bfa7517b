package game

// StatMax is the upper bound for all narrative stats.
const StatMax = 100

// Stat is a bounded narrative counter in [0, StatMax]. All arithmetic
// saturates at the bounds instead of wrapping.
type Stat uint8

// Add returns the stat increased by n, clamped to StatMax.
func (s Stat) Add(n uint8) Stat {
	if uint16(s)+uint16(n) > StatMax {
		return StatMax
	}
	return s + Stat(n)
}

// Sub returns the stat decreased by n, clamped to zero.
func (s Stat) Sub(n uint8) Stat {
	if uint8(s) < n {
		return 0
	}
	return s - Stat(n)
}

// TrustMax bounds NPC trust deltas to [-TrustMax, TrustMax].
const TrustMax = 100

// Trust is a signed per-NPC relationship value in [-TrustMax, TrustMax].
type Trust int8

// Adjust returns the trust shifted by delta, clamped to the bounds.
func (t Trust) Adjust(delta int) Trust {
	v := int(t) + delta
	if v > TrustMax {
		return TrustMax
	}
	if v < -TrustMax {
		return -TrustMax
	}
	return Trust(v)
}
