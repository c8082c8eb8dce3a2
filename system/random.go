package system

// Random is the subset of the shared generator systems draw from
type Random interface {
	IntRange(lo, hi int) int
	FloatRange(lo, hi float64) float64
	Chance(p float64) bool
}
