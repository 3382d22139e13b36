package sequence

// Ease names an easing curve applied to normalized move time.
type Ease string

const (
	EaseLinear Ease = "linear"
	EaseSmooth Ease = "smooth"
	EaseCubic  Ease = "cubic"
)

// clamp01 clamps x in [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// smootherstep for Ease="cubic"
func smootherstep(x float64) float64 {
	// 6x^5 - 15x^4 + 10x^3
	return x * x * x * (x*(x*6-15) + 10)
}

// Apply maps normalized time x through the curve. Unknown names fall
// back to linear.
func (e Ease) Apply(x float64) float64 {
	switch e {
	case EaseLinear, "":
		return x
	case EaseSmooth:
		// classic smoothstep 3x^2 - 2x^3
		return x * x * (3 - 2*x)
	case EaseCubic:
		return smootherstep(x)
	default:
		return x
	}
}
