package gesture

// MaxPullDistanceDp caps the pull threshold on tall containers.
const MaxPullDistanceDp float32 = 300

// DefaultTouchSlopDp matches the platform default scaled touch slop.
const DefaultTouchSlopDp float32 = 8

// Config is supplied when a container binds to a Machine
type Config struct {
	TouchSlopPx       int
	ContainerHeightPx int
	DensityScale      float32
	// MaxPullDistanceDp overrides the threshold cap when positive
	MaxPullDistanceDp float32
}

// PullThreshold returns the pull distance in pixels that commits to a refresh:
// a third of the container height, capped at the max pull distance.
func PullThreshold(cfg Config) float32 {
	density := cfg.DensityScale
	if density <= 0 {
		density = 1
	}
	maxDp := MaxPullDistanceDp
	if cfg.MaxPullDistanceDp > 0 {
		maxDp = cfg.MaxPullDistanceDp
	}
	byHeight := float32(cfg.ContainerHeightPx) / 3
	return min(byHeight, maxDp*density)
}

// TouchSlopPx converts a slop in dp to whole pixels for the given density.
func TouchSlopPx(slopDp, density float32) int {
	if density <= 0 {
		density = 1
	}
	return int(slopDp*density + 0.5)
}
