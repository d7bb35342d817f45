package lighting

// BiasBand is the slope-scaled shadow depth bias range for a surface type.
// The shaded programs apply max(Max*(1-N.L), Min).
type BiasBand struct {
	Min, Max float32
}
