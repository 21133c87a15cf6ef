// Package lod implements distance-based level-of-detail resolution and
// level-indexed representation groups.
package lod

// Settings holds process-wide LOD configuration.
// It lives in the ECS world as a resource.
type Settings struct {
	// Bias is added to every resolved level before representation lookup.
	// Negative values favour detail, positive values favour cheaper forms.
	Bias int8 `yaml:"bias"`
}

// Apply adds the bias to level, saturating at 0 and 255.
func (s Settings) Apply(level uint8) uint8 {
	v := int(level) + int(s.Bias)
	if v < 0 {
		return 0
	}
	if v > MaxLevel {
		return MaxLevel
	}
	return uint8(v)
}
