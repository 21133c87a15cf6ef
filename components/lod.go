// Package components defines ECS components for the LOD demo.
package components

// CurrentLOD holds an entity's resolved level of detail.
// Level 0 is the most detailed representation.
type CurrentLOD struct {
	Level   uint8
	changed bool
}

// Set writes a resolved level. The change flag is raised only when the
// value differs from the stored one.
func (c *CurrentLOD) Set(level uint8) bool {
	if c.Level == level {
		return false
	}
	c.Level = level
	c.changed = true
	return true
}

// Changed reports whether the level changed since the last ClearChanged.
func (c *CurrentLOD) Changed() bool {
	return c.changed
}

// ClearChanged acknowledges the current level.
func (c *CurrentLOD) ClearChanged() {
	c.changed = false
}
