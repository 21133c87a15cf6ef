package systems

// SystemInfo describes a frame system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "lod", "scene")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry, in frame order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "camera", Name: "Camera", Description: "Moves the viewpoint rig", Category: "input"})
	r.Register(SystemInfo{ID: "motion", Name: "Motion", Description: "Drifts moving objects", Category: "scene"})
	r.Register(SystemInfo{ID: "transform", Name: "Transform", Description: "Latches transform changes", Category: "scene"})

	r.Register(SystemInfo{ID: "lod_coarse", Name: "LOD Coarse", Description: "Re-resolves all levels after viewpoint movement", Category: "lod"})
	r.Register(SystemInfo{ID: "lod_fine", Name: "LOD Fine", Description: "Re-resolves levels of moved objects", Category: "lod"})
	r.Register(SystemInfo{ID: "lod_swap", Name: "LOD Swap", Description: "Installs representations for changed levels", Category: "lod"})

	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Collects LOD statistics", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// ByCategory returns systems filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
