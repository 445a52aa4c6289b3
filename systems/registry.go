package systems

import "github.com/pthm-cable/bigfish/telemetry"

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the HUD and perf tracker stay in sync.
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

// registerDefaults adds all tick phases in execution order.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: telemetry.PhaseInput, Name: "Input", Description: "Drains queued target updates"})
	r.Register(SystemInfo{ID: telemetry.PhaseSpawn, Name: "Spawner", Description: "Creates obstacles on the spawn interval"})
	r.Register(SystemInfo{ID: telemetry.PhaseSteering, Name: "Steering", Description: "Seeks the target position"})
	r.Register(SystemInfo{ID: telemetry.PhasePhysics, Name: "Physics", Description: "Integrates motion and clamps to the field"})
	r.Register(SystemInfo{ID: telemetry.PhaseCollision, Name: "Collision", Description: "Consumes overlapping obstacles"})
	r.Register(SystemInfo{ID: telemetry.PhaseSweep, Name: "Sweeper", Description: "Retires obstacles past the trailing edge"})
	r.Register(SystemInfo{ID: telemetry.PhaseCompact, Name: "Compact", Description: "Removes retired entities"})
	r.Register(SystemInfo{ID: telemetry.PhaseTelemetry, Name: "Telemetry", Description: "Flushes window stats"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
