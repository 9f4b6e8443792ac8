package schemas

import "shapespawn/internal/engine"

// ArticulationRootProps configures the root of an articulation.
type ArticulationRootProps struct {
	ArticulationEnabled          *bool    `yaml:"articulation_enabled,omitempty" json:"articulation_enabled,omitempty"`
	EnabledSelfCollisions        *bool    `yaml:"enabled_self_collisions,omitempty" json:"enabled_self_collisions,omitempty"`
	SolverPositionIterationCount *int     `yaml:"solver_position_iteration_count,omitempty" json:"solver_position_iteration_count,omitempty"`
	SolverVelocityIterationCount *int     `yaml:"solver_velocity_iteration_count,omitempty" json:"solver_velocity_iteration_count,omitempty"`
	SleepThreshold               *float32 `yaml:"sleep_threshold,omitempty" json:"sleep_threshold,omitempty"`
	StabilizationThreshold       *float32 `yaml:"stabilization_threshold,omitempty" json:"stabilization_threshold,omitempty"`

	// FixRootLink asks for the root link to be welded to the world.
	FixRootLink *bool `yaml:"fix_root_link,omitempty" json:"fix_root_link,omitempty"`
}

// Fixed reports whether a fixed base was requested.
func (a *ArticulationRootProps) Fixed() bool {
	return a != nil && a.FixRootLink != nil && *a.FixRootLink
}

// ToMap returns the set fields keyed by snake_case name, fix_root_link included.
func (a *ArticulationRootProps) ToMap() map[string]any {
	m := make(map[string]any)
	if a == nil {
		return m
	}
	put(m, "articulation_enabled", a.ArticulationEnabled)
	put(m, "enabled_self_collisions", a.EnabledSelfCollisions)
	put(m, "solver_position_iteration_count", a.SolverPositionIterationCount)
	put(m, "solver_velocity_iteration_count", a.SolverVelocityIterationCount)
	put(m, "sleep_threshold", a.SleepThreshold)
	put(m, "stabilization_threshold", a.StabilizationThreshold)
	put(m, "fix_root_link", a.FixRootLink)
	return m
}

// ArticulationAttributes returns the engine attributes for props, keyed by
// their namespaced names. fix_root_link is structural and never authored.
func ArticulationAttributes(props *ArticulationRootProps) map[string]any {
	values := props.ToMap()
	delete(values, "fix_root_link")
	out := make(map[string]any, len(values))
	for field, v := range values {
		out[AttributeName(NamespacePhysxArticulation, field)] = v
	}
	return out
}

// DefineArticulationRootProperties applies the articulation root APIs to prim
// and authors props. It does not build any fixed-base structure.
func DefineArticulationRootProperties(prim *engine.Prim, props *ArticulationRootProps) error {
	if prim == nil {
		return errNilPrim("articulation root")
	}
	prim.ApplyAPI(engine.ArticulationRootAPI)
	prim.ApplyAPI(engine.PhysxArticulationAPI)
	for name, v := range ArticulationAttributes(props) {
		prim.SetAttribute(name, v)
	}
	return nil
}
