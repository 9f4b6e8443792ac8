package schemas

import (
	"errors"
	"fmt"

	"shapespawn/internal/engine"
)

// ErrNilPrim is returned when a schema is applied to a missing prim.
var ErrNilPrim = errors.New("prim is nil")

func errNilPrim(schema string) error {
	return fmt.Errorf("apply %s properties: %w", schema, ErrNilPrim)
}

// RigidBodyProps configures a rigid body.
type RigidBodyProps struct {
	RigidBodyEnabled             *bool    `yaml:"rigid_body_enabled,omitempty" json:"rigid_body_enabled,omitempty"`
	KinematicEnabled             *bool    `yaml:"kinematic_enabled,omitempty" json:"kinematic_enabled,omitempty"`
	DisableGravity               *bool    `yaml:"disable_gravity,omitempty" json:"disable_gravity,omitempty"`
	LinearDamping                *float32 `yaml:"linear_damping,omitempty" json:"linear_damping,omitempty"`
	AngularDamping               *float32 `yaml:"angular_damping,omitempty" json:"angular_damping,omitempty"`
	MaxLinearVelocity            *float32 `yaml:"max_linear_velocity,omitempty" json:"max_linear_velocity,omitempty"`
	MaxAngularVelocity           *float32 `yaml:"max_angular_velocity,omitempty" json:"max_angular_velocity,omitempty"` // deg/s
	MaxDepenetrationVelocity     *float32 `yaml:"max_depenetration_velocity,omitempty" json:"max_depenetration_velocity,omitempty"`
	MaxContactImpulse            *float32 `yaml:"max_contact_impulse,omitempty" json:"max_contact_impulse,omitempty"`
	EnableGyroscopicForces       *bool    `yaml:"enable_gyroscopic_forces,omitempty" json:"enable_gyroscopic_forces,omitempty"`
	RetainAccelerations          *bool    `yaml:"retain_accelerations,omitempty" json:"retain_accelerations,omitempty"`
	SolverPositionIterationCount *int     `yaml:"solver_position_iteration_count,omitempty" json:"solver_position_iteration_count,omitempty"`
	SolverVelocityIterationCount *int     `yaml:"solver_velocity_iteration_count,omitempty" json:"solver_velocity_iteration_count,omitempty"`
	SleepThreshold               *float32 `yaml:"sleep_threshold,omitempty" json:"sleep_threshold,omitempty"`
	StabilizationThreshold       *float32 `yaml:"stabilization_threshold,omitempty" json:"stabilization_threshold,omitempty"`
}

func (r *RigidBodyProps) ToMap() map[string]any {
	m := make(map[string]any)
	if r == nil {
		return m
	}
	put(m, "rigid_body_enabled", r.RigidBodyEnabled)
	put(m, "kinematic_enabled", r.KinematicEnabled)
	put(m, "disable_gravity", r.DisableGravity)
	put(m, "linear_damping", r.LinearDamping)
	put(m, "angular_damping", r.AngularDamping)
	put(m, "max_linear_velocity", r.MaxLinearVelocity)
	put(m, "max_angular_velocity", r.MaxAngularVelocity)
	put(m, "max_depenetration_velocity", r.MaxDepenetrationVelocity)
	put(m, "max_contact_impulse", r.MaxContactImpulse)
	put(m, "enable_gyroscopic_forces", r.EnableGyroscopicForces)
	put(m, "retain_accelerations", r.RetainAccelerations)
	put(m, "solver_position_iteration_count", r.SolverPositionIterationCount)
	put(m, "solver_velocity_iteration_count", r.SolverVelocityIterationCount)
	put(m, "sleep_threshold", r.SleepThreshold)
	put(m, "stabilization_threshold", r.StabilizationThreshold)
	return m
}

// DefineRigidBodyProperties applies the rigid body APIs to prim and authors props.
func DefineRigidBodyProperties(prim *engine.Prim, props *RigidBodyProps) error {
	if prim == nil {
		return errNilPrim("rigid body")
	}
	prim.ApplyAPI(engine.RigidBodyAPI)
	prim.ApplyAPI(engine.PhysxRigidBodyAPI)

	values := props.ToMap()
	SetAttributes(prim, NamespacePhysics, split(values, "rigid_body_enabled", "kinematic_enabled"))
	SetAttributes(prim, NamespacePhysxRigidBody, values)
	return nil
}

// RemoveRigidBody detaches both rigid body APIs from prim.
// It reports whether the core rigid body API was applied.
func RemoveRigidBody(prim *engine.Prim) bool {
	prim.RemoveAPI(engine.PhysxRigidBodyAPI)
	return prim.RemoveAPI(engine.RigidBodyAPI)
}
