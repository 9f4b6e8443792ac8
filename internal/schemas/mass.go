package schemas

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shapespawn/internal/engine"
)

// MassProps configures the mass of a rigid body. If both are set, mass wins
// in the physics engine; density is only used when mass is unset.
type MassProps struct {
	Mass    *float32 `yaml:"mass,omitempty" json:"mass,omitempty"`
	Density *float32 `yaml:"density,omitempty" json:"density,omitempty"`
}

func (m *MassProps) ToMap() map[string]any {
	out := make(map[string]any)
	if m == nil {
		return out
	}
	put(out, "mass", m.Mass)
	put(out, "density", m.Density)
	return out
}

// DefineMassProperties applies the mass API to prim and authors props.
func DefineMassProperties(prim *engine.Prim, props *MassProps) error {
	if prim == nil {
		return errNilPrim("mass")
	}
	prim.ApplyAPI(engine.MassAPI)
	SetAttributes(prim, NamespacePhysics, props.ToMap())
	return nil
}

// SetMassInertia applies the mass API with an explicit mass and diagonal inertia.
func SetMassInertia(prim *engine.Prim, mass float32, diagonalInertia rl.Vector3) error {
	if prim == nil {
		return errNilPrim("mass")
	}
	prim.ApplyAPI(engine.MassAPI)
	prim.SetAttribute(AttributeName(NamespacePhysics, "mass"), mass)
	prim.SetAttribute(AttributeName(NamespacePhysics, "diagonal_inertia"), diagonalInertia)
	return nil
}
