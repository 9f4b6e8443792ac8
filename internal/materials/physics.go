package materials

import (
	"errors"
	"fmt"
	"slices"

	"shapespawn/internal/engine"
	"shapespawn/internal/schemas"
)

const KindRigidBodyMaterial = "rigid_body_material"

// Combine modes for friction and restitution.
var combineModes = []string{"average", "min", "multiply", "max"}

var ErrCombineMode = errors.New("invalid combine mode")

// RigidBodyMaterialCfg is a physics material for rigid bodies.
type RigidBodyMaterialCfg struct {
	StaticFriction            float32 `yaml:"static_friction" json:"static_friction"`
	DynamicFriction           float32 `yaml:"dynamic_friction" json:"dynamic_friction"`
	Restitution               float32 `yaml:"restitution" json:"restitution"`
	FrictionCombineMode       string  `yaml:"friction_combine_mode" json:"friction_combine_mode"`
	RestitutionCombineMode    string  `yaml:"restitution_combine_mode" json:"restitution_combine_mode"`
	CompliantContactStiffness float32 `yaml:"compliant_contact_stiffness" json:"compliant_contact_stiffness"`
	CompliantContactDamping   float32 `yaml:"compliant_contact_damping" json:"compliant_contact_damping"`
}

func NewRigidBodyMaterial() *RigidBodyMaterialCfg {
	return &RigidBodyMaterialCfg{
		StaticFriction:         0.5,
		DynamicFriction:        0.5,
		FrictionCombineMode:    "average",
		RestitutionCombineMode: "average",
	}
}

func (*RigidBodyMaterialCfg) Kind() string { return KindRigidBodyMaterial }

// Validate checks the combine modes.
func (c *RigidBodyMaterialCfg) Validate() error {
	for _, mode := range []string{c.FrictionCombineMode, c.RestitutionCombineMode} {
		if !slices.Contains(combineModes, mode) {
			return fmt.Errorf("%w: %q (want one of %v)", ErrCombineMode, mode, combineModes)
		}
	}
	return nil
}

func spawnRigidBodyMaterial(store engine.Store, p string, cfg PhysicsMaterialCfg) (*engine.Prim, error) {
	c, ok := cfg.(*RigidBodyMaterialCfg)
	if !ok {
		return nil, fmt.Errorf("rigid body material: unexpected config %T", cfg)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("rigid body material at %s: %w", p, err)
	}
	// A material already at p, such as the visual material of the same shape,
	// gets the physics schemas added on top.
	mat, _, err := defineMaterialPrim(store, p)
	if err != nil {
		return nil, err
	}
	mat.ApplyAPI(engine.PhysicsMaterialAPI)
	mat.ApplyAPI(engine.PhysxMaterialAPI)
	schemas.SetAttributes(mat, schemas.NamespacePhysics, map[string]any{
		"static_friction":  c.StaticFriction,
		"dynamic_friction": c.DynamicFriction,
		"restitution":      c.Restitution,
	})
	schemas.SetAttributes(mat, schemas.NamespacePhysxMaterial, map[string]any{
		"friction_combine_mode":       c.FrictionCombineMode,
		"restitution_combine_mode":    c.RestitutionCombineMode,
		"compliant_contact_stiffness": c.CompliantContactStiffness,
		"compliant_contact_damping":   c.CompliantContactDamping,
	})
	return mat, nil
}
