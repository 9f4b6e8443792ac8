package schemas

import "shapespawn/internal/engine"

// CollisionProps configures collision on a geometry prim.
type CollisionProps struct {
	CollisionEnabled        *bool    `yaml:"collision_enabled,omitempty" json:"collision_enabled,omitempty"`
	ContactOffset           *float32 `yaml:"contact_offset,omitempty" json:"contact_offset,omitempty"`
	RestOffset              *float32 `yaml:"rest_offset,omitempty" json:"rest_offset,omitempty"`
	TorsionalPatchRadius    *float32 `yaml:"torsional_patch_radius,omitempty" json:"torsional_patch_radius,omitempty"`
	MinTorsionalPatchRadius *float32 `yaml:"min_torsional_patch_radius,omitempty" json:"min_torsional_patch_radius,omitempty"`
}

// ToMap returns the set fields keyed by their snake_case names.
func (c *CollisionProps) ToMap() map[string]any {
	m := make(map[string]any)
	if c == nil {
		return m
	}
	put(m, "collision_enabled", c.CollisionEnabled)
	put(m, "contact_offset", c.ContactOffset)
	put(m, "rest_offset", c.RestOffset)
	put(m, "torsional_patch_radius", c.TorsionalPatchRadius)
	put(m, "min_torsional_patch_radius", c.MinTorsionalPatchRadius)
	return m
}

// DefineCollisionProperties applies the collision APIs to prim and authors props.
func DefineCollisionProperties(prim *engine.Prim, props *CollisionProps) error {
	if prim == nil {
		return errNilPrim("collision")
	}
	prim.ApplyAPI(engine.CollisionAPI)
	prim.ApplyAPI(engine.PhysxCollisionAPI)

	values := props.ToMap()
	SetAttributes(prim, NamespacePhysics, split(values, "collision_enabled"))
	SetAttributes(prim, NamespacePhysxCollision, values)
	return nil
}
