package materials

import (
	"fmt"

	"shapespawn/internal/engine"
)

const (
	RelVisualBinding  = "material:binding"
	RelPhysicsBinding = "material:binding:physics"
)

// BindVisualMaterial binds the material at materialPath to prim for rendering.
func BindVisualMaterial(store engine.Store, prim *engine.Prim, materialPath string) error {
	return bind(store, prim, materialPath, RelVisualBinding)
}

// BindPhysicsMaterial binds the material at materialPath to prim for simulation.
func BindPhysicsMaterial(store engine.Store, prim *engine.Prim, materialPath string) error {
	return bind(store, prim, materialPath, RelPhysicsBinding)
}

func bind(store engine.Store, prim *engine.Prim, materialPath, rel string) error {
	if prim == nil {
		return fmt.Errorf("bind %s: prim is nil", materialPath)
	}
	mat := store.Get(materialPath)
	if mat == nil || mat.Type != engine.TypeMaterial {
		return fmt.Errorf("bind %s to %s: %w", materialPath, prim.Path, ErrMaterialNotFound)
	}
	prim.ApplyAPI(engine.MaterialBindingAPI)
	prim.SetRelationship(rel, materialPath)
	return nil
}
