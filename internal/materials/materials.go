// Package materials authors visual and physics materials and binds them to prims.
//
// Factories are registered by kind at init time and looked up through the
// registries; callers never resolve factories by import path.
package materials

import (
	"errors"
	"fmt"

	"shapespawn/internal/engine"
)

var (
	ErrUnknownMaterial  = errors.New("unknown material kind")
	ErrMaterialNotFound = errors.New("material not found")
)

// VisualMaterialCfg is the configuration of a visual (rendering) material.
type VisualMaterialCfg interface {
	Kind() string
}

// PhysicsMaterialCfg is the configuration of a physics material.
type PhysicsMaterialCfg interface {
	Kind() string
}

// VisualFunc authors a visual material at path. It returns a nil prim and no
// error when no rendering backend is available.
type VisualFunc func(store engine.Store, path string, cfg VisualMaterialCfg) (*engine.Prim, error)

// PhysicsFunc authors a physics material at path.
type PhysicsFunc func(store engine.Store, path string, cfg PhysicsMaterialCfg) (*engine.Prim, error)

var (
	VisualFactories  = engine.NewRegistry[VisualFunc]("visual material")
	PhysicsFactories = engine.NewRegistry[PhysicsFunc]("physics material")

	// Constructors returning each kind's configuration with its defaults
	// filled in, used when decoding configurations by kind.
	visualDefaults  = engine.NewRegistry[func() VisualMaterialCfg]("visual material config")
	physicsDefaults = engine.NewRegistry[func() PhysicsMaterialCfg]("physics material config")
)

func init() {
	VisualFactories.Register(KindPreviewSurface, spawnPreviewSurface)
	VisualFactories.Register(KindMdlFile, spawnMdlFile)
	VisualFactories.Register(KindGlassMdl, spawnGlassMdl)
	PhysicsFactories.Register(KindRigidBodyMaterial, spawnRigidBodyMaterial)

	visualDefaults.Register(KindPreviewSurface, func() VisualMaterialCfg { return NewPreviewSurface() })
	visualDefaults.Register(KindMdlFile, func() VisualMaterialCfg { return &MdlFileCfg{} })
	visualDefaults.Register(KindGlassMdl, func() VisualMaterialCfg { return NewGlassMdl() })
	physicsDefaults.Register(KindRigidBodyMaterial, func() PhysicsMaterialCfg { return NewRigidBodyMaterial() })
}

// NewVisualConfig returns a default configuration of the given kind.
func NewVisualConfig(kind string) (VisualMaterialCfg, error) {
	ctor, ok := visualDefaults.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: visual %q", ErrUnknownMaterial, kind)
	}
	return ctor(), nil
}

// NewPhysicsConfig returns a default configuration of the given kind.
func NewPhysicsConfig(kind string) (PhysicsMaterialCfg, error) {
	ctor, ok := physicsDefaults.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: physics %q", ErrUnknownMaterial, kind)
	}
	return ctor(), nil
}

// SpawnVisual dispatches to the factory registered for cfg.Kind().
func SpawnVisual(store engine.Store, path string, cfg VisualMaterialCfg) (*engine.Prim, error) {
	fn, ok := VisualFactories.Lookup(cfg.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: visual %q", ErrUnknownMaterial, cfg.Kind())
	}
	return fn(store, path, cfg)
}

// SpawnPhysics dispatches to the factory registered for cfg.Kind().
func SpawnPhysics(store engine.Store, path string, cfg PhysicsMaterialCfg) (*engine.Prim, error) {
	fn, ok := PhysicsFactories.Lookup(cfg.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: physics %q", ErrUnknownMaterial, cfg.Kind())
	}
	return fn(store, path, cfg)
}

// defineMaterialPrim creates a material prim at path, or returns the existing one if a
// material is already authored there so several shapes can share it.
// The bool reports whether the prim was created.
func defineMaterialPrim(store engine.Store, path string) (*engine.Prim, bool, error) {
	if existing := store.Get(path); existing != nil {
		if existing.Type != engine.TypeMaterial {
			return nil, false, &engine.PathCollisionError{Path: path}
		}
		return existing, false, nil
	}
	p, err := store.Create(path, engine.TypeMaterial, nil, nil)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func renderingAvailable(store engine.Store) bool {
	rt, ok := store.(engine.RenderTarget)
	return !ok || rt.RenderingAvailable()
}
