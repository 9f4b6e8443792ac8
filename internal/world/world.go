// Package world builds a stage from a manifest of shapes and checks the
// structures it produced.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"shapespawn/internal/config"
	"shapespawn/internal/engine"
	"shapespawn/internal/physics"
	"shapespawn/internal/spawners"
	"shapespawn/internal/spawners/shapes"
)

type World struct {
	Stage   *engine.Stage
	Spawner *shapes.Spawner
	Logger  *zap.Logger

	spawned []spawnRecord
}

type spawnRecord struct {
	root         *engine.Prim
	kind         string
	fixedBase    bool
	articulation bool
}

// New creates an empty stage configured from cfg. A nil cfg uses the defaults.
func New(name string, cfg *config.Config, logger *zap.Logger) *World {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	stage := engine.NewStage(name)
	stage.Headless = cfg.Stage.Headless
	stage.UpAxis = cfg.Stage.UpAxis
	stage.MetersPerUnit = cfg.Stage.MetersPerUnit

	logger = logger.With(zap.String("stage", stage.ID.String()))
	stage.PrimCreated.AddListener(func(p *engine.Prim) {
		logger.Debug("prim created", zap.String("path", p.Path), zap.String("type", string(p.Type)))
	})

	sp := shapes.NewSpawner(stage, logger)
	if cfg.Spawn.VisualMaterialPath != "" {
		sp.VisualMaterialPath = cfg.Spawn.VisualMaterialPath
	}
	if cfg.Spawn.PhysicsMaterialPath != "" {
		sp.PhysicsMaterialPath = cfg.Spawn.PhysicsMaterialPath
	}

	return &World{
		Stage:   stage,
		Spawner: sp,
		Logger:  logger,
	}
}

// Build spawns every object of m in order and returns the created roots.
// It stops at the first failure; objects spawned before it stay on the stage.
func (w *World) Build(m *Manifest) ([]*engine.Prim, error) {
	var roots []*engine.Prim
	for i := range m.Objects {
		created, err := w.SpawnObject(&m.Objects[i])
		roots = append(roots, created...)
		if err != nil {
			return roots, fmt.Errorf("object %d (%s): %w", i, m.Objects[i].Path, err)
		}
	}
	w.Logger.Info("stage built",
		zap.Int("objects", len(m.Objects)),
		zap.Int("roots", len(roots)),
		zap.Int("prims", w.Stage.Len()))
	return roots, nil
}

// SpawnObject spawns a single manifest entry, once per path its pattern matches.
func (w *World) SpawnObject(def *ObjectDef) ([]*engine.Prim, error) {
	shape, err := def.Shape()
	if err != nil {
		return nil, err
	}
	translation, orientation := def.Pose()
	place := func(path string, s shapes.Shape) (*engine.Prim, error) {
		return w.Spawner.Spawn(path, s, translation, orientation)
	}

	var roots []*engine.Prim
	switch cfg := shape.(type) {
	case *shapes.SphereCfg:
		roots, err = expand(w.Stage, def.Path, cfg, place)
	case *shapes.CuboidCfg:
		roots, err = expand(w.Stage, def.Path, cfg, place)
	case *shapes.CylinderCfg:
		roots, err = expand(w.Stage, def.Path, cfg, place)
	case *shapes.CapsuleCfg:
		roots, err = expand(w.Stage, def.Path, cfg, place)
	case *shapes.ConeCfg:
		roots, err = expand(w.Stage, def.Path, cfg, place)
	}

	common := shape.Common()
	for _, r := range roots {
		w.spawned = append(w.spawned, spawnRecord{
			root:         r,
			kind:         def.Type,
			fixedBase:    common.ArticulationProps.Fixed(),
			articulation: common.ArticulationProps != nil,
		})
	}
	return roots, err
}

// expand runs place over every path pattern names with a private copy of cfg.
func expand[C any, P interface {
	*C
	shapes.Shape
}](doc engine.Document, pattern string, cfg P, place func(string, shapes.Shape) (*engine.Prim, error)) ([]*engine.Prim, error) {
	return spawners.Expand[C](doc, pattern, (*C)(cfg), func(path string, c *C) (*engine.Prim, error) {
		return place(path, P(c))
	})
}

// Roots returns the root prims spawned so far, in spawn order.
func (w *World) Roots() []*engine.Prim {
	out := make([]*engine.Prim, len(w.spawned))
	for i, r := range w.spawned {
		out[i] = r.root
	}
	return out
}

// Overlaps reports spawned shapes whose geometry bounds intersect.
func (w *World) Overlaps() ([]physics.Overlap, error) {
	var geoms []*engine.Prim
	for _, r := range w.spawned {
		if g := r.root.Child(shapes.GeometryName); g != nil {
			geoms = append(geoms, g)
		}
	}
	return physics.FindOverlaps(geoms, nil)
}

// Summary counts the spawned roots per shape kind.
func (w *World) Summary() map[string]int {
	counts := make(map[string]int)
	for _, r := range w.spawned {
		counts[r.kind]++
	}
	return counts
}
