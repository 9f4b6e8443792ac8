// Package shapes spawns procedural primitives (sphere, cuboid, cylinder,
// capsule, cone) as rigid-body ready prim structures.
//
// Every shape is authored as two prims:
//
//	{path}           Xform; rigid body, mass and articulation root if configured
//	{path}/geometry  the primitive; collision and material bindings
//
// When the articulation asks for a fixed root link the structure is extended
// with a dummy body and two fixed joints, see buildFixedBaseWrapper.
package shapes

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"shapespawn/internal/engine"
	"shapespawn/internal/materials"
	"shapespawn/internal/schemas"
)

// DefaultMaterialPath is where materials are authored, relative to the geometry prim.
const DefaultMaterialPath = "material"

// Spawner authors shapes into a store. Its collaborators are plain function
// fields so they can be swapped; NewSpawner wires the real ones.
type Spawner struct {
	Store  engine.Store
	Logger *zap.Logger

	CreateJoint          schemas.JointFunc
	SpawnVisualMaterial  materials.VisualFunc
	SpawnPhysicsMaterial materials.PhysicsFunc

	// Used when a shape leaves its material path empty.
	VisualMaterialPath  string
	PhysicsMaterialPath string
}

func NewSpawner(store engine.Store, logger *zap.Logger) *Spawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Spawner{
		Store:                store,
		Logger:               logger,
		CreateJoint:          schemas.CreateJoint,
		SpawnVisualMaterial:  materials.SpawnVisual,
		SpawnPhysicsMaterial: materials.SpawnPhysics,
		VisualMaterialPath:   DefaultMaterialPath,
		PhysicsMaterialPath:  DefaultMaterialPath,
	}
}

// SpawnSphere creates a sphere at path. A nil translation is the origin and a
// nil orientation is identity. It fails with *engine.PathCollisionError if
// path is occupied.
func (s *Spawner) SpawnSphere(path string, cfg *SphereCfg, translation *rl.Vector3, orientation *rl.Quaternion) (*engine.Prim, error) {
	return s.Spawn(path, cfg, translation, orientation)
}

// SpawnCuboid creates a box at path. The primitive is a cube with the
// smallest edge of cfg.Size, scaled per axis to the requested extents.
func (s *Spawner) SpawnCuboid(path string, cfg *CuboidCfg, translation *rl.Vector3, orientation *rl.Quaternion) (*engine.Prim, error) {
	return s.Spawn(path, cfg, translation, orientation)
}

func (s *Spawner) SpawnCylinder(path string, cfg *CylinderCfg, translation *rl.Vector3, orientation *rl.Quaternion) (*engine.Prim, error) {
	return s.Spawn(path, cfg, translation, orientation)
}

func (s *Spawner) SpawnCapsule(path string, cfg *CapsuleCfg, translation *rl.Vector3, orientation *rl.Quaternion) (*engine.Prim, error) {
	return s.Spawn(path, cfg, translation, orientation)
}

func (s *Spawner) SpawnCone(path string, cfg *ConeCfg, translation *rl.Vector3, orientation *rl.Quaternion) (*engine.Prim, error) {
	return s.Spawn(path, cfg, translation, orientation)
}

// Spawn creates any shape at path and returns its root prim.
func (s *Spawner) Spawn(path string, shape Shape, translation *rl.Vector3, orientation *rl.Quaternion) (*engine.Prim, error) {
	typ, attrs, scale, err := shape.geometry()
	if err != nil {
		return nil, fmt.Errorf("spawn at %s: %w", path, err)
	}
	cfg := shape.Common()
	if err := s.spawnGeom(path, cfg, typ, attrs, translation, orientation, scale); err != nil {
		return nil, err
	}
	root := s.Store.Get(path)
	if err := s.postSpawn(root, cfg); err != nil {
		return nil, err
	}
	s.Logger.Debug("spawned shape",
		zap.String("path", path),
		zap.String("type", string(typ)),
		zap.Bool("fixed_base", cfg.ArticulationProps.Fixed()))
	return root, nil
}

// postSpawn applies the asset-level options that are not part of the geometry.
func (s *Spawner) postSpawn(root *engine.Prim, cfg *ShapeCfg) error {
	if cfg.Visible != nil && !*cfg.Visible {
		root.SetAttribute("visibility", "invisible")
	}
	for _, tag := range cfg.SemanticTags {
		instance := semanticInstanceName(tag)
		root.ApplyAPI(engine.API("SemanticsAPI:" + instance))
		root.SetAttribute(fmt.Sprintf("semantic:%s:params:semanticType", instance), tag.Type)
		root.SetAttribute(fmt.Sprintf("semantic:%s:params:semanticData", instance), tag.Value)
	}
	if cfg.ActivateContactSensors {
		n, err := schemas.ActivateContactSensors(root)
		if err != nil {
			return fmt.Errorf("spawn at %s: %w", root.Path, err)
		}
		s.Logger.Debug("activated contact sensors", zap.String("path", root.Path), zap.Int("bodies", n))
	}
	return nil
}

func semanticInstanceName(tag SemanticTag) string {
	name := tag.Type + "_" + tag.Value
	out := []rune(name)
	for i, r := range out {
		if r == ' ' || r == '-' || r == '/' {
			out[i] = '_'
		}
	}
	return string(out)
}
