package shapes

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"shapespawn/internal/engine"
	"shapespawn/internal/materials"
	"shapespawn/internal/schemas"
)

// GeometryName is the child of every shape root that holds the primitive.
const GeometryName = "geometry"

// spawnGeom builds the root/geometry pair and applies the shared properties.
//
// Rigid body, mass and articulation root go on last and on the root, not the
// geometry: when the geometry is later made instanceable the prototype is
// shared, and those properties must stay per instance.
func (s *Spawner) spawnGeom(
	rootPath string,
	cfg *ShapeCfg,
	primType engine.PrimType,
	attrs map[string]any,
	translation *rl.Vector3,
	orientation *rl.Quaternion,
	scale *rl.Vector3,
) error {
	if s.Store.Exists(rootPath) {
		return &engine.PathCollisionError{Path: rootPath}
	}

	xf := engine.IdentityTransform()
	if translation != nil {
		xf.Translation = *translation
	}
	if orientation != nil {
		xf.Orientation = *orientation
	}
	root, err := s.Store.Create(rootPath, engine.TypeXform, &xf, nil)
	if err != nil {
		return err
	}

	geomPath := engine.JoinPath(rootPath, GeometryName)
	geomXf := engine.IdentityTransform()
	if scale != nil {
		geomXf.Scale = *scale
	}
	geom, err := s.Store.Create(geomPath, primType, &geomXf, attrs)
	if err != nil {
		return fmt.Errorf("create geometry at %s: %w", geomPath, err)
	}

	if cfg.CollisionProps != nil {
		if err := schemas.DefineCollisionProperties(geom, cfg.CollisionProps); err != nil {
			return err
		}
	}

	if cfg.VisualMaterial != nil {
		matPath := resolveMaterialPath(geomPath, cfg.VisualMaterialPath, s.VisualMaterialPath)
		if s.Store.Exists(matPath) {
			s.Logger.Debug("visual material already authored, reusing it",
				zap.String("path", matPath), zap.String("ignored_kind", cfg.VisualMaterial.Kind()))
		}
		mat, err := s.SpawnVisualMaterial(s.Store, matPath, cfg.VisualMaterial)
		if err != nil {
			return fmt.Errorf("spawn visual material at %s: %w", matPath, err)
		}
		// nil means no rendering backend; the shape stays unshaded
		if mat != nil {
			if err := materials.BindVisualMaterial(s.Store, geom, matPath); err != nil {
				return err
			}
		} else {
			s.Logger.Debug("visual material skipped", zap.String("path", matPath))
		}
	}

	if cfg.PhysicsMaterial != nil {
		matPath := resolveMaterialPath(geomPath, cfg.PhysicsMaterialPath, s.PhysicsMaterialPath)
		if s.Store.Exists(matPath) {
			s.Logger.Debug("physics material authored onto existing material",
				zap.String("path", matPath), zap.String("kind", cfg.PhysicsMaterial.Kind()))
		}
		mat, err := s.SpawnPhysicsMaterial(s.Store, matPath, cfg.PhysicsMaterial)
		if err != nil {
			return fmt.Errorf("spawn physics material at %s: %w", matPath, err)
		}
		if mat == nil {
			return &MaterialResolutionError{Path: matPath}
		}
		if err := materials.BindPhysicsMaterial(s.Store, geom, matPath); err != nil {
			return err
		}
	}

	if cfg.MassProps != nil {
		if err := schemas.DefineMassProperties(root, cfg.MassProps); err != nil {
			return err
		}
	}
	if cfg.RigidProps != nil {
		if err := schemas.DefineRigidBodyProperties(root, cfg.RigidProps); err != nil {
			return err
		}
	}
	if cfg.ArticulationProps != nil {
		if cfg.ArticulationProps.Fixed() {
			return s.buildFixedBaseWrapper(root, cfg.ArticulationProps)
		}
		return schemas.DefineArticulationRootProperties(root, cfg.ArticulationProps)
	}
	return nil
}

// resolveMaterialPath nests relative paths under the geometry prim.
func resolveMaterialPath(geomPath, configured, fallback string) string {
	p := configured
	if p == "" {
		p = fallback
	}
	if p == "" {
		p = DefaultMaterialPath
	}
	if engine.IsAbsolute(p) {
		return p
	}
	return engine.JoinPath(geomPath, p)
}
