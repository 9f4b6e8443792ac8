package world

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"shapespawn/internal/materials"
	"shapespawn/internal/schemas"
	"shapespawn/internal/spawners/shapes"
)

// Shape kinds accepted in the manifest "type" field.
const (
	KindSphere   = "sphere"
	KindCuboid   = "cuboid"
	KindCylinder = "cylinder"
	KindCapsule  = "capsule"
	KindCone     = "cone"
)

var ShapeKinds = []string{KindCapsule, KindCone, KindCuboid, KindCylinder, KindSphere}

var ErrUnknownShape = errors.New("unknown shape type")

// --- YAML types ---

type Manifest struct {
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef is one spawn request. Path may use a regular expression in its
// parent part to spawn the same object under several prims.
type ObjectDef struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`

	Translation *[3]float32 `yaml:"translation,omitempty"`
	Orientation *[4]float32 `yaml:"orientation,omitempty"` // w, x, y, z

	// Shape dimensions; which apply depends on Type.
	Radius float32    `yaml:"radius,omitempty"`
	Height float32    `yaml:"height,omitempty"`
	Axis   string     `yaml:"axis,omitempty"`
	Size   [3]float32 `yaml:"size,omitempty"`

	Collision    *schemas.CollisionProps        `yaml:"collision,omitempty"`
	Mass         *schemas.MassProps             `yaml:"mass,omitempty"`
	RigidBody    *schemas.RigidBodyProps        `yaml:"rigid_body,omitempty"`
	Articulation *schemas.ArticulationRootProps `yaml:"articulation,omitempty"`

	// Decoded by their kind field once the object type is known.
	VisualMaterial      yaml.Node `yaml:"visual_material,omitempty"`
	VisualMaterialPath  string    `yaml:"visual_material_path,omitempty"`
	PhysicsMaterial     yaml.Node `yaml:"physics_material,omitempty"`
	PhysicsMaterialPath string    `yaml:"physics_material_path,omitempty"`

	Visible                *bool                `yaml:"visible,omitempty"`
	SemanticTags           []shapes.SemanticTag `yaml:"semantic_tags,omitempty"`
	ActivateContactSensors bool                 `yaml:"activate_contact_sensors,omitempty"`
}

type materialHeader struct {
	Kind string `yaml:"kind"`
}

// --- Loading ---

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a manifest. Unknown fields are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	for i, obj := range m.Objects {
		if obj.Path == "" {
			return nil, fmt.Errorf("parse manifest: object %d has no path", i)
		}
	}
	return &m, nil
}

// Shape builds the spawner configuration for the object.
func (d *ObjectDef) Shape() (shapes.Shape, error) {
	common, err := d.common()
	if err != nil {
		return nil, err
	}
	switch d.Type {
	case KindSphere:
		return &shapes.SphereCfg{ShapeCfg: common, Radius: d.Radius}, nil
	case KindCuboid:
		return &shapes.CuboidCfg{ShapeCfg: common, Size: d.Size}, nil
	case KindCylinder:
		return &shapes.CylinderCfg{ShapeCfg: common, Radius: d.Radius, Height: d.Height, Axis: d.Axis}, nil
	case KindCapsule:
		return &shapes.CapsuleCfg{ShapeCfg: common, Radius: d.Radius, Height: d.Height, Axis: d.Axis}, nil
	case KindCone:
		return &shapes.ConeCfg{ShapeCfg: common, Radius: d.Radius, Height: d.Height, Axis: d.Axis}, nil
	}
	return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownShape, d.Type, ShapeKinds)
}

func (d *ObjectDef) common() (shapes.ShapeCfg, error) {
	cfg := shapes.ShapeCfg{
		CollisionProps:         d.Collision,
		VisualMaterialPath:     d.VisualMaterialPath,
		PhysicsMaterialPath:    d.PhysicsMaterialPath,
		MassProps:              d.Mass,
		RigidProps:             d.RigidBody,
		ArticulationProps:      d.Articulation,
		Visible:                d.Visible,
		SemanticTags:           d.SemanticTags,
		ActivateContactSensors: d.ActivateContactSensors,
	}

	if d.VisualMaterial.Kind != 0 {
		var header materialHeader
		if err := d.VisualMaterial.Decode(&header); err != nil {
			return cfg, fmt.Errorf("%s: visual material: %w", d.Path, err)
		}
		vm, err := materials.NewVisualConfig(header.Kind)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", d.Path, err)
		}
		if err := d.VisualMaterial.Decode(vm); err != nil {
			return cfg, fmt.Errorf("%s: visual material: %w", d.Path, err)
		}
		cfg.VisualMaterial = vm
	}

	if d.PhysicsMaterial.Kind != 0 {
		var header materialHeader
		if err := d.PhysicsMaterial.Decode(&header); err != nil {
			return cfg, fmt.Errorf("%s: physics material: %w", d.Path, err)
		}
		pm, err := materials.NewPhysicsConfig(header.Kind)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", d.Path, err)
		}
		if err := d.PhysicsMaterial.Decode(pm); err != nil {
			return cfg, fmt.Errorf("%s: physics material: %w", d.Path, err)
		}
		cfg.PhysicsMaterial = pm
	}

	return cfg, nil
}

// Pose returns the translation and orientation, nil when unset.
func (d *ObjectDef) Pose() (*rl.Vector3, *rl.Quaternion) {
	var t *rl.Vector3
	var q *rl.Quaternion
	if d.Translation != nil {
		t = &rl.Vector3{X: d.Translation[0], Y: d.Translation[1], Z: d.Translation[2]}
	}
	if d.Orientation != nil {
		o := d.Orientation
		n := rl.QuaternionNormalize(rl.Quaternion{X: o[1], Y: o[2], Z: o[3], W: o[0]})
		q = &n
	}
	return t, q
}
