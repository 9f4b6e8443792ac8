package shapes

import (
	"errors"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapespawn/internal/engine"
	"shapespawn/internal/materials"
	"shapespawn/internal/schemas"
)

var ErrInvalidShape = errors.New("invalid shape configuration")

// SemanticTag labels a spawned asset for perception, e.g. {"class", "cube"}.
type SemanticTag struct {
	Type  string `yaml:"type" json:"type"`
	Value string `yaml:"value" json:"value"`
}

// ShapeCfg holds the properties shared by every shape. Nil fields are skipped.
type ShapeCfg struct {
	CollisionProps *schemas.CollisionProps

	VisualMaterial materials.VisualMaterialCfg
	// VisualMaterialPath is relative to the geometry prim unless absolute.
	VisualMaterialPath string

	PhysicsMaterial materials.PhysicsMaterialCfg
	// PhysicsMaterialPath is relative to the geometry prim unless absolute.
	PhysicsMaterialPath string

	MassProps         *schemas.MassProps
	RigidProps        *schemas.RigidBodyProps
	ArticulationProps *schemas.ArticulationRootProps

	Visible                *bool
	SemanticTags           []SemanticTag
	ActivateContactSensors bool
}

// Common returns the shared properties.
func (c *ShapeCfg) Common() *ShapeCfg { return c }

// Shape is one of SphereCfg, CuboidCfg, CylinderCfg, CapsuleCfg or ConeCfg.
type Shape interface {
	Common() *ShapeCfg
	// geometry returns the primitive type, its attributes and an optional
	// scale for the geometry prim.
	geometry() (engine.PrimType, map[string]any, *rl.Vector3, error)
}

type SphereCfg struct {
	ShapeCfg
	Radius float32
}

type CuboidCfg struct {
	ShapeCfg
	Size [3]float32 // edge lengths along x, y, z
}

type CylinderCfg struct {
	ShapeCfg
	Radius float32
	Height float32
	Axis   string
}

type CapsuleCfg struct {
	ShapeCfg
	Radius float32
	Height float32 // of the cylindrical section
	Axis   string
}

type ConeCfg struct {
	ShapeCfg
	Radius float32
	Height float32
	Axis   string
}

func (c *SphereCfg) geometry() (engine.PrimType, map[string]any, *rl.Vector3, error) {
	if c.Radius <= 0 {
		return "", nil, nil, fmt.Errorf("%w: sphere radius %v", ErrInvalidShape, c.Radius)
	}
	return engine.TypeSphere, map[string]any{"radius": c.Radius}, nil, nil
}

// geometry maps the box onto a cube: the edge is the smallest dimension and
// the geometry prim is scaled so the final extents match Size exactly.
func (c *CuboidCfg) geometry() (engine.PrimType, map[string]any, *rl.Vector3, error) {
	for _, d := range c.Size {
		if d <= 0 {
			return "", nil, nil, fmt.Errorf("%w: cuboid size %v", ErrInvalidShape, c.Size)
		}
	}
	size := min(c.Size[0], c.Size[1], c.Size[2])
	scale := rl.Vector3{X: c.Size[0] / size, Y: c.Size[1] / size, Z: c.Size[2] / size}
	return engine.TypeCube, map[string]any{"size": size}, &scale, nil
}

func (c *CylinderCfg) geometry() (engine.PrimType, map[string]any, *rl.Vector3, error) {
	attrs, err := axialAttributes("cylinder", c.Radius, c.Height, c.Axis)
	return engine.TypeCylinder, attrs, nil, err
}

func (c *CapsuleCfg) geometry() (engine.PrimType, map[string]any, *rl.Vector3, error) {
	attrs, err := axialAttributes("capsule", c.Radius, c.Height, c.Axis)
	return engine.TypeCapsule, attrs, nil, err
}

func (c *ConeCfg) geometry() (engine.PrimType, map[string]any, *rl.Vector3, error) {
	attrs, err := axialAttributes("cone", c.Radius, c.Height, c.Axis)
	return engine.TypeCone, attrs, nil, err
}

func axialAttributes(kind string, radius, height float32, axis string) (map[string]any, error) {
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %s radius %v height %v", ErrInvalidShape, kind, radius, height)
	}
	a, err := NormalizeAxis(axis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return map[string]any{"radius": radius, "height": height, "axis": a}, nil
}

// NormalizeAxis upper-cases axis. An empty axis defaults to "Z".
func NormalizeAxis(axis string) (string, error) {
	a := strings.ToUpper(strings.TrimSpace(axis))
	switch a {
	case "":
		return "Z", nil
	case "X", "Y", "Z":
		return a, nil
	}
	return "", fmt.Errorf("%w: axis %q", ErrInvalidShape, axis)
}
