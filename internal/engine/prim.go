package engine

import (
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PrimType is the schema type a prim is defined with.
type PrimType string

const (
	TypeXform    PrimType = "Xform"
	TypeScope    PrimType = "Scope"
	TypeSphere   PrimType = "Sphere"
	TypeCube     PrimType = "Cube"
	TypeCylinder PrimType = "Cylinder"
	TypeCapsule  PrimType = "Capsule"
	TypeCone     PrimType = "Cone"
	TypeMaterial PrimType = "Material"
	TypeShader   PrimType = "Shader"

	TypeFixedJoint     PrimType = "PhysicsFixedJoint"
	TypeRevoluteJoint  PrimType = "PhysicsRevoluteJoint"
	TypePrismaticJoint PrimType = "PhysicsPrismaticJoint"
	TypeSphericalJoint PrimType = "PhysicsSphericalJoint"
)

// IsJoint reports whether the type is one of the physics joint types.
func (t PrimType) IsJoint() bool {
	return strings.HasPrefix(string(t), "Physics") && strings.HasSuffix(string(t), "Joint")
}

// IsGprim reports whether the type is a renderable geometric primitive.
func (t PrimType) IsGprim() bool {
	switch t {
	case TypeSphere, TypeCube, TypeCylinder, TypeCapsule, TypeCone:
		return true
	}
	return false
}

// Transform is a local transform relative to the parent prim.
type Transform struct {
	Translation rl.Vector3
	Orientation rl.Quaternion
	Scale       rl.Vector3
}

// IdentityTransform returns a transform at the origin with identity rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{
		Translation: rl.Vector3Zero(),
		Orientation: rl.QuaternionIdentity(),
		Scale:       rl.Vector3One(),
	}
}

// Compose applies child on top of t: the result maps child-local points into t's space.
// Non-uniform parent scale is applied per axis before rotation; shear is not modelled.
func (t Transform) Compose(child Transform) Transform {
	scaled := rl.Vector3Multiply(child.Translation, t.Scale)
	return Transform{
		Translation: rl.Vector3Add(t.Translation, rl.Vector3RotateByQuaternion(scaled, t.Orientation)),
		Orientation: rl.QuaternionNormalize(rl.QuaternionMultiply(t.Orientation, child.Orientation)),
		Scale:       rl.Vector3Multiply(t.Scale, child.Scale),
	}
}

// Prim is a node of the stage, addressed by its absolute path.
type Prim struct {
	Path      string
	Name      string
	Type      PrimType
	Transform Transform
	Stage     *Stage
	Parent    *Prim

	children      []*Prim
	apis          []API
	attributes    map[string]any
	relationships map[string][]string
}

func newPrim(path string, typ PrimType) *Prim {
	return &Prim{
		Path:          path,
		Name:          BaseName(path),
		Type:          typ,
		Transform:     IdentityTransform(),
		children:      make([]*Prim, 0),
		apis:          make([]API, 0),
		attributes:    make(map[string]any),
		relationships: make(map[string][]string),
	}
}

// ApplyAPI attaches an API schema. Applying an already applied API is a no-op.
func (p *Prim) ApplyAPI(api API) {
	if p.HasAPI(api) {
		return
	}
	p.apis = append(p.apis, api)
}

func (p *Prim) HasAPI(api API) bool {
	return slices.Contains(p.apis, api)
}

// RemoveAPI detaches an API schema and reports whether it was applied.
// Attributes authored under the schema are left in place.
func (p *Prim) RemoveAPI(api API) bool {
	for i, a := range p.apis {
		if a == api {
			p.apis = append(p.apis[:i], p.apis[i+1:]...)
			return true
		}
	}
	return false
}

// AppliedAPIs returns the applied schemas in application order.
func (p *Prim) AppliedAPIs() []API {
	return slices.Clone(p.apis)
}

func (p *Prim) SetAttribute(name string, value any) {
	p.attributes[name] = value
}

// RemoveAttribute deletes an authored attribute and reports whether it existed.
func (p *Prim) RemoveAttribute(name string) bool {
	_, ok := p.attributes[name]
	delete(p.attributes, name)
	return ok
}

func (p *Prim) Attribute(name string) (any, bool) {
	v, ok := p.attributes[name]
	return v, ok
}

// AttributeNames returns all authored attribute names, sorted.
func (p *Prim) AttributeNames() []string {
	names := make([]string, 0, len(p.attributes))
	for name := range p.attributes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Attributes returns a copy of the authored attributes.
func (p *Prim) Attributes() map[string]any {
	out := make(map[string]any, len(p.attributes))
	for k, v := range p.attributes {
		out[k] = v
	}
	return out
}

// SetRelationship replaces the targets of a relationship. Passing no targets
// authors an empty relationship.
func (p *Prim) SetRelationship(name string, targets ...string) {
	p.relationships[name] = slices.Clone(targets)
}

func (p *Prim) Relationship(name string) ([]string, bool) {
	targets, ok := p.relationships[name]
	return slices.Clone(targets), ok
}

// RelationshipNames returns all authored relationship names, sorted.
func (p *Prim) RelationshipNames() []string {
	names := make([]string, 0, len(p.relationships))
	for name := range p.relationships {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p *Prim) AddChild(child *Prim) {
	child.Parent = p
	p.children = append(p.children, child)
}

func (p *Prim) Children() []*Prim {
	return slices.Clone(p.children)
}

// Child returns the direct child with the given name, or nil.
func (p *Prim) Child(name string) *Prim {
	for _, c := range p.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// WorldTransform composes the transforms from the pseudo-root down to this prim.
func (p *Prim) WorldTransform() Transform {
	if p.Parent == nil {
		return p.Transform
	}
	return p.Parent.WorldTransform().Compose(p.Transform)
}
