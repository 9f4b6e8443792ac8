// Package physics computes bounding volumes of spawned geometry.
package physics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapespawn/internal/engine"
)

var ErrNotGeometry = errors.New("prim is not a geometric primitive")

// LocalBounds returns the extents of a primitive in its own frame, before
// the prim's transform is applied.
func LocalBounds(prim *engine.Prim) (AABB, error) {
	if prim == nil || !prim.Type.IsGprim() {
		return AABB{}, ErrNotGeometry
	}

	var size rl.Vector3
	switch prim.Type {
	case engine.TypeCube:
		s, err := floatAttr(prim, "size")
		if err != nil {
			return AABB{}, err
		}
		size = rl.Vector3{X: s, Y: s, Z: s}
	case engine.TypeSphere:
		r, err := floatAttr(prim, "radius")
		if err != nil {
			return AABB{}, err
		}
		size = rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r}
	case engine.TypeCylinder, engine.TypeCone, engine.TypeCapsule:
		r, err := floatAttr(prim, "radius")
		if err != nil {
			return AABB{}, err
		}
		h, err := floatAttr(prim, "height")
		if err != nil {
			return AABB{}, err
		}
		if prim.Type == engine.TypeCapsule {
			h += 2 * r
		}
		axis, _ := prim.Attribute("axis")
		size = alongAxis(axis, 2*r, h)
	default:
		return AABB{}, fmt.Errorf("%w: %s", ErrNotGeometry, prim.Type)
	}
	return NewAABBFromCenter(rl.Vector3Zero(), size), nil
}

// GeometryBounds returns the world-space box of a primitive, composed
// through all of its ancestors' transforms.
func GeometryBounds(prim *engine.Prim) (OBB, error) {
	local, err := LocalBounds(prim)
	if err != nil {
		return OBB{}, fmt.Errorf("bounds of %s: %w", primPath(prim), err)
	}
	xf := prim.WorldTransform()
	size := rl.Vector3Multiply(local.Size(), xf.Scale)
	size = rl.Vector3{X: absf(size.X), Y: absf(size.Y), Z: absf(size.Z)}
	offset := rl.Vector3RotateByQuaternion(rl.Vector3Multiply(local.Center(), xf.Scale), xf.Orientation)
	return NewOBB(rl.Vector3Add(xf.Translation, offset), size, xf.Orientation), nil
}

// Overlap is a pair of primitives whose bounds intersect.
type Overlap struct {
	A, B string
}

// FindOverlaps tests every pair of prims and returns those that intersect.
// Pairs for which sameBody reports true are skipped; it may be nil.
func FindOverlaps(prims []*engine.Prim, sameBody func(a, b *engine.Prim) bool) ([]Overlap, error) {
	boxes := make([]OBB, len(prims))
	for i, p := range prims {
		b, err := GeometryBounds(p)
		if err != nil {
			return nil, err
		}
		boxes[i] = b
	}

	var out []Overlap
	for i := range prims {
		for j := i + 1; j < len(prims); j++ {
			if sameBody != nil && sameBody(prims[i], prims[j]) {
				continue
			}
			// cheap reject before SAT
			if !boxes[i].Bounds().Intersects(boxes[j].Bounds()) {
				continue
			}
			if boxes[i].IntersectsOBB(boxes[j]) {
				out = append(out, Overlap{A: prims[i].Path, B: prims[j].Path})
			}
		}
	}
	return out, nil
}

func alongAxis(axis any, diameter, length float32) rl.Vector3 {
	switch axis {
	case "X":
		return rl.Vector3{X: length, Y: diameter, Z: diameter}
	case "Y":
		return rl.Vector3{X: diameter, Y: length, Z: diameter}
	}
	return rl.Vector3{X: diameter, Y: diameter, Z: length}
}

func floatAttr(prim *engine.Prim, name string) (float32, error) {
	v, ok := prim.Attribute(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %q", ErrNotGeometry, prim.Path, name)
	}
	switch f := v.(type) {
	case float32:
		return f, nil
	case float64:
		return float32(f), nil
	case int:
		return float32(f), nil
	}
	return 0, fmt.Errorf("attribute %q of %s is %T, not a number", name, prim.Path, v)
}

func primPath(p *engine.Prim) string {
	if p == nil {
		return "<nil>"
	}
	return p.Path
}
