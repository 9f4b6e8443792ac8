package world

import (
	"errors"
	"fmt"

	"shapespawn/internal/engine"
	"shapespawn/internal/schemas"
	"shapespawn/internal/spawners/shapes"
)

var ErrInvalidStructure = errors.New("invalid spawned structure")

// StructureError describes one broken postcondition of a spawned shape.
type StructureError struct {
	Root   string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Root, e.Reason)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}

// Validate checks every spawned structure. Joint creation failures during a
// fixed-base spawn leave partial structures behind; this is where they are
// caught. All problems are returned joined.
func (w *World) Validate() error {
	var errs []error
	for _, r := range w.spawned {
		errs = append(errs, validateRecord(w.Stage, r)...)
	}
	return errors.Join(errs...)
}

func validateRecord(stage *engine.Stage, r spawnRecord) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, &StructureError{Root: r.root.Path, Reason: fmt.Sprintf(format, args...)})
	}

	var articulationRoots, bodies []*engine.Prim
	stage.TraverseFrom(r.root, func(p *engine.Prim) bool {
		if p.HasAPI(engine.ArticulationRootAPI) {
			articulationRoots = append(articulationRoots, p)
		}
		if p.HasAPI(engine.RigidBodyAPI) {
			bodies = append(bodies, p)
		}
		return true
	})

	geom := r.root.Child(shapes.GeometryName)
	if geom == nil {
		fail("missing %s prim", shapes.GeometryName)
		return errs
	}

	if !r.articulation {
		if len(articulationRoots) > 0 {
			fail("unexpected articulation root at %s", articulationRoots[0].Path)
		}
		return errs
	}

	if len(articulationRoots) != 1 {
		fail("expected 1 articulation root, found %d", len(articulationRoots))
	}

	if !r.fixedBase {
		if len(articulationRoots) == 1 && articulationRoots[0] != r.root {
			fail("articulation root at %s, expected on the root", articulationRoots[0].Path)
		}
		return errs
	}

	if r.root.HasAPI(engine.RigidBodyAPI) {
		fail("fixed-base root must not be a rigid body")
	}
	if len(articulationRoots) == 1 && !articulationRoots[0].Type.IsJoint() {
		fail("articulation root at %s is not a joint", articulationRoots[0].Path)
	}

	fakeBody := r.root.Child(shapes.FakeBodyName)
	if fakeBody == nil {
		fail("missing %s prim", shapes.FakeBodyName)
	} else if mass, _ := fakeBody.Attribute("physics:mass"); mass != shapes.FakeBodyMass {
		fail("%s mass is %v, expected %v", shapes.FakeBodyName, mass, shapes.FakeBodyMass)
	}
	if len(bodies) != 2 || !containsPrim(bodies, geom) || (fakeBody != nil && !containsPrim(bodies, fakeBody)) {
		fail("expected rigid bodies %s and %s, found %v", shapes.GeometryName, shapes.FakeBodyName, paths(bodies))
	}

	if len(articulationRoots) == 1 {
		if body := engine.RelationshipRef(articulationRoots[0], schemas.AttrBody1).Get(stage); body != geom {
			fail("%s does not anchor %s", articulationRoots[0].Path, shapes.GeometryName)
		}
	}
	if fakeBody != nil {
		internal := fakeBody.Child(shapes.InternalJointName)
		if internal == nil {
			fail("missing %s", shapes.InternalJointName)
		} else if engine.RelationshipRef(internal, schemas.AttrBody0).Get(stage) != geom ||
			engine.RelationshipRef(internal, schemas.AttrBody1).Get(stage) != fakeBody {
			fail("%s does not connect %s to %s", internal.Path, shapes.GeometryName, shapes.FakeBodyName)
		}
	}
	return errs
}

func containsPrim(prims []*engine.Prim, p *engine.Prim) bool {
	for _, q := range prims {
		if q == p {
			return true
		}
	}
	return false
}

func paths(prims []*engine.Prim) []string {
	out := make([]string, len(prims))
	for i, p := range prims {
		out[i] = p.Path
	}
	return out
}
