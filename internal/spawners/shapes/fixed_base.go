package shapes

import (
	"fmt"
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"shapespawn/internal/engine"
	"shapespawn/internal/schemas"
)

// Names of the prims added by the fixed-base wrapper.
const (
	FakeBodyName      = "fakebody"
	FixedJointName    = "FixedJoint"
	InternalJointName = "InternalJoint"
)

// The dummy body must not be massless or the solver rejects it.
const FakeBodyMass float32 = 0.001

var FakeBodyInertia = rl.Vector3{X: 1e-6, Y: 1e-6, Z: 1e-6}

// rigid body attributes that live outside the physxRigidBody namespace
var physicsRigidBodyAttrs = []string{"physics:rigidBodyEnabled", "physics:kinematicEnabled"}

// buildFixedBaseWrapper welds the shape to the world. The physics engine only
// recognizes a fixed-base articulation with at least two bodies, so the
// structure becomes:
//
//	root                       Xform, no rigid body
//	root/geometry              rigid body
//	root/FixedJoint            world -> geometry, articulation root
//	root/fakebody              rigid body with negligible mass
//	root/fakebody/InternalJoint geometry -> fakebody
//
// A joint that fails to be created is logged and skipped along with whatever
// depends on it. Nothing already authored is rolled back.
func (s *Spawner) buildFixedBaseWrapper(root *engine.Prim, props *schemas.ArticulationRootProps) error {
	geomPath := engine.JoinPath(root.Path, GeometryName)
	geom := s.Store.Get(geomPath)
	if geom == nil {
		return fmt.Errorf("fixed base at %s: %w", root.Path, ErrMissingGeometry)
	}

	if !geom.HasAPI(engine.RigidBodyAPI) {
		geom.ApplyAPI(engine.RigidBodyAPI)
	}
	if root.HasAPI(engine.RigidBodyAPI) || root.HasAPI(engine.PhysxRigidBodyAPI) {
		if root.HasAPI(engine.PhysxRigidBodyAPI) {
			geom.ApplyAPI(engine.PhysxRigidBodyAPI)
		}
		moveRigidBodyAttributes(root, geom)
		schemas.RemoveRigidBody(root)
	}

	fakeBody, err := s.Store.Create(engine.JoinPath(root.Path, FakeBodyName), engine.TypeXform, nil, nil)
	if err != nil {
		return err
	}
	fakeBody.ApplyAPI(engine.RigidBodyAPI)
	if err := schemas.SetMassInertia(fakeBody, FakeBodyMass, FakeBodyInertia); err != nil {
		return err
	}

	fixed, err := s.CreateJoint(s.Store, schemas.JointFixed, nil, geom, root.Path, FixedJointName)
	if err != nil || fixed == nil {
		s.Logger.Warn("fixed joint not created, articulation root skipped",
			zap.String("path", engine.JoinPath(root.Path, FixedJointName)),
			zap.Error(err))
	} else if err := schemas.DefineArticulationRootProperties(fixed, props); err != nil {
		return err
	}

	internal, err := s.CreateJoint(s.Store, schemas.JointFixed, geom, fakeBody, fakeBody.Path, InternalJointName)
	if err != nil || internal == nil {
		s.Logger.Warn("internal joint not created",
			zap.String("path", engine.JoinPath(fakeBody.Path, InternalJointName)),
			zap.Error(err))
	}
	return nil
}

func moveRigidBodyAttributes(from, to *engine.Prim) {
	prefix := schemas.NamespacePhysxRigidBody + ":"
	for _, name := range from.AttributeNames() {
		if strings.HasPrefix(name, prefix) || slices.Contains(physicsRigidBodyAttrs, name) {
			v, _ := from.Attribute(name)
			to.SetAttribute(name, v)
			from.RemoveAttribute(name)
		}
	}
}
