package schemas

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapespawn/internal/engine"
)

func newPrim(t *testing.T, stage *engine.Stage, path string, typ engine.PrimType) *engine.Prim {
	t.Helper()
	p, err := stage.Create(path, typ, nil, nil)
	require.NoError(t, err)
	return p
}

func TestToCamelCase(t *testing.T) {
	cases := map[string]string{
		"mass":                            "mass",
		"solver_position_iteration_count": "solverPositionIterationCount",
		"enabled_self_collisions":         "enabledSelfCollisions",
		"diagonal_inertia":                "diagonalInertia",
		"_leading":                        "leading",
		"double__underscore":              "doubleUnderscore",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToCamelCase(in), in)
	}
}

func TestDefineCollisionProperties(t *testing.T) {
	stage := engine.NewStage("test")
	geom := newPrim(t, stage, "/Cube/geometry", engine.TypeCube)

	err := DefineCollisionProperties(geom, &CollisionProps{
		CollisionEnabled: Ptr(true),
		ContactOffset:    Ptr(float32(0.02)),
	})
	require.NoError(t, err)

	assert.True(t, geom.HasAPI(engine.CollisionAPI))
	assert.True(t, geom.HasAPI(engine.PhysxCollisionAPI))
	assert.Equal(t, []string{"physics:collisionEnabled", "physxCollision:contactOffset"}, geom.AttributeNames())

	v, _ := geom.Attribute("physxCollision:contactOffset")
	assert.Equal(t, float32(0.02), v)
}

func TestDefineCollisionPropertiesNilProps(t *testing.T) {
	stage := engine.NewStage("test")
	geom := newPrim(t, stage, "/Cube", engine.TypeCube)

	require.NoError(t, DefineCollisionProperties(geom, nil))
	assert.True(t, geom.HasAPI(engine.CollisionAPI))
	assert.Empty(t, geom.AttributeNames())
}

func TestDefineRigidBodyPropertiesSplitsNamespaces(t *testing.T) {
	stage := engine.NewStage("test")
	root := newPrim(t, stage, "/Cube", engine.TypeXform)

	err := DefineRigidBodyProperties(root, &RigidBodyProps{
		RigidBodyEnabled:             Ptr(true),
		KinematicEnabled:             Ptr(false),
		DisableGravity:               Ptr(true),
		SolverPositionIterationCount: Ptr(8),
	})
	require.NoError(t, err)

	assert.Equal(t, []engine.API{engine.RigidBodyAPI, engine.PhysxRigidBodyAPI}, root.AppliedAPIs())
	attrs := root.Attributes()
	assert.Equal(t, true, attrs["physics:rigidBodyEnabled"])
	assert.Equal(t, false, attrs["physics:kinematicEnabled"])
	assert.Equal(t, true, attrs["physxRigidBody:disableGravity"])
	assert.Equal(t, 8, attrs["physxRigidBody:solverPositionIterationCount"])
	assert.Len(t, attrs, 4)
}

func TestRemoveRigidBody(t *testing.T) {
	stage := engine.NewStage("test")
	root := newPrim(t, stage, "/Cube", engine.TypeXform)
	require.NoError(t, DefineRigidBodyProperties(root, nil))
	root.ApplyAPI(engine.MassAPI)

	assert.True(t, RemoveRigidBody(root))
	assert.Equal(t, []engine.API{engine.MassAPI}, root.AppliedAPIs())
	assert.False(t, RemoveRigidBody(root))
}

func TestDefineMassProperties(t *testing.T) {
	stage := engine.NewStage("test")
	root := newPrim(t, stage, "/Cube", engine.TypeXform)

	require.NoError(t, DefineMassProperties(root, &MassProps{Density: Ptr(float32(1000))}))
	assert.True(t, root.HasAPI(engine.MassAPI))
	assert.Equal(t, map[string]any{"physics:density": float32(1000)}, root.Attributes())
}

func TestSetMassInertia(t *testing.T) {
	stage := engine.NewStage("test")
	body := newPrim(t, stage, "/Body", engine.TypeXform)

	require.NoError(t, SetMassInertia(body, 0.001, rl.Vector3{X: 1e-6, Y: 1e-6, Z: 1e-6}))
	mass, _ := body.Attribute("physics:mass")
	inertia, _ := body.Attribute("physics:diagonalInertia")
	assert.Equal(t, float32(0.001), mass)
	assert.Equal(t, rl.Vector3{X: 1e-6, Y: 1e-6, Z: 1e-6}, inertia)
}

func TestDefineWithNilPrim(t *testing.T) {
	assert.ErrorIs(t, DefineCollisionProperties(nil, nil), ErrNilPrim)
	assert.ErrorIs(t, DefineMassProperties(nil, nil), ErrNilPrim)
	assert.ErrorIs(t, DefineRigidBodyProperties(nil, nil), ErrNilPrim)
	assert.ErrorIs(t, DefineArticulationRootProperties(nil, nil), ErrNilPrim)
}

func TestArticulationAttributesSkipFixRootLink(t *testing.T) {
	props := &ArticulationRootProps{
		EnabledSelfCollisions:        Ptr(false),
		SolverPositionIterationCount: Ptr(16),
		FixRootLink:                  Ptr(true),
	}

	attrs := ArticulationAttributes(props)
	assert.Equal(t, map[string]any{
		"physxArticulation:enabledSelfCollisions":        false,
		"physxArticulation:solverPositionIterationCount": 16,
	}, attrs)
	assert.True(t, props.Fixed())
	assert.False(t, (&ArticulationRootProps{}).Fixed())
	assert.False(t, (*ArticulationRootProps)(nil).Fixed())
}

func TestDefineArticulationRootProperties(t *testing.T) {
	stage := engine.NewStage("test")
	root := newPrim(t, stage, "/Robot", engine.TypeXform)

	require.NoError(t, DefineArticulationRootProperties(root, &ArticulationRootProps{
		ArticulationEnabled: Ptr(true),
		FixRootLink:         Ptr(false),
	}))
	assert.True(t, root.HasAPI(engine.ArticulationRootAPI))
	assert.Equal(t, []string{"physxArticulation:articulationEnabled"}, root.AttributeNames())
}

func TestCreateJointToWorld(t *testing.T) {
	stage := engine.NewStage("test")
	xf := engine.IdentityTransform()
	xf.Translation = rl.Vector3{X: 1, Y: 2, Z: 3}
	root, err := stage.Create("/Box", engine.TypeXform, &xf, nil)
	require.NoError(t, err)
	geom := newPrim(t, stage, "/Box/geometry", engine.TypeCube)

	joint, err := CreateJoint(stage, JointFixed, nil, geom, root.Path, "FixedJoint")
	require.NoError(t, err)

	assert.Equal(t, "/Box/FixedJoint", joint.Path)
	assert.Equal(t, engine.TypeFixedJoint, joint.Type)
	_, hasBody0 := joint.Relationship(AttrBody0)
	assert.False(t, hasBody0, "world-anchored joint has no body0")
	assert.False(t, engine.RelationshipRef(joint, AttrBody0).IsValid())
	body1, _ := joint.Relationship(AttrBody1)
	assert.Equal(t, []string{"/Box/geometry"}, body1)

	pos0, _ := joint.Attribute(AttrLocalPos0)
	assert.InDelta(t, 1, pos0.(rl.Vector3).X, 1e-6)
	assert.InDelta(t, 2, pos0.(rl.Vector3).Y, 1e-6)
	assert.InDelta(t, 3, pos0.(rl.Vector3).Z, 1e-6)
	enabled, _ := joint.Attribute(AttrJointEnabled)
	assert.Equal(t, true, enabled)
}

func TestCreateJointBetweenBodies(t *testing.T) {
	stage := engine.NewStage("test")
	newPrim(t, stage, "/Box", engine.TypeXform)
	geom := newPrim(t, stage, "/Box/geometry", engine.TypeCube)
	fake := newPrim(t, stage, "/Box/fakebody", engine.TypeXform)

	joint, err := CreateJoint(stage, JointFixed, geom, fake, fake.Path, "InternalJoint")
	require.NoError(t, err)
	assert.Equal(t, "/Box/fakebody/InternalJoint", joint.Path)

	body0, _ := joint.Relationship(AttrBody0)
	body1, _ := joint.Relationship(AttrBody1)
	assert.Equal(t, []string{"/Box/geometry"}, body0)
	assert.Equal(t, []string{"/Box/fakebody"}, body1)

	assert.Same(t, geom, engine.RelationshipRef(joint, AttrBody0).Get(stage))
	assert.Same(t, fake, engine.RelationshipRef(joint, AttrBody1).Get(stage))
}

func TestCreateJointErrors(t *testing.T) {
	stage := engine.NewStage("test")
	geom := newPrim(t, stage, "/Box/geometry", engine.TypeCube)

	_, err := CreateJoint(stage, JointType("Ball"), nil, geom, "/Box", "J")
	assert.ErrorIs(t, err, ErrUnknownJointType)

	_, err = CreateJoint(stage, JointFixed, nil, nil, "/Box", "J")
	assert.Error(t, err)

	_, err = CreateJoint(stage, JointFixed, nil, geom, "/Box", "geometry")
	assert.ErrorIs(t, err, engine.ErrPathCollision)
}

func TestCreateRevoluteJointHasAxis(t *testing.T) {
	stage := engine.NewStage("test")
	geom := newPrim(t, stage, "/Arm/link", engine.TypeCube)

	joint, err := CreateJoint(stage, JointRevolute, nil, geom, "/Arm", "Hinge")
	require.NoError(t, err)
	assert.Equal(t, engine.TypeRevoluteJoint, joint.Type)
	axis, _ := joint.Attribute(AttrAxis)
	assert.Equal(t, "X", axis)
}

func TestActivateContactSensors(t *testing.T) {
	stage := engine.NewStage("test")
	root := newPrim(t, stage, "/Box", engine.TypeXform)
	geom := newPrim(t, stage, "/Box/geometry", engine.TypeCube)
	root.ApplyAPI(engine.RigidBodyAPI)

	n, err := ActivateContactSensors(root)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, root.HasAPI(engine.PhysxContactReportAPI))
	assert.False(t, geom.HasAPI(engine.PhysxContactReportAPI))

	_, err = ActivateContactSensors(geom)
	assert.ErrorIs(t, err, ErrNoRigidBodies)
}
