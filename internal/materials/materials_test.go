package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapespawn/internal/engine"
)

type unknownCfg struct{}

func (unknownCfg) Kind() string { return "holographic" }

func TestRegisteredKinds(t *testing.T) {
	assert.Equal(t, []string{KindGlassMdl, KindMdlFile, KindPreviewSurface}, VisualFactories.Names())
	assert.Equal(t, []string{KindRigidBodyMaterial}, PhysicsFactories.Names())
}

func TestSpawnPreviewSurface(t *testing.T) {
	stage := engine.NewStage("test")

	cfg := NewPreviewSurface()
	cfg.DiffuseColor = [3]float32{1, 0, 0}
	mat, err := SpawnVisual(stage, "/Looks/Red", cfg)
	require.NoError(t, err)
	require.NotNil(t, mat)

	assert.Equal(t, engine.TypeMaterial, mat.Type)
	shader := stage.Get("/Looks/Red/Shader")
	require.NotNil(t, shader)
	assert.Equal(t, engine.TypeShader, shader.Type)

	color, _ := shader.Attribute("inputs:diffuseColor")
	assert.Equal(t, [3]float32{1, 0, 0}, color)
	out, _ := mat.Relationship("outputs:surface")
	assert.Equal(t, []string{"/Looks/Red/Shader.outputs:out"}, out)
}

func TestSpawnVisualHeadlessReturnsNil(t *testing.T) {
	stage := engine.NewStage("test")
	stage.Headless = true

	mat, err := SpawnVisual(stage, "/Looks/Red", NewPreviewSurface())
	require.NoError(t, err)
	assert.Nil(t, mat)
	assert.False(t, stage.Exists("/Looks/Red"), "nothing is authored without a rendering backend")
}

func TestSpawnVisualSharedMaterial(t *testing.T) {
	stage := engine.NewStage("test")

	first, err := SpawnVisual(stage, "/Looks/Glass", NewGlassMdl())
	require.NoError(t, err)
	second, err := SpawnVisual(stage, "/Looks/Glass", NewGlassMdl())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSpawnPhysicsOnVisualMaterial(t *testing.T) {
	stage := engine.NewStage("test")

	visual, err := SpawnVisual(stage, "/Looks/Rubber", NewPreviewSurface())
	require.NoError(t, err)
	cfg := NewRigidBodyMaterial()
	cfg.DynamicFriction = 0.8
	physics, err := SpawnPhysics(stage, "/Looks/Rubber", cfg)
	require.NoError(t, err)

	assert.Same(t, visual, physics)
	assert.True(t, physics.HasAPI(engine.PhysicsMaterialAPI))
	friction, _ := physics.Attribute("physics:dynamicFriction")
	assert.Equal(t, float32(0.8), friction)
}

func TestSpawnVisualOverNonMaterial(t *testing.T) {
	stage := engine.NewStage("test")
	_, err := stage.Create("/Looks/Red", engine.TypeXform, nil, nil)
	require.NoError(t, err)

	_, err = SpawnVisual(stage, "/Looks/Red", NewPreviewSurface())
	assert.ErrorIs(t, err, engine.ErrPathCollision)
}

func TestSpawnMdlFile(t *testing.T) {
	stage := engine.NewStage("test")

	_, err := SpawnVisual(stage, "/Looks/Wood", &MdlFileCfg{})
	assert.ErrorIs(t, err, ErrMissingMdlPath)

	brightness := float32(0.8)
	mat, err := SpawnVisual(stage, "/Looks/Wood", &MdlFileCfg{
		MdlPath:          "Materials/Base/Wood/Oak.mdl",
		AlbedoBrightness: &brightness,
	})
	require.NoError(t, err)
	require.NotNil(t, mat)

	shader := stage.Get("/Looks/Wood/Shader")
	require.NotNil(t, shader)
	sub, _ := shader.Attribute("info:mdl:sourceAsset:subIdentifier")
	assert.Equal(t, "Oak", sub)
	b, _ := shader.Attribute("inputs:albedo_brightness")
	assert.Equal(t, float32(0.8), b)
}

func TestSpawnUnknownKind(t *testing.T) {
	stage := engine.NewStage("test")

	_, err := SpawnVisual(stage, "/Looks/X", unknownCfg{})
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	_, err = SpawnPhysics(stage, "/Looks/X", unknownCfg{})
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestSpawnRigidBodyMaterial(t *testing.T) {
	stage := engine.NewStage("test")
	stage.Headless = true // physics materials do not depend on rendering

	cfg := NewRigidBodyMaterial()
	cfg.Restitution = 0.25
	mat, err := SpawnPhysics(stage, "/PhysicsMaterials/Bouncy", cfg)
	require.NoError(t, err)
	require.NotNil(t, mat)

	assert.Equal(t, []engine.API{engine.PhysicsMaterialAPI, engine.PhysxMaterialAPI}, mat.AppliedAPIs())
	attrs := mat.Attributes()
	assert.Equal(t, float32(0.25), attrs["physics:restitution"])
	assert.Equal(t, float32(0.5), attrs["physics:staticFriction"])
	assert.Equal(t, "average", attrs["physxMaterial:frictionCombineMode"])
}

func TestRigidBodyMaterialValidate(t *testing.T) {
	cfg := NewRigidBodyMaterial()
	require.NoError(t, cfg.Validate())

	cfg.FrictionCombineMode = "median"
	assert.ErrorIs(t, cfg.Validate(), ErrCombineMode)

	stage := engine.NewStage("test")
	_, err := SpawnPhysics(stage, "/M", cfg)
	assert.ErrorIs(t, err, ErrCombineMode)
	assert.False(t, stage.Exists("/M"))
}

func TestBindMaterials(t *testing.T) {
	stage := engine.NewStage("test")
	geom, err := stage.Create("/Cube/geometry", engine.TypeCube, nil, nil)
	require.NoError(t, err)
	_, err = SpawnPhysics(stage, "/Cube/geometry/material", NewRigidBodyMaterial())
	require.NoError(t, err)

	require.NoError(t, BindPhysicsMaterial(stage, geom, "/Cube/geometry/material"))
	assert.True(t, geom.HasAPI(engine.MaterialBindingAPI))
	targets, _ := geom.Relationship(RelPhysicsBinding)
	assert.Equal(t, []string{"/Cube/geometry/material"}, targets)

	_, hasVisual := geom.Relationship(RelVisualBinding)
	assert.False(t, hasVisual)

	err = BindVisualMaterial(stage, geom, "/Looks/Missing")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestNewConfigByKind(t *testing.T) {
	cfg, err := NewVisualConfig(KindGlassMdl)
	require.NoError(t, err)
	assert.Equal(t, NewGlassMdl(), cfg)

	pcfg, err := NewPhysicsConfig(KindRigidBodyMaterial)
	require.NoError(t, err)
	assert.Equal(t, NewRigidBodyMaterial(), pcfg)

	_, err = NewVisualConfig("holographic")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	_, err = NewPhysicsConfig(KindPreviewSurface)
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}
