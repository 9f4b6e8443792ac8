package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shapespawn/internal/config"
	"shapespawn/internal/world"
)

const manifest = `
objects:
  - type: cuboid
    path: /World/Table
    size: [1, 1, 0.1]
    rigid_body: {}
    articulation: {fix_root_link: true}
  - {type: sphere, path: /World/Ball, radius: 0.2, translation: [0, 0, 2]}
`

func setup(t *testing.T) (dir string, out *bytes.Buffer, cmd *cobra.Command) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	outputPath = ""
	t.Cleanup(func() { outputPath = "" })

	dir = t.TempDir()
	out = new(bytes.Buffer)
	cmd = &cobra.Command{}
	cmd.SetOut(out)
	return dir, out, cmd
}

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestBuildCmdWritesStage(t *testing.T) {
	dir, out, cmd := setup(t)
	outputPath = filepath.Join(dir, "stage.json")

	err := runBuild(cmd, []string{writeManifest(t, dir, manifest)})
	require.NoError(t, err)

	sf, err := world.LoadStageFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "scene", sf.Name)
	assert.Contains(t, out.String(), "cuboid")
	assert.Contains(t, out.String(), "sphere")
}

func TestBuildCmdStdout(t *testing.T) {
	dir, out, cmd := setup(t)

	require.NoError(t, runBuild(cmd, []string{writeManifest(t, dir, manifest)}))
	assert.Contains(t, out.String(), `"path": "/World/Table/FixedJoint"`)
}

func TestBuildCmdErrors(t *testing.T) {
	dir, _, cmd := setup(t)

	err := runBuild(cmd, []string{filepath.Join(dir, "missing.yaml")})
	assert.ErrorContains(t, err, "read manifest")

	err = runBuild(cmd, []string{writeManifest(t, dir, "objects:\n  - {type: torus, path: /T}\n")})
	assert.ErrorIs(t, err, world.ErrUnknownShape)
}

func TestListCmd(t *testing.T) {
	_, out, cmd := setup(t)

	require.NoError(t, runList(cmd, nil))
	assert.Contains(t, out.String(), "capsule, cone, cuboid, cylinder, sphere")
	assert.Contains(t, out.String(), "preview_surface")
	assert.Contains(t, out.String(), "rigid_body_material")
}

func TestConfigInitCmd(t *testing.T) {
	dir, _, cmd := setup(t)
	t.Setenv("SHAPESPAWN_HEADLESS", "")
	t.Setenv("SHAPESPAWN_LOG_LEVEL", "")
	path := filepath.Join(dir, "conf", "shapespawn.yaml")

	require.NoError(t, runConfigInit(cmd, []string{path}))
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, *config.DefaultConfig(), *loaded)
}
