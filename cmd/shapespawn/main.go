package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shapespawn/internal/config"
	"shapespawn/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Build flags
	outputPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shapespawn",
	Short: "Author procedural physics shapes into a stage",
	Long: `shapespawn builds a stage of rigid-body ready primitives (sphere, cuboid,
cylinder, capsule, cone) from a YAML manifest.

Shapes requesting a fixed root link are wrapped in a world-anchored joint and a
dummy body so the physics engine treats them as a fixed-base articulation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logger, err = logging.New(cfg.Logging)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var buildCmd = &cobra.Command{
	Use:   "build <manifest.yaml>",
	Short: "Spawn every object of a manifest and write the stage",
	Long: `Spawns the manifest objects in order, checks the structure of every spawned
shape and writes the stage as JSON to --output, or stdout if unset.

Object paths may use a regular expression in their parent part, e.g.
/World/env_.*/Cube, to spawn one copy under each matching prim.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shape and material kinds the manifest accepts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write the default configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "shapespawn.yaml", "Config file")

	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Stage output file (default: stdout)")

	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
