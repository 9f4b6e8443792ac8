package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shapespawn/internal/config"
	"shapespawn/internal/materials"
	"shapespawn/internal/world"
)

func runBuild(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	m, err := world.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(manifestPath), filepath.Ext(manifestPath))
	w := world.New(name, cfg, logger)
	if _, err := w.Build(m); err != nil {
		return err
	}
	if err := w.Validate(); err != nil {
		return fmt.Errorf("stage %s failed validation:\n%w", name, err)
	}

	overlaps, err := w.Overlaps()
	if err != nil {
		return err
	}
	for _, o := range overlaps {
		w.Logger.Warn("shapes overlap", zap.String("a", o.A), zap.String("b", o.B))
	}

	if outputPath == "" {
		data, err := json.MarshalIndent(w.StageFile(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stage: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := w.SaveStage(outputPath); err != nil {
		return err
	}
	counts := w.Summary()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s (%d prims)\n", outputPath, w.Stage.Len())
	for _, kind := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(out, "  %-10s %d\n", kind, counts[kind])
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shapes:             %s\n", strings.Join(world.ShapeKinds, ", "))
	fmt.Fprintf(out, "visual materials:   %s\n", strings.Join(materials.VisualFactories.Names(), ", "))
	fmt.Fprintf(out, "physics materials:  %s\n", strings.Join(materials.PhysicsFactories.Names(), ", "))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.DefaultConfig().Save(args[0]); err != nil {
		return err
	}
	logger.Info("wrote default config", zap.String("path", args[0]))
	return nil
}
