package world

import (
	"encoding/json"
	"fmt"
	"os"

	"shapespawn/internal/engine"
)

// --- JSON types ---

type StageFile struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	UpAxis        string                `json:"upAxis"`
	MetersPerUnit float64               `json:"metersPerUnit"`
	Prims         []engine.PrimSnapshot `json:"prims"`
}

// StageFile returns the serializable form of the stage, prims in traversal order.
func (w *World) StageFile() StageFile {
	return StageFile{
		ID:            w.Stage.ID.String(),
		Name:          w.Stage.Name,
		UpAxis:        w.Stage.UpAxis,
		MetersPerUnit: w.Stage.MetersPerUnit,
		Prims:         w.Stage.Snapshot(),
	}
}

// --- Saving ---

func (w *World) SaveStage(path string) error {
	data, err := json.MarshalIndent(w.StageFile(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stage: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write stage: %w", err)
	}

	return nil
}

func LoadStageFile(path string) (*StageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage: %w", err)
	}

	var sf StageFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse stage: %w", err)
	}
	return &sf, nil
}
