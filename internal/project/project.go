// Package project persists configurator state as local files: named
// project JSON documents and TOML dealer price lists.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modernheim/dressroom/internal/model"
)

// Project ties a configuration to a name for save/load.
type Project struct {
	Name   string             `json:"name"`
	Config model.GlobalConfig `json:"config"`
}

// NewProject returns an empty untitled project.
func NewProject() Project {
	return Project{
		Name:   "Untitled",
		Config: model.DefaultConfig(),
	}
}

// DefaultProjectDir returns the default directory for project files,
// ~/.dressroom.
func DefaultProjectDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".dressroom")
}

// Save writes the project to the given JSON file, creating parent
// directories as needed.
func Save(path string, p Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given JSON file.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, err
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Config.Bays == nil {
		p.Config.Bays = []model.BayConfig{}
	}
	return p, nil
}
