package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// The store holds at most one dataset snapshot: importing replaces it
// wholesale, reset deletes it. There is no merge and no versioning.

// DefaultStorePath returns the default dataset path (~/.fleet-master/fleet.yaml)
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fleet-master", "fleet.yaml")
}

// SaveFleet writes the dataset snapshot, creating parent directories as
// needed.
func SaveFleet(path string, fleet *StoredFleet) error {
	data, err := yaml.Marshal(fleet)
	if err != nil {
		return fmt.Errorf("marshaling fleet data: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing fleet data: %w", err)
	}

	return nil
}

// LoadFleet reads the stored snapshot. A missing file is not an error;
// it returns (nil, nil) so callers can start with an empty dataset.
func LoadFleet(path string) (*StoredFleet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading fleet data: %w", err)
	}

	var fleet StoredFleet
	if err := yaml.Unmarshal(data, &fleet); err != nil {
		return nil, fmt.Errorf("parsing fleet data: %w", err)
	}

	return &fleet, nil
}

// ClearFleet removes the stored snapshot. Clearing an already-empty
// store is a no-op.
func ClearFleet(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing fleet data: %w", err)
	}
	return nil
}
