// Package gamedata loads the engine's content from YAML files: mod
// records, equipment base stats, the riven cap table, and player build
// files. The engine itself performs no I/O; everything here is resolved
// up front and handed to it as plain values.
package gamedata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlFiles lists the .yaml/.yml files directly under dir.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}

// loadAll parses every YAML file in dir into a value of type T.
func loadAll[T any](dir string) ([]*T, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		v := new(T)
		if err := yaml.Unmarshal(data, v); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// loadOne parses a single YAML file into a value of type T.
func loadOne[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	v := new(T)
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}
