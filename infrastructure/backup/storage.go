// Package backup stores retrieved device configurations on disk
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Manager handles storing device configurations
type Manager struct {
	// BaseDir is the base directory where configurations are stored
	BaseDir string
}

// NewManager creates a new storage manager
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = "configs"
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Manager{
		BaseDir: baseDir,
	}, nil
}

// Save writes a configuration snapshot for a device and returns its path
func (m *Manager) Save(deviceName, configType, content string) (string, error) {
	if deviceName == "" {
		return "", fmt.Errorf("device name is required")
	}
	if configType == "" {
		configType = "running"
	}
	deviceDir := filepath.Join(m.BaseDir, deviceName)
	if err := os.MkdirAll(deviceDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create device directory: %w", err)
	}
	filename := fmt.Sprintf("%s-%s.cfg", configType, time.Now().Format("20060102-150405"))
	path := filepath.Join(deviceDir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// List returns the stored snapshots for a device, newest last
func (m *Manager) List(deviceName string) ([]string, error) {
	deviceDir := filepath.Join(m.BaseDir, deviceName)
	entries, err := os.ReadDir(deviceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read device directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cfg") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Prune keeps at most keep snapshots per config type, deleting the oldest
func (m *Manager) Prune(deviceName string, keep int) error {
	if keep < 1 {
		return fmt.Errorf("keep must be at least 1")
	}
	names, err := m.List(deviceName)
	if err != nil {
		return err
	}
	byType := make(map[string][]string)
	for _, name := range names {
		configType, _, found := strings.Cut(name, "-")
		if !found {
			continue
		}
		byType[configType] = append(byType[configType], name)
	}
	for _, snapshots := range byType {
		if len(snapshots) <= keep {
			continue
		}
		for _, name := range snapshots[:len(snapshots)-keep] {
			if err := os.Remove(filepath.Join(m.BaseDir, deviceName, name)); err != nil {
				return fmt.Errorf("failed to prune snapshot %s: %w", name, err)
			}
		}
	}
	return nil
}
