package services

import (
	"fmt"
	"strings"

	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/domain/ports"
	"github.com/napalm-community/dlink/platform"
)

// PagingStopText is the pager stop line printed when clipaging is enabled
const PagingStopText = "Next Page"

// DeviceServiceImpl implements the vendor-neutral device operations on top of
// a repository session and a platform driver
type DeviceServiceImpl struct {
	deviceRepo    ports.DeviceRepository
	config        entities.DeviceConfig
	driver        platform.NetworkDriver
	pagingRestore bool
}

// NewDeviceService creates a new instance of the device service
func NewDeviceService(deviceRepo ports.DeviceRepository, config entities.DeviceConfig, driver platform.NetworkDriver) *DeviceServiceImpl {
	return &DeviceServiceImpl{
		deviceRepo: deviceRepo,
		config:     config,
		driver:     driver,
	}
}

// Open connects to the device and disables the CLI pager when it is active.
// The pager state is remembered so Close can restore it.
func (s *DeviceServiceImpl) Open() error {
	if !s.deviceRepo.IsConnected() {
		if err := s.deviceRepo.Connect(); err != nil {
			return fmt.Errorf("cannot connect to %s: %w", s.config.Target, err)
		}
	}

	output, err := s.deviceRepo.ExecuteCommand(s.driver.PagingProbeCommand())
	if err != nil {
		return fmt.Errorf("failed to probe pager state on %s: %w", s.config.Target, err)
	}
	if strings.Contains(output, PagingStopText) {
		if s.config.IsDebugEnabled() {
			fmt.Printf("DEBUG: Pager active on %s, disabling clipaging\n", s.config.Target)
		}
		if _, err := s.deviceRepo.ExecuteCommand(s.driver.DisablePagingCommand()); err != nil {
			return fmt.Errorf("failed to disable pager on %s: %w", s.config.Target, err)
		}
		s.pagingRestore = true
	}
	return nil
}

// Close restores the pager state and releases the session
func (s *DeviceServiceImpl) Close() error {
	if s.pagingRestore && s.deviceRepo.IsConnected() {
		if _, err := s.deviceRepo.ExecuteCommand(s.driver.RestorePagingCommand()); err != nil {
			s.deviceRepo.Disconnect()
			return fmt.Errorf("failed to restore pager on %s: %w", s.config.Target, err)
		}
		s.pagingRestore = false
	}
	s.deviceRepo.Disconnect()
	return nil
}

// IsAlive reports whether the session still accepts keepalive writes
func (s *DeviceServiceImpl) IsAlive() entities.Aliveness {
	if !s.deviceRepo.IsConnected() {
		return entities.Aliveness{IsAlive: false}
	}
	if err := s.deviceRepo.Probe(); err != nil {
		if s.config.IsDebugEnabled() {
			fmt.Printf("DEBUG: Keepalive to %s failed: %v\n", s.config.Target, err)
		}
		return entities.Aliveness{IsAlive: false}
	}
	return entities.Aliveness{IsAlive: true}
}

// CLI executes each command and maps it to its raw output
func (s *DeviceServiceImpl) CLI(commands []string) (map[string]string, error) {
	if len(commands) == 0 {
		return nil, fmt.Errorf("no commands provided")
	}
	results := make(map[string]string, len(commands))
	for _, command := range commands {
		if strings.TrimSpace(command) == "" {
			return nil, fmt.Errorf("empty command in command list")
		}
		output, err := s.deviceRepo.ExecuteCommand(command)
		if err != nil {
			return nil, fmt.Errorf("failed to run %q: %w", command, err)
		}
		results[command] = output
	}
	return results, nil
}

// GetFacts retrieves the device identity summary
func (s *DeviceServiceImpl) GetFacts() (entities.Facts, error) {
	return s.driver.GetFacts(s.deviceRepo, s.config)
}

// GetARPTable retrieves the ARP table
func (s *DeviceServiceImpl) GetARPTable() ([]entities.ARPEntry, error) {
	return s.driver.GetARPTable(s.deviceRepo, s.config)
}

// GetMACAddressTable retrieves the forwarding database
func (s *DeviceServiceImpl) GetMACAddressTable() ([]entities.MACEntry, error) {
	return s.driver.GetMACAddressTable(s.deviceRepo, s.config)
}

// GetConfig retrieves the requested configuration stores
func (s *DeviceServiceImpl) GetConfig(retrieve string) (entities.ConfigSet, error) {
	return s.driver.GetConfig(s.deviceRepo, s.config, retrieve)
}
