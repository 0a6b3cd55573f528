package platform

import (
	"fmt"
	"strings"

	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/domain/ports"
	"github.com/napalm-community/dlink/platform/dlink"
)

// NetworkDriver defines the behaviour required to support a switching platform.
type NetworkDriver interface {
	Name() string
	Detect(repo ports.DeviceRepository) (bool, error)

	// AuthenticationSequence returns the login sequence for this platform
	AuthenticationSequence(username, password string) []entities.AuthPrompt

	// PagingProbeCommand returns a command whose output reveals whether the
	// CLI pager is active; DisablePagingCommand and RestorePagingCommand
	// toggle it for the session
	PagingProbeCommand() string
	DisablePagingCommand() string
	RestorePagingCommand() string

	GetFacts(repo ports.DeviceRepository, cfg entities.DeviceConfig) (entities.Facts, error)
	GetARPTable(repo ports.DeviceRepository, cfg entities.DeviceConfig) ([]entities.ARPEntry, error)
	GetMACAddressTable(repo ports.DeviceRepository, cfg entities.DeviceConfig) ([]entities.MACEntry, error)
	GetConfig(repo ports.DeviceRepository, cfg entities.DeviceConfig, retrieve string) (entities.ConfigSet, error)
}

var registry = []NetworkDriver{
	dlink.New(),
}

// Get returns a driver by normalized platform name.
func Get(name string) (NetworkDriver, error) {
	normalized := normalizeName(name)
	for _, driver := range registry {
		if driver.Name() == normalized {
			return driver, nil
		}
	}
	return nil, fmt.Errorf("unknown switch platform: %s", name)
}

// Available returns all registered drivers.
func Available() []NetworkDriver {
	out := make([]NetworkDriver, len(registry))
	copy(out, registry)
	return out
}

// Detect tries all registered drivers until one matches.
func Detect(repo ports.DeviceRepository) (NetworkDriver, error) {
	var lastErr error
	for _, driver := range registry {
		matched, err := driver.Detect(repo)
		if err != nil {
			lastErr = err
			continue
		}
		if matched {
			return driver, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("unable to detect switch platform")
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
