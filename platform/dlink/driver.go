package dlink

import (
	"fmt"
	"strings"

	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/domain/ports"
)

const driverName = "dlink"

// Device commands. Running config needs a fallback because some firmware
// generations only answer "show config active".
const (
	CmdShowSwitch        = "show switch"
	CmdShowARPTable      = "show arpentry"
	CmdShowFDB           = "show fdb"
	CmdShowRunningConfig = "show config current_config"
	CmdShowActiveConfig  = "show config active"
	CmdShowNVRAMConfig   = "show config config_in_nvram"
	CmdDisablePaging     = "disable clipaging"
	CmdEnablePaging      = "enable clipaging"

	PromptUsername   = "UserName:"
	PromptPassword   = "PassWord:"
	PromptPrivileged = "#"
)

// Driver implements the NetworkDriver behaviour for D-Link switches.
type Driver struct{}

// New creates a new D-Link driver instance.
func New() *Driver {
	return &Driver{}
}

// Name returns the canonical platform identifier.
func (d *Driver) Name() string {
	return driverName
}

// Model prefixes of the D-Link switch product lines. The "show switch"
// summary usually names the model but not the vendor.
var modelPrefixes = []string{"des-", "dgs-", "dxs-", "dws-", "dhs-"}

// Detect inspects the device to determine whether it is a D-Link switch.
func (d *Driver) Detect(repo ports.DeviceRepository) (bool, error) {
	if !repo.IsConnected() {
		if err := repo.Connect(); err != nil {
			return false, err
		}
	}
	output, err := repo.ExecuteCommand(CmdShowSwitch)
	if err != nil {
		return false, err
	}
	lower := strings.ToLower(output)
	if strings.Contains(lower, "d-link") || strings.Contains(lower, "dlink") {
		return true, nil
	}
	if strings.Contains(lower, "device type") || strings.Contains(lower, "system type") {
		for _, prefix := range modelPrefixes {
			if strings.Contains(lower, prefix) {
				return true, nil
			}
		}
	}
	return false, nil
}

// AuthenticationSequence returns the login sequence for the D-Link CLI.
// Login lands directly on the privileged prompt, there is no enable step.
func (d *Driver) AuthenticationSequence(username, password string) []entities.AuthPrompt {
	return []entities.AuthPrompt{
		{WaitFor: PromptUsername, SendCmd: username + "\n"},
		{WaitFor: PromptPassword, SendCmd: password + "\n"},
		{WaitFor: PromptPrivileged, SendCmd: ""},
	}
}

// PagingProbeCommand returns a command that triggers the pager when clipaging is on.
func (d *Driver) PagingProbeCommand() string {
	return CmdShowSwitch
}

// DisablePagingCommand returns the command that turns the CLI pager off.
func (d *Driver) DisablePagingCommand() string {
	return CmdDisablePaging
}

// RestorePagingCommand returns the command that turns the CLI pager back on.
func (d *Driver) RestorePagingCommand() string {
	return CmdEnablePaging
}

// GetFacts retrieves and normalizes the "show switch" summary.
func (d *Driver) GetFacts(repo ports.DeviceRepository, cfg entities.DeviceConfig) (entities.Facts, error) {
	output, err := repo.ExecuteCommand(CmdShowSwitch)
	if err != nil {
		return entities.Facts{}, fmt.Errorf("failed to retrieve switch summary: %w", err)
	}
	if cfg.IsRawOutputEnabled() {
		fmt.Printf("Raw output of '%s':\n%s\n", CmdShowSwitch, output)
	}
	attributes := parseSwitchFacts(output)
	if len(attributes) == 0 {
		if isCommandError(output) {
			return entities.Facts{}, fmt.Errorf("command '%s' unsupported by switch", CmdShowSwitch)
		}
		return entities.Facts{}, fmt.Errorf("no facts found in switch summary")
	}
	facts := buildFacts(attributes)
	if cfg.IsDebugEnabled() {
		fmt.Printf("DEBUG: Parsed %d fact attributes from %s\n", len(attributes), cfg.Target)
	}
	return facts, nil
}

// GetARPTable retrieves the ARP table entries.
func (d *Driver) GetARPTable(repo ports.DeviceRepository, cfg entities.DeviceConfig) ([]entities.ARPEntry, error) {
	output, err := repo.ExecuteCommand(CmdShowARPTable)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ARP table: %w", err)
	}
	if cfg.IsRawOutputEnabled() {
		fmt.Printf("Raw output of '%s':\n%s\n", CmdShowARPTable, output)
	}
	if isCommandError(output) {
		return nil, fmt.Errorf("command '%s' unsupported by switch", CmdShowARPTable)
	}
	entries := parseARPTable(output)
	if cfg.IsDebugEnabled() {
		fmt.Printf("DEBUG: Found %d ARP entries\n", len(entries))
	}
	return entries, nil
}

// GetMACAddressTable retrieves the forwarding database entries.
func (d *Driver) GetMACAddressTable(repo ports.DeviceRepository, cfg entities.DeviceConfig) ([]entities.MACEntry, error) {
	output, err := repo.ExecuteCommand(CmdShowFDB)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve MAC table: %w", err)
	}
	if cfg.IsRawOutputEnabled() {
		fmt.Printf("Raw output of '%s':\n%s\n", CmdShowFDB, output)
	}
	if isCommandError(output) {
		return nil, fmt.Errorf("command '%s' unsupported by switch", CmdShowFDB)
	}
	entries := parseMACTable(output)
	if cfg.IsDebugEnabled() {
		fmt.Printf("DEBUG: Found %d entries in MAC table\n", len(entries))
	}
	return entries, nil
}

// GetConfig retrieves the requested configuration stores. The startup store is
// reported empty; the NVRAM copy is exposed as the candidate store.
func (d *Driver) GetConfig(repo ports.DeviceRepository, cfg entities.DeviceConfig, retrieve string) (entities.ConfigSet, error) {
	var config entities.ConfigSet
	retrieve = strings.ToLower(strings.TrimSpace(retrieve))
	switch retrieve {
	case "", "all", "running", "startup", "candidate":
	default:
		return config, fmt.Errorf("invalid config store %q, must be running, startup, candidate or all", retrieve)
	}
	if retrieve == "" {
		retrieve = "all"
	}

	if retrieve == "running" || retrieve == "all" {
		output, err := repo.ExecuteCommand(CmdShowRunningConfig)
		if err != nil {
			return config, fmt.Errorf("failed to retrieve running config: %w", err)
		}
		// Some D-Link switches answer the alternate command instead
		if !strings.Contains(output, "Configuration") {
			output, err = repo.ExecuteCommand(CmdShowActiveConfig)
			if err != nil {
				return config, fmt.Errorf("failed to retrieve active config: %w", err)
			}
		}
		config.Running = output
	}
	if retrieve == "candidate" || retrieve == "all" {
		output, err := repo.ExecuteCommand(CmdShowNVRAMConfig)
		if err != nil {
			return config, fmt.Errorf("failed to retrieve NVRAM config: %w", err)
		}
		config.Candidate = output
	}
	return config, nil
}
