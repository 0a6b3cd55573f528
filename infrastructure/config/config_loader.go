package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napalm-community/dlink/domain/entities"
)

// Config defines the global configuration
type Config struct {
	Transport     string                  `yaml:"transport"`
	Username      string                  `yaml:"username"`
	Password      string                  `yaml:"password"`
	Timeout       int                     `yaml:"timeout"`
	SnmpCommunity string                  `yaml:"snmp_community"`
	BackupDir     string                  `yaml:"backup_dir"`
	Devices       []entities.DeviceConfig `yaml:"devices"`
}

func validateTransport(transport string) error {
	switch transport {
	case "ssh", "telnet":
		return nil
	default:
		return fmt.Errorf("transport %s is invalid, must be 'ssh' or 'telnet'", transport)
	}
}

func validatePlatform(platform string) error {
	switch platform {
	case "dlink", "auto":
		return nil
	default:
		return fmt.Errorf("platform %s is invalid, must be 'dlink' or 'auto'", platform)
	}
}

// Load loads and validates configuration from a YAML file
func Load(yamlFile, target string, verbosityLevel int) (*Config, error) {
	data, err := os.ReadFile(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %v", yamlFile, err)
	}
	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v", err)
	}

	if cfg.Transport == "" {
		cfg.Transport = "ssh"
	}
	cfg.Transport = strings.ToLower(cfg.Transport)
	if err := validateTransport(cfg.Transport); err != nil {
		return nil, err
	}

	if verbosityLevel == 1 || verbosityLevel == 3 {
		fmt.Printf("DEBUG: Global values: Transport=%s, Timeout=%d, SnmpCommunity set=%v\n", cfg.Transport, cfg.Timeout, cfg.SnmpCommunity != "")
	}

	for i, dev := range cfg.Devices {
		deviceVerbosity := verbosityLevel
		if target != "" && dev.Target != target {
			deviceVerbosity = 0
		}

		if dev.Target == "" {
			return nil, fmt.Errorf("target is required for device %d", i)
		}

		dev.Transport = strings.ToLower(strings.TrimSpace(dev.Transport))
		if dev.Transport == "" {
			dev.Transport = cfg.Transport
			if deviceVerbosity == 1 || deviceVerbosity == 3 {
				fmt.Printf("DEBUG: No transport defined for device %s, using global %s\n", dev.Target, cfg.Transport)
			}
		}
		if err := validateTransport(dev.Transport); err != nil {
			return nil, fmt.Errorf("invalid transport for device %s: %w", dev.Target, err)
		}

		if err := validatePlatform(dev.PlatformID()); err != nil {
			return nil, fmt.Errorf("invalid platform for device %s: %w", dev.Target, err)
		}

		if dev.Username == "" && cfg.Username == "" {
			return nil, fmt.Errorf("username is required for device %s", dev.Target)
		}
		if dev.Password == "" && cfg.Password == "" {
			return nil, fmt.Errorf("password is required for device %s", dev.Target)
		}
		if dev.Username == "" {
			dev.Username = cfg.Username
			if deviceVerbosity == 1 || deviceVerbosity == 3 {
				fmt.Printf("DEBUG: No username defined for device %s, using global %s\n", dev.Target, cfg.Username)
			}
		}
		if dev.Password == "" {
			dev.Password = cfg.Password
		}

		if dev.TimeoutSec == 0 {
			dev.TimeoutSec = cfg.Timeout
		}
		if dev.TimeoutSec < 0 {
			return nil, fmt.Errorf("timeout must not be negative for device %s", dev.Target)
		}
		if dev.Port < 0 || dev.Port > 65535 {
			return nil, fmt.Errorf("port %d is out of range for device %s", dev.Port, dev.Target)
		}

		if dev.SnmpCommunity == "" {
			dev.SnmpCommunity = cfg.SnmpCommunity
		}

		dev.VerbosityLevel = verbosityLevel

		if deviceVerbosity == 1 || deviceVerbosity == 3 {
			fmt.Printf("DEBUG: Final configuration for device %s: Platform=%s, Transport=%s, Port=%d, Timeout=%d\n", dev.Target, dev.PlatformID(), dev.Transport, dev.DialPort(), dev.TimeoutSec)
		}

		cfg.Devices[i] = dev
	}

	if len(cfg.Devices) == 0 {
		return nil, fmt.Errorf("no devices defined in the YAML configuration")
	}

	return &cfg, nil
}

// Find returns the device entry matching the target
func (c *Config) Find(target string) (entities.DeviceConfig, bool) {
	for _, dev := range c.Devices {
		if dev.Target == target {
			return dev, true
		}
	}
	return entities.DeviceConfig{}, false
}
