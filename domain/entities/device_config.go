package entities

import (
	"strings"
	"time"
)

// DeviceConfig defines the connection settings for a single switch
type DeviceConfig struct {
	Target         string `yaml:"target"`
	Transport      string `yaml:"transport"`
	Platform       string `yaml:"platform"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	Port           int    `yaml:"port"`
	TimeoutSec     int    `yaml:"timeout"`
	SnmpCommunity  string `yaml:"snmp_community"`
	VerbosityLevel int
}

// IsDebugEnabled returns true if debug logs are enabled
func (dc DeviceConfig) IsDebugEnabled() bool {
	return dc.VerbosityLevel == 1 || dc.VerbosityLevel == 3
}

// IsRawOutputEnabled returns true if raw switch output is enabled
func (dc DeviceConfig) IsRawOutputEnabled() bool {
	return dc.VerbosityLevel == 2 || dc.VerbosityLevel == 3
}

// PlatformID returns the normalized platform identifier, defaulting to dlink
func (dc DeviceConfig) PlatformID() string {
	platform := strings.ToLower(strings.TrimSpace(dc.Platform))
	if platform == "" {
		return "dlink"
	}
	return platform
}

// DialPort returns the configured TCP port or the transport default
func (dc DeviceConfig) DialPort() int {
	if dc.Port != 0 {
		return dc.Port
	}
	if dc.Transport == "telnet" {
		return 23
	}
	return 22
}

// CommandTimeout returns the session timeout, defaulting to 60 seconds
func (dc DeviceConfig) CommandTimeout() time.Duration {
	if dc.TimeoutSec > 0 {
		return time.Duration(dc.TimeoutSec) * time.Second
	}
	return 60 * time.Second
}
