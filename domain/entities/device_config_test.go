package entities

import (
	"testing"
	"time"
)

func TestDeviceConfig_IsDebugEnabled(t *testing.T) {
	tests := []struct {
		name           string
		verbosityLevel int
		expected       bool
	}{
		{
			name:           "verbosity level 0",
			verbosityLevel: 0,
			expected:       false,
		},
		{
			name:           "verbosity level 1",
			verbosityLevel: 1,
			expected:       true,
		},
		{
			name:           "verbosity level 2",
			verbosityLevel: 2,
			expected:       false,
		},
		{
			name:           "verbosity level 3",
			verbosityLevel: 3,
			expected:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DeviceConfig{
				VerbosityLevel: tt.verbosityLevel,
			}

			result := config.IsDebugEnabled()
			if result != tt.expected {
				t.Errorf("IsDebugEnabled() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDeviceConfig_IsRawOutputEnabled(t *testing.T) {
	tests := []struct {
		name           string
		verbosityLevel int
		expected       bool
	}{
		{
			name:           "verbosity level 0",
			verbosityLevel: 0,
			expected:       false,
		},
		{
			name:           "verbosity level 1",
			verbosityLevel: 1,
			expected:       false,
		},
		{
			name:           "verbosity level 2",
			verbosityLevel: 2,
			expected:       true,
		},
		{
			name:           "verbosity level 3",
			verbosityLevel: 3,
			expected:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DeviceConfig{
				VerbosityLevel: tt.verbosityLevel,
			}

			result := config.IsRawOutputEnabled()
			if result != tt.expected {
				t.Errorf("IsRawOutputEnabled() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDeviceConfig_PlatformID(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		expected string
	}{
		{
			name:     "empty defaults to dlink",
			platform: "",
			expected: "dlink",
		},
		{
			name:     "uppercase platform",
			platform: "DLINK",
			expected: "dlink",
		},
		{
			name:     "platform with spaces",
			platform: "  auto  ",
			expected: "auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DeviceConfig{
				Platform: tt.platform,
			}

			result := config.PlatformID()
			if result != tt.expected {
				t.Errorf("PlatformID() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDeviceConfig_DialPort(t *testing.T) {
	tests := []struct {
		name      string
		transport string
		port      int
		expected  int
	}{
		{
			name:      "ssh default",
			transport: "ssh",
			port:      0,
			expected:  22,
		},
		{
			name:      "telnet default",
			transport: "telnet",
			port:      0,
			expected:  23,
		},
		{
			name:      "empty transport defaults to ssh port",
			transport: "",
			port:      0,
			expected:  22,
		},
		{
			name:      "explicit port wins",
			transport: "telnet",
			port:      2323,
			expected:  2323,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DeviceConfig{
				Transport: tt.transport,
				Port:      tt.port,
			}

			result := config.DialPort()
			if result != tt.expected {
				t.Errorf("DialPort() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestDeviceConfig_CommandTimeout(t *testing.T) {
	var config DeviceConfig
	if config.CommandTimeout() != 60*time.Second {
		t.Errorf("expected default timeout of 60s, got %v", config.CommandTimeout())
	}

	config.TimeoutSec = 120
	if config.CommandTimeout() != 120*time.Second {
		t.Errorf("expected timeout of 120s, got %v", config.CommandTimeout())
	}
}
