package transport

import (
	"testing"

	"github.com/napalm-community/dlink/domain/entities"
)

func TestCacheKey(t *testing.T) {
	config1 := entities.DeviceConfig{
		Transport: "telnet",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	config2 := entities.DeviceConfig{
		Transport: "ssh",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	config3 := entities.DeviceConfig{
		Transport: "telnet",
		Target:    "192.168.1.2",
		Username:  "admin",
		Password:  "password",
	}

	// Test that same config produces same key
	key1a := cacheKey(config1)
	key1b := cacheKey(config1)
	if key1a != key1b {
		t.Errorf("Same config should produce same key: %s != %s", key1a, key1b)
	}

	// Test that different configs produce different keys
	key2 := cacheKey(config2)
	key3 := cacheKey(config3)

	if key1a == key2 {
		t.Error("Different transport should produce different keys")
	}

	if key1a == key3 {
		t.Error("Different target should produce different keys")
	}

	if key2 == key3 {
		t.Error("Different configs should produce different keys")
	}

	// Test that keys have expected length (SHA256 hex = 64 chars)
	if len(key1a) != 64 {
		t.Errorf("Expected key length 64, got %d", len(key1a))
	}
}

func TestCacheKey_PortMatters(t *testing.T) {
	base := entities.DeviceConfig{
		Transport: "ssh",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}
	withPort := base
	withPort.Port = 2222

	if cacheKey(base) == cacheKey(withPort) {
		t.Error("Different port should produce different keys")
	}
}

func TestGet_Caching(t *testing.T) {
	// Clear cache first
	CloseAll()

	config := entities.DeviceConfig{
		Transport: "telnet",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	// First call should create a new client
	client1 := Get(config)
	if client1 == nil {
		t.Fatal("Get() returned nil")
	}

	// Second call should return the same cached client
	client2 := Get(config)
	if client2 != client1 {
		t.Error("Get() did not return cached client")
	}

	// Different config should return different client
	differentConfig := entities.DeviceConfig{
		Transport: "ssh",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	client3 := Get(differentConfig)
	if client3 == client1 {
		t.Error("Get() returned same client for different config")
	}
}

func TestCloseAll(t *testing.T) {
	// Clear cache first
	CloseAll()

	config1 := entities.DeviceConfig{
		Transport: "telnet",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	config2 := entities.DeviceConfig{
		Transport: "ssh",
		Target:    "192.168.1.2",
		Username:  "admin",
		Password:  "password",
	}

	client1 := Get(config1)
	client2 := Get(config2)

	if client1 == nil || client2 == nil {
		t.Fatal("Get() returned nil")
	}

	CloseAll()

	// Verify cache is empty by getting new clients
	newClient1 := Get(config1)
	newClient2 := Get(config2)

	if newClient1 == client1 {
		t.Error("CloseAll() did not clear cache for client1")
	}

	if newClient2 == client2 {
		t.Error("CloseAll() did not clear cache for client2")
	}
}

func TestNewClient_Telnet(t *testing.T) {
	config := entities.DeviceConfig{
		Transport: "telnet",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	client := newClient(config)
	if client == nil {
		t.Fatal("newClient() returned nil")
	}

	if _, ok := client.(*TelnetClient); !ok {
		t.Errorf("expected *TelnetClient for telnet transport, got %T", client)
	}

	// Verify it implements AuthConfigurable
	var _ AuthConfigurable = client.(*TelnetClient)
}

func TestNewClient_SSH(t *testing.T) {
	config := entities.DeviceConfig{
		Transport: "ssh",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	client := newClient(config)
	if client == nil {
		t.Fatal("newClient() returned nil")
	}

	if _, ok := client.(*SSHClient); !ok {
		t.Errorf("expected *SSHClient for ssh transport, got %T", client)
	}
}

func TestNewClient_DefaultToSSH(t *testing.T) {
	config := entities.DeviceConfig{
		Transport: "",
		Target:    "192.168.1.1",
		Username:  "admin",
		Password:  "password",
	}

	client := newClient(config)
	if client == nil {
		t.Fatal("newClient() returned nil")
	}

	// Should default to SSHClient when no transport is set
	if _, ok := client.(*SSHClient); !ok {
		t.Errorf("expected *SSHClient by default, got %T", client)
	}
}

func TestProbe_NotConnected(t *testing.T) {
	config := entities.DeviceConfig{
		Target:   "192.168.1.1",
		Username: "admin",
		Password: "password",
	}

	if err := NewTelnetClient(config).Probe(); err == nil {
		t.Error("expected Probe to fail on disconnected telnet client")
	}
	if err := NewSSHClient(config).Probe(); err == nil {
		t.Error("expected Probe to fail on disconnected SSH client")
	}
}

func TestExecuteCommand_NotConnected(t *testing.T) {
	config := entities.DeviceConfig{
		Target:   "192.168.1.1",
		Username: "admin",
		Password: "password",
	}

	if _, err := NewTelnetClient(config).ExecuteCommand("show switch"); err == nil {
		t.Error("expected ExecuteCommand to fail on disconnected telnet client")
	}
	if _, err := NewSSHClient(config).ExecuteCommand("show switch"); err == nil {
		t.Error("expected ExecuteCommand to fail on disconnected SSH client")
	}
}

func TestStripEcho(t *testing.T) {
	output := "show switch\nDevice Type : DES-3028\nSystem Name : core-sw-1\nDES-3028:admin#"
	stripped := stripEcho(output)
	expected := "Device Type : DES-3028\nSystem Name : core-sw-1"
	if stripped != expected {
		t.Errorf("unexpected stripped output: %q", stripped)
	}

	if stripEcho("single line") != "" {
		t.Error("expected empty output when only the echo line is present")
	}
}
