package transport

import (
	"github.com/napalm-community/dlink/domain/entities"
)

// DeviceAdapter implements the DeviceRepository port using existing infrastructure
type DeviceAdapter struct {
	client Client
}

// NewDeviceAdapter creates a new device adapter
func NewDeviceAdapter(client Client) *DeviceAdapter {
	return &DeviceAdapter{
		client: client,
	}
}

// Connect connects to the device
func (d *DeviceAdapter) Connect() error {
	return d.client.Connect()
}

// Disconnect disconnects from the device
func (d *DeviceAdapter) Disconnect() {
	d.client.Disconnect()
}

// ExecuteCommand executes a command on the device
func (d *DeviceAdapter) ExecuteCommand(cmd string) (string, error) {
	return d.client.ExecuteCommand(cmd)
}

// IsConnected checks if connected
func (d *DeviceAdapter) IsConnected() bool {
	return d.client.IsConnected()
}

// Probe sends a keepalive through the underlying session
func (d *DeviceAdapter) Probe() error {
	return d.client.Probe()
}

// Client interface that already exists in the transport package
type Client interface {
	Connect() error
	Disconnect()
	ExecuteCommand(cmd string) (string, error)
	IsConnected() bool
	Probe() error
}

// AuthConfigurable allows setting authentication prompts after client creation
type AuthConfigurable interface {
	SetAuthSequence(prompts []entities.AuthPrompt)
}
