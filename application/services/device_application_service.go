package services

import (
	"github.com/napalm-community/dlink/domain/entities"
	"github.com/napalm-community/dlink/domain/ports"
	"github.com/napalm-community/dlink/domain/services"
	"github.com/napalm-community/dlink/infrastructure/transport"
	"github.com/napalm-community/dlink/platform"
)

// DeviceApplicationService orchestrates the use of device services
type DeviceApplicationService struct {
	deviceService ports.DeviceService
}

// NewDeviceApplicationService creates a new instance of the device application service
func NewDeviceApplicationService(deviceConfig entities.DeviceConfig, transportClient transport.Client, driver platform.NetworkDriver) *DeviceApplicationService {
	if configurable, ok := transportClient.(transport.AuthConfigurable); ok {
		configurable.SetAuthSequence(driver.AuthenticationSequence(deviceConfig.Username, deviceConfig.Password))
	}
	deviceAdapter := transport.NewDeviceAdapter(transportClient)
	deviceService := services.NewDeviceService(deviceAdapter, deviceConfig, driver)

	return &DeviceApplicationService{
		deviceService: deviceService,
	}
}

// Open establishes the device session
func (d *DeviceApplicationService) Open() error {
	return d.deviceService.Open()
}

// Close releases the device session
func (d *DeviceApplicationService) Close() error {
	return d.deviceService.Close()
}

// IsAlive reports the session state
func (d *DeviceApplicationService) IsAlive() entities.Aliveness {
	return d.deviceService.IsAlive()
}

// CLI runs raw commands on the device
func (d *DeviceApplicationService) CLI(commands []string) (map[string]string, error) {
	return d.deviceService.CLI(commands)
}

// GetFacts retrieves the device identity summary
func (d *DeviceApplicationService) GetFacts() (entities.Facts, error) {
	return d.deviceService.GetFacts()
}

// GetARPTable retrieves the ARP table
func (d *DeviceApplicationService) GetARPTable() ([]entities.ARPEntry, error) {
	return d.deviceService.GetARPTable()
}

// GetMACAddressTable retrieves the forwarding database
func (d *DeviceApplicationService) GetMACAddressTable() ([]entities.MACEntry, error) {
	return d.deviceService.GetMACAddressTable()
}

// GetConfig retrieves the requested configuration stores
func (d *DeviceApplicationService) GetConfig(retrieve string) (entities.ConfigSet, error) {
	return d.deviceService.GetConfig(retrieve)
}
