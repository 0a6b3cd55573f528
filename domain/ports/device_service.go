package ports

import (
	"github.com/napalm-community/dlink/domain/entities"
)

// DeviceService defines the vendor-neutral operations exposed by a driver session
type DeviceService interface {
	Open() error
	Close() error
	IsAlive() entities.Aliveness
	CLI(commands []string) (map[string]string, error)
	GetFacts() (entities.Facts, error)
	GetARPTable() ([]entities.ARPEntry, error)
	GetMACAddressTable() ([]entities.MACEntry, error)
	GetConfig(retrieve string) (entities.ConfigSet, error)
}
