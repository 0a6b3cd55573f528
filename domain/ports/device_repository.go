package ports

// DeviceRepository defines the port for network device interaction
type DeviceRepository interface {
	Connect() error
	Disconnect()
	ExecuteCommand(cmd string) (string, error)
	IsConnected() bool
	// Probe writes a keepalive to the session without expecting output
	Probe() error
}
