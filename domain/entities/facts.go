package entities

// Facts summarizes device identity as reported by "show switch"
type Facts struct {
	Vendor        string   `json:"vendor"`
	Model         string   `json:"model"`
	SerialNumber  string   `json:"serial_number"`
	OSVersion     string   `json:"os_version"`
	Hostname      string   `json:"hostname"`
	MacAddress    string   `json:"mac_address"`
	UptimeSec     int64    `json:"uptime"`
	InterfaceList []string `json:"interface_list"`
	// Attributes keeps every raw name/value pair the device reported so
	// firmware-specific fields are not dropped
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Aliveness reports the state of the device session
type Aliveness struct {
	IsAlive bool `json:"is_alive"`
}
