package entities

// ARPEntry stores one row of the device ARP table
type ARPEntry struct {
	Interface string `json:"interface"`
	IP        string `json:"ip"`
	Mac       string `json:"-"`
	MacFull   string `json:"mac"`
	Type      string `json:"type"`
}

// MACEntry stores one row of the device forwarding database
type MACEntry struct {
	VID      string `json:"vid"`
	VLANName string `json:"vlan_name"`
	Mac      string `json:"-"`
	MacFull  string `json:"mac"`
	Port     string `json:"port"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}
