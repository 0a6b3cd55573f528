// Package snmp supplements CLI facts with SNMP system and interface data
package snmp

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/napalm-community/dlink/domain/entities"
)

const (
	oidSysDescr  = ".1.3.6.1.2.1.1.1.0"
	oidSysUpTime = ".1.3.6.1.2.1.1.3.0"
	oidSysName   = ".1.3.6.1.2.1.1.5.0"
	oidIfDescr   = ".1.3.6.1.2.1.2.2.1.2"
)

// systemInfo carries the SNMP values merged into the CLI facts
type systemInfo struct {
	Descr      string
	Name       string
	UptimeSec  int64
	Interfaces []string
}

// Poller reads supplemental facts over SNMP
type Poller struct {
	config entities.DeviceConfig
}

// NewPoller creates a poller for the given device
func NewPoller(cfg entities.DeviceConfig) *Poller {
	return &Poller{config: cfg}
}

// Enabled reports whether SNMP polling is configured for the device
func (p *Poller) Enabled() bool {
	return p.config.SnmpCommunity != ""
}

// Supplement fills fact fields the CLI session could not provide. Existing
// values are never overwritten.
func (p *Poller) Supplement(facts *entities.Facts) error {
	if !p.Enabled() {
		return nil
	}
	client := &gosnmp.GoSNMP{
		Target:    p.config.Target,
		Port:      161,
		Community: p.config.SnmpCommunity,
		Version:   gosnmp.Version2c,
		Timeout:   5 * time.Second,
		Retries:   1,
		Transport: "udp",
	}
	if err := client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s via SNMP: %v", p.config.Target, err)
	}
	defer client.Conn.Close()

	info, err := fetchSystemInfo(client)
	if err != nil {
		return err
	}
	if p.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: SNMP reported %d interfaces on %s\n", len(info.Interfaces), p.config.Target)
	}
	mergeFacts(facts, info)
	return nil
}

func fetchSystemInfo(client *gosnmp.GoSNMP) (systemInfo, error) {
	var info systemInfo
	result, err := client.Get([]string{oidSysDescr, oidSysUpTime, oidSysName})
	if err != nil {
		return info, fmt.Errorf("SNMP get failed: %v", err)
	}
	for _, pdu := range result.Variables {
		switch pdu.Name {
		case oidSysDescr:
			info.Descr = pduString(pdu)
		case oidSysName:
			info.Name = pduString(pdu)
		case oidSysUpTime:
			// sysUpTime is in hundredths of a second
			info.UptimeSec = int64(gosnmp.ToBigInt(pdu.Value).Int64() / 100)
		}
	}
	err = client.BulkWalk(oidIfDescr, func(pdu gosnmp.SnmpPDU) error {
		if name := pduString(pdu); name != "" {
			info.Interfaces = append(info.Interfaces, name)
		}
		return nil
	})
	if err != nil {
		return info, fmt.Errorf("SNMP interface walk failed: %v", err)
	}
	return info, nil
}

// mergeFacts copies SNMP values into empty fact fields only
func mergeFacts(facts *entities.Facts, info systemInfo) {
	if facts.Hostname == "" {
		facts.Hostname = info.Name
	}
	if facts.Model == "" && info.Descr != "" {
		facts.Model = strings.TrimSpace(info.Descr)
	}
	if facts.UptimeSec == 0 {
		facts.UptimeSec = info.UptimeSec
	}
	if len(facts.InterfaceList) == 0 && len(info.Interfaces) > 0 {
		facts.InterfaceList = info.Interfaces
	}
}

func pduString(pdu gosnmp.SnmpPDU) string {
	switch value := pdu.Value.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	default:
		return ""
	}
}
