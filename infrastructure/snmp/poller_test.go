package snmp

import (
	"reflect"
	"testing"

	"github.com/gosnmp/gosnmp"

	"github.com/napalm-community/dlink/domain/entities"
)

func TestPoller_Enabled(t *testing.T) {
	if NewPoller(entities.DeviceConfig{}).Enabled() {
		t.Error("expected poller to be disabled without a community")
	}
	if !NewPoller(entities.DeviceConfig{SnmpCommunity: "public"}).Enabled() {
		t.Error("expected poller to be enabled with a community")
	}
}

func TestSupplement_Disabled(t *testing.T) {
	poller := NewPoller(entities.DeviceConfig{Target: "10.0.0.1"})

	facts := entities.Facts{Hostname: "core-sw-1"}
	if err := poller.Supplement(&facts); err != nil {
		t.Fatalf("Supplement() returned error: %v", err)
	}
	if facts.Hostname != "core-sw-1" {
		t.Errorf("expected facts to be untouched, got %+v", facts)
	}
}

func TestMergeFacts_FillsEmptyFieldsOnly(t *testing.T) {
	facts := entities.Facts{
		Hostname:  "core-sw-1",
		UptimeSec: 1000,
	}
	info := systemInfo{
		Name:       "snmp-name",
		Descr:      "DES-3028",
		UptimeSec:  2000,
		Interfaces: []string{"1", "2", "3"},
	}

	mergeFacts(&facts, info)

	if facts.Hostname != "core-sw-1" {
		t.Errorf("CLI hostname should win, got %q", facts.Hostname)
	}
	if facts.UptimeSec != 1000 {
		t.Errorf("CLI uptime should win, got %d", facts.UptimeSec)
	}
	if facts.Model != "DES-3028" {
		t.Errorf("expected SNMP model to fill the gap, got %q", facts.Model)
	}
	if !reflect.DeepEqual(facts.InterfaceList, []string{"1", "2", "3"}) {
		t.Errorf("expected SNMP interfaces to fill the gap, got %v", facts.InterfaceList)
	}
}

func TestMergeFacts_KeepsExistingInterfaces(t *testing.T) {
	facts := entities.Facts{InterfaceList: []string{"eth1"}}
	info := systemInfo{Interfaces: []string{"1", "2"}}

	mergeFacts(&facts, info)

	if !reflect.DeepEqual(facts.InterfaceList, []string{"eth1"}) {
		t.Errorf("expected existing interfaces to be kept, got %v", facts.InterfaceList)
	}
}

func TestPduString(t *testing.T) {
	if got := pduString(gosnmp.SnmpPDU{Value: "text"}); got != "text" {
		t.Errorf("unexpected string value: %q", got)
	}
	if got := pduString(gosnmp.SnmpPDU{Value: []byte("bytes")}); got != "bytes" {
		t.Errorf("unexpected byte value: %q", got)
	}
	if got := pduString(gosnmp.SnmpPDU{Value: 42}); got != "" {
		t.Errorf("expected empty string for non-text value, got %q", got)
	}
}
