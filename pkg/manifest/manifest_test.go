package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/netreg-io/netreg/pkg/util"
)

const sampleManifest = `
sites:
  - name: New York
manufacturers:
  - name: Juniper
device_roles:
  - name: Leaf
    color: 00ff00
device_types:
  - model: EX4300-48T
    manufacturer: Juniper
    height: 1
devices:
  - name: leaf1-ny
    role: Leaf
    manufacturer: Juniper
    model: EX4300-48T
    site: New York
    interfaces:
      - name: xe-0/0/0
        mtu: 9100
      - name: xe-0/0/48
        description: uplink
  - name: spine1-ny
    role: Spine
    manufacturer: Juniper
    model: QFX5100-24Q
    site: New York
    interfaces:
      - name: et-0/0/1
connections:
  - device_a: leaf1-ny
    interface_a: xe-0/0/48
    device_b: spine1-ny
    interface_b: et-0/0/1
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if len(m.Devices) != 2 {
		t.Fatalf("device count = %d, want 2", len(m.Devices))
	}
	leaf := m.Devices[0]
	if leaf.Name != "leaf1-ny" || leaf.Site != "New York" {
		t.Errorf("leaf = %+v", leaf)
	}
	if len(leaf.Interfaces) != 2 || leaf.Interfaces[0].MTU != 9100 {
		t.Errorf("leaf interfaces = %+v", leaf.Interfaces)
	}
	if len(m.Connections) != 1 || m.Connections[0].InterfaceB != "et-0/0/1" {
		t.Errorf("connections = %+v", m.Connections)
	}
}

func TestParse_RejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("devices: {not: [a, list")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	m := &Manifest{
		Devices: []DeviceConfig{
			{Name: "leaf1"}, // missing role/manufacturer/model/site
		},
		Connections: []ConnectionConfig{
			{DeviceA: "leaf1"}, // missing the other three fields
		},
	}

	err := m.Validate()
	if !errors.Is(err, util.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
	msg := err.Error()
	for _, want := range []string{
		"device leaf1: role is required",
		"device leaf1: site is required",
		"connections[0]: interface_a is required",
		"connections[0]: device_b is required",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q:\n%s", want, msg)
		}
	}
}

func TestValidate_EmptyManifestIsValid(t *testing.T) {
	if err := (&Manifest{}).Validate(); err != nil {
		t.Errorf("empty manifest should validate, got %v", err)
	}
}
