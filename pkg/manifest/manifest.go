// Package manifest implements declarative bulk import: a YAML document
// describing sites, hardware, devices, interfaces and links is applied
// against the registry, creating whatever does not exist yet. Re-applying
// the same manifest is a no-op.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netreg-io/netreg/pkg/util"
)

// Manifest is the root of an import document. Kinds are applied in
// dependency order regardless of their order in the file.
type Manifest struct {
	Sites         []SiteConfig         `yaml:"sites,omitempty"`
	Manufacturers []ManufacturerConfig `yaml:"manufacturers,omitempty"`
	DeviceRoles   []RoleConfig         `yaml:"device_roles,omitempty"`
	DeviceTypes   []DeviceTypeConfig   `yaml:"device_types,omitempty"`
	Devices       []DeviceConfig       `yaml:"devices,omitempty"`
	Connections   []ConnectionConfig   `yaml:"connections,omitempty"`
}

// SiteConfig declares a site by name.
type SiteConfig struct {
	Name string `yaml:"name"`
}

// ManufacturerConfig declares a manufacturer by name.
type ManufacturerConfig struct {
	Name string `yaml:"name"`
}

// RoleConfig declares a device role.
type RoleConfig struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color,omitempty"`
	VMRole bool   `yaml:"vm_role,omitempty"`
}

// DeviceTypeConfig declares a hardware model.
type DeviceTypeConfig struct {
	Model        string `yaml:"model"`
	Manufacturer string `yaml:"manufacturer"`
	Height       int    `yaml:"height,omitempty"`
}

// InterfaceConfig declares an interface on its enclosing device.
type InterfaceConfig struct {
	Name        string `yaml:"name"`
	MACAddress  string `yaml:"mac_address,omitempty"`
	Description string `yaml:"description,omitempty"`
	FormFactor  int    `yaml:"form_factor,omitempty"`
	MTU         int    `yaml:"mtu,omitempty"`
	Enabled     *bool  `yaml:"enabled,omitempty"`
}

// DeviceConfig declares a device with its full prerequisite chain inline.
type DeviceConfig struct {
	Name         string            `yaml:"name"`
	Role         string            `yaml:"role"`
	Manufacturer string            `yaml:"manufacturer"`
	Model        string            `yaml:"model"`
	Site         string            `yaml:"site"`
	Interfaces   []InterfaceConfig `yaml:"interfaces,omitempty"`
}

// ConnectionConfig declares a link between two device interfaces.
type ConnectionConfig struct {
	DeviceA    string `yaml:"device_a"`
	InterfaceA string `yaml:"interface_a"`
	DeviceB    string `yaml:"device_b"`
	InterfaceB string `yaml:"interface_b"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every entry carries its required fields, reporting
// all problems at once.
func (m *Manifest) Validate() error {
	var v util.ValidationBuilder

	for i, s := range m.Sites {
		v.Add(s.Name != "", fmt.Sprintf("sites[%d]: name is required", i))
	}
	for i, mfr := range m.Manufacturers {
		v.Add(mfr.Name != "", fmt.Sprintf("manufacturers[%d]: name is required", i))
	}
	for i, r := range m.DeviceRoles {
		v.Add(r.Name != "", fmt.Sprintf("device_roles[%d]: name is required", i))
	}
	for i, dt := range m.DeviceTypes {
		v.Add(dt.Model != "", fmt.Sprintf("device_types[%d]: model is required", i))
		v.Add(dt.Manufacturer != "", fmt.Sprintf("device_types[%d]: manufacturer is required", i))
	}
	for i, d := range m.Devices {
		prefix := fmt.Sprintf("devices[%d]", i)
		if d.Name != "" {
			prefix = fmt.Sprintf("device %s", d.Name)
		}
		v.Add(d.Name != "", fmt.Sprintf("devices[%d]: name is required", i))
		v.Add(d.Role != "", prefix+": role is required")
		v.Add(d.Manufacturer != "", prefix+": manufacturer is required")
		v.Add(d.Model != "", prefix+": model is required")
		v.Add(d.Site != "", prefix+": site is required")
		for j, intf := range d.Interfaces {
			v.Add(intf.Name != "", fmt.Sprintf("%s interfaces[%d]: name is required", prefix, j))
		}
	}
	for i, conn := range m.Connections {
		prefix := fmt.Sprintf("connections[%d]", i)
		v.Add(conn.DeviceA != "", prefix+": device_a is required")
		v.Add(conn.InterfaceA != "", prefix+": interface_a is required")
		v.Add(conn.DeviceB != "", prefix+": device_b is required")
		v.Add(conn.InterfaceB != "", prefix+": interface_b is required")
	}

	return v.Build()
}
