package registry

import "encoding/json"

// Entity models for the registry's read API. List and create responses
// embed related objects as brief references; writes always send bare ids
// (see upsert.go payloads).

// Related is an embedded reference to another entity inside a response.
type Related struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// UnmarshalJSON accepts either an embedded object (list responses) or a
// bare integer id (create responses echo writable fields as ids).
func (r *Related) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '{' {
		type related Related // drop methods to avoid recursion
		var obj related
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = Related(obj)
		return nil
	}
	return json.Unmarshal(data, &r.ID)
}

// Manufacturer is a hardware vendor, unique by name.
type Manufacturer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DeviceType is a hardware model, unique by model within a manufacturer.
type DeviceType struct {
	ID           int     `json:"id"`
	Model        string  `json:"model"`
	Slug         string  `json:"slug"`
	Manufacturer Related `json:"manufacturer"`
	UHeight      int     `json:"u_height"`
}

// DeviceRole classifies what a device does (leaf, spine, firewall, ...).
type DeviceRole struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Color  string `json:"color"`
	VMRole bool   `json:"vm_role"`
}

// Site is a physical location.
type Site struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Device is a concrete piece of hardware installed at a site.
type Device struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name,omitempty"`
	DeviceType  Related `json:"device_type"`
	DeviceRole  Related `json:"device_role"`
	Site        Related `json:"site"`
}

// Interface is a network port on a device. Interface names are unique per
// device, not globally.
type Interface struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Device      Related `json:"device"`
	MACAddress  string  `json:"mac_address,omitempty"`
	Description string  `json:"description,omitempty"`
	FormFactor  int     `json:"form_factor,omitempty"`
	MTU         int     `json:"mtu,omitempty"`
	Enabled     bool    `json:"enabled"`
}

// ConnectionEnd is an interface reference inside a connection, carrying
// enough context to identify the owning device.
type ConnectionEnd struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Device Related `json:"device"`
}

// UnmarshalJSON accepts either an embedded interface object (list
// responses) or a bare integer id (create responses).
func (e *ConnectionEnd) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '{' {
		type end ConnectionEnd
		var obj end
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*e = ConnectionEnd(obj)
		return nil
	}
	return json.Unmarshal(data, &e.ID)
}

// InterfaceConnection is a point-to-point link between two interfaces.
type InterfaceConnection struct {
	ID               int           `json:"id"`
	InterfaceA       ConnectionEnd `json:"interface_a"`
	InterfaceB       ConnectionEnd `json:"interface_b"`
	ConnectionStatus interface{}   `json:"connection_status,omitempty"`
}

// IPAddress is an IPAM entry; this client only lists them.
type IPAddress struct {
	ID          int     `json:"id"`
	Family      int     `json:"family"`
	Address     string  `json:"address"`
	Description string  `json:"description,omitempty"`
	Interface   Related `json:"interface,omitempty"`
}

// Collection endpoints under the registry root.
const (
	pathDevices       = "/dcim/devices/"
	pathManufacturers = "/dcim/manufacturers/"
	pathDeviceTypes   = "/dcim/device-types/"
	pathDeviceRoles   = "/dcim/device-roles/"
	pathSites         = "/dcim/sites/"
	pathInterfaces    = "/dcim/interfaces/"
	pathConnections   = "/dcim/interface-connections/"
	pathIPAddresses   = "/ipam/ip-addresses/"
)
