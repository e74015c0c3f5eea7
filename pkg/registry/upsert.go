package registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/netreg-io/netreg/pkg/slug"
	"github.com/netreg-io/netreg/pkg/util"
)

// DefaultRoleColor is the color assigned to device roles created without an
// explicit one (hot pink, matching the registry UI default).
const DefaultRoleColor = "ff69b4"

// resolveOrCreate is the upsert primitive shared by every add operation:
// resolve by identifying field; when absent, create and resolve again to
// learn the server-assigned id.
//
// The read-then-write pair is not atomic. Two concurrent callers can both
// observe "absent" and both create; the registry's uniqueness constraints
// are the only backstop against duplicates. Callers that need single-writer
// semantics must serialize externally.
func resolveOrCreate[T any](ctx context.Context, kind, name string,
	resolve func(context.Context) ([]T, error),
	create func(context.Context) error) (*T, error) {

	existing, err := resolve(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		util.WithEntity(kind).Infof("creating missing %s '%s'", kind, name)
		if err := create(ctx); err != nil {
			return nil, err
		}
		existing, err = resolve(ctx)
		if err != nil {
			return nil, err
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%s '%s' not visible after creation: %w", kind, name, util.ErrNotFound)
		}
	}
	return &existing[0], nil
}

// AddManufacturer ensures a manufacturer with the given name exists and
// returns it. The slug is derived from the name client-side.
func (c *Client) AddManufacturer(ctx context.Context, name string) (*Manufacturer, error) {
	if name == "" {
		return nil, util.NewValidationError("manufacturer name is required")
	}
	return resolveOrCreate(ctx, "manufacturer", name,
		func(ctx context.Context) ([]Manufacturer, error) {
			return c.Manufacturers(ctx, name)
		},
		func(ctx context.Context) error {
			payload := map[string]interface{}{"name": name, "slug": slug.Make(name)}
			return c.do(ctx, http.MethodPost, pathManufacturers, nil, payload, nil)
		})
}

// AddSite ensures a site with the given name exists and returns it.
// An empty name is rejected; "no site" is expressed by not calling this.
func (c *Client) AddSite(ctx context.Context, name string) (*Site, error) {
	if name == "" {
		return nil, util.NewValidationError("site name is required")
	}
	return resolveOrCreate(ctx, "site", name,
		func(ctx context.Context) ([]Site, error) {
			return c.Sites(ctx, SiteFilter{Name: name})
		},
		func(ctx context.Context) error {
			payload := map[string]interface{}{"name": name, "slug": slug.Make(name)}
			return c.do(ctx, http.MethodPost, pathSites, nil, payload, nil)
		})
}

// AddDeviceRole creates a device role. Unlike the other add operations it
// has no prerequisites and performs no existence check: the POST goes out
// as-is and a duplicate name is the registry's error to raise. color
// defaults to DefaultRoleColor and is lower-cased either way.
func (c *Client) AddDeviceRole(ctx context.Context, name, color string, vmRole bool) (*DeviceRole, error) {
	if name == "" {
		return nil, util.NewValidationError("device role name is required")
	}
	if color == "" {
		color = DefaultRoleColor
	}

	payload := map[string]interface{}{
		"name":    name,
		"slug":    slug.Make(name),
		"color":   strings.ToLower(color),
		"vm_role": vmRole,
	}
	var created DeviceRole
	if err := c.do(ctx, http.MethodPost, pathDeviceRoles, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeviceTypeParams describes a device type to add.
type DeviceTypeParams struct {
	Model        string
	Manufacturer string
	Height       int // rack units, 0 for fixed-form-factor devices

	// RequireManufacturer disables manufacturer auto-creation: when set and
	// the manufacturer does not exist the add fails with a dependency error
	// before any creation request is issued.
	RequireManufacturer bool
}

// AddDeviceType creates a device type, ensuring its manufacturer exists
// first (created on the fly unless RequireManufacturer is set).
func (c *Client) AddDeviceType(ctx context.Context, p DeviceTypeParams) (*DeviceType, error) {
	var v util.ValidationBuilder
	v.Require(p.Model, "device type model is required")
	v.Require(p.Manufacturer, "manufacturer name is required")
	if err := v.Build(); err != nil {
		return nil, err
	}

	var mfr *Manufacturer
	if p.RequireManufacturer {
		existing, err := c.Manufacturers(ctx, p.Manufacturer)
		if err != nil {
			return nil, err
		}
		if len(existing) == 0 {
			return nil, util.NewDependencyError("device-type "+p.Model, "manufacturer", p.Manufacturer)
		}
		mfr = &existing[0]
	} else {
		var err error
		if mfr, err = c.AddManufacturer(ctx, p.Manufacturer); err != nil {
			return nil, err
		}
	}

	payload := map[string]interface{}{
		"model":        p.Model,
		"slug":         slug.Make(p.Model),
		"manufacturer": mfr.ID,
		"u_height":     p.Height,
	}
	var created DeviceType
	if err := c.do(ctx, http.MethodPost, pathDeviceTypes, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeviceParams describes a device to add. All fields are required; a
// device cannot be registered without a role, hardware model and site.
type DeviceParams struct {
	Name         string
	Role         string // device role name
	Manufacturer string // manufacturer name
	Model        string // device type model
	Site         string // site name
}

// AddDevice registers a device, resolving or creating the full prerequisite
// chain first: manufacturer, then role, then device type (scoped to the
// manufacturer), then site. The final POST carries the four resolved ids.
func (c *Client) AddDevice(ctx context.Context, p DeviceParams) (*Device, error) {
	var v util.ValidationBuilder
	v.Require(p.Name, "device name is required")
	v.Require(p.Role, "device role is required")
	v.Require(p.Manufacturer, "manufacturer is required")
	v.Require(p.Model, "device type model is required")
	v.Require(p.Site, "site is required")
	if err := v.Build(); err != nil {
		return nil, err
	}

	mfr, err := c.AddManufacturer(ctx, p.Manufacturer)
	if err != nil {
		return nil, fmt.Errorf("resolving manufacturer for device %s: %w", p.Name, err)
	}

	role, err := resolveOrCreate(ctx, "device role", p.Role,
		func(ctx context.Context) ([]DeviceRole, error) {
			return c.DeviceRoles(ctx, RoleFilter{Name: p.Role})
		},
		func(ctx context.Context) error {
			payload := map[string]interface{}{
				"name":    p.Role,
				"slug":    slug.Make(p.Role),
				"color":   DefaultRoleColor,
				"vm_role": false,
			}
			return c.do(ctx, http.MethodPost, pathDeviceRoles, nil, payload, nil)
		})
	if err != nil {
		return nil, fmt.Errorf("resolving role for device %s: %w", p.Name, err)
	}

	dtype, err := resolveOrCreate(ctx, "device type", p.Model,
		func(ctx context.Context) ([]DeviceType, error) {
			return c.DeviceTypes(ctx, p.Model)
		},
		func(ctx context.Context) error {
			payload := map[string]interface{}{
				"model":        p.Model,
				"slug":         slug.Make(p.Model),
				"manufacturer": mfr.ID,
				"u_height":     0,
			}
			return c.do(ctx, http.MethodPost, pathDeviceTypes, nil, payload, nil)
		})
	if err != nil {
		return nil, fmt.Errorf("resolving device type for device %s: %w", p.Name, err)
	}

	site, err := c.AddSite(ctx, p.Site)
	if err != nil {
		return nil, fmt.Errorf("resolving site for device %s: %w", p.Name, err)
	}

	payload := map[string]interface{}{
		"name":         p.Name,
		"device_role":  role.ID,
		"manufacturer": mfr.ID,
		"device_type":  dtype.ID,
		"site":         site.ID,
	}
	var created Device
	if err := c.do(ctx, http.MethodPost, pathDevices, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// InterfaceParams describes an interface to add. Device and Name are
// required; every other field is optional and omitted from the outgoing
// payload when unset rather than sent as null or zero.
type InterfaceParams struct {
	Device      string // owning device name, must already exist
	Name        string
	MACAddress  string
	Description string
	FormFactor  int   // registry form-factor code, 0 means unspecified
	MTU         int   // 0 means unspecified
	Enabled     *bool // nil means unspecified
}

// AddInterface creates an interface on an existing device. Devices are
// never auto-created here: an interface on an unknown device is a mistake,
// not a provisioning request.
func (c *Client) AddInterface(ctx context.Context, p InterfaceParams) (*Interface, error) {
	var v util.ValidationBuilder
	v.Require(p.Device, "device name is required")
	v.Require(p.Name, "interface name is required")
	if err := v.Build(); err != nil {
		return nil, err
	}

	dev, err := c.deviceByName(ctx, "interface "+p.Name, p.Device)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"device": dev.ID,
		"name":   p.Name,
	}
	if p.MACAddress != "" {
		payload["mac_address"] = p.MACAddress
	}
	if p.Description != "" {
		payload["description"] = p.Description
	}
	if p.FormFactor != 0 {
		payload["form_factor"] = p.FormFactor
	}
	if p.MTU != 0 {
		payload["mtu"] = p.MTU
	}
	if p.Enabled != nil {
		payload["enabled"] = *p.Enabled
	}

	var created Interface
	if err := c.do(ctx, http.MethodPost, pathInterfaces, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddConnection links two interfaces, each identified by device name plus
// interface name. Both sides are resolved before anything is written; if
// either side is missing no connection is created.
func (c *Client) AddConnection(ctx context.Context, deviceA, ifaceA, deviceB, ifaceB string) (*InterfaceConnection, error) {
	var v util.ValidationBuilder
	v.Require(deviceA, "device A name is required")
	v.Require(ifaceA, "interface A name is required")
	v.Require(deviceB, "device B name is required")
	v.Require(ifaceB, "interface B name is required")
	if err := v.Build(); err != nil {
		return nil, err
	}

	endA, err := c.connectionEnd(ctx, deviceA, ifaceA)
	if err != nil {
		return nil, err
	}
	endB, err := c.connectionEnd(ctx, deviceB, ifaceB)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"interface_a": endA.ID,
		"interface_b": endB.ID,
	}
	var created InterfaceConnection
	if err := c.do(ctx, http.MethodPost, pathConnections, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// connectionEnd resolves one side of a connection to a concrete interface.
func (c *Client) connectionEnd(ctx context.Context, device, iface string) (*Interface, error) {
	interfaces, err := c.Interfaces(ctx, device, iface)
	if err != nil {
		return nil, err
	}
	for i := range interfaces {
		if interfaces[i].Name == iface {
			return &interfaces[i], nil
		}
	}
	return nil, util.NewDependencyError("connection", "interface", device+"/"+iface)
}
