package registry

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/netreg-io/netreg/pkg/util"
)

// Resolvers: each issues a single GET against an entity collection,
// optionally narrowed by one identifying field. A filter that matches
// nothing yields an empty slice, not an error — only the orchestrators in
// upsert.go decide whether "empty" means "create it" or "give up".
//
// The registry paginates collections; only the first page is consumed.

// nameQuery builds a single-field filter, or nil for the full collection.
func nameQuery(field, value string) url.Values {
	if value == "" {
		return nil
	}
	return url.Values{field: []string{value}}
}

// Manufacturers lists manufacturers, filtered by exact name when non-empty.
func (c *Client) Manufacturers(ctx context.Context, name string) ([]Manufacturer, error) {
	return getList[Manufacturer](ctx, c, pathManufacturers, nameQuery("name", name))
}

// Devices lists devices, filtered by exact name when non-empty.
func (c *Client) Devices(ctx context.Context, name string) ([]Device, error) {
	return getList[Device](ctx, c, pathDevices, nameQuery("name", name))
}

// DeviceTypes lists device types, filtered by exact model when non-empty.
func (c *Client) DeviceTypes(ctx context.Context, model string) ([]DeviceType, error) {
	return getList[DeviceType](ctx, c, pathDeviceTypes, nameQuery("model", model))
}

// RoleFilter narrows a device-role query. At most one field may be set.
type RoleFilter struct {
	Name string
	Slug string
}

// DeviceRoles lists device roles. The zero filter returns the full
// collection; setting both Name and Slug is an error.
func (c *Client) DeviceRoles(ctx context.Context, filter RoleFilter) ([]DeviceRole, error) {
	query, err := oneOf("device role", "name", filter.Name, "slug", filter.Slug)
	if err != nil {
		return nil, err
	}
	return getList[DeviceRole](ctx, c, pathDeviceRoles, query)
}

// SiteFilter narrows a site query. At most one field may be set.
type SiteFilter struct {
	Name string
	Slug string
}

// Sites lists sites. The zero filter returns the full collection; setting
// both Name and Slug is an error.
func (c *Client) Sites(ctx context.Context, filter SiteFilter) ([]Site, error) {
	query, err := oneOf("site", "name", filter.Name, "slug", filter.Slug)
	if err != nil {
		return nil, err
	}
	return getList[Site](ctx, c, pathSites, query)
}

// Interfaces lists the interfaces of the named device, optionally narrowed
// to one interface name. The device is resolved first; a device that does
// not exist is a missing prerequisite, not an empty result.
func (c *Client) Interfaces(ctx context.Context, device, name string) ([]Interface, error) {
	dev, err := c.deviceByName(ctx, "interface lookup", device)
	if err != nil {
		return nil, err
	}

	query := url.Values{"device_id": []string{strconv.Itoa(dev.ID)}}
	if name != "" {
		query.Set("name", name)
	}
	return getList[Interface](ctx, c, pathInterfaces, query)
}

// Connections lists inter-device links. When device is non-empty it is
// resolved first (missing device fails fast) and the query is narrowed to
// that device. iface is accepted for symmetry with the add operation but
// does not narrow the query further; callers filter client-side if needed.
func (c *Client) Connections(ctx context.Context, device, iface string) ([]InterfaceConnection, error) {
	_ = iface // not a server-side filter on this endpoint

	var query url.Values
	if device != "" {
		dev, err := c.deviceByName(ctx, "connection lookup", device)
		if err != nil {
			return nil, err
		}
		query = url.Values{"device_id": []string{strconv.Itoa(dev.ID)}}
	}
	return getList[InterfaceConnection](ctx, c, pathConnections, query)
}

// deviceByName resolves a device that must already exist. resource names
// the operation on whose behalf the lookup happens, for the error message.
func (c *Client) deviceByName(ctx context.Context, resource, name string) (*Device, error) {
	if name == "" {
		return nil, util.NewValidationError("device name is required")
	}
	devices, err := c.Devices(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, util.NewDependencyError(resource, "device", name)
	}
	return &devices[0], nil
}

// oneOf builds a query from exactly zero or one of two filter fields.
func oneOf(entity, keyA, valA, keyB, valB string) (url.Values, error) {
	if valA != "" && valB != "" {
		return nil, util.NewValidationError(
			fmt.Sprintf("%s filter accepts %s or %s, not both", entity, keyA, keyB))
	}
	if valA != "" {
		return url.Values{keyA: []string{valA}}, nil
	}
	if valB != "" {
		return url.Values{keyB: []string{valB}}, nil
	}
	return nil, nil
}
