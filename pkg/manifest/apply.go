package manifest

import (
	"context"
	"fmt"

	"github.com/netreg-io/netreg/pkg/registry"
	"github.com/netreg-io/netreg/pkg/util"
)

// Summary reports what an Apply run did per entity kind.
type Summary struct {
	Created map[string]int
	Skipped map[string]int
}

func newSummary() *Summary {
	return &Summary{
		Created: make(map[string]int),
		Skipped: make(map[string]int),
	}
}

func (s *Summary) created(kind string) { s.Created[kind]++ }
func (s *Summary) skipped(kind string) { s.Skipped[kind]++ }

// Total returns the number of entities created.
func (s *Summary) Total() int {
	n := 0
	for _, v := range s.Created {
		n += v
	}
	return n
}

// Apply upserts the manifest against the registry in dependency order:
// sites, manufacturers, roles, device types, devices, their interfaces,
// then connections. Entities that already exist are skipped; the first
// failure aborts the run (already-applied entities stay applied — Apply is
// resumable by re-running).
func Apply(ctx context.Context, c *registry.Client, m *Manifest) (*Summary, error) {
	sum := newSummary()
	log := util.WithField("component", "apply")

	for _, s := range m.Sites {
		existing, err := c.Sites(ctx, registry.SiteFilter{Name: s.Name})
		if err != nil {
			return sum, fmt.Errorf("site %s: %w", s.Name, err)
		}
		if len(existing) > 0 {
			sum.skipped("site")
			continue
		}
		if _, err := c.AddSite(ctx, s.Name); err != nil {
			return sum, fmt.Errorf("site %s: %w", s.Name, err)
		}
		log.Infof("created site %s", s.Name)
		sum.created("site")
	}

	for _, mfr := range m.Manufacturers {
		existing, err := c.Manufacturers(ctx, mfr.Name)
		if err != nil {
			return sum, fmt.Errorf("manufacturer %s: %w", mfr.Name, err)
		}
		if len(existing) > 0 {
			sum.skipped("manufacturer")
			continue
		}
		if _, err := c.AddManufacturer(ctx, mfr.Name); err != nil {
			return sum, fmt.Errorf("manufacturer %s: %w", mfr.Name, err)
		}
		log.Infof("created manufacturer %s", mfr.Name)
		sum.created("manufacturer")
	}

	for _, r := range m.DeviceRoles {
		existing, err := c.DeviceRoles(ctx, registry.RoleFilter{Name: r.Name})
		if err != nil {
			return sum, fmt.Errorf("device role %s: %w", r.Name, err)
		}
		if len(existing) > 0 {
			sum.skipped("device-role")
			continue
		}
		if _, err := c.AddDeviceRole(ctx, r.Name, r.Color, r.VMRole); err != nil {
			return sum, fmt.Errorf("device role %s: %w", r.Name, err)
		}
		log.Infof("created device role %s", r.Name)
		sum.created("device-role")
	}

	for _, dt := range m.DeviceTypes {
		existing, err := c.DeviceTypes(ctx, dt.Model)
		if err != nil {
			return sum, fmt.Errorf("device type %s: %w", dt.Model, err)
		}
		if len(existing) > 0 {
			sum.skipped("device-type")
			continue
		}
		_, err = c.AddDeviceType(ctx, registry.DeviceTypeParams{
			Model:        dt.Model,
			Manufacturer: dt.Manufacturer,
			Height:       dt.Height,
		})
		if err != nil {
			return sum, fmt.Errorf("device type %s: %w", dt.Model, err)
		}
		log.Infof("created device type %s", dt.Model)
		sum.created("device-type")
	}

	for _, d := range m.Devices {
		existing, err := c.Devices(ctx, d.Name)
		if err != nil {
			return sum, fmt.Errorf("device %s: %w", d.Name, err)
		}
		if len(existing) > 0 {
			sum.skipped("device")
		} else {
			_, err := c.AddDevice(ctx, registry.DeviceParams{
				Name:         d.Name,
				Role:         d.Role,
				Manufacturer: d.Manufacturer,
				Model:        d.Model,
				Site:         d.Site,
			})
			if err != nil {
				return sum, fmt.Errorf("device %s: %w", d.Name, err)
			}
			log.Infof("created device %s", d.Name)
			sum.created("device")
		}

		for _, intf := range d.Interfaces {
			have, err := c.Interfaces(ctx, d.Name, intf.Name)
			if err != nil {
				return sum, fmt.Errorf("device %s interface %s: %w", d.Name, intf.Name, err)
			}
			if containsInterface(have, intf.Name) {
				sum.skipped("interface")
				continue
			}
			_, err = c.AddInterface(ctx, registry.InterfaceParams{
				Device:      d.Name,
				Name:        intf.Name,
				MACAddress:  intf.MACAddress,
				Description: intf.Description,
				FormFactor:  intf.FormFactor,
				MTU:         intf.MTU,
				Enabled:     intf.Enabled,
			})
			if err != nil {
				return sum, fmt.Errorf("device %s interface %s: %w", d.Name, intf.Name, err)
			}
			log.Infof("created interface %s on %s", intf.Name, d.Name)
			sum.created("interface")
		}
	}

	for _, conn := range m.Connections {
		exists, err := connectionExists(ctx, c, conn)
		if err != nil {
			return sum, fmt.Errorf("connection %s/%s <-> %s/%s: %w",
				conn.DeviceA, conn.InterfaceA, conn.DeviceB, conn.InterfaceB, err)
		}
		if exists {
			sum.skipped("connection")
			continue
		}
		_, err = c.AddConnection(ctx, conn.DeviceA, conn.InterfaceA, conn.DeviceB, conn.InterfaceB)
		if err != nil {
			return sum, fmt.Errorf("connection %s/%s <-> %s/%s: %w",
				conn.DeviceA, conn.InterfaceA, conn.DeviceB, conn.InterfaceB, err)
		}
		log.Infof("connected %s/%s <-> %s/%s",
			conn.DeviceA, conn.InterfaceA, conn.DeviceB, conn.InterfaceB)
		sum.created("connection")
	}

	return sum, nil
}

func containsInterface(interfaces []registry.Interface, name string) bool {
	for _, intf := range interfaces {
		if intf.Name == name {
			return true
		}
	}
	return false
}

// connectionExists lists device A's connections and looks for the declared
// pair in either direction.
func connectionExists(ctx context.Context, c *registry.Client, conn ConnectionConfig) (bool, error) {
	existing, err := c.Connections(ctx, conn.DeviceA, "")
	if err != nil {
		return false, err
	}
	for _, link := range existing {
		if endMatches(link.InterfaceA, conn.DeviceA, conn.InterfaceA) &&
			endMatches(link.InterfaceB, conn.DeviceB, conn.InterfaceB) {
			return true, nil
		}
		if endMatches(link.InterfaceA, conn.DeviceB, conn.InterfaceB) &&
			endMatches(link.InterfaceB, conn.DeviceA, conn.InterfaceA) {
			return true, nil
		}
	}
	return false, nil
}

func endMatches(end registry.ConnectionEnd, device, iface string) bool {
	return end.Device.Name == device && end.Name == iface
}
