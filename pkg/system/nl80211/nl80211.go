// Package nl80211 asks the kernel, not a CLI tool, which wireless
// interfaces exist and what they are associated with. dogewifi uses
// it to cross-check what a driver parsed out of tool output.
package nl80211

import (
	"fmt"

	"github.com/mdlayher/wifi"
)

type KernelInterface struct {
	Name         string
	HardwareAddr string
	Type         string
	SSID         string
	BSSID        string
}

// client is the subset of *wifi.Client we use.
type client interface {
	Interfaces() ([]*wifi.Interface, error)
	BSS(ifi *wifi.Interface) (*wifi.BSS, error)
	Close() error
}

var newClient = func() (client, error) {
	return wifi.New()
}

// Interfaces lists station-capable nl80211 interfaces. On hosts
// without nl80211 (macOS) it returns the client error.
func Interfaces() ([]KernelInterface, error) {
	c, err := newClient()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer c.Close()

	return list(c)
}

func list(c client) ([]KernelInterface, error) {
	ifis, err := c.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	out := []KernelInterface{}
	for _, ifi := range ifis {
		// Ignore monitor/p2p devices and anything without a name
		if ifi.Name == "" || ifi.Type != wifi.InterfaceTypeStation {
			continue
		}

		ki := KernelInterface{
			Name: ifi.Name,
			Type: ifi.Type.String(),
		}
		if ifi.HardwareAddr != nil {
			ki.HardwareAddr = ifi.HardwareAddr.String()
		}

		// BSS fails when not associated, that is not an error here
		if bss, err := c.BSS(ifi); err == nil && bss != nil {
			ki.SSID = bss.SSID
			if bss.BSSID != nil {
				ki.BSSID = bss.BSSID.String()
			}
		}

		out = append(out, ki)
	}

	return out, nil
}
