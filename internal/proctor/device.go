package proctor

import "strings"

type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceLaptop  DeviceType = "laptop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
)

func ParseDeviceType(s string) DeviceType {
	switch DeviceType(strings.ToLower(strings.TrimSpace(s))) {
	case DeviceMobile:
		return DeviceMobile
	case DeviceTablet:
		return DeviceTablet
	case DeviceLaptop:
		return DeviceLaptop
	}
	return DeviceDesktop
}

// RequiresCamera reports whether camera proctoring applies. Mobile and tablet
// form factors are exempt by policy.
func (d DeviceType) RequiresCamera() bool {
	return d == DeviceDesktop || d == DeviceLaptop
}
