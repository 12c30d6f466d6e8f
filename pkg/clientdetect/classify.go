package clientdetect

// Classify maps a device to its coarse type. Tablet-shaped devices win over
// the mobile flag.
func Classify(isMobile bool, device Device) DeviceType {
	switch {
	case device == DeviceTablet || device == DeviceIPad:
		return DeviceTypeTablet
	case isMobile:
		return DeviceTypeMobile
	default:
		return DeviceTypeDesktop
	}
}

// classifyDevice returns the empty DeviceType for a nil device.
func classifyDevice(d *DeviceInfo) DeviceType {
	if d == nil {
		return ""
	}
	return Classify(d.IsMobile, d.Device)
}
