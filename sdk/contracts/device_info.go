package contracts

// DeviceInfo describes a MIDI input port.
type DeviceInfo struct {
	Name         string // Port name as shown to the user.
	Manufacturer string // Device manufacturer, empty when the platform does not report one.
	EntityName   string // Name of the entity or driver the port belongs to.
}
