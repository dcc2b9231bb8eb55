package lis3dh

// Register map. Only the registers this driver touches are listed.
const (
	RegWhoAmI  = 0x0F // Device identification, fixed at 0x33
	RegTempCfg = 0x1F // Temperature sensor and aux ADC enable
	RegCtrl1   = 0x20 // Output data rate, power mode, axis enables
	RegCtrl4   = 0x23 // Full-scale range, high-resolution enable
	RegStatus  = 0x27 // Per-axis new-data and overrun flags

	// Output registers, low byte first. A burst read with the
	// auto-increment bit walks the pair in ascending address order.
	RegOutXL = 0x28
	RegOutXH = 0x29
	RegOutYL = 0x2A
	RegOutYH = 0x2B
	RegOutZL = 0x2C
	RegOutZH = 0x2D
)

const (
	// DefaultAddress is the 7-bit slave address with the SDO pad low.
	DefaultAddress uint16 = 0x18
	// AltAddress is the slave address with the SDO pad pulled high.
	AltAddress uint16 = 0x19

	// WhoAmI is the identity every LIS3DH reports from RegWhoAmI.
	WhoAmI byte = 0x33

	// autoIncrement is ORed into the register pointer so a burst read
	// advances through consecutive registers.
	autoIncrement byte = 0x80
)

// CTRL_REG1 values for the supported output data rates, all axes enabled.
const (
	Ctrl1ODR100Hz byte = 0x57 // 100 Hz, normal / high-resolution mode
	Ctrl1ODR50Hz  byte = 0x47 // 50 Hz, normal mode
	ctrl1PowerOff byte = 0x00
)

// TEMP_CFG_REG values.
const (
	TempCfgDisabled byte = 0x00
	TempCfgEnabled  byte = 0xC0
)

// StatusXYZAvail is set in RegStatus when all three axes hold a new
// reading.
const StatusXYZAvail byte = 0x07

// dataReady reports whether a status byte announces new data on all
// three axes at once.
func dataReady(status byte) bool {
	return status&StatusXYZAvail == StatusXYZAvail
}

// Range selects the full-scale range; the value is written verbatim to
// CTRL_REG4.
type Range byte

const (
	Range2G Range = 0x00 // ±2g, normal mode
	Range4G Range = 0x18 // ±4g, high-resolution mode
)

// sensitivity returns the mg-per-digit factor for the range.
func (r Range) sensitivity() int {
	if r == Range4G {
		return 4
	}
	return 2
}

func (r Range) String() string {
	if r == Range4G {
		return "±4g"
	}
	return "±2g"
}

// standardGravity converts g to m/s².
const standardGravity = 9.80665

// decodeRaw combines an output register pair into the signed reading.
// The device left-justifies a 12-bit value within 16 bits, so the 4
// unused low bits are discarded with an arithmetic shift.
func decodeRaw(low, high byte) int16 {
	return int16(uint16(high)<<8|uint16(low)) >> 4
}

// convert scales a decoded reading to milli-m/s² for the range,
// truncating toward zero.
func (r Range) convert(raw int16) int32 {
	return int32(float64(raw) * float64(r.sensitivity()) * standardGravity)
}

// Axis identifies one of the three acceleration axes. The values double
// as payload slot indexes in the telemetry frame.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// lowRegister returns the low-byte output register for the axis.
func (a Axis) lowRegister() byte {
	switch a {
	case AxisY:
		return RegOutYL
	case AxisZ:
		return RegOutZL
	}
	return RegOutXL
}
