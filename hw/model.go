package hw

// Vendor and Product IDs
const (
	VID_Trezor1 = 0x534c
	VID_Trezor2 = 0x1209

	ProductT1Firmware   = 0x0001
	ProductT2Bootloader = 0x53C0
	ProductT2Firmware   = 0x53C1
)

// Model is a device generation. Its value indexes the firmware pair.
type Model int

const (
	Unknown Model = iota - 1
	Trezor1
	Trezor2
)

func (m Model) String() string {
	switch m {
	case Trezor1:
		return "trezor1"
	case Trezor2:
		return "trezor2"
	}
	return "unknown"
}

// Slot returns the firmware pair index for m, or -1.
func (m Model) Slot() int {
	if m == Trezor1 || m == Trezor2 {
		return int(m)
	}
	return -1
}

func IsTrezor1(vid uint16, pid uint16) bool {
	return vid == VID_Trezor1 && pid == ProductT1Firmware
}

func IsTrezor2(vid uint16, pid uint16) bool {
	return vid == VID_Trezor2 && (pid == ProductT2Firmware || pid == ProductT2Bootloader)
}

func ModelFromUSB(vid uint16, pid uint16) Model {
	switch {
	case IsTrezor1(vid, pid):
		return Trezor1
	case IsTrezor2(vid, pid):
		return Trezor2
	}
	return Unknown
}

// ModelFromMajor maps the firmware major version reported in device
// features to a generation.
func ModelFromMajor(major uint32) Model {
	switch major {
	case 1:
		return Trezor1
	case 2:
		return Trezor2
	}
	return Unknown
}

func ParseModel(s string) Model {
	switch s {
	case "1", "t1", "trezor1", "T1":
		return Trezor1
	case "2", "t2", "trezor2", "T2":
		return Trezor2
	}
	return Unknown
}
