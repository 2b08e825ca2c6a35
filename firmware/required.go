package firmware

import (
	"github.com/AlexNa-Holdings/hwparams/coin"
	"github.com/AlexNa-Holdings/hwparams/hw"
	"github.com/rs/zerolog/log"
)

// NoRequirement marks a slot that any firmware satisfies.
const NoRequirement = "0"

// Pair holds the minimum firmware as [trezor1, trezor2], indexed by hw.Model.
type Pair [2]string

func (p Pair) Get(m hw.Model) string {
	if s := m.Slot(); s >= 0 {
		return p[s]
	}
	return NoRequirement
}

// RequiredFirmware folds the firmware declared by info into current and
// returns the result. Slots the coin declares nothing for reset to "0".
func RequiredFirmware(info *coin.Info, current Pair) Pair {
	var declared [2]string
	if info != nil && info.Support != nil {
		declared = [2]string{info.Support.Trezor1, info.Support.Trezor2}
	}

	for i, v := range declared {
		// "" is undeclared, same as a nil Support
		if v == "" {
			current[i] = NoRequirement
			continue
		}
		if !Valid(v) {
			log.Warn().Msgf("RequiredFirmware: %s declares unparsable %s firmware %q", name(info), hw.Model(i), v)
		}
		if Compare(v, current[i]) > 0 {
			current[i] = v
		}
	}

	return current
}

// Fold resolves the firmware required by every coin of one request.
func Fold(coins ...*coin.Info) Pair {
	p := Pair{NoRequirement, NoRequirement}
	for _, c := range coins {
		p = RequiredFirmware(c, p)
	}
	return p
}

// Satisfies reports whether firmware version on model m meets required.
func Satisfies(m hw.Model, version string, required Pair) bool {
	if m.Slot() < 0 {
		return false
	}
	want := required.Get(m)
	if want == "" || want == NoRequirement {
		return true
	}
	return Compare(version, want) >= 0
}

func name(info *coin.Info) string {
	if info == nil {
		return "<nil>"
	}
	return info.Name
}
