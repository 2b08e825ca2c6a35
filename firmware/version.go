package firmware

import (
	"github.com/Masterminds/semver/v3"
)

// Compare orders two firmware versions: -1 if a < b, 0 if equal, 1 if a > b.
// Short forms like "1.2" or "0" are accepted. A version that does not parse
// sorts below any version that does.
func Compare(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)

	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}

// Valid reports whether v parses as a firmware version.
func Valid(v string) bool {
	_, err := semver.NewVersion(v)
	return err == nil
}
