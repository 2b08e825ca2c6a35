package hdpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/tyler-smith/go-bip32"
)

// HardenedOffset is the marker bit of a hardened path segment.
const HardenedOffset uint32 = bip32.FirstHardenedChild

var (
	ErrMissingPath     = errors.New("missing derivation path")
	ErrRelativePath    = errors.New("derivation path must start with 'm/'")
	ErrPathTooShort    = errors.New("derivation path is too short")
	ErrPathNotHardened = errors.New("derivation path purpose must be hardened")
)

// Path is a BIP32 derivation path. Segment [1] is the coin type.
type Path []uint32

func FromHardened(n uint32) uint32 {
	return n &^ HardenedOffset
}

func ToHardened(n uint32) uint32 {
	return n | HardenedOffset
}

func IsHardened(n uint32) bool {
	return n&HardenedOffset != 0
}

// Parse converts an absolute path like "m/44'/0'/0'/0/0" into a Path.
// Relative paths are rejected: go-ethereum would root them at m/44'/60'/0'/0.
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrMissingPath
	}
	if !strings.HasPrefix(s, "m/") {
		return nil, ErrRelativePath
	}

	dp, err := accounts.ParseDerivationPath(s)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %q: %w", s, err)
	}
	return Path(dp), nil
}

func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// CoinType returns the un-hardened coin type segment.
func (p Path) CoinType() (uint32, bool) {
	if len(p) < 2 {
		return 0, false
	}
	return FromHardened(p[1]), true
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, n := range p {
		if IsHardened(n) {
			fmt.Fprintf(&sb, "/%d'", FromHardened(n))
		} else {
			fmt.Fprintf(&sb, "/%d", n)
		}
	}
	return sb.String()
}

// Validate checks that p has at least minLength segments. Account-level
// paths (minLength >= 3) must start with a hardened purpose.
func Validate(p Path, minLength int) error {
	if len(p) == 0 {
		return ErrMissingPath
	}
	if len(p) < minLength {
		return fmt.Errorf("%w: got %d segments, need %d", ErrPathTooShort, len(p), minLength)
	}
	if minLength >= 3 && !IsHardened(p[0]) {
		return ErrPathNotHardened
	}
	return nil
}
