package coin

import (
	"os"
	"strings"

	"github.com/AlexNa-Holdings/hwparams/hdpath"
	"github.com/rs/zerolog/log"
	"github.com/samber/oops"
	"gopkg.in/yaml.v2"
)

type Registry struct {
	coins []*Info
}

type coinsFile struct {
	Coins []Info `yaml:"coins"`
}

// NewRegistry builds a registry from the predefined coins followed by extra.
// An extra coin with the name of an existing one replaces it.
func NewRegistry(extra ...Info) *Registry {
	r := &Registry{}
	for i := range PredefinedCoins {
		r.add(PredefinedCoins[i])
	}
	for _, c := range extra {
		r.add(c)
	}
	return r
}

// LoadFile reads a YAML coin list and merges it over the predefined coins.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.In("coin").With("path", path).Wrapf(err, "reading coin list")
	}

	var f coinsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, oops.In("coin").With("path", path).Wrapf(err, "parsing coin list")
	}

	for i, c := range f.Coins {
		if c.Name == "" {
			return nil, oops.In("coin").With("path", path, "index", i).Errorf("coin without name")
		}
	}

	log.Debug().Msgf("Loaded %d coins from %s", len(f.Coins), path)
	return NewRegistry(f.Coins...), nil
}

func (r *Registry) add(c Info) {
	ci := c.Clone()
	for i, e := range r.coins {
		if strings.EqualFold(e.Name, ci.Name) {
			r.coins[i] = ci
			return
		}
	}
	r.coins = append(r.coins, ci)
}

// Get finds a coin by name, shortcut or label, ignoring case.
func (r *Registry) Get(name string) *Info {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for _, c := range r.coins {
		if strings.EqualFold(c.Name, name) ||
			strings.EqualFold(c.Shortcut, name) ||
			(c.Label != "" && strings.EqualFold(c.Label, name)) {
			return c.Clone()
		}
	}
	return nil
}

// BySlip44 returns the first coin registered under the slip44 id.
func (r *Registry) BySlip44(id uint32) *Info {
	for _, c := range r.coins {
		if c.Slip44 == id {
			return c.Clone()
		}
	}
	return nil
}

// FromPath resolves a coin by the coin type segment of p.
func (r *Registry) FromPath(p hdpath.Path) *Info {
	ct, ok := p.CoinType()
	if !ok {
		return nil
	}
	return r.BySlip44(ct)
}

func (r *Registry) All() []*Info {
	all := make([]*Info, 0, len(r.coins))
	for _, c := range r.coins {
		all = append(all, c.Clone())
	}
	return all
}
