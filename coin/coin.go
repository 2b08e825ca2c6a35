package coin

// Support lists the minimum firmware per device generation. An empty
// version means the coin declares nothing for that device.
type Support struct {
	Trezor1 string `yaml:"trezor1" json:"trezor1,omitempty"`
	Trezor2 string `yaml:"trezor2" json:"trezor2,omitempty"`
}

// Info is the read-only coin metadata consumed by the parameter guards.
type Info struct {
	Name     string   `yaml:"name" json:"name"`
	Shortcut string   `yaml:"shortcut" json:"shortcut"`
	Label    string   `yaml:"label" json:"label,omitempty"`
	Slip44   uint32   `yaml:"slip44" json:"slip44"`
	Support  *Support `yaml:"support" json:"support,omitempty"`
}

// Clone returns a deep copy so registry entries stay read-only.
func (c *Info) Clone() *Info {
	if c == nil {
		return nil
	}
	r := *c
	if c.Support != nil {
		s := *c.Support
		r.Support = &s
	}
	return &r
}
