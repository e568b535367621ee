// Package screen defines the screen entity and its name change record.
package screen

// Screen represents a display surface. Num is assigned when the screen is
// created and never changes; DisplayName is the optional per-screen override.
type Screen struct {
	Num         int     `json:"num" yaml:"num"`
	DisplayName *string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// HasName reports whether the screen carries its own display name.
func (s *Screen) HasName() bool {
	return s != nil && s.DisplayName != nil
}

// Clone returns an independent copy of the screen.
func (s *Screen) Clone() *Screen {
	if s == nil {
		return nil
	}
	ret := &Screen{Num: s.Num}
	if s.DisplayName != nil {
		name := *s.DisplayName
		ret.DisplayName = &name
	}
	return ret
}

// New creates a screen with the given index and no display name.
func New(num int) *Screen {
	return &Screen{Num: num}
}
