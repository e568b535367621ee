package naming

import (
	"fmt"
	"unicode/utf8"

	"github.com/viant/xdisplay/model/screen"
)

const (
	// DefaultDisplay is returned for screens without their own name.
	DefaultDisplay = "0"
	// DefaultMarker is stored when a caller sets an empty name.
	DefaultMarker = "0"
	// DefaultTemplate is applied to the screen index by SetAuto.
	DefaultTemplate = "Display-%d"
	// DefaultBufferSize bounds auto-generated names, terminator included.
	DefaultBufferSize = 64
)

// Service resolves and assigns screen display names. Its configuration is
// fixed at construction and safe to share; screens themselves are not
// synchronised here, callers serialise access to a given screen.
type Service struct {
	display    string
	marker     string
	template   string
	bufferSize int
}

// Display returns the process-wide default display identifier.
func (s *Service) Display() string {
	return s.display
}

// Marker returns the name stored for empty Set calls.
func (s *Service) Marker() string {
	return s.marker
}

// Name returns the screen's display name, or the default display when the
// screen is nil or has no name.
func (s *Service) Name(aScreen *screen.Screen) string {
	if aScreen.HasName() {
		return *aScreen.DisplayName
	}
	return s.display
}

// Set replaces the screen's display name. An empty name stores the marker.
// A nil screen is ignored and nil is returned.
func (s *Service) Set(aScreen *screen.Screen, name string) *screen.NameChange {
	if aScreen == nil {
		return nil
	}
	source := screen.SourceExplicit
	if name == "" {
		name = s.marker
		source = screen.SourceMarker
	}
	return s.assign(aScreen, name, source)
}

// SetAuto names the screen after its index using the configured template.
// A nil screen is ignored and nil is returned.
func (s *Service) SetAuto(aScreen *screen.Screen) *screen.NameChange {
	if aScreen == nil {
		return nil
	}
	return s.assign(aScreen, s.Format(aScreen.Num), screen.SourceAuto)
}

// Format applies the template to num. The result is cut to bufferSize-1
// bytes, never inside a UTF-8 sequence.
func (s *Service) Format(num int) string {
	name := fmt.Sprintf(s.template, num)
	limit := s.bufferSize - 1
	if limit < 0 {
		limit = 0
	}
	if len(name) <= limit {
		return name
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

func (s *Service) assign(aScreen *screen.Screen, name string, source screen.Source) *screen.NameChange {
	change := &screen.NameChange{Num: aScreen.Num, Current: name, Source: source}
	if aScreen.DisplayName != nil {
		change.Previous = *aScreen.DisplayName
		change.HadName = true
	}
	aScreen.DisplayName = &name
	return change
}

// New creates a naming service.
func New(options ...Option) *Service {
	ret := &Service{
		display:    DefaultDisplay,
		marker:     DefaultMarker,
		template:   DefaultTemplate,
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
