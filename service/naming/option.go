package naming

// Option configures a naming Service.
type Option func(s *Service)

// WithDisplay sets the default display identifier.
func WithDisplay(display string) Option {
	return func(s *Service) {
		s.display = display
	}
}

// WithMarker sets the name stored when Set receives an empty name.
func WithMarker(marker string) Option {
	return func(s *Service) {
		s.marker = marker
	}
}

// WithTemplate sets the auto-name template; it must hold a single integer verb.
func WithTemplate(template string) Option {
	return func(s *Service) {
		if template != "" {
			s.template = template
		}
	}
}

// WithBufferSize sets the auto-name buffer size, terminator included.
func WithBufferSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.bufferSize = size
		}
	}
}
