package xdisplay

import (
	"github.com/go-kit/log"
	"github.com/viant/xdisplay/model/screen"
	"github.com/viant/xdisplay/service/dao"
	"github.com/viant/xdisplay/service/event"
	"github.com/viant/xdisplay/service/naming"
)

// Option configures a Service.
type Option func(s *Service)

// WithConfig sets the service configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger replaces the logger built from Config.Log.
func WithLogger(logger log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithScreenDAO replaces the screen store selected by Config.Store.
func WithScreenDAO(screens dao.Service[int, screen.Screen]) Option {
	return func(s *Service) {
		s.screens = screens
	}
}

// WithEventService shares an event service; the caller stays responsible for closing it.
func WithEventService(events *event.Service) Option {
	return func(s *Service) {
		s.events = events
	}
}

// WithNamingOptions appends naming options applied after those derived from Config.
func WithNamingOptions(options ...naming.Option) Option {
	return func(s *Service) {
		s.namingOptions = append(s.namingOptions, options...)
	}
}
