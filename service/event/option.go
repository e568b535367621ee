package event

import "github.com/viant/xdisplay/service/messaging/memory"

type Option func(s *Service)

// WithNewQueueConfig sets the per-type queue configuration factory.
func WithNewQueueConfig(newConfig func(name string) memory.Config) Option {
	return func(s *Service) {
		s.newQueueConfig = newConfig
	}
}
