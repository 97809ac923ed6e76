package pinchzoom

import "go.uber.org/zap"

// settings holds the optional collaborators shared by Detector and Engine.
type settings struct {
	logger *zap.Logger
	store  EventStore
}

// Option configures a Detector, Engine or PinchView.
type Option func(*settings)

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEventStore forwards gesture events to an ECS bridge.
func WithEventStore(store EventStore) Option {
	return func(s *settings) {
		s.store = store
	}
}

func newSettings(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
