package launchpad

// Logger receives diagnostics from a session. The signature matches most
// structured loggers; when none is configured the session stays silent.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Config collects the optional session settings.
type Config struct {
	Logger Logger
}

// Option adjusts the session configuration.
type Option func(*Config)

// WithLogger routes session diagnostics to l.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
