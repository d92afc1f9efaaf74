package chunked_config

import (
	"time"

	motmedelTime "github.com/Motmedel/cgi_go/pkg/time"
)

const DefaultDelayEnvName = "CGI_CHUNK_DELAY"

var (
	DefaultChunks    = []string{"Hello, ", "World!", " This", " is", " chunked", " response!"}
	DefaultDelay     = 100 * time.Millisecond
	DefaultDelayFunc = motmedelTime.Sleep
)

type Config struct {
	Chunks       []string
	Delay        time.Duration
	DelayFunc    motmedelTime.DelayFunc
	// DelayEnvName names the meta-variable that overrides Delay. Empty disables the override.
	DelayEnvName string
}

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{
		Chunks:       DefaultChunks,
		Delay:        DefaultDelay,
		DelayFunc:    DefaultDelayFunc,
		DelayEnvName: DefaultDelayEnvName,
	}
	for _, option := range options {
		option(config)
	}

	return config
}

func WithChunks(chunks ...string) Option {
	return func(config *Config) {
		config.Chunks = chunks
	}
}

func WithDelay(delay time.Duration) Option {
	return func(config *Config) {
		config.Delay = delay
	}
}

func WithDelayFunc(delayFunc motmedelTime.DelayFunc) Option {
	return func(config *Config) {
		if delayFunc != nil {
			config.DelayFunc = delayFunc
		}
	}
}

func WithDelayEnvName(name string) Option {
	return func(config *Config) {
		config.DelayEnvName = name
	}
}
