package serve_config

import (
	"io"
	"log/slog"
	"os"

	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter/emitter_config"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
	"github.com/google/uuid"
)

var DefaultInvocationIdFunc = uuid.NewString

type Config struct {
	Environment      request.Environment
	Input            io.Reader
	Output           io.Writer
	Logger           *slog.Logger
	EmitterOptions   []emitter_config.Option
	InvocationIdFunc func() string
}

type Option func(*Config)

// New defaults to the process environment, standard input and standard output.
func New(options ...Option) *Config {
	config := &Config{InvocationIdFunc: DefaultInvocationIdFunc}
	for _, option := range options {
		option(config)
	}

	if config.Environment == nil {
		config.Environment = request.FromEnviron(os.Environ())
	}
	if config.Input == nil {
		config.Input = os.Stdin
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return config
}

func WithEnvironment(environment request.Environment) Option {
	return func(config *Config) {
		config.Environment = environment
	}
}

func WithInput(input io.Reader) Option {
	return func(config *Config) {
		config.Input = input
	}
}

func WithOutput(output io.Writer) Option {
	return func(config *Config) {
		config.Output = output
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(config *Config) {
		config.Logger = logger
	}
}

func WithEmitterOptions(options ...emitter_config.Option) Option {
	return func(config *Config) {
		config.EmitterOptions = append(config.EmitterOptions, options...)
	}
}

func WithInvocationIdFunc(invocationIdFunc func() string) Option {
	return func(config *Config) {
		if invocationIdFunc != nil {
			config.InvocationIdFunc = invocationIdFunc
		}
	}
}
