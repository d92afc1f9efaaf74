package form_config

var (
	DefaultAction = "/cgi-bin/test.py"
	DefaultName   = "John"
	DefaultAge    = "30"
)

type Config struct {
	Action string
	Name   string
	Age    string
}

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{
		Action: DefaultAction,
		Name:   DefaultName,
		Age:    DefaultAge,
	}
	for _, option := range options {
		option(config)
	}

	return config
}

func WithAction(action string) Option {
	return func(config *Config) {
		config.Action = action
	}
}

func WithName(name string) Option {
	return func(config *Config) {
		config.Name = name
	}
}

func WithAge(age string) Option {
	return func(config *Config) {
		config.Age = age
	}
}
