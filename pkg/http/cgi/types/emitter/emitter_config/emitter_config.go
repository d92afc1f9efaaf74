package emitter_config

var DefaultBufferSize = 4096

type Config struct {
	BufferSize             int
	TransferEncodingHeader bool
}

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{BufferSize: DefaultBufferSize}
	for _, option := range options {
		option(config)
	}

	return config
}

func WithBufferSize(bufferSize int) Option {
	return func(config *Config) {
		if bufferSize > 0 {
			config.BufferSize = bufferSize
		}
	}
}

// WithTransferEncodingHeader makes chunked emission append "Transfer-Encoding: chunked" to header
// sets that lack a Transfer-Encoding field.
func WithTransferEncodingHeader() Option {
	return func(config *Config) {
		config.TransferEncodingHeader = true
	}
}
