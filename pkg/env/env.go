package env

import (
	"fmt"
	"os"
	"time"

	motmedelEnvErrors "github.com/Motmedel/cgi_go/pkg/env/errors"
	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
)

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(string) (string, bool)

func GetEnvWithDefault(key string, defaultValue string) string {
	return GetWithDefault(os.LookupEnv, key, defaultValue)
}

func GetWithDefault(lookup LookupFunc, key string, defaultValue string) string {
	if lookup == nil {
		return defaultValue
	}

	value, _ := lookup(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func Read(lookup LookupFunc, name string) (string, error) {
	var value string
	var found bool
	if lookup != nil {
		value, found = lookup(name)
	}

	if !found {
		return "", motmedelErrors.NewWithTrace(fmt.Errorf("%w: %q", motmedelEnvErrors.ErrNotPresent, name), name)
	} else if value == "" {
		return "", motmedelErrors.NewWithTrace(fmt.Errorf("%w: %q", motmedelEnvErrors.ErrEmpty, name), name)
	}

	return value, nil
}

// GetDurationWithDefault parses a Go duration string; absent and empty values yield defaultValue.
func GetDurationWithDefault(lookup LookupFunc, key string, defaultValue time.Duration) (time.Duration, error) {
	value := GetWithDefault(lookup, key, "")
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, motmedelErrors.New(
			fmt.Errorf("%w: %q: time parse duration: %w", motmedelEnvErrors.ErrMalformed, key, err),
			value,
		)
	}
	if duration < 0 {
		return defaultValue, motmedelErrors.New(fmt.Errorf("%w: %q: negative duration", motmedelEnvErrors.ErrMalformed, key), value)
	}

	return duration, nil
}
