package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"

	"github.com/juancwu/quiz-cli/config"
)

const (
	LOG_LEVEL_KEY     = "LOG_LEVEL"
	DEFAULT_LOG_LEVEL = "info"
	DEFAULT_ENV_FILE  = ".env"
)

// Values are the settings read once at startup.
type Values struct {
	APIURL   string
	LogLevel string `validate:"oneof=debug info warn error"`
}

// LookupFunc has the same shape as os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromMap turns a plain map into a LookupFunc.
func FromMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Load reads the settings through lookup, falling back to the given dotenv files.
// Variables found by lookup always win over the files. Missing files are skipped.
func Load(lookup LookupFunc, files ...string) (Values, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	fileValues := map[string]string{}
	for _, f := range files {
		exists, err := fileExists(f)
		if err != nil {
			return Values{}, err
		}
		if !exists {
			continue
		}
		read, err := godotenv.Read(f)
		if err != nil {
			return Values{}, fmt.Errorf("failed to read env file %s: %w", f, err)
		}
		for k, v := range read {
			// first file wins, same as godotenv.Load
			if _, ok := fileValues[k]; !ok {
				fileValues[k] = v
			}
		}
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return fileValues[key]
	}

	values := Values{
		APIURL:   get(config.API_URL_KEY),
		LogLevel: strings.ToLower(strings.TrimSpace(get(LOG_LEVEL_KEY))),
	}
	if values.LogLevel == "" {
		values.LogLevel = DEFAULT_LOG_LEVEL
	}

	validate := validator.New()
	if err := validate.Struct(values); err != nil {
		return Values{}, fmt.Errorf("invalid %s %q: %w", LOG_LEVEL_KEY, values.LogLevel, err)
	}

	return values, nil
}

// fileExists checks if file exists or not. If there is an error (apart from not exists error), it will return falsy and the error.
func fileExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return !stat.IsDir(), nil
}
