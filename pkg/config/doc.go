// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into a struct using `env` tags.
//   - LoadWithPrefix does the same with a variable name prefix such as
//     "STRYNG_".
//
// Each configuration type (and prefix) is parsed once and cached for the life
// of the process. ResetCache and ForceReloadConfig exist for tests and for
// callers that change the environment at runtime.
//
//	type Settings struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
//	    Output   string `env:"OUTPUT" envDefault:"text"`
//	}
//
//	var s Settings
//	if err := config.LoadWithPrefix(&s, "STRYNG_"); err != nil {
//	    return err
//	}
//
// Errors wrap the sentinels in errors.go and can be matched with errors.Is.
package config
