// Package config loads the client kit's settings from config.yml, .env,
// and environment variables, in increasing order of precedence.
package config
