package util

import (
	"errors"
	"fmt"
	"net/url"
)

// ValidateServerURL checks that s is an acceptable server base URL:
// `http(s)://host[:port]` with nothing after the host. Empty input is
// acceptable (the setting is optional). The returned error message is
// shown to users as-is.
func ValidateServerURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("server URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("server URL must start with http:// or https://")
	}
	if u.Host == "" {
		return errors.New("server URL is missing a host")
	}
	if u.Path != "" {
		if u.Path == "/" {
			return errors.New("server URL must not end with a slash")
		}
		return errors.New("server URL must not include a path")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return errors.New("server URL must not include a query or fragment")
	}
	if u.User != nil {
		return errors.New("server URL must not include credentials")
	}
	return nil
}

// ServerURLProblem returns "" when s is acceptable (or empty), otherwise a
// human-readable rejection reason.
func ServerURLProblem(s string) string {
	if err := ValidateServerURL(s); err != nil {
		return err.Error()
	}
	return ""
}

