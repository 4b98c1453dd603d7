package validation

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrInvalidServerAddress is returned when an invalid token server address is provided.
	ErrInvalidServerAddress = errors.New("server address must be an absolute http or https URL with a host and no trailing slash, path, query or fragment")
	// ErrInvalidChannelName is returned when an invalid channel name is provided.
	ErrInvalidChannelName = errors.New("channel name must not be empty and must be safe for URL path inclusion")
)

// ValidateServerAddress validates the provided token server address.
// It checks that the address is an absolute http or https URL consisting of
// a scheme and a host only, e.g. "http://localhost:8080".
func ValidateServerAddress(address string) error {
	u, err := url.Parse(address)
	if err != nil {
		return ErrInvalidServerAddress
	}

	valid := (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != "" &&
		u.Path == "" &&
		u.RawQuery == "" &&
		u.Fragment == "" &&
		u.User == nil

	if !valid {
		return ErrInvalidServerAddress
	}

	return nil
}

// ValidateChannelName validates the provided channel name.
// It checks that the name is non-empty and can be placed into a URL path
// segment verbatim, without escaping.
func ValidateChannelName(channelName string) error {
	valid := channelName != "" &&
		!strings.ContainsAny(channelName, "/?#% ") &&
		url.PathEscape(channelName) == channelName

	if !valid {
		return ErrInvalidChannelName
	}

	return nil
}
