package common

import (
	"net/url"
	"strings"
)

func IsValidURL(input string) bool {
	_, err := url.ParseRequestURI(input)

	return err == nil
}

// IsValidHTTPURL reports whether input is a parsable url with an http or https scheme
func IsValidHTTPURL(input string) bool {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return false
	}

	return IsValidURL(input)
}
