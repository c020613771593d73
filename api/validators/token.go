package validators

import (
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid auth token")

// BearerToken extracts the token from an Authorization header value. It
// returns ok=false when the header is empty and ErrInvalidToken when the
// header is present but carries no usable bearer token.
func BearerToken(raw string) (token string, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, nil
	}
	scheme, rest, found := strings.Cut(raw, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", true, ErrInvalidToken
	}
	token = strings.TrimSpace(rest)
	if token == "" {
		return "", true, ErrInvalidToken
	}
	return token, true, nil
}
