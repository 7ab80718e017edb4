package transport

import (
	"fmt"
	"net/url"
	"strings"
)

// Selector holds one strategy per supported scheme.
type Selector struct {
	secure Strategy
	plain  Strategy
}

// NewSelector returns a Selector. Nil strategies fall back to the defaults.
func NewSelector(secure, plain Strategy) *Selector {
	if secure == nil {
		secure = NewSecureStrategy(nil)
	}
	if plain == nil {
		plain = NewPlainStrategy()
	}

	return &Selector{secure: secure, plain: plain}
}

// Select picks the strategy for u's scheme.
func (s *Selector) Select(u *url.URL) (Strategy, error) {
	if u == nil {
		return nil, fmt.Errorf("nil url")
	}

	switch strings.ToLower(u.Scheme) {
	case SchemeHTTPS:
		return s.secure, nil
	case SchemeHTTP:
		return s.plain, nil
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}
