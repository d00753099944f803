// Package i18n provides the site's language context as an explicit value
// object instead of ambient global state. A Locale is resolved once per
// request and threaded to every consumer; toggling persists the choice in a
// cookie.
package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Directions.
const (
	DirectionRTL = "rtl"
	DirectionLTR = "ltr"
)

// Supported locale codes.
const (
	Arabic  = "ar"
	English = "en"
)

const (
	cookieName   = "lang"
	cookieMaxAge = 365 * 24 * 60 * 60
	contextKey   = "locale"
)

// Locale is the per-request language context.
type Locale struct {
	Code      string `json:"code"`
	Direction string `json:"direction"`
}

// New returns the Locale for a code; unknown codes fall back to Arabic.
func New(code string) Locale {
	if strings.HasPrefix(strings.ToLower(code), English) {
		return Locale{Code: English, Direction: DirectionLTR}
	}
	return Locale{Code: Arabic, Direction: DirectionRTL}
}

// T resolves a translation key. Unknown keys return the key itself.
func (l Locale) T(key string) string {
	bundle, ok := bundles[l.Code]
	if !ok {
		bundle = bundles[Arabic]
	}
	if msg, ok := bundle[key]; ok {
		return msg
	}
	return key
}

// Toggled returns the other locale.
func (l Locale) Toggled() Locale {
	if l.Code == Arabic {
		return New(English)
	}
	return New(Arabic)
}

// Middleware resolves the request locale from the lang cookie, then the
// Accept-Language header, then the configured default.
func Middleware(defaultCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := defaultCode
		if v, err := c.Cookie(cookieName); err == nil && v != "" {
			code = v
		} else if al := c.GetHeader("Accept-Language"); al != "" {
			code = al
		}
		c.Set(contextKey, New(code))
		c.Next()
	}
}

// FromContext returns the request locale set by Middleware.
func FromContext(c *gin.Context) Locale {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(Locale); ok {
			return l
		}
	}
	return New(Arabic)
}

// Persist writes the locale cookie so the choice survives future visits.
func Persist(c *gin.Context, l Locale) {
	c.SetCookie(cookieName, l.Code, cookieMaxAge, "/", "", false, false)
}
