package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type ctxKeyLocale struct{}
type ctxKeyCountry struct{}

// CountryLookup resolves a client IP to an ISO country code. Implementations
// may return an empty string when the address is unknown.
type CountryLookup interface {
	Country(ip string) (string, error)
}

// Locale parses the Accept-Language header into a canonical BCP 47 tag and,
// when a resolver is configured, tags the request with the client's country.
func Locale(lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if tag := parseLocale(r.Header.Get("Accept-Language")); tag != "" {
				ctx = context.WithValue(ctx, ctxKeyLocale{}, tag)
			}

			if lookup != nil {
				if country, err := lookup.Country(ClientIP(r)); err == nil && country != "" {
					ctx = context.WithValue(ctx, ctxKeyCountry{}, country)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseLocale(header string) string {
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

// GetLocale returns the request locale tag, or an empty string.
func GetLocale(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyLocale{}).(string); ok {
		return v
	}
	return ""
}

// GetCountry returns the resolved ISO country code, or an empty string.
func GetCountry(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyCountry{}).(string); ok {
		return v
	}
	return ""
}

// ClientIP extracts the originating client address, preferring proxy headers.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
