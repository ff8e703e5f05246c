package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// CountryResolver resolves an IP address to an ISO 3166-1 alpha-2 country code.
type CountryResolver interface {
	Country(ip string) (string, error)
	Close() error
}

// Resolver resolves countries from a MaxMind GeoIP2 database file.
type Resolver struct {
	reader *geoip2.Reader
}

// NewResolver opens the GeoIP2 database at path.
func NewResolver(path string) (*Resolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// Country returns the ISO country code for ip, or an empty string when the
// address is unknown to the database.
func (r *Resolver) Country(ip string) (string, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("invalid ip %q", ip)
	}
	record, err := r.reader.Country(parsed)
	if err != nil {
		return "", fmt.Errorf("lookup country: %w", err)
	}
	return record.Country.IsoCode, nil
}

// Close releases the underlying database reader.
func (r *Resolver) Close() error {
	return r.reader.Close()
}

var _ CountryResolver = (*Resolver)(nil)
