package leaf

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-forgery/pkg/rng"
)

var tlds = []string{"com", "org", "net", "io", "dev", "co", "app", "info"}

var domainWords = []string{
	"example", "test", "sample", "demo", "data", "info", "site", "web", "app", "api",
}

var urlPaths = []string{
	"", "/about", "/contact", "/products", "/services", "/blog", "/api", "/docs",
}

func DomainName(src *rng.Source) string {
	return pick(src, domainWords) + "." + pick(src, tlds)
}

func URL(src *rng.Source) string {
	return "https://" + DomainName(src) + pick(src, urlPaths)
}

func IPv4(src *rng.Source) string {
	a := src.Int64Range(1, 255)
	b := src.Int64Range(0, 255)
	c := src.Int64Range(0, 255)
	d := src.Int64Range(1, 254)
	return fmt.Sprintf("%d.%d.%d.%d", a, b, c, d)
}

func IPv6(src *rng.Source) string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", src.Int64Range(0, 65535))
	}
	return strings.Join(groups, ":")
}

func MACAddress(src *rng.Source) string {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", src.Int64Range(0, 255))
	}
	return strings.Join(parts, ":")
}
