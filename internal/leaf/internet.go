package leaf

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/rng"
)

var freeEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com",
	"protonmail.com", "mail.com", "aol.com",
}

var safeEmailDomains = []string{"example.com", "example.org", "example.net"}

// Email builds "<first name><3 digits>@<free domain>".
func Email(src *rng.Source, loc locale.Locale) string {
	return emailAt(src, loc, freeEmailDomains)
}

// SafeEmail uses the RFC 2606 example domains, safe to put in documentation
// and test fixtures.
func SafeEmail(src *rng.Source, loc locale.Locale) string {
	return emailAt(src, loc, safeEmailDomains)
}

// FreeEmail is Email restricted to well-known free mail hosts.
func FreeEmail(src *rng.Source, loc locale.Locale) string {
	return emailAt(src, loc, freeEmailDomains)
}

func emailAt(src *rng.Source, loc locale.Locale, domains []string) string {
	name := strings.ToLower(FirstName(src, loc))
	num := src.Int64Range(1, 999)
	domain := pick(src, domains)
	return fmt.Sprintf("%s%03d@%s", name, num, domain)
}
