package leaf

import (
	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/rng"
)

// Name returns a full name. Locales with family-name-first conventions
// (ja_JP) put the family name ahead of the given name.
func Name(src *rng.Source, loc locale.Locale) string {
	t := forLocale(loc)
	first := pick(src, t.firstNames)
	last := pick(src, t.lastNames)
	if loc.FamilyNameFirst() {
		return last + " " + first
	}
	return first + " " + last
}

func FirstName(src *rng.Source, loc locale.Locale) string {
	return pick(src, forLocale(loc).firstNames)
}

func LastName(src *rng.Source, loc locale.Locale) string {
	return pick(src, forLocale(loc).lastNames)
}
