package leaf

import (
	"fmt"

	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/rng"
)

// StreetAddress builds a locale-shaped street line: "123 Main Street" for
// number-first locales, "Hauptstraße 123" or "Calle Mayor 123" otherwise.
func StreetAddress(src *rng.Source, loc locale.Locale) string {
	t := forLocale(loc)
	number := src.Int64Range(1, 9999)
	name := pick(src, t.streetNames)
	suffix := pick(src, t.streetSuffixes)

	var street string
	if t.streetTypePrefix {
		street = suffix + " " + name
	} else if loc == locale.DeDE {
		// German compounds the type onto the name: "Hauptstraße".
		street = name + suffix
	} else {
		street = name + " " + suffix
	}

	if loc.NumberBeforeStreet() {
		return fmt.Sprintf("%d %s", number, street)
	}
	return fmt.Sprintf("%s %d", street, number)
}

// Address composes street, city, region and zip into one line.
func Address(src *rng.Source, loc locale.Locale) string {
	street := StreetAddress(src, loc)
	city := City(src, loc)
	region := State(src, loc)
	zip := ZipCode(src)
	return fmt.Sprintf("%s, %s, %s %s", street, city, region, zip)
}

func City(src *rng.Source, loc locale.Locale) string {
	return pick(src, forLocale(loc).cities)
}

// State returns a region name for the locale (state, Bundesland, prefecture).
func State(src *rng.Source, loc locale.Locale) string {
	return pick(src, forLocale(loc).regions)
}

func Country(src *rng.Source) string {
	return pick(src, countries)
}

// ZipCode returns a five-digit code.
func ZipCode(src *rng.Source) string {
	return fmt.Sprintf("%05d", src.Int64Range(0, 99999))
}
