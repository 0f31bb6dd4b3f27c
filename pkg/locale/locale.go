package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Locale identifies a regional data set used by the leaf generators. The
// string form follows the usual language_REGION convention ("en_US").
type Locale string

const (
	EnUS Locale = "en_US"
	EnGB Locale = "en_GB"
	DeDE Locale = "de_DE"
	FrFR Locale = "fr_FR"
	EsES Locale = "es_ES"
	ItIT Locale = "it_IT"
	JaJP Locale = "ja_JP"
)

// Default is the locale used when callers do not specify one.
const Default = EnUS

// All lists every supported locale in a stable order.
var All = []Locale{EnUS, EnGB, DeDE, FrFR, EsES, ItIT, JaJP}

// ErrUnsupported reports a locale tag outside the supported set.
var ErrUnsupported = errors.New("unsupported locale")

// Parse validates a locale tag and returns the matching Locale. Matching is
// exact; no normalisation of case or separators is attempted.
func Parse(tag string) (Locale, error) {
	for _, l := range All {
		if string(l) == tag {
			return l, nil
		}
	}
	return "", fmt.Errorf("locale: %w %q (supported: %s)", ErrUnsupported, tag, supportedList())
}

// String returns the locale tag.
func (l Locale) String() string { return string(l) }

// FamilyNameFirst reports whether full names place the family name before the
// given name in this locale.
func (l Locale) FamilyNameFirst() bool { return l == JaJP }

// NumberBeforeStreet reports whether street addresses place the house number
// before the street name.
func (l Locale) NumberBeforeStreet() bool {
	return l == EnUS || l == EnGB
}

func supportedList() string {
	tags := make([]string, 0, len(All))
	for _, l := range All {
		tags = append(tags, string(l))
	}
	return strings.Join(tags, ", ")
}
