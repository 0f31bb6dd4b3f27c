package leaf

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-forgery/pkg/rng"
)

// cardPrefixes pairs issuer prefixes with total card length.
var cardPrefixes = []struct {
	prefix string
	length int
}{
	{"4", 16},    // Visa
	{"51", 16},   // Mastercard
	{"52", 16},   // Mastercard
	{"53", 16},   // Mastercard
	{"54", 16},   // Mastercard
	{"55", 16},   // Mastercard
	{"34", 15},   // American Express
	{"37", 15},   // American Express
	{"6011", 16}, // Discover
	{"65", 16},   // Discover
}

// ibanCountries pairs country codes with BBAN digit counts.
var ibanCountries = []struct {
	code    string
	bbanLen int
}{
	{"DE", 18}, {"FR", 23}, {"GB", 18}, {"ES", 20}, {"IT", 23},
	{"NL", 14}, {"BE", 12}, {"AT", 16}, {"CH", 17}, {"PL", 24},
}

// CreditCard returns a Luhn-valid card number with a real issuer prefix.
func CreditCard(src *rng.Source) string {
	card := cardPrefixes[src.IntN(len(cardPrefixes))]

	var sb strings.Builder
	sb.WriteString(card.prefix)
	for sb.Len() < card.length-1 {
		sb.WriteByte(byte('0' + src.IntN(10)))
	}
	partial := sb.String()
	return partial + string('0'+luhnCheckDigit(partial))
}

// luhnCheckDigit returns the digit that makes partial+digit pass Luhn. The
// rightmost digit of partial doubles because the appended check digit will
// not.
func luhnCheckDigit(partial string) byte {
	sum := 0
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte((10 - sum%10) % 10)
}

// ValidLuhn reports whether the digits of number satisfy the Luhn checksum.
func ValidLuhn(number string) bool {
	sum := 0
	double := false
	seen := 0
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			continue
		}
		seen++
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return seen > 0 && sum%10 == 0
}

// IBAN returns an IBAN with valid mod-97 check digits for a random country.
func IBAN(src *rng.Source) string {
	country := ibanCountries[src.IntN(len(ibanCountries))]

	bban := make([]byte, country.bbanLen)
	for i := range bban {
		bban[i] = byte('0' + src.IntN(10))
	}

	// Check digits: move "CC00" behind the BBAN, take mod 97, subtract
	// from 98 (ISO 13616).
	rearranged := string(bban) + country.code + "00"
	check := 98 - ibanMod97(rearranged)
	return fmt.Sprintf("%s%02d%s", country.code, check, bban)
}

// ValidIBAN reports whether the IBAN's check digits satisfy mod 97.
func ValidIBAN(iban string) bool {
	if len(iban) < 5 {
		return false
	}
	rearranged := iban[4:] + iban[:4]
	return ibanMod97(rearranged) == 1
}

// ibanMod97 interprets s with letters expanded to two-digit values (A=10 ...
// Z=35) and reduces mod 97 incrementally to avoid big integers.
func ibanMod97(s string) int {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		default:
			return -1
		}
	}
	return rem
}
