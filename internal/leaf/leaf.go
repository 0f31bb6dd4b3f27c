package leaf

import (
	"fmt"

	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// Generate is the single contract between the dispatcher and the built-in
// producers: given a mutable random source and a locale, produce one value of
// the named kind. The switch covers exactly schema.BuiltinKinds; an unknown
// name means the validator did not run.
func Generate(src *rng.Source, loc locale.Locale, kind string) (schema.Value, error) {
	switch kind {
	// names
	case "name":
		return schema.StringValue(Name(src, loc)), nil
	case "first_name":
		return schema.StringValue(FirstName(src, loc)), nil
	case "last_name":
		return schema.StringValue(LastName(src, loc)), nil

	// internet
	case "email":
		return schema.StringValue(Email(src, loc)), nil
	case "safe_email":
		return schema.StringValue(SafeEmail(src, loc)), nil
	case "free_email":
		return schema.StringValue(FreeEmail(src, loc)), nil

	// identifiers
	case "uuid":
		return schema.StringValue(UUID(src)), nil
	case "md5":
		return schema.StringValue(MD5(src)), nil
	case "sha256":
		return schema.StringValue(SHA256(src)), nil

	// numbers, with default bounds
	case "int":
		return schema.IntValue(src.Int64Range(0, 1000)), nil
	case "float":
		return schema.FloatValue(src.Float64Range(0, 1)), nil

	// phone
	case "phone":
		return schema.StringValue(Phone(src)), nil

	// address
	case "address":
		return schema.StringValue(Address(src, loc)), nil
	case "street_address":
		return schema.StringValue(StreetAddress(src, loc)), nil
	case "city":
		return schema.StringValue(City(src, loc)), nil
	case "state":
		return schema.StringValue(State(src, loc)), nil
	case "country":
		return schema.StringValue(Country(src)), nil
	case "zip_code":
		return schema.StringValue(ZipCode(src)), nil

	// company
	case "company":
		return schema.StringValue(Company(src, loc)), nil
	case "job":
		return schema.StringValue(Job(src)), nil
	case "catch_phrase":
		return schema.StringValue(CatchPhrase(src)), nil

	// network
	case "url":
		return schema.StringValue(URL(src)), nil
	case "domain_name":
		return schema.StringValue(DomainName(src)), nil
	case "ipv4":
		return schema.StringValue(IPv4(src)), nil
	case "ipv6":
		return schema.StringValue(IPv6(src)), nil
	case "mac_address":
		return schema.StringValue(MACAddress(src)), nil

	// colors
	case "color":
		return schema.StringValue(ColorName(src)), nil
	case "hex_color":
		return schema.StringValue(HexColor(src)), nil
	case "rgb_color":
		r, g, b := RGB(src)
		return schema.RGBValue(r, g, b), nil

	// finance
	case "credit_card":
		return schema.StringValue(CreditCard(src)), nil
	case "iban":
		return schema.StringValue(IBAN(src)), nil

	// datetime, with default bounds
	case "date":
		s, err := Date(src, DefaultStartDate, DefaultEndDate)
		if err != nil {
			return schema.Value{}, err
		}
		return schema.StringValue(s), nil
	case "datetime":
		s, err := DateTime(src, DefaultStartDate, DefaultEndDate)
		if err != nil {
			return schema.Value{}, err
		}
		return schema.StringValue(s), nil

	// text, with default parameters
	case "sentence":
		return schema.StringValue(Sentence(src, DefaultSentenceWords)), nil
	case "paragraph":
		return schema.StringValue(Paragraph(src, DefaultParagraphSentences)), nil
	case "text":
		return schema.StringValue(Text(src, DefaultTextMinChars, DefaultTextMaxChars)), nil
	}

	return schema.Value{}, fmt.Errorf("%w: %q", schema.ErrUnknownKind, kind)
}
