package schema

// BuiltinKinds lists every built-in leaf kind the dispatcher understands, in
// the order the documentation presents them.
var BuiltinKinds = []string{
	// names
	"name", "first_name", "last_name",
	// internet
	"email", "safe_email", "free_email",
	// identifiers
	"uuid", "md5", "sha256",
	// numbers
	"int", "float",
	// phone
	"phone",
	// address
	"address", "street_address", "city", "state", "country", "zip_code",
	// company
	"company", "job", "catch_phrase",
	// network
	"url", "domain_name", "ipv4", "ipv6", "mac_address",
	// colors
	"color", "hex_color", "rgb_color",
	// finance
	"credit_card", "iban",
	// datetime
	"date", "datetime",
	// text
	"sentence", "paragraph", "text",
}

// Extra names reserved for custom providers beyond the kind names themselves,
// to avoid confusion with common API aliases.
var reservedExtras = []string{"phone_number", "date_of_birth"}

var (
	builtinKindSet = func() map[string]struct{} {
		set := make(map[string]struct{}, len(BuiltinKinds))
		for _, k := range BuiltinKinds {
			set[k] = struct{}{}
		}
		return set
	}()

	reservedNameSet = func() map[string]struct{} {
		set := make(map[string]struct{}, len(BuiltinKinds)+len(reservedExtras))
		for _, k := range BuiltinKinds {
			set[k] = struct{}{}
		}
		for _, k := range reservedExtras {
			set[k] = struct{}{}
		}
		return set
	}()
)

// IsBuiltinKind reports whether name is a built-in leaf kind. Matching is
// case-sensitive.
func IsBuiltinKind(name string) bool {
	_, ok := builtinKindSet[name]
	return ok
}

// IsReserved reports whether name may not be used for a custom provider.
// Matching is case-sensitive: "Name" is allowed even though "name" is
// reserved.
func IsReserved(name string) bool {
	_, ok := reservedNameSet[name]
	return ok
}
