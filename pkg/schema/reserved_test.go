package schema

import "testing"

func TestEveryBuiltinKindIsReserved(t *testing.T) {
	for _, kind := range BuiltinKinds {
		if !IsBuiltinKind(kind) {
			t.Fatalf("%q missing from the builtin set", kind)
		}
		if !IsReserved(kind) {
			t.Fatalf("%q should be reserved", kind)
		}
	}
}

func TestReservedExtras(t *testing.T) {
	for _, name := range []string{"phone_number", "date_of_birth"} {
		if IsBuiltinKind(name) {
			t.Fatalf("%q is reserved but not a generatable kind", name)
		}
		if !IsReserved(name) {
			t.Fatalf("%q should be reserved", name)
		}
	}
}

func TestReservationIsCaseSensitive(t *testing.T) {
	if IsReserved("Name") || IsReserved("EMAIL") {
		t.Fatal("reservation must match case exactly")
	}
	if IsBuiltinKind("Name") {
		t.Fatal("kind lookup must match case exactly")
	}
}

func TestUnreservedNames(t *testing.T) {
	for _, name := range []string{"username", "favorite_color", "x"} {
		if IsReserved(name) {
			t.Fatalf("%q should not be reserved", name)
		}
	}
}
