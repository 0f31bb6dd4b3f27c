package openapi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forgery/pkg/schema"
)

const userDoc = `
openapi: 3.0.3
info:
  title: Test API
  version: 1.0.0
paths: {}
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: string
          format: uuid
        email:
          type: string
          format: email
        name:
          type: string
        website:
          type: string
          format: uri
        bio:
          type: string
          minLength: 10
          maxLength: 300
        age:
          type: integer
          minimum: 18
          maximum: 99
        rating:
          type: number
          minimum: 0
          maximum: 5
        active:
          type: boolean
        role:
          type: string
          enum: [admin, editor, viewer]
        created_at:
          type: string
          format: date-time
    Scalar:
      type: string
`

func TestSchemaFromData(t *testing.T) {
	got, err := SchemaFromData([]byte(userDoc), "User")
	if err != nil {
		t.Fatalf("SchemaFromData: %v", err)
	}
	want := schema.Schema{
		"id":         schema.Builtin("uuid"),
		"email":      schema.Builtin("email"),
		"name":       schema.Builtin("name"),
		"website":    schema.Builtin("url"),
		"bio":        schema.TextRange(10, 300),
		"age":        schema.IntRange(18, 99),
		"rating":     schema.FloatRange(0, 5),
		"active":     schema.Choice("true", "false"),
		"role":       schema.Choice("admin", "editor", "viewer"),
		"created_at": schema.Builtin("datetime"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
	if err := schema.Validate(got, nil); err != nil {
		t.Fatalf("derived schema should validate: %v", err)
	}
}

func TestSchemaFromDataMissingComponent(t *testing.T) {
	if _, err := SchemaFromData([]byte(userDoc), "Ghost"); !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("got %v, want ErrComponentNotFound", err)
	}
}

func TestSchemaFromDataNonObject(t *testing.T) {
	if _, err := SchemaFromData([]byte(userDoc), "Scalar"); !errors.Is(err, ErrNotObject) {
		t.Fatalf("got %v, want ErrNotObject", err)
	}
}

func TestSchemaFromDataMalformed(t *testing.T) {
	if _, err := SchemaFromData([]byte("{not a document"), "User"); err == nil {
		t.Fatal("malformed document should fail")
	}
}

func TestExclusiveBoundsTighten(t *testing.T) {
	doc := `
openapi: 3.0.3
info:
  title: Test API
  version: 1.0.0
paths: {}
components:
  schemas:
    Range:
      type: object
      properties:
        n:
          type: integer
          minimum: 0
          maximum: 10
          exclusiveMinimum: true
          exclusiveMaximum: true
`
	got, err := SchemaFromData([]byte(doc), "Range")
	if err != nil {
		t.Fatalf("SchemaFromData: %v", err)
	}
	if diff := cmp.Diff(schema.Schema{"n": schema.IntRange(1, 9)}, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestUnannotatedStringFallsBackToSentence(t *testing.T) {
	doc := `
openapi: 3.0.3
info:
  title: Test API
  version: 1.0.0
paths: {}
components:
  schemas:
    Note:
      type: object
      properties:
        remark:
          type: string
`
	got, err := SchemaFromData([]byte(doc), "Note")
	if err != nil {
		t.Fatalf("SchemaFromData: %v", err)
	}
	if diff := cmp.Diff(schema.Schema{"remark": schema.Builtin("sentence")}, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}
