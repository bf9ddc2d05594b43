package gen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Huterenok/fieldname-access/internal/analyze"
	"github.com/Huterenok/fieldname-access/internal/plan"
	"github.com/Huterenok/fieldname-access/internal/schema"
)

func userDecl(t *testing.T, cfg schema.Config) *analyze.RecordDecl {
	t.Helper()

	rec, err := schema.New("User", []schema.FieldDescriptor{
		{Name: "Name", TypeSignature: "string"},
		{Name: "Age", TypeSignature: "uint64"},
		{Name: "DoesLoveRanni", TypeSignature: "bool"},
	}, cfg)
	require.NoError(t, err)

	return &analyze.RecordDecl{
		PkgPath: "example.com/app/basic",
		PkgName: "basic",
		Dir:     t.TempDir(),
		Record:  rec,
	}
}

func generateUser(t *testing.T, cfg schema.Config) string {
	t.Helper()

	decl := userDecl(t, cfg)

	p, err := plan.Build(decl.Record)
	require.NoError(t, err)

	file, err := NewGenerator(DefaultConfig()).Generate(decl, p)
	require.NoError(t, err)
	assert.Equal(t, "user_access.go", file.Filename)

	return string(file.Content)
}

func TestGenerateBasic(t *testing.T) {
	src := generateUser(t, schema.Config{})

	assert.Contains(t, src, "// Code generated by fieldname-access. DO NOT EDIT.")
	assert.Contains(t, src, "package basic")
	assert.Contains(t, src, "type UserField interface {\n\tisUserField()\n}")
	assert.Contains(t, src, "type UserFieldMut interface {\n\tisUserFieldMut()\n}")
	assert.Contains(t, src, "type UserFieldString struct {\n\tValue string\n}")
	assert.Contains(t, src, "type UserFieldMutString struct {\n\tValue *string\n}")
	assert.Contains(t, src, "func (r *User) Field(name string) (UserField, bool)")
	assert.Contains(t, src, "func (r *User) FieldMut(name string) (UserFieldMut, bool)")
	assert.Contains(t, src, "case \"DoesLoveRanni\":\n\t\treturn UserFieldBool{Value: r.DoesLoveRanni}, true")
	assert.Contains(t, src, "return UserFieldMutBool{Value: &r.DoesLoveRanni}, true")
	assert.Contains(t, src, "return nil, false")

	// No capabilities requested, no capability imports.
	assert.NotContains(t, src, "import")
	assert.NotContains(t, src, "String() string")
	assert.NotContains(t, src, "MarshalJSON")
}

func TestGenerateStringerCapability(t *testing.T) {
	src := generateUser(t, schema.Config{Derive: []string{"stringer"}})

	assert.Contains(t, src, "\"fmt\"")
	assert.Contains(t, src, "func (v UserFieldString) String() string")
	assert.Contains(t, src, "func (v UserFieldUint64) String() string")

	// Capabilities are per side: nothing was requested for the mut union.
	assert.NotContains(t, src, "func (v UserFieldMutString) String() string")
}

func TestGenerateJSONCapabilityBothSides(t *testing.T) {
	src := generateUser(t, schema.Config{
		Derive:    []string{"json"},
		DeriveMut: []string{"json"},
	})

	assert.Contains(t, src, "\"encoding/json\"")
	assert.Contains(t, src, "func (v UserFieldBool) MarshalJSON() ([]byte, error)")
	assert.Contains(t, src, "func (v UserFieldMutBool) MarshalJSON() ([]byte, error)")
}

func TestGenerateCustomEnumNames(t *testing.T) {
	src := generateUser(t, schema.Config{EnumName: "NewName"})

	assert.Contains(t, src, "type NewName interface {")
	assert.Contains(t, src, "type NewNameMut interface {")
	assert.Contains(t, src, "return NewNameString{Value: r.Name}, true")
	assert.NotContains(t, src, "UserField")
}

func TestGenerateUnknownCapabilityFails(t *testing.T) {
	decl := userDecl(t, schema.Config{Derive: []string{"cloneable"}})

	p, err := plan.Build(decl.Record)
	require.NoError(t, err)

	_, err = NewGenerator(DefaultConfig()).Generate(decl, p)
	require.ErrorContains(t, err, "unknown capability")
	require.ErrorContains(t, err, "cloneable")
}

func TestGenerateSignatureImports(t *testing.T) {
	rec, err := schema.New("Event", []schema.FieldDescriptor{
		{Name: "At", TypeSignature: "time.Time"},
	}, schema.Config{})
	require.NoError(t, err)

	decl := &analyze.RecordDecl{
		PkgPath: "example.com/app/events",
		PkgName: "events",
		Dir:     t.TempDir(),
		Record:  rec,
		Imports: []analyze.ImportRef{{Path: "time", Name: "time"}},
	}

	p, err := plan.Build(rec)
	require.NoError(t, err)

	file, err := NewGenerator(DefaultConfig()).Generate(decl, p)
	require.NoError(t, err)

	src := string(file.Content)
	assert.Contains(t, src, "import (\n\t\"time\"\n)")
	assert.Contains(t, src, "type EventFieldTime struct {\n\tValue time.Time\n}")
	assert.Equal(t, "event_access.go", file.Filename)
}

func TestGenerateIsDeterministic(t *testing.T) {
	decl := userDecl(t, schema.Config{Derive: []string{"stringer", "json"}})

	p, err := plan.Build(decl.Record)
	require.NoError(t, err)

	g := NewGenerator(DefaultConfig())

	first, err := g.Generate(decl, p)
	require.NoError(t, err)

	second, err := g.Generate(decl, p)
	require.NoError(t, err)

	if !bytes.Equal(first.Content, second.Content) {
		t.Error("repeated generation must be byte-identical")
	}
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"User":        "user",
		"UserProfile": "user_profile",
		"HTTPServer":  "http_server",
		"OrderV2":     "order_v2",
		"parseURL":    "parse_url",
	}

	for in, want := range cases {
		assert.Equal(t, want, snakeCase(in), "snakeCase(%q)", in)
	}
}
