package plan

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/Huterenok/fieldname-access/internal/schema"
)

func mustRecord(t *testing.T, name string, cfg schema.Config, fields ...schema.FieldDescriptor) *schema.Record {
	t.Helper()

	rec, err := schema.New(name, fields, cfg)
	if err != nil {
		t.Fatalf("schema.New failed: %v", err)
	}

	return rec
}

func TestBuildGroupsByType(t *testing.T) {
	rec := mustRecord(t, "User", schema.Config{},
		schema.FieldDescriptor{Name: "Name", TypeSignature: "string"},
		schema.FieldDescriptor{Name: "Age", TypeSignature: "uint64"},
		schema.FieldDescriptor{Name: "DoesLoveRanni", TypeSignature: "bool"},
	)

	p, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(p.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(p.Variants))
	}

	for i, want := range []string{"String", "Uint64", "Bool"} {
		if p.Variants[i].Name != want {
			t.Errorf("variant %d = %s, want %s", i, p.Variants[i].Name, want)
		}
	}
}

func TestBuildMergesSharedType(t *testing.T) {
	rec := mustRecord(t, "Person", schema.Config{},
		schema.FieldDescriptor{Name: "Name", TypeSignature: "string"},
		schema.FieldDescriptor{Name: "Age", TypeSignature: "int64"},
		schema.FieldDescriptor{Name: "DogAge", TypeSignature: "int64"},
	)

	p, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(p.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(p.Variants))
	}

	i64 := p.Variant("Int64")
	if i64 == nil {
		t.Fatal("Int64 variant missing")
	}

	if len(i64.Fields) != 2 || i64.Fields[0] != "Age" || i64.Fields[1] != "DogAge" {
		t.Errorf("Int64 members = %v, want [Age DogAge]", i64.Fields)
	}
}

func TestBuildOverrideIsNotMerged(t *testing.T) {
	rec := mustRecord(t, "Person", schema.Config{},
		schema.FieldDescriptor{Name: "Name", TypeSignature: "string"},
		schema.FieldDescriptor{Name: "Age", TypeSignature: "int64", VariantOverride: "MyAge"},
		schema.FieldDescriptor{Name: "DogAge", TypeSignature: "int64"},
	)

	p, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(p.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(p.Variants))
	}

	myAge := p.Variant("MyAge")
	if myAge == nil || len(myAge.Fields) != 1 || myAge.Fields[0] != "Age" {
		t.Errorf("MyAge should contain only Age, got %+v", myAge)
	}

	i64 := p.Variant("Int64")
	if i64 == nil || len(i64.Fields) != 1 || i64.Fields[0] != "DogAge" {
		t.Errorf("Int64 should contain only DogAge, got %+v", i64)
	}

	if !myAge.FromOverride || i64.FromOverride {
		t.Error("FromOverride flags are wrong")
	}
}

func TestBuildSharedOverrideExtendsClass(t *testing.T) {
	rec := mustRecord(t, "Doc", schema.Config{},
		schema.FieldDescriptor{Name: "Title", TypeSignature: "string", VariantOverride: "Text"},
		schema.FieldDescriptor{Name: "Body", TypeSignature: "string", VariantOverride: "Text"},
	)

	p, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(p.Variants) != 1 {
		t.Fatalf("same override on same type should share one class, got %d", len(p.Variants))
	}

	if got := p.Variants[0].Fields; len(got) != 2 {
		t.Errorf("Text members = %v, want both fields", got)
	}
}

func TestBuildDefaultNameCollisionFails(t *testing.T) {
	// Two distinct signatures reduce to the same short name "Time".
	rec := mustRecord(t, "Event", schema.Config{},
		schema.FieldDescriptor{Name: "CreatedAt", TypeSignature: "time.Time"},
		schema.FieldDescriptor{Name: "LoggedAt", TypeSignature: "mytime.Time"},
	)

	_, err := Build(rec)

	var collision *VariantNameCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected VariantNameCollisionError, got %v", err)
	}

	if collision.Variant != "Time" {
		t.Errorf("contested variant = %s, want Time", collision.Variant)
	}

	if collision.First.Fields[0] != "CreatedAt" || collision.Second.Fields[0] != "LoggedAt" {
		t.Errorf("collision should name both fields: %+v", collision)
	}
}

func TestBuildOverrideCollidesWithDefault(t *testing.T) {
	rec := mustRecord(t, "Event", schema.Config{},
		schema.FieldDescriptor{Name: "Name", TypeSignature: "string"},
		schema.FieldDescriptor{Name: "Code", TypeSignature: "int", VariantOverride: "String"},
	)

	_, err := Build(rec)

	var collision *VariantNameCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected VariantNameCollisionError, got %v", err)
	}

	if collision.Variant != "String" {
		t.Errorf("contested variant = %s, want String", collision.Variant)
	}
}

func TestBuildOverrideNameClashAcrossTypes(t *testing.T) {
	// Same override name on different signatures is a clash, not a merge.
	rec := mustRecord(t, "Doc", schema.Config{},
		schema.FieldDescriptor{Name: "Title", TypeSignature: "string", VariantOverride: "Payload"},
		schema.FieldDescriptor{Name: "Size", TypeSignature: "int64", VariantOverride: "Payload"},
	)

	_, err := Build(rec)

	var collision *VariantNameCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected VariantNameCollisionError, got %v", err)
	}
}

func TestDispatchTablesAreParallel(t *testing.T) {
	rec := mustRecord(t, "User", schema.Config{},
		schema.FieldDescriptor{Name: "Name", TypeSignature: "string"},
		schema.FieldDescriptor{Name: "Age", TypeSignature: "int64", VariantOverride: "MyAge"},
		schema.FieldDescriptor{Name: "DogAge", TypeSignature: "int64"},
	)

	p, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(p.ReadDispatch) != len(rec.Fields) || len(p.MutDispatch) != len(rec.Fields) {
		t.Fatal("dispatch tables must be total over the schema")
	}

	for i := range p.ReadDispatch {
		r, m := p.ReadDispatch[i], p.MutDispatch[i]
		if r.FieldName != m.FieldName || r.Variant != m.Variant {
			t.Errorf("row %d differs between read and mut: %+v vs %+v", i, r, m)
		}

		vc := p.Variant(r.Variant)
		if vc == nil {
			t.Fatalf("row %d points at unknown variant %s", i, r.Variant)
		}

		if rec.Field(r.FieldName).TypeSignature != vc.TypeSignature {
			t.Errorf("row %d variant signature mismatch", i)
		}
	}
}

func TestBuildResolvesNames(t *testing.T) {
	rec := mustRecord(t, "User", schema.Config{},
		schema.FieldDescriptor{Name: "Name", TypeSignature: "string"},
	)

	p, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if p.EnumName != "UserField" || p.EnumNameMut != "UserFieldMut" {
		t.Errorf("default names = %s/%s, want UserField/UserFieldMut", p.EnumName, p.EnumNameMut)
	}

	rec.Config.EnumName = "NewName"
	p, err = Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if p.EnumName != "NewName" || p.EnumNameMut != "NewNameMut" {
		t.Errorf("configured names = %s/%s, want NewName/NewNameMut", p.EnumName, p.EnumNameMut)
	}

	if len(p.Derive) != 0 || len(p.DeriveMut) != 0 {
		t.Error("no capabilities were requested")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	rec := mustRecord(t, "User", schema.Config{Derive: []string{"stringer"}},
		schema.FieldDescriptor{Name: "Name", TypeSignature: "string"},
		schema.FieldDescriptor{Name: "Age", TypeSignature: "uint64"},
		schema.FieldDescriptor{Name: "Tags", TypeSignature: "[]string"},
	)

	first, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	second, err := Build(rec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		spew.Dump(first)
		t.Errorf("plans differ between runs (-first +second):\n%s", diff)
	}
}
