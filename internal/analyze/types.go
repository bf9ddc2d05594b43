package analyze

import (
	"github.com/Huterenok/fieldname-access/internal/schema"
)

// ImportRef names a package needed by a generated file.
type ImportRef struct {
	Path string // import path
	Name string // package name, used as the qualifier in signatures
}

// RecordDecl is one extracted record declaration: the validated schema
// plus everything the emitter needs to place and compile the output.
type RecordDecl struct {
	// PkgPath is the import path of the package declaring the record.
	PkgPath string
	// PkgName is the declared package name; generated files reuse it.
	PkgName string
	// Dir is the directory holding the declaring source file.
	Dir string
	// Record is the validated schema.
	Record *schema.Record
	// Imports lists the packages referenced by field type signatures,
	// sorted by path.
	Imports []ImportRef
}

// ID returns "pkgpath.TypeName", the key used to match configuration
// entries against declarations.
func (d *RecordDecl) ID() string {
	return d.PkgPath + "." + d.Record.Name
}
