package mimeinfo

type kind int

const (
	kindUnknown kind = iota
	kindGeneric
	kindWithExt
)

// Mime is the resolution result for a MIME type string.
type Mime struct {
	kind kind
	ext  string
}

var (
	// Unknown means no source knows the type.
	Unknown = Mime{kind: kindUnknown}

	// Generic means the type is known but has no canonical extension.
	Generic = Mime{kind: kindGeneric}
)

// WithExt is a known type with canonical extension ext (no leading dot).
func WithExt(ext string) Mime {
	return Mime{kind: kindWithExt, ext: ext}
}

// Ext returns the canonical extension, if there is one.
func (m Mime) Ext() (string, bool) {
	return m.ext, m.kind == kindWithExt
}

func (m Mime) IsUnknown() bool {
	return m.kind == kindUnknown
}

func (m Mime) IsGeneric() bool {
	return m.kind == kindGeneric
}

func (m Mime) String() string {
	switch m.kind {
	case kindGeneric:
		return "Generic"
	case kindWithExt:
		return "WithExt(" + m.ext + ")"
	default:
		return "Unknown"
	}
}
