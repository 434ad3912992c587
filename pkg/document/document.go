// Package document defines the configuration document model.
// A Document is an open mapping of analyzer option names to values with a
// small set of reserved keys that the resolution layer consumes before the
// analyzer ever sees the document.
package document

// Reserved keys consumed during resolution. Any other key is an opaque
// pass-through option for the analyzer.
const (
	// KeyExtends names a parent document to inherit defaults from,
	// resolved relative to the child document's directory.
	KeyExtends = "extends"

	// KeyGlobals holds a mapping of predeclared identifiers. It is
	// stripped from the document and passed to the analyzer separately.
	KeyGlobals = "globals"

	// KeyPrereq holds an ordered list of file paths whose content is
	// prepended to the source before analysis.
	KeyPrereq = "prereq"
)

// Document is a configuration document: analyzer options keyed by name.
// After resolution a Document contains no "extends" key.
type Document map[string]any

// New returns an empty document.
func New() Document {
	return Document{}
}

// Clone returns a deep copy of the document. Nested maps and slices are
// copied recursively so mutating the clone never affects the original.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for key, val := range d {
		out[key] = cloneValue(val)
	}
	return out
}

func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return v
	}
}

// ApplyDefaults fills keys absent in d from parent. Keys already present in
// d always win, so during an upward merge the first-defined value is kept.
func (d Document) ApplyDefaults(parent Document) {
	for key, val := range parent {
		if _, ok := d[key]; !ok {
			d[key] = cloneValue(val)
		}
	}
}

// Extends returns the parent reference and whether one is present.
func (d Document) Extends() (string, bool) {
	ref, ok := d[KeyExtends].(string)
	return ref, ok && ref != ""
}

// DropExtends removes the extends key after the chain has been flattened.
func (d Document) DropExtends() {
	delete(d, KeyExtends)
}

// Globals removes and returns the predeclared identifier mapping, or nil
// when the document declares none.
func (d Document) Globals() map[string]any {
	raw, ok := d[KeyGlobals]
	if !ok {
		return nil
	}
	delete(d, KeyGlobals)
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	return nil
}

// Prereq removes and returns the ordered prereq path list. Both []string and
// the []any form produced by JSON decoding are accepted; non-string entries
// are dropped.
func (d Document) Prereq() []string {
	raw, ok := d[KeyPrereq]
	if !ok {
		return nil
	}
	delete(d, KeyPrereq)

	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
