package typexpr

import "fmt"

// Qualifier restricts how an annotated field may be used. A qualifier is
// legal only in certain annotation sources.
type Qualifier int

const (
	QualifierFinal Qualifier = iota
	QualifierClassVar
	QualifierRequired
	QualifierNotRequired
	QualifierReadOnly
)

// String returns the canonical qualifier name as used in error codes and
// CLI output.
func (q Qualifier) String() string {
	switch q {
	case QualifierFinal:
		return "final"
	case QualifierClassVar:
		return "class_var"
	case QualifierRequired:
		return "required"
	case QualifierNotRequired:
		return "not_required"
	case QualifierReadOnly:
		return "read_only"
	}
	return fmt.Sprintf("Qualifier(%d)", int(q))
}

// display returns the spelling used inside rendered type expressions.
func (q Qualifier) display() string {
	switch q {
	case QualifierFinal:
		return "Final"
	case QualifierClassVar:
		return "ClassVar"
	case QualifierRequired:
		return "Required"
	case QualifierNotRequired:
		return "NotRequired"
	case QualifierReadOnly:
		return "ReadOnly"
	}
	return q.String()
}

// allQualifiers lists every qualifier kind, in declaration order.
var allQualifiers = []Qualifier{
	QualifierFinal,
	QualifierClassVar,
	QualifierRequired,
	QualifierNotRequired,
	QualifierReadOnly,
}

// QualifierSet is an unordered set of qualifiers. Duplicates collapse: a
// qualifier appears at most once however many wrappers carried it.
type QualifierSet map[Qualifier]struct{}

// Qualifiers builds a set from the given qualifiers.
func Qualifiers(qs ...Qualifier) QualifierSet {
	set := make(QualifierSet, len(qs))
	for _, q := range qs {
		set[q] = struct{}{}
	}
	return set
}

// Has reports whether q is in the set.
func (s QualifierSet) Has(q Qualifier) bool {
	_, ok := s[q]
	return ok
}

// Add inserts q into the set.
func (s QualifierSet) Add(q Qualifier) { s[q] = struct{}{} }

// Slice returns the members in declaration order.
func (s QualifierSet) Slice() []Qualifier {
	out := make([]Qualifier, 0, len(s))
	for _, q := range allQualifiers {
		if s.Has(q) {
			out = append(out, q)
		}
	}
	return out
}

// AnnotationSource describes where an annotation originates. The source
// determines which qualifiers are allowed.
type AnnotationSource int

const (
	SourceAssignment AnnotationSource = iota // Assignment or variable annotation.
	SourceClass                              // Class body.
	SourceTypedDict                          // Structured record with optional fields.
	SourceNamedTuple                         // Fixed-shape tuple record body.
	SourceFunction                           // Function signature.
	SourceAny                                // Unknown origin; everything allowed.
	SourceBare                               // Annotation inspected as is; nothing allowed.
)

// String returns the source name as accepted by the CLI.
func (s AnnotationSource) String() string {
	switch s {
	case SourceAssignment:
		return "assignment"
	case SourceClass:
		return "class"
	case SourceTypedDict:
		return "typed_dict"
	case SourceNamedTuple:
		return "named_tuple"
	case SourceFunction:
		return "function"
	case SourceAny:
		return "any"
	case SourceBare:
		return "bare"
	}
	return fmt.Sprintf("AnnotationSource(%d)", int(s))
}

// AllowedQualifiers returns the qualifiers legal for this source. The
// mapping is closed and total: every source maps to exactly one set.
func (s AnnotationSource) AllowedQualifiers() QualifierSet {
	switch s {
	case SourceAssignment:
		return Qualifiers(QualifierFinal)
	case SourceClass:
		return Qualifiers(QualifierFinal, QualifierClassVar)
	case SourceTypedDict:
		return Qualifiers(QualifierRequired, QualifierNotRequired, QualifierReadOnly)
	case SourceNamedTuple, SourceFunction, SourceBare:
		return Qualifiers()
	case SourceAny:
		return Qualifiers(allQualifiers...)
	}
	panic(fmt.Sprintf("typexpr: unknown annotation source %d", int(s)))
}

// ParseAnnotationSource converts a source name (as printed by String) back
// to its value.
func ParseAnnotationSource(name string) (AnnotationSource, error) {
	for _, s := range []AnnotationSource{
		SourceAssignment, SourceClass, SourceTypedDict,
		SourceNamedTuple, SourceFunction, SourceAny, SourceBare,
	} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("typexpr: unknown annotation source %q", name)
}
