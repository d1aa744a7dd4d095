package typexpr

import (
	"fmt"
	"strings"
)

// ExprKind identifies a type-expression variant.
type ExprKind int

const (
	KindNamed      ExprKind = iota // Atomic named type (int, str, MyClass).
	KindSpecial                    // Reserved marker with singleton identity (Any, None, Generic).
	KindGeneric                    // Parameterized generic: origin plus arguments.
	KindUnion                      // Ordered alternatives.
	KindQualified                  // Qualifier wrapper (Final, ClassVar, ...).
	KindAnnotated                  // Type plus ordered metadata values.
	KindAlias                      // Lazily-resolved type alias.
	KindLiteral                    // Closed set of concrete values.
	KindForwardRef                 // Unevaluated textual reference.
	KindTypeParam                  // Type variable, variadic tuple or parameter spec.
	KindCapture                    // Parameter-spec capture form (P.args / P.kwargs).
	KindLegacyAlias                // No-argument legacy generic alias (List, Dict, ...).
	KindArgList                    // Bracketed argument list, used for parameter-spec binding.
)

// Expr is the interface implemented by all type-expression variants.
type Expr interface {
	Kind() ExprKind
	String() string
}

// Named represents an atomic type with no further structure.
type Named struct {
	Name string
}

func (n *Named) Kind() ExprKind { return KindNamed }
func (n *Named) String() string { return n.Name }

// TypeName returns a bare named type.
func TypeName(name string) *Named { return &Named{Name: name} }

// Special is a reserved marker form. Instances are package singletons and
// compared by identity.
type Special struct {
	name string
}

func (s *Special) Kind() ExprKind { return KindSpecial }
func (s *Special) String() string { return s.name }

var (
	// Any is the fully-unconstrained placeholder type.
	Any = &Special{name: "Any"}
	// NoneType is the type-level sentinel for the none value.
	NoneType = &Special{name: "None"}
	// GenericMarker is the reserved unparameterized-generic marker. It is
	// never valid inside an annotation expression.
	GenericMarker = &Special{name: "Generic"}
)

// Generic represents a parameterized generic: an origin plus an ordered
// sequence of argument expressions.
type Generic struct {
	Origin Expr
	Args   []Expr
}

func (g *Generic) Kind() ExprKind { return KindGeneric }

func (g *Generic) String() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return g.Origin.String() + "[" + strings.Join(parts, ", ") + "]"
}

// GenericOf builds a parameterized generic.
func GenericOf(origin Expr, args ...Expr) *Generic {
	return &Generic{Origin: origin, Args: args}
}

// Union represents ordered alternatives. Order is preserved but the form is
// semantically a set; alternatives are not deduplicated.
type Union struct {
	Alternatives []Expr
}

func (u *Union) Kind() ExprKind { return KindUnion }

func (u *Union) String() string {
	parts := make([]string, len(u.Alternatives))
	for i, a := range u.Alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

// UnionOf combines alternatives into a union, flattening nested unions.
// A single alternative is returned unchanged.
func UnionOf(alts ...Expr) Expr {
	flat := make([]Expr, 0, len(alts))
	for _, a := range alts {
		if u, ok := a.(*Union); ok {
			flat = append(flat, u.Alternatives...)
		} else {
			flat = append(flat, a)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Union{Alternatives: flat}
}

// Qualified wraps one inner expression in a qualifier. A nil Inner denotes
// the bare qualifier marker (e.g. a bare Final annotation).
type Qualified struct {
	Qualifier Qualifier
	Inner     Expr
}

func (q *Qualified) Kind() ExprKind { return KindQualified }

func (q *Qualified) String() string {
	if q.Inner == nil {
		return q.Qualifier.display()
	}
	return q.Qualifier.display() + "[" + q.Inner.String() + "]"
}

// Qualify wraps inner in the given qualifier.
func Qualify(q Qualifier, inner Expr) *Qualified {
	return &Qualified{Qualifier: q, Inner: inner}
}

// BareQualifier returns the bare marker form of a qualifier.
func BareQualifier(q Qualifier) *Qualified { return &Qualified{Qualifier: q} }

// Annotated pairs a type with an ordered, non-empty sequence of metadata
// values. Metadata is carried, not interpreted.
type Annotated struct {
	Type     Expr
	Metadata []any
}

func (a *Annotated) Kind() ExprKind { return KindAnnotated }

func (a *Annotated) String() string {
	parts := make([]string, 0, len(a.Metadata)+1)
	parts = append(parts, a.Type.String())
	for _, m := range a.Metadata {
		parts = append(parts, fmt.Sprintf("%v", m))
	}
	return "Annotated[" + strings.Join(parts, ", ") + "]"
}

// Annotate wraps typ with metadata. Wrapping an already-annotated type
// appends to its metadata, so nested wrapping stays flat.
func Annotate(typ Expr, metadata ...any) *Annotated {
	if inner, ok := typ.(*Annotated); ok {
		merged := make([]any, 0, len(inner.Metadata)+len(metadata))
		merged = append(merged, inner.Metadata...)
		merged = append(merged, metadata...)
		return &Annotated{Type: inner.Type, Metadata: merged}
	}
	return &Annotated{Type: typ, Metadata: metadata}
}

// Literal represents a closed set of concrete values. Values may be
// integers, text or byte strings, booleans, enum members, the None
// sentinel, the NoneType expression, or *Alias references to further
// literal sets. Values are kept in declaration order and are not
// deduplicated at construction.
type Literal struct {
	Values []any
}

func (l *Literal) Kind() ExprKind { return KindLiteral }

func (l *Literal) String() string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		switch t := v.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", t)
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return "Literal[" + strings.Join(parts, ", ") + "]"
}

// LiteralOf builds a literal value set.
func LiteralOf(values ...any) *Literal { return &Literal{Values: values} }

// ForwardRef is an unevaluated placeholder for a type named before its
// definition is available.
type ForwardRef struct {
	Name string
}

func (f *ForwardRef) Kind() ExprKind { return KindForwardRef }
func (f *ForwardRef) String() string { return fmt.Sprintf("%q", f.Name) }

// Forward returns a forward reference to name.
func Forward(name string) *ForwardRef { return &ForwardRef{Name: name} }

// ParamVariant distinguishes the kinds of type parameters.
type ParamVariant int

const (
	ParamTypeVar      ParamVariant = iota // Single type variable.
	ParamTypeVarTuple                     // Variadic tuple of type variables.
	ParamSpecVariant                      // Parameter specification.
)

// TypeParam is a declared type parameter, optionally carrying a default.
// A nil Default means no default is declared.
type TypeParam struct {
	Name    string
	Variant ParamVariant
	Default Expr
}

func (p *TypeParam) Kind() ExprKind { return KindTypeParam }

func (p *TypeParam) String() string {
	switch p.Variant {
	case ParamTypeVarTuple:
		return "*" + p.Name
	case ParamSpecVariant:
		return "**" + p.Name
	default:
		return p.Name
	}
}

// TypeVar declares a single type variable.
func TypeVar(name string) *TypeParam { return &TypeParam{Name: name, Variant: ParamTypeVar} }

// TypeVarTuple declares a variadic type-variable tuple.
func TypeVarTuple(name string) *TypeParam {
	return &TypeParam{Name: name, Variant: ParamTypeVarTuple}
}

// ParamSpec declares a parameter specification.
func ParamSpec(name string) *TypeParam { return &TypeParam{Name: name, Variant: ParamSpecVariant} }

// CaptureForm selects which half of a parameter specification a Capture
// refers to.
type CaptureForm int

const (
	CaptureArgs CaptureForm = iota
	CaptureKwargs
)

// Capture is a parameter-spec capture form (P.args or P.kwargs). It is
// always treated as a leaf during traversal.
type Capture struct {
	Param *TypeParam
	Form  CaptureForm
}

func (c *Capture) Kind() ExprKind { return KindCapture }

func (c *Capture) String() string {
	if c.Form == CaptureKwargs {
		return c.Param.Name + ".kwargs"
	}
	return c.Param.Name + ".args"
}

// ArgList is a bracketed list of argument expressions, as accepted when
// binding a lone parameter specification.
type ArgList struct {
	Args []Expr
}

func (a *ArgList) Kind() ExprKind { return KindArgList }

func (a *ArgList) String() string {
	parts := make([]string, len(a.Args))
	for i, e := range a.Args {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ArgListOf builds a bracketed argument list.
func ArgListOf(args ...Expr) *ArgList { return &ArgList{Args: args} }
