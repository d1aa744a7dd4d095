package typexpr

// Classifier predicates and accessors over the Expr union. Downstream
// tooling that does not want to type-switch on variants can rely on these
// as a stable inspection surface.

// IsUnion reports whether e is a union form.
func IsUnion(e Expr) bool { _, ok := e.(*Union); return ok }

// IsLiteral reports whether e is a literal value set.
func IsLiteral(e Expr) bool { _, ok := e.(*Literal); return ok }

// IsQualified reports whether e is wrapped in any qualifier (including the
// bare marker form).
func IsQualified(e Expr) bool { _, ok := e.(*Qualified); return ok }

// IsQualifier reports whether e is wrapped in the given qualifier.
func IsQualifier(e Expr, q Qualifier) bool {
	w, ok := e.(*Qualified)
	return ok && w.Qualifier == q
}

// IsAnnotated reports whether e is a metadata wrapper.
func IsAnnotated(e Expr) bool { _, ok := e.(*Annotated); return ok }

// IsTypeAlias reports whether e is a lazy type alias.
func IsTypeAlias(e Expr) bool { _, ok := e.(*Alias); return ok }

// IsForwardRef reports whether e is an unevaluated forward reference.
func IsForwardRef(e Expr) bool { _, ok := e.(*ForwardRef); return ok }

// IsGenericMarker reports whether e is the reserved bare generic marker.
func IsGenericMarker(e Expr) bool { return e == Expr(GenericMarker) }

// IsCapture reports whether e is a parameter-spec capture form.
func IsCapture(e Expr) bool { _, ok := e.(*Capture); return ok }

// IsLegacyAlias reports whether e is a bare legacy generic alias.
func IsLegacyAlias(e Expr) bool { _, ok := e.(*LegacyAlias); return ok }

// IsTypeParam reports whether e is a declared type parameter.
func IsTypeParam(e Expr) bool { _, ok := e.(*TypeParam); return ok }

// Origin returns the origin of a parameterized generic, or nil for every
// other variant.
func Origin(e Expr) Expr {
	if g, ok := e.(*Generic); ok {
		return g.Origin
	}
	return nil
}

// Args returns the positional arguments of a parameterized generic, the
// alternatives of a union, or nil for every other variant.
func Args(e Expr) []Expr {
	switch t := e.(type) {
	case *Generic:
		return t.Args
	case *Union:
		return t.Alternatives
	}
	return nil
}

// Metadata returns the metadata values of an annotated form, or nil.
func Metadata(e Expr) []any {
	if a, ok := e.(*Annotated); ok {
		return a.Metadata
	}
	return nil
}
