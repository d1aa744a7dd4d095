package typexpr

// Visitor observes nodes during a read-only depth-first walk.
type Visitor interface {
	Visit(e Expr) error
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(Expr) error

// Visit implements Visitor.
func (f VisitorFunc) Visit(e Expr) error { return f(e) }

// Walk traverses a type-expression tree depth-first, calling v.Visit on
// every node before its children. A nil v walks silently, which still
// detects invalid forms.
//
// A bare generic marker fails with *InvalidAnnotationError. Forward
// references fail with *UnevaluatedReferenceError carrying the exact
// reference; they are never skipped, so callers can retry once the symbol
// resolves. Literal value sets are leaves: their members are values, not
// type expressions.
func Walk(e Expr, v Visitor) error {
	if e == Expr(GenericMarker) {
		return &InvalidAnnotationError{Expr: e}
	}
	if g, ok := e.(*Generic); ok && g.Origin == Expr(GenericMarker) {
		return &InvalidAnnotationError{Expr: e}
	}

	if v != nil {
		if err := v.Visit(e); err != nil {
			return err
		}
	}

	switch t := e.(type) {
	case *Capture, *LegacyAlias, *Literal:
		// Leaves: capture forms, bare legacy aliases and literal sets.
		return nil
	case *Union:
		for _, alt := range t.Alternatives {
			if err := Walk(alt, v); err != nil {
				return err
			}
		}
		return nil
	case *Generic:
		for _, arg := range t.Args {
			if err := Walk(arg, v); err != nil {
				return err
			}
		}
		return nil
	case *Qualified:
		if t.Inner == nil {
			return nil
		}
		return Walk(t.Inner, v)
	case *Annotated:
		// Metadata values are not type expressions.
		return Walk(t.Type, v)
	case *ArgList:
		for _, arg := range t.Args {
			if err := Walk(arg, v); err != nil {
				return err
			}
		}
		return nil
	case *ForwardRef:
		return &UnevaluatedReferenceError{Ref: t}
	}
	return nil
}
