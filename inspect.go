package typexpr

// InspectedAnnotation is the result of inspecting an annotation
// expression: the final unwrapped type, the qualifiers encountered and
// the accumulated metadata.
type InspectedAnnotation struct {
	// Type is the annotation with qualifiers and metadata stripped.
	Type Expr
	// Qualifiers are the qualifiers present on the annotation.
	Qualifiers QualifierSet
	// Metadata holds the annotated metadata, deepest values first.
	Metadata []any
}

// InspectOpt bundles inspection options.
type InspectOpt struct {
	// Aliases selects the lazy-alias handling policy used when peeling
	// metadata wrappers.
	Aliases AliasPolicy
}

// InspectAnnotation unwraps an annotation expression, extracting any
// qualifiers and annotated metadata.
//
// An annotation expression is a type expression optionally surrounded by
// one or more qualifiers or metadata wrappers. Each iteration first peels
// metadata wrappers (expanding lazy aliases per opt.Aliases), then peels
// one qualifier wrapper, verifying it against the source's allow-list.
// A disallowed qualifier fails with *ForbiddenQualifierError.
func InspectAnnotation(annotation Expr, source AnnotationSource, opt InspectOpt) (InspectedAnnotation, error) {
	allowed := source.AllowedQualifiers()
	qualifiers := Qualifiers()
	var metadata []any

	for {
		unwrapped, meta, err := unpackAnnotated(annotation, opt.Aliases)
		if err != nil {
			return InspectedAnnotation{}, err
		}
		if len(meta) > 0 {
			annotation = unwrapped
			merged := make([]any, 0, len(meta)+len(metadata))
			merged = append(merged, meta...)
			merged = append(merged, metadata...)
			metadata = merged
			continue
		}

		wrapper, ok := annotation.(*Qualified)
		if !ok || wrapper.Inner == nil {
			break
		}
		if !allowed.Has(wrapper.Qualifier) {
			return InspectedAnnotation{}, &ForbiddenQualifierError{Qualifier: wrapper.Qualifier}
		}
		qualifiers.Add(wrapper.Qualifier)
		annotation = wrapper.Inner
	}

	// Final is the only qualifier allowed as a bare annotation. Its
	// argument is implicit, so the resulting type is unconstrained.
	if marker, ok := annotation.(*Qualified); ok && marker.Inner == nil && marker.Qualifier == QualifierFinal {
		if !allowed.Has(QualifierFinal) {
			return InspectedAnnotation{}, &ForbiddenQualifierError{Qualifier: QualifierFinal}
		}
		qualifiers.Add(QualifierFinal)
		annotation = Any
	}

	return InspectedAnnotation{Type: annotation, Qualifiers: qualifiers, Metadata: metadata}, nil
}

// unpackAnnotated peels every metadata wrapper reachable from the top of
// the expression, expanding lazy aliases on the way when the policy asks
// for it. The returned metadata is ordered deepest-first; it is empty when
// nothing was peeled.
func unpackAnnotated(annotation Expr, policy AliasPolicy) (Expr, []any, error) {
	if policy == AliasKeep {
		if a, ok := annotation.(*Annotated); ok {
			return a.Type, a.Metadata, nil
		}
		return annotation, nil, nil
	}
	return unpackAnnotatedInner(annotation, policy)
}

func unpackAnnotatedInner(annotation Expr, policy AliasPolicy) (Expr, []any, error) {
	switch t := annotation.(type) {
	case *Annotated:
		inner, subMeta, err := unpackAnnotatedInner(t.Type, policy)
		if err != nil {
			return nil, nil, err
		}
		meta := make([]any, 0, len(subMeta)+len(t.Metadata))
		meta = append(meta, subMeta...)
		meta = append(meta, t.Metadata...)
		return inner, meta, nil

	case *Alias:
		value, err := t.Value()
		if err != nil {
			if policy == AliasEager {
				return nil, nil, err
			}
			return annotation, nil, nil
		}
		typ, meta, err := unpackAnnotatedInner(value, policy)
		if err != nil {
			return nil, nil, err
		}
		if len(meta) > 0 {
			return typ, meta, nil
		}
		// The alias value carried no metadata; keep the reference intact
		// rather than unwrapping an ordinary alias.
		return annotation, nil, nil

	case *Generic:
		origin, ok := t.Origin.(*Alias)
		if !ok {
			return annotation, nil, nil
		}
		value, err := origin.Value()
		if err != nil {
			if policy == AliasEager {
				return nil, nil, err
			}
			return annotation, nil, nil
		}
		// Parameterized aliases carry their own parameters; emulate the
		// parameterization before unpacking.
		value = parameterizeAliasValue(origin, value, t.Args)
		typ, meta, err := unpackAnnotatedInner(value, policy)
		if err != nil {
			return nil, nil, err
		}
		if len(meta) > 0 {
			return typ, meta, nil
		}
		return annotation, nil, nil
	}

	return annotation, nil, nil
}

// parameterizeAliasValue substitutes the alias's declared parameters with
// the supplied arguments inside its value. When the value is not
// parameterizable as supplied (no declared parameters, arity mismatch),
// the value is used unsubstituted.
func parameterizeAliasValue(alias *Alias, value Expr, args []Expr) Expr {
	if len(alias.TypeParams) == 0 {
		return value
	}
	bindings, err := BindTypeParams(GenericOf(alias, args...), alias.TypeParams)
	if err != nil {
		return value
	}
	replacements := make(map[Expr]Expr, len(bindings))
	for param, arg := range bindings {
		replacements[param] = arg
	}
	return substitute(value, replacements)
}
