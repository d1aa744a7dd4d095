package typexpr

// Rewriter rewrites a type-expression tree while preserving structure.
// The zero value is the identity rewrite: unchanged subtrees are returned
// as-is, without reconstruction.
type Rewriter struct {
	// Aliases selects the expansion policy for lazy aliases encountered
	// as a bare leaf or as a generic's origin. AliasKeep leaves the
	// reference untouched.
	Aliases AliasPolicy
	// Replacements substitutes any leaf matching a key with its mapped
	// value, after recursing into the leaf itself.
	Replacements map[Expr]Expr
}

// Transform rewrites e using r. A nil r performs the identity rewrite.
// Like Walk, it fails on bare generic markers and on forward references.
func Transform(e Expr, r *Rewriter) (Expr, error) {
	if r == nil {
		r = &Rewriter{}
	}
	return r.rewrite(e)
}

func (r *Rewriter) rewrite(e Expr) (Expr, error) {
	if e == Expr(GenericMarker) {
		return nil, &InvalidAnnotationError{Expr: e}
	}

	switch t := e.(type) {
	case *Union:
		return r.rewriteUnion(t)
	case *Generic:
		return r.rewriteGeneric(t)
	case *Literal:
		// Member values are not type expressions; the set is opaque here.
		return e, nil
	case *Qualified:
		if t.Inner == nil {
			return r.rewriteLeaf(e)
		}
		inner, err := r.rewrite(t.Inner)
		if err != nil {
			return nil, err
		}
		if inner == t.Inner {
			return t, nil
		}
		return &Qualified{Qualifier: t.Qualifier, Inner: inner}, nil
	case *Annotated:
		typ, err := r.rewrite(t.Type)
		if err != nil {
			return nil, err
		}
		if typ == t.Type {
			return t, nil
		}
		return &Annotated{Type: typ, Metadata: t.Metadata}, nil
	case *ArgList:
		args, changed, err := r.rewriteAll(t.Args)
		if err != nil {
			return nil, err
		}
		if !changed {
			return t, nil
		}
		return &ArgList{Args: args}, nil
	}
	return r.rewriteLeaf(e)
}

func (r *Rewriter) rewriteAll(args []Expr) ([]Expr, bool, error) {
	out := make([]Expr, len(args))
	changed := false
	for i, arg := range args {
		v, err := r.rewrite(arg)
		if err != nil {
			return nil, false, err
		}
		out[i] = v
		if v != arg {
			changed = true
		}
	}
	return out, changed, nil
}

// rewriteUnion rebuilds a union by pairwise combination of the rewritten
// alternatives, flattening as it goes. Unchanged unions are returned
// as-is.
func (r *Rewriter) rewriteUnion(u *Union) (Expr, error) {
	alts, changed, err := r.rewriteAll(u.Alternatives)
	if err != nil {
		return nil, err
	}
	if !changed {
		return u, nil
	}
	out := alts[0]
	for _, alt := range alts[1:] {
		out = UnionOf(out, alt)
	}
	return out, nil
}

func (r *Rewriter) rewriteGeneric(g *Generic) (Expr, error) {
	if g.Origin == Expr(GenericMarker) {
		return nil, &InvalidAnnotationError{Expr: g}
	}

	if origin, ok := g.Origin.(*Alias); ok && r.Aliases != AliasKeep {
		value, err := origin.Value()
		if err != nil {
			if r.Aliases == AliasEager {
				return nil, err
			}
			// Lenient: fall through and rebuild around the reference.
		} else {
			args, _, err := r.rewriteAll(g.Args)
			if err != nil {
				return nil, err
			}
			return r.rewrite(parameterizeAliasValue(origin, value, args))
		}
	}

	args, changed, err := r.rewriteAll(g.Args)
	if err != nil {
		return nil, err
	}
	if !changed {
		return g, nil
	}
	return &Generic{Origin: g.Origin, Args: args}, nil
}

func (r *Rewriter) rewriteLeaf(e Expr) (Expr, error) {
	if ref, ok := e.(*ForwardRef); ok {
		return nil, &UnevaluatedReferenceError{Ref: ref}
	}
	if repl, ok := r.Replacements[e]; ok {
		e = repl
	}
	if alias, ok := e.(*Alias); ok && r.Aliases != AliasKeep {
		value, err := alias.Value()
		if err != nil {
			if r.Aliases == AliasEager {
				return nil, err
			}
			return e, nil
		}
		return r.rewrite(value)
	}
	return e, nil
}

// substitute performs plain structural replacement without alias
// expansion or forward-reference checks. An argument-list replacement for
// a variadic parameter is spliced into its surrounding argument positions.
func substitute(e Expr, replacements map[Expr]Expr) Expr {
	if e == nil {
		return nil
	}
	if repl, ok := replacements[e]; ok {
		return repl
	}
	switch t := e.(type) {
	case *Generic:
		args := make([]Expr, 0, len(t.Args))
		for _, arg := range t.Args {
			sub := substitute(arg, replacements)
			if list, ok := sub.(*ArgList); ok && isVariadicParam(arg) {
				args = append(args, list.Args...)
				continue
			}
			args = append(args, sub)
		}
		return &Generic{Origin: substitute(t.Origin, replacements), Args: args}
	case *Union:
		alts := make([]Expr, len(t.Alternatives))
		for i, alt := range t.Alternatives {
			alts[i] = substitute(alt, replacements)
		}
		return &Union{Alternatives: alts}
	case *Qualified:
		if t.Inner == nil {
			return t
		}
		return &Qualified{Qualifier: t.Qualifier, Inner: substitute(t.Inner, replacements)}
	case *Annotated:
		return &Annotated{Type: substitute(t.Type, replacements), Metadata: t.Metadata}
	case *ArgList:
		args := make([]Expr, len(t.Args))
		for i, arg := range t.Args {
			args[i] = substitute(arg, replacements)
		}
		return &ArgList{Args: args}
	}
	return e
}

func isVariadicParam(e Expr) bool {
	p, ok := e.(*TypeParam)
	return ok && p.Variant == ParamTypeVarTuple
}
