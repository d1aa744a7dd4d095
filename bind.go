package typexpr

// BindTypeParams binds the arguments of a parameterized generic to the
// origin's declared type parameters, in declaration order.
//
// A single variadic (type-var-tuple) parameter absorbs any number of
// surplus positional arguments, captured as an ArgList. Every other
// parameter binds exactly one argument, falling back to its declared
// default when arguments are exhausted; a parameter with neither fails
// with *ParameterBindingError. A lone parameter-spec parameter accepts
// both a bracketed argument list and a single plain argument, normalized
// to the bracketed shape.
func BindTypeParams(g *Generic, params []*TypeParam) (map[*TypeParam]Expr, error) {
	args := g.Args

	if len(params) == 1 && params[0].Variant == ParamSpecVariant {
		return bindLoneParamSpec(params[0], args)
	}

	variadic := -1
	for i, p := range params {
		if p.Variant == ParamTypeVarTuple {
			variadic = i
			break
		}
	}

	bindings := make(map[*TypeParam]Expr, len(params))

	if variadic < 0 {
		if len(args) > len(params) {
			return nil, &ParameterBindingError{Message: "too many arguments"}
		}
		for i, p := range params {
			switch {
			case i < len(args):
				bindings[p] = args[i]
			case p.Default != nil:
				bindings[p] = p.Default
			default:
				return nil, &ParameterBindingError{Param: p, Message: "too few arguments and no default"}
			}
		}
		return bindings, nil
	}

	before, after := params[:variadic], params[variadic+1:]
	rest := args

	for _, p := range before {
		switch {
		case len(rest) > 0:
			bindings[p] = rest[0]
			rest = rest[1:]
		case p.Default != nil:
			bindings[p] = p.Default
		default:
			return nil, &ParameterBindingError{Param: p, Message: "too few arguments and no default"}
		}
	}
	// Parameters after the variadic bind from the back; the middle is
	// absorbed by the variadic.
	for i := len(after) - 1; i >= 0; i-- {
		p := after[i]
		switch {
		case len(rest) > 0:
			bindings[p] = rest[len(rest)-1]
			rest = rest[:len(rest)-1]
		case p.Default != nil:
			bindings[p] = p.Default
		default:
			return nil, &ParameterBindingError{Param: p, Message: "too few arguments and no default"}
		}
	}
	bindings[params[variadic]] = ArgListOf(rest...)
	return bindings, nil
}

func bindLoneParamSpec(p *TypeParam, args []Expr) (map[*TypeParam]Expr, error) {
	var arg Expr
	switch {
	case len(args) == 0:
		if p.Default == nil {
			return nil, &ParameterBindingError{Param: p, Message: "too few arguments and no default"}
		}
		arg = p.Default
	case len(args) == 1:
		arg = args[0]
	default:
		// X[A, B] is shorthand for X[[A, B]].
		arg = ArgListOf(args...)
	}
	if !isParamExpr(arg) {
		arg = ArgListOf(arg)
	}
	return map[*TypeParam]Expr{p: arg}, nil
}

// isParamExpr reports whether e already has the shape expected by a
// parameter-spec argument position.
func isParamExpr(e Expr) bool {
	switch t := e.(type) {
	case *ArgList:
		return true
	case *TypeParam:
		return t.Variant == ParamSpecVariant
	}
	return false
}
