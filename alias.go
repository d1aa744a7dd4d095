package typexpr

// Alias is a lazily-resolved type alias: a named placeholder whose value
// is computed on demand. Resolution may fail when the alias body refers to
// names not yet defined in its enclosing scope; the failure is reported as
// *UnresolvedAliasError and is reproducible until the scope changes.
type Alias struct {
	Name string
	// TypeParams are the alias's own declared parameters, if any.
	TypeParams []*TypeParam

	resolve func() (Expr, error)
}

func (a *Alias) Kind() ExprKind { return KindAlias }
func (a *Alias) String() string { return a.Name }

// NewAlias declares an alias whose value is produced by resolve on each
// call. A nil resolve makes the alias permanently unresolved.
func NewAlias(name string, resolve func() (Expr, error)) *Alias {
	return &Alias{Name: name, resolve: resolve}
}

// AliasOf declares an alias with an already-known value.
func AliasOf(name string, value Expr) *Alias {
	return &Alias{Name: name, resolve: func() (Expr, error) { return value, nil }}
}

// Value resolves the alias body. The error, if any, is an
// *UnresolvedAliasError naming the undefined symbol.
func (a *Alias) Value() (Expr, error) {
	if a.resolve == nil {
		return nil, &UnresolvedAliasError{Symbol: a.Name}
	}
	return a.resolve()
}
