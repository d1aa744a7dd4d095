package typexpr

// LegacyAlias is a no-argument legacy generic alias (e.g. List as a bare
// annotation). Although it carries a modern target type, a bare legacy
// alias is treated as a leaf during traversal; it only behaves like a
// generic origin once parameterized.
type LegacyAlias struct {
	name   string
	Target Expr
}

func (l *LegacyAlias) Kind() ExprKind { return KindLegacyAlias }
func (l *LegacyAlias) String() string { return l.name }

// legacyAliases is the fixed identity table of deprecated generic
// aliases. Built once; never mutated afterwards.
var legacyAliases = func() map[string]*LegacyAlias {
	targets := map[string]string{
		"List":        "list",
		"Dict":        "dict",
		"Set":         "set",
		"FrozenSet":   "frozenset",
		"Tuple":       "tuple",
		"Type":        "type",
		"Deque":       "deque",
		"DefaultDict": "defaultdict",
		"Callable":    "callable",
	}
	table := make(map[string]*LegacyAlias, len(targets))
	for name, target := range targets {
		table[name] = &LegacyAlias{name: name, Target: TypeName(target)}
	}
	return table
}()

// LegacyAliasByName looks up a legacy alias in the identity table.
func LegacyAliasByName(name string) (*LegacyAlias, bool) {
	l, ok := legacyAliases[name]
	return l, ok
}
