package typexpr

import (
	"fmt"

	"github.com/typexpr/typexpr/internal/valkey"
)

// noneValue is the value-level none sentinel.
type noneValue struct{}

func (noneValue) String() string { return "None" }

// None is the none value. Inside literal sets it is interchangeable with
// the NoneType expression; extraction collapses the two.
var None = noneValue{}

// IsNoneLike reports whether v denotes none, either as the value sentinel
// or as the type-level NoneType expression.
func IsNoneLike(v any) bool {
	if v == any(None) {
		return true
	}
	e, ok := v.(Expr)
	return ok && e == Expr(NoneType)
}

// EnumMember is a named member of an enumeration. It compares distinct
// from its underlying value inside literal sets.
type EnumMember struct {
	Enum  string
	Name  string
	Value any
}

func (m EnumMember) String() string { return m.Enum + "." + m.Name }

// AliasPolicy controls how lazy type aliases are handled during
// extraction and transformation.
type AliasPolicy int

const (
	// AliasKeep yields or preserves alias references as-is.
	AliasKeep AliasPolicy = iota
	// AliasLenient expands aliases, falling back to AliasKeep for any
	// alias whose symbol cannot be resolved.
	AliasLenient
	// AliasEager expands aliases and propagates resolution failures.
	AliasEager
)

// String returns the policy name as accepted by the CLI.
func (p AliasPolicy) String() string {
	switch p {
	case AliasKeep:
		return "keep"
	case AliasLenient:
		return "lenient"
	case AliasEager:
		return "eager"
	}
	return fmt.Sprintf("AliasPolicy(%d)", int(p))
}

// ParseAliasPolicy converts a policy name back to its value.
func ParseAliasPolicy(name string) (AliasPolicy, error) {
	for _, p := range []AliasPolicy{AliasKeep, AliasLenient, AliasEager} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("typexpr: unknown alias policy %q", name)
}

// LiteralOpt bundles extraction options.
type LiteralOpt struct {
	// TypeCheck rejects members that are not a legal literal value kind
	// (integer, byte string, text string, bool, enum member, none).
	TypeCheck bool
	// Aliases selects the lazy-alias handling policy.
	Aliases AliasPolicy
}

// LiteralValues returns the fully expanded, deduplicated values of a
// literal set, in first-occurrence order.
//
// Under AliasKeep, alias members are yielded as-is and the only
// deduplication performed is collapsing none and NoneType into a single
// None (the underlying representation does not collapse the two itself).
// Under AliasLenient and AliasEager, alias members are expanded
// recursively and the result is deduplicated by (value, runtime kind), so
// an enum member stays distinct from an equal plain value.
func LiteralValues(lit *Literal, opt LiteralOpt) ([]any, error) {
	if opt.Aliases == AliasKeep {
		out := make([]any, 0, len(lit.Values))
		hasNone := false
		for _, v := range lit.Values {
			if opt.TypeCheck {
				if err := literalTypeCheck(v); err != nil {
					return nil, err
				}
			}
			if IsNoneLike(v) {
				if !hasNone {
					out = append(out, any(None))
				}
				hasNone = true
				continue
			}
			out = append(out, v)
		}
		return out, nil
	}

	var expanded []keyedValue
	if err := expandLiteral(lit, opt, &expanded); err != nil {
		return nil, err
	}
	seen := make(map[valkey.Key]struct{}, len(expanded))
	out := make([]any, 0, len(expanded))
	for _, kv := range expanded {
		if _, dup := seen[kv.key]; dup {
			continue
		}
		seen[kv.key] = struct{}{}
		out = append(out, kv.value)
	}
	return out, nil
}

type keyedValue struct {
	value any
	key   valkey.Key
}

func expandLiteral(lit *Literal, opt LiteralOpt, dst *[]keyedValue) error {
	for _, v := range lit.Values {
		if err := expandMember(v, opt, dst); err != nil {
			return err
		}
	}
	return nil
}

func expandMember(v any, opt LiteralOpt, dst *[]keyedValue) error {
	alias, ok := v.(*Alias)
	if !ok {
		if opt.TypeCheck {
			if err := literalTypeCheck(v); err != nil {
				return err
			}
		}
		if IsNoneLike(v) {
			v = any(None)
		}
		*dst = append(*dst, keyedValue{value: v, key: valkey.Of(v)})
		return nil
	}

	value, err := alias.Value()
	if err != nil {
		if opt.Aliases == AliasEager {
			return err
		}
		// Lenient: the member stays opaque.
		if opt.TypeCheck {
			if err := literalTypeCheck(alias); err != nil {
				return err
			}
		}
		*dst = append(*dst, keyedValue{value: alias, key: valkey.Of(alias)})
		return nil
	}
	switch t := value.(type) {
	case *Literal:
		return expandLiteral(t, opt, dst)
	case *Alias:
		return expandMember(t, opt, dst)
	default:
		return &InvalidLiteralError{Value: value}
	}
}

func literalTypeCheck(v any) error {
	switch v.(type) {
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		string, []byte, EnumMember:
		return nil
	}
	if IsNoneLike(v) {
		return nil
	}
	return &InvalidLiteralError{Value: v}
}
