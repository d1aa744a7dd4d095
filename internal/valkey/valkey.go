// Package valkey computes identity keys for literal values. Two values are
// the same member of a literal set only when both the value and its
// runtime kind match, so an enum member equal to 1 stays distinct from the
// integer 1.
package valkey

import (
	"fmt"
	"strconv"
)

// Key is a comparable identity for a literal value.
type Key struct {
	Kind string
	Repr string
}

// Of derives the identity key for v. Integer widths are collapsed into a
// single kind; everything else keys on its concrete Go type.
func Of(v any) Key {
	switch t := v.(type) {
	case bool:
		return Key{Kind: "bool", Repr: strconv.FormatBool(t)}
	case int:
		return Key{Kind: "int", Repr: strconv.FormatInt(int64(t), 10)}
	case int8:
		return Key{Kind: "int", Repr: strconv.FormatInt(int64(t), 10)}
	case int16:
		return Key{Kind: "int", Repr: strconv.FormatInt(int64(t), 10)}
	case int32:
		return Key{Kind: "int", Repr: strconv.FormatInt(int64(t), 10)}
	case int64:
		return Key{Kind: "int", Repr: strconv.FormatInt(t, 10)}
	case uint:
		return Key{Kind: "int", Repr: strconv.FormatUint(uint64(t), 10)}
	case uint8:
		return Key{Kind: "int", Repr: strconv.FormatUint(uint64(t), 10)}
	case uint16:
		return Key{Kind: "int", Repr: strconv.FormatUint(uint64(t), 10)}
	case uint32:
		return Key{Kind: "int", Repr: strconv.FormatUint(uint64(t), 10)}
	case uint64:
		return Key{Kind: "int", Repr: strconv.FormatUint(t, 10)}
	case string:
		return Key{Kind: "str", Repr: t}
	case []byte:
		return Key{Kind: "bytes", Repr: string(t)}
	default:
		return Key{Kind: fmt.Sprintf("%T", v), Repr: fmt.Sprintf("%v", v)}
	}
}
