package typexpr_test

import (
	"errors"
	"testing"

	typexpr "github.com/typexpr/typexpr"
)

func TestLiteralValues_KeepCollapsesNone(t *testing.T) {
	lit := typexpr.LiteralOf(typexpr.NoneType, typexpr.None)
	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasKeep})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 1 || values[0] != any(typexpr.None) {
		t.Fatalf("expected a single None, got %v", values)
	}
}

func TestLiteralValues_KeepYieldsAliasesAsIs(t *testing.T) {
	ints := typexpr.AliasOf("Ints", typexpr.LiteralOf(1, 2))
	lit := typexpr.LiteralOf(1, ints)
	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasKeep})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 || values[0] != 1 || values[1] != any(ints) {
		t.Fatalf("expected [1 Ints], got %v", values)
	}
}

func TestLiteralValues_EagerKindSensitiveDedup(t *testing.T) {
	member := typexpr.EnumMember{Enum: "Color", Name: "RED", Value: 1}
	lit := typexpr.LiteralOf(member, 1, 1)
	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasEager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("expected two values, got %v", values)
	}
	if values[0] != any(member) || values[1] != 1 {
		t.Fatalf("expected [Color.RED 1], got %v", values)
	}
}

func TestLiteralValues_EagerExpandsAliases(t *testing.T) {
	ints := typexpr.AliasOf("Ints", typexpr.LiteralOf(1, 2))
	lit := typexpr.LiteralOf(1, ints)
	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasEager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Fatalf("expected [1 2], got %v", values)
	}
}

func TestLiteralValues_UnresolvedAlias(t *testing.T) {
	undefined := typexpr.NewAlias("Undefined", nil)
	lit := typexpr.LiteralOf(1, undefined)

	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasLenient})
	if err != nil {
		t.Fatalf("lenient should recover, got %v", err)
	}
	if len(values) != 2 || values[0] != 1 || values[1] != any(undefined) {
		t.Fatalf("expected [1 Undefined], got %v", values)
	}

	_, err = typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasEager})
	var aliasErr *typexpr.UnresolvedAliasError
	if !errors.As(err, &aliasErr) || aliasErr.Symbol != "Undefined" {
		t.Fatalf("expected UnresolvedAliasError, got %v", err)
	}
}

func TestLiteralValues_TypeCheck(t *testing.T) {
	lit := typexpr.LiteralOf(1, 1.5)
	_, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{TypeCheck: true, Aliases: typexpr.AliasEager})
	var invalid *typexpr.InvalidLiteralError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidLiteralError, got %v", err)
	}
	if invalid.Value != 1.5 {
		t.Fatalf("expected the offending value 1.5, got %v", invalid.Value)
	}

	legal := typexpr.LiteralOf(1, "a", []byte("b"), true, typexpr.None,
		typexpr.EnumMember{Enum: "Color", Name: "RED", Value: 1})
	if _, err := typexpr.LiteralValues(legal, typexpr.LiteralOpt{TypeCheck: true, Aliases: typexpr.AliasEager}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLiteralValues_FirstOccurrenceOrder(t *testing.T) {
	lit := typexpr.LiteralOf("a", 1, "a", true, 1)
	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasEager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 3 || values[0] != "a" || values[1] != 1 || values[2] != true {
		t.Fatalf("expected [a 1 true], got %v", values)
	}
}

func TestLiteralValues_EagerNormalizesNoneType(t *testing.T) {
	lit := typexpr.LiteralOf(typexpr.NoneType, typexpr.None, 1)
	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasEager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 || values[0] != any(typexpr.None) || values[1] != 1 {
		t.Fatalf("expected [None 1], got %v", values)
	}
}
