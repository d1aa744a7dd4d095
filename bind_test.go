package typexpr_test

import (
	"errors"
	"testing"

	typexpr "github.com/typexpr/typexpr"
)

func TestBindTypeParams_Positional(t *testing.T) {
	tp := typexpr.TypeVar("T")
	up := typexpr.TypeVar("U")
	up.Default = typexpr.TypeName("str")

	bindings, err := typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Pair"), typexpr.TypeName("int")),
		[]*typexpr.TypeParam{tp, up})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bindings[tp].String() != "int" {
		t.Fatalf("expected T=int, got %s", bindings[tp])
	}
	if bindings[up] != up.Default {
		t.Fatalf("expected U to fall back to its default")
	}
}

func TestBindTypeParams_TooFewArguments(t *testing.T) {
	tp := typexpr.TypeVar("T")
	up := typexpr.TypeVar("U")

	_, err := typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Pair"), typexpr.TypeName("int")),
		[]*typexpr.TypeParam{tp, up})
	var bindErr *typexpr.ParameterBindingError
	if !errors.As(err, &bindErr) || bindErr.Param != up {
		t.Fatalf("expected ParameterBindingError for U, got %v", err)
	}
}

func TestBindTypeParams_TooManyArguments(t *testing.T) {
	tp := typexpr.TypeVar("T")
	_, err := typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Box"), typexpr.TypeName("int"), typexpr.TypeName("str")),
		[]*typexpr.TypeParam{tp})
	var bindErr *typexpr.ParameterBindingError
	if !errors.As(err, &bindErr) {
		t.Fatalf("expected ParameterBindingError, got %v", err)
	}
}

func TestBindTypeParams_VariadicAbsorbsMiddle(t *testing.T) {
	tp := typexpr.TypeVar("T")
	ts := typexpr.TypeVarTuple("Ts")
	up := typexpr.TypeVar("U")

	bindings, err := typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Shape"),
			typexpr.TypeName("a"), typexpr.TypeName("b"), typexpr.TypeName("c"), typexpr.TypeName("d")),
		[]*typexpr.TypeParam{tp, ts, up})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bindings[tp].String() != "a" || bindings[up].String() != "d" {
		t.Fatalf("expected T=a U=d, got %s %s", bindings[tp], bindings[up])
	}
	middle, ok := bindings[ts].(*typexpr.ArgList)
	if !ok || middle.String() != "[b, c]" {
		t.Fatalf("expected Ts=[b, c], got %s", bindings[ts])
	}
}

func TestBindTypeParams_VariadicAbsorbsNothing(t *testing.T) {
	tp := typexpr.TypeVar("T")
	ts := typexpr.TypeVarTuple("Ts")

	bindings, err := typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Shape"), typexpr.TypeName("a")),
		[]*typexpr.TypeParam{tp, ts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	empty, ok := bindings[ts].(*typexpr.ArgList)
	if !ok || len(empty.Args) != 0 {
		t.Fatalf("expected an empty argument list, got %s", bindings[ts])
	}
}

func TestBindTypeParams_LoneParamSpec(t *testing.T) {
	ps := typexpr.ParamSpec("P")

	// A single plain argument is normalized to the bracketed shape.
	bindings, err := typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Callback"), typexpr.TypeName("int")),
		[]*typexpr.TypeParam{ps})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bindings[ps].String() != "[int]" {
		t.Fatalf("expected [int], got %s", bindings[ps])
	}

	// A bracketed list binds as-is.
	list := typexpr.ArgListOf(typexpr.TypeName("int"), typexpr.TypeName("str"))
	bindings, err = typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Callback"), list),
		[]*typexpr.TypeParam{ps})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bindings[ps] != typexpr.Expr(list) {
		t.Fatalf("expected the list unchanged, got %s", bindings[ps])
	}

	// Multiple plain arguments are shorthand for a bracketed list.
	bindings, err = typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Callback"), typexpr.TypeName("int"), typexpr.TypeName("str")),
		[]*typexpr.TypeParam{ps})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bindings[ps].String() != "[int, str]" {
		t.Fatalf("expected [int, str], got %s", bindings[ps])
	}

	// No argument and no default fails.
	_, err = typexpr.BindTypeParams(
		typexpr.GenericOf(typexpr.TypeName("Callback")),
		[]*typexpr.TypeParam{ps})
	var bindErr *typexpr.ParameterBindingError
	if !errors.As(err, &bindErr) || bindErr.Param != ps {
		t.Fatalf("expected ParameterBindingError for P, got %v", err)
	}
}
