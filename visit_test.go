package typexpr_test

import (
	"errors"
	"testing"

	typexpr "github.com/typexpr/typexpr"
)

func TestWalk_ForwardReferenceSuspends(t *testing.T) {
	ref := typexpr.Forward("Later")
	expr := typexpr.GenericOf(typexpr.TypeName("dict"),
		typexpr.TypeName("str"),
		typexpr.UnionOf(typexpr.TypeName("int"),
			typexpr.GenericOf(typexpr.TypeName("list"), ref)))

	err := typexpr.Walk(expr, nil)
	var unevaluated *typexpr.UnevaluatedReferenceError
	if !errors.As(err, &unevaluated) {
		t.Fatalf("expected UnevaluatedReferenceError, got %v", err)
	}
	if unevaluated.Ref != ref {
		t.Fatalf("expected the exact reference, got %v", unevaluated.Ref)
	}
}

func TestWalk_LiteralMembersAreNotVisited(t *testing.T) {
	lit := typexpr.LiteralOf(1, "a")
	expr := typexpr.GenericOf(typexpr.TypeName("list"), lit)

	var seen []typexpr.Expr
	err := typexpr.Walk(expr, typexpr.VisitorFunc(func(e typexpr.Expr) error {
		seen = append(seen, e)
		return nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[0] != typexpr.Expr(expr) || seen[1] != typexpr.Expr(lit) {
		t.Fatalf("expected the generic and the literal only, got %v", seen)
	}
}

func TestWalk_BareGenericMarker(t *testing.T) {
	var invalid *typexpr.InvalidAnnotationError
	if err := typexpr.Walk(typexpr.GenericMarker, nil); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAnnotationError, got %v", err)
	}
	parameterized := typexpr.GenericOf(typexpr.GenericMarker, typexpr.TypeVar("T"))
	if err := typexpr.Walk(parameterized, nil); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAnnotationError, got %v", err)
	}
}

func TestWalk_BareLegacyAliasIsLeaf(t *testing.T) {
	legacy, ok := typexpr.LegacyAliasByName("List")
	if !ok {
		t.Fatalf("expected List in the legacy alias table")
	}
	count := 0
	err := typexpr.Walk(legacy, typexpr.VisitorFunc(func(typexpr.Expr) error {
		count++
		return nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single node, got %d", count)
	}
}

func TestWalk_CaptureFormIsLeaf(t *testing.T) {
	capture := &typexpr.Capture{Param: typexpr.ParamSpec("P"), Form: typexpr.CaptureArgs}
	count := 0
	err := typexpr.Walk(capture, typexpr.VisitorFunc(func(typexpr.Expr) error {
		count++
		return nil
	}))
	if err != nil || count != 1 {
		t.Fatalf("expected a single node and no error, got %d %v", count, err)
	}
}

func TestWalk_VisitorErrorStopsTraversal(t *testing.T) {
	sentinel := errors.New("stop")
	expr := typexpr.UnionOf(typexpr.TypeName("int"), typexpr.TypeName("str"))
	err := typexpr.Walk(expr, typexpr.VisitorFunc(func(e typexpr.Expr) error {
		if e.String() == "int" {
			return sentinel
		}
		return nil
	}))
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected the visitor error, got %v", err)
	}
}

func TestWalk_QualifierAndMetadataWrappers(t *testing.T) {
	ref := typexpr.Forward("Missing")
	expr := typexpr.Qualify(typexpr.QualifierFinal, typexpr.Annotate(ref, "m"))
	var unevaluated *typexpr.UnevaluatedReferenceError
	if err := typexpr.Walk(expr, nil); !errors.As(err, &unevaluated) {
		t.Fatalf("expected UnevaluatedReferenceError, got %v", err)
	}
}
