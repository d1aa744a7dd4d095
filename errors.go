package typexpr

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeForbiddenQualifier = "forbidden_qualifier"
	CodeInvalidLiteral     = "invalid_literal_value"
	CodeUnresolvedAlias    = "unresolved_alias"
	CodeUnevaluatedRef     = "unevaluated_reference"
	CodeInvalidAnnotation  = "invalid_annotation_expression"
	CodeParamBinding       = "parameter_binding"
)

// ForbiddenQualifierError reports a qualifier that is not allowed by the
// annotation source's allow-list.
type ForbiddenQualifierError struct {
	Qualifier Qualifier
}

func (e *ForbiddenQualifierError) Error() string {
	return fmt.Sprintf("qualifier %s is not allowed here", e.Qualifier)
}

// Code returns CodeForbiddenQualifier.
func (e *ForbiddenQualifierError) Code() string { return CodeForbiddenQualifier }

// InvalidLiteralError reports a literal member that is not a legal literal
// value kind.
type InvalidLiteralError struct {
	Value any
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("%v is not a valid literal value, must be one of: int, bytes, str, bool, enum member, None", e.Value)
}

// Code returns CodeInvalidLiteral.
func (e *InvalidLiteralError) Code() string { return CodeInvalidLiteral }

// UnresolvedAliasError reports a lazy alias whose body references an
// undefined symbol.
type UnresolvedAliasError struct {
	Symbol string
}

func (e *UnresolvedAliasError) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Symbol)
}

// Code returns CodeUnresolvedAlias.
func (e *UnresolvedAliasError) Code() string { return CodeUnresolvedAlias }

// UnevaluatedReferenceError reports a forward reference reached during
// traversal. It carries the exact reference so callers can retry once the
// referenced symbol becomes resolvable.
type UnevaluatedReferenceError struct {
	Ref *ForwardRef
}

func (e *UnevaluatedReferenceError) Error() string {
	return fmt.Sprintf("reference %s has not been evaluated", e.Ref)
}

// Code returns CodeUnevaluatedRef.
func (e *UnevaluatedReferenceError) Code() string { return CodeUnevaluatedRef }

// InvalidAnnotationError reports an expression that is never valid inside
// an annotation, such as a bare generic marker.
type InvalidAnnotationError struct {
	Expr Expr
}

func (e *InvalidAnnotationError) Error() string {
	return fmt.Sprintf("%s is invalid in an annotation expression", e.Expr)
}

// Code returns CodeInvalidAnnotation.
func (e *InvalidAnnotationError) Code() string { return CodeInvalidAnnotation }

// ParameterBindingError reports a failure to bind generic arguments to
// declared type parameters.
type ParameterBindingError struct {
	Param   *TypeParam // The parameter that could not be bound, if any.
	Message string
}

func (e *ParameterBindingError) Error() string {
	if e.Param != nil {
		return fmt.Sprintf("cannot bind type parameter %s: %s", e.Param, e.Message)
	}
	return "cannot bind type parameters: " + e.Message
}

// Code returns CodeParamBinding.
func (e *ParameterBindingError) Code() string { return CodeParamBinding }

// Coded is implemented by every error in this package; it exposes the
// stable error code for rendering and localization.
type Coded interface {
	error
	Code() string
}

// ErrorCode extracts the stable code from an error produced by this
// package, or "" when the error carries none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var coded Coded
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}
