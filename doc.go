// Package typexpr provides:
//
// - A tagged-union model for type expressions (generics, unions, literal
//   value sets, qualifier and metadata wrappers, lazy aliases)
// - Annotation inspection via InspectAnnotation (qualifier allow-lists,
//   metadata accumulation, bare-final handling)
// - Literal value extraction with deduplication and alias expansion
// - Read-only traversal (Walk) and structure-preserving rewriting
//   (Transform) with forward-reference detection
// - Type-parameter binding for parameterized generics and aliases (BindTypeParams)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place document decoding under exprdoc/ and the CLI under cmd/typexpr.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	ann, err := typexpr.InspectAnnotation(expr, typexpr.SourceClass, typexpr.InspectOpt{})
//	vals, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{Aliases: typexpr.AliasEager})
//
//	err := typexpr.Walk(expr, visitor)
//	out, err := typexpr.Transform(expr, &typexpr.Rewriter{Aliases: typexpr.AliasEager})
package typexpr
