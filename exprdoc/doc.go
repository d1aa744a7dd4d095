// Package exprdoc decodes declarative type-expression documents from JSON
// or YAML into typexpr values.
//
// A document carries an expression and an optional alias table:
//
//	aliases:
//	  Ints: {kind: literal, values: [1, 2]}
//	expr:
//	  kind: literal
//	  values: [1, {alias: Ints}]
//
// Alias references resolve lazily against the document's table, so an
// alias body may refer to names declared later in the same document; a
// reference to a name that is never declared surfaces as
// *typexpr.UnresolvedAliasError when the alias is resolved.
package exprdoc
