package exprdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	typexpr "github.com/typexpr/typexpr"
)

// Document is a decoded type-expression document.
type Document struct {
	expr    typexpr.Expr
	aliases map[string]*typexpr.Alias
}

// Expr returns the document's expression.
func (d *Document) Expr() typexpr.Expr { return d.expr }

// Alias returns a declared alias by name.
func (d *Document) Alias(name string) (*typexpr.Alias, bool) {
	a, ok := d.aliases[name]
	return a, ok
}

// FromJSON decodes a single JSON document.
func FromJSON(data []byte) (*Document, error) {
	var raw map[string]any
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("exprdoc: %w", err)
	}
	return decodeDocument(raw)
}

// FromYAML decodes the first document of a YAML stream.
func FromYAML(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("exprdoc: empty document")
		}
		return nil, fmt.Errorf("exprdoc: %w", err)
	}
	return decodeDocument(raw)
}

type decoder struct {
	aliases map[string]*typexpr.Alias
	bodies  map[string]typexpr.Expr

	// scope maps the names of the alias currently being decoded to its
	// declared parameters, so occurrences inside the body share identity
	// with the params declaration.
	scope map[string]*typexpr.TypeParam
}

func decodeDocument(raw map[string]any) (*Document, error) {
	d := &decoder{
		aliases: map[string]*typexpr.Alias{},
		bodies:  map[string]typexpr.Expr{},
	}

	if aliases, ok := raw["aliases"].(map[string]any); ok {
		// Declare every name first so bodies can reference each other in
		// any order.
		for name := range aliases {
			d.aliases[name] = d.aliasHandle(name)
		}
		for name, body := range aliases {
			node, ok := body.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("exprdoc: alias %q: expected a mapping", name)
			}
			d.scope = nil
			if params, ok := node["params"].([]any); ok {
				decoded, err := d.decodeParams(params)
				if err != nil {
					return nil, fmt.Errorf("exprdoc: alias %q: %w", name, err)
				}
				d.aliases[name].TypeParams = decoded
				d.scope = make(map[string]*typexpr.TypeParam, len(decoded))
				for _, p := range decoded {
					d.scope[p.Name] = p
				}
			}
			expr, err := d.decodeNode(node)
			d.scope = nil
			if err != nil {
				return nil, fmt.Errorf("exprdoc: alias %q: %w", name, err)
			}
			d.bodies[name] = expr
		}
	}

	node, ok := raw["expr"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("exprdoc: missing expr mapping")
	}
	expr, err := d.decodeNode(node)
	if err != nil {
		return nil, err
	}
	return &Document{expr: expr, aliases: d.aliases}, nil
}

// aliasHandle returns the lazy handle for name, creating an unresolvable
// handle for names the document never declares.
func (d *decoder) aliasHandle(name string) *typexpr.Alias {
	if a, ok := d.aliases[name]; ok {
		return a
	}
	a := typexpr.NewAlias(name, func() (typexpr.Expr, error) {
		body, ok := d.bodies[name]
		if !ok {
			return nil, &typexpr.UnresolvedAliasError{Symbol: name}
		}
		return body, nil
	})
	d.aliases[name] = a
	return a
}

func (d *decoder) decodeNode(node map[string]any) (typexpr.Expr, error) {
	kind, _ := node["kind"].(string)
	switch kind {
	case "named":
		name, err := stringField(node, "name")
		if err != nil {
			return nil, err
		}
		if legacy, ok := typexpr.LegacyAliasByName(name); ok {
			return legacy, nil
		}
		return typexpr.TypeName(name), nil
	case "any":
		return typexpr.Any, nil
	case "none":
		return typexpr.NoneType, nil
	case "generic_marker":
		return typexpr.GenericMarker, nil
	case "generic":
		origin, err := d.decodeChild(node, "origin")
		if err != nil {
			return nil, err
		}
		args, err := d.decodeChildren(node, "args")
		if err != nil {
			return nil, err
		}
		return typexpr.GenericOf(origin, args...), nil
	case "union":
		alts, err := d.decodeChildren(node, "alternatives")
		if err != nil {
			return nil, err
		}
		if len(alts) < 2 {
			return nil, fmt.Errorf("union needs at least two alternatives")
		}
		return typexpr.UnionOf(alts...), nil
	case "qualified":
		name, err := stringField(node, "qualifier")
		if err != nil {
			return nil, err
		}
		q, err := parseQualifier(name)
		if err != nil {
			return nil, err
		}
		if _, ok := node["type"]; !ok {
			return typexpr.BareQualifier(q), nil
		}
		inner, err := d.decodeChild(node, "type")
		if err != nil {
			return nil, err
		}
		return typexpr.Qualify(q, inner), nil
	case "annotated":
		inner, err := d.decodeChild(node, "type")
		if err != nil {
			return nil, err
		}
		meta, ok := node["metadata"].([]any)
		if !ok || len(meta) == 0 {
			return nil, fmt.Errorf("annotated needs non-empty metadata")
		}
		return typexpr.Annotate(inner, meta...), nil
	case "alias":
		name, err := stringField(node, "name")
		if err != nil {
			return nil, err
		}
		return d.aliasHandle(name), nil
	case "literal":
		raw, ok := node["values"].([]any)
		if !ok || len(raw) == 0 {
			return nil, fmt.Errorf("literal needs values")
		}
		values := make([]any, 0, len(raw))
		for _, v := range raw {
			decoded, err := d.decodeLiteralValue(v)
			if err != nil {
				return nil, err
			}
			values = append(values, decoded)
		}
		return typexpr.LiteralOf(values...), nil
	case "forward":
		name, err := stringField(node, "name")
		if err != nil {
			return nil, err
		}
		return typexpr.Forward(name), nil
	case "type_param":
		if name, ok := node["name"].(string); ok {
			if p, ok := d.scope[name]; ok {
				return p, nil
			}
		}
		return d.decodeParam(node)
	case "arg_list":
		args, err := d.decodeChildren(node, "args")
		if err != nil {
			return nil, err
		}
		return typexpr.ArgListOf(args...), nil
	case "":
		return nil, fmt.Errorf("node is missing a kind")
	}
	return nil, fmt.Errorf("unknown node kind %q", kind)
}

func (d *decoder) decodeChild(node map[string]any, field string) (typexpr.Expr, error) {
	child, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s node needs a %q mapping", node["kind"], field)
	}
	return d.decodeNode(child)
}

func (d *decoder) decodeChildren(node map[string]any, field string) ([]typexpr.Expr, error) {
	raw, ok := node[field].([]any)
	if !ok {
		return nil, fmt.Errorf("%s node needs a %q sequence", node["kind"], field)
	}
	out := make([]typexpr.Expr, 0, len(raw))
	for _, item := range raw {
		child, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s node: %q entries must be mappings", node["kind"], field)
		}
		expr, err := d.decodeNode(child)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func (d *decoder) decodeParams(raw []any) ([]*typexpr.TypeParam, error) {
	out := make([]*typexpr.TypeParam, 0, len(raw))
	for _, item := range raw {
		node, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("params entries must be mappings")
		}
		p, err := d.decodeParam(node)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (d *decoder) decodeParam(node map[string]any) (*typexpr.TypeParam, error) {
	name, err := stringField(node, "name")
	if err != nil {
		return nil, err
	}
	var p *typexpr.TypeParam
	switch variant, _ := node["variant"].(string); variant {
	case "", "type_var":
		p = typexpr.TypeVar(name)
	case "type_var_tuple":
		p = typexpr.TypeVarTuple(name)
	case "param_spec":
		p = typexpr.ParamSpec(name)
	default:
		return nil, fmt.Errorf("unknown type-param variant %q", variant)
	}
	if _, ok := node["default"]; ok {
		def, err := d.decodeChild(node, "default")
		if err != nil {
			return nil, err
		}
		p.Default = def
	}
	return p, nil
}

// decodeLiteralValue decodes a literal-set member. Scalars pass through;
// mappings select the non-scalar member kinds.
func (d *decoder) decodeLiteralValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if name, ok := t["alias"].(string); ok {
			return d.aliasHandle(name), nil
		}
		if _, ok := t["none"]; ok {
			return typexpr.None, nil
		}
		if _, ok := t["none_type"]; ok {
			return typexpr.NoneType, nil
		}
		if raw, ok := t["bytes"].(string); ok {
			return []byte(raw), nil
		}
		if enum, ok := t["enum"].(string); ok {
			name, err := stringField(t, "name")
			if err != nil {
				return nil, err
			}
			return typexpr.EnumMember{Enum: enum, Name: name, Value: normalizeNumber(t["value"])}, nil
		}
		return nil, fmt.Errorf("unknown literal member mapping %v", t)
	case nil:
		return typexpr.None, nil
	default:
		return normalizeNumber(v), nil
	}
}

// normalizeNumber collapses integral JSON floats to int so that JSON and
// YAML documents decode to the same literal identity.
func normalizeNumber(v any) any {
	if f, ok := v.(float64); ok {
		if i := int(f); float64(i) == f {
			return i
		}
	}
	return v
}

func stringField(node map[string]any, field string) (string, error) {
	s, ok := node[field].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s node needs a %q string", node["kind"], field)
	}
	return s, nil
}

func parseQualifier(name string) (typexpr.Qualifier, error) {
	for _, q := range []typexpr.Qualifier{
		typexpr.QualifierFinal, typexpr.QualifierClassVar, typexpr.QualifierRequired,
		typexpr.QualifierNotRequired, typexpr.QualifierReadOnly,
	} {
		if q.String() == name {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown qualifier %q", name)
}
