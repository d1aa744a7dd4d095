package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	typexpr "github.com/typexpr/typexpr"
	"github.com/typexpr/typexpr/exprdoc"
	"github.com/typexpr/typexpr/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch sub := os.Args[1]; sub {
	case "inspect":
		inspectCmd(os.Args[2:])
	case "literals":
		literalsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "typexpr CLI\n\nUsage:\n  typexpr inspect -f expr.yaml [-source any] [-aliases eager] [-lang en]\n  typexpr literals -f expr.yaml [-aliases eager] [-type-check] [-lang en]\n\nDocuments may be JSON (.json) or YAML (anything else).")
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var file, source, aliases, lang string
	fs.StringVar(&file, "f", "", "type-expression document")
	fs.StringVar(&source, "source", "any", "annotation source (assignment|class|typed_dict|named_tuple|function|any|bare)")
	fs.StringVar(&aliases, "aliases", "eager", "alias policy (keep|lenient|eager)")
	fs.StringVar(&lang, "lang", "en", "message language (en|ja)")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	doc := loadDocument(file)
	src, err := typexpr.ParseAnnotationSource(source)
	if err != nil {
		fatal(err)
	}
	policy, err := typexpr.ParseAliasPolicy(aliases)
	if err != nil {
		fatal(err)
	}

	ann, err := typexpr.InspectAnnotation(doc.Expr(), src, typexpr.InspectOpt{Aliases: policy})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("type: %s\n", ann.Type)
	quals := make([]string, 0, len(ann.Qualifiers))
	for _, q := range ann.Qualifiers.Slice() {
		quals = append(quals, q.String())
	}
	fmt.Printf("qualifiers: [%s]\n", strings.Join(quals, ", "))
	fmt.Printf("metadata: %v\n", ann.Metadata)
}

func literalsCmd(args []string) {
	fs := flag.NewFlagSet("literals", flag.ExitOnError)
	var file, aliases, lang string
	var typeCheck bool
	fs.StringVar(&file, "f", "", "type-expression document")
	fs.StringVar(&aliases, "aliases", "eager", "alias policy (keep|lenient|eager)")
	fs.BoolVar(&typeCheck, "type-check", false, "reject illegal literal value kinds")
	fs.StringVar(&lang, "lang", "en", "message language (en|ja)")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	doc := loadDocument(file)
	lit, ok := doc.Expr().(*typexpr.Literal)
	if !ok {
		fatal(fmt.Errorf("typexpr: document expression is %s, not a literal set", doc.Expr()))
	}
	policy, err := typexpr.ParseAliasPolicy(aliases)
	if err != nil {
		fatal(err)
	}
	values, err := typexpr.LiteralValues(lit, typexpr.LiteralOpt{TypeCheck: typeCheck, Aliases: policy})
	if err != nil {
		fatal(err)
	}
	for _, v := range values {
		fmt.Printf("%v\n", v)
	}
}

func loadDocument(path string) *exprdoc.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	var doc *exprdoc.Document
	if filepath.Ext(path) == ".json" {
		doc, err = exprdoc.FromJSON(data)
	} else {
		doc, err = exprdoc.FromYAML(data)
	}
	if err != nil {
		fatal(err)
	}
	return doc
}

// fatal reports the error with a localized summary when the error carries
// a stable code.
func fatal(err error) {
	if code := typexpr.ErrorCode(err); code != "" {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T(code, nil), err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}
