// Command bicodec checks and normalizes JSON-shaped documents.
//
//	bicodec check file.jsonc      validate the document, report failures
//	bicodec normalize file.yaml   re-emit the document as canonical JSON
//
// The input format is sniffed from the file extension (.json, .jsonc,
// .yaml/.yml) and can be forced with --format. Documents are decoded
// against the universal JSON schema, so a successful check means the
// input materializes cleanly into the JSON data model.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	bicodec "github.com/reoring/bicodec"
	"github.com/reoring/bicodec/i18n"
	"github.com/reoring/bicodec/schema"
	"github.com/reoring/bicodec/wire"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "normalize":
		normalizeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "bicodec CLI\n\nUsage:\n  bicodec check [--format json|jsonc|yaml] [--lang en|ja] <file>\n  bicodec normalize [--format json|jsonc|yaml] [--indent] <file>\n\nReads stdin when <file> is \"-\".")
}

func checkCmd(args []string) {
	fs := pflag.NewFlagSet("check", pflag.ExitOnError)
	format := fs.String("format", "", "input format (json|jsonc|yaml); sniffed from extension when empty")
	lang := fs.String("lang", "en", "failure message language (en|ja)")
	_ = fs.Parse(args)
	i18n.SetLanguage(*lang)

	if _, err := load(fs.Args(), *format); err != nil {
		report(err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func normalizeCmd(args []string) {
	fs := pflag.NewFlagSet("normalize", pflag.ExitOnError)
	format := fs.String("format", "", "input format (json|jsonc|yaml); sniffed from extension when empty")
	indent := fs.Bool("indent", false, "indent the emitted JSON")
	_ = fs.Parse(args)

	doc, err := load(fs.Args(), *format)
	if err != nil {
		report(err)
		os.Exit(1)
	}
	js := schema.JSON()
	var out []byte
	if *indent {
		out, err = wire.MarshalJSONIndent(js, doc)
	} else {
		out, err = wire.MarshalJSON(js, doc)
	}
	if err != nil {
		report(err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	fmt.Println()
}

func load(args []string, format string) (any, error) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	name := args[0]

	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = sniffFormat(name)
	}
	ctx := context.Background()
	js := schema.JSON()
	switch format {
	case "yaml":
		return wire.UnmarshalYAML(ctx, js, data)
	case "jsonc":
		return wire.UnmarshalJSONC(ctx, js, data)
	default:
		return wire.UnmarshalJSON(ctx, js, data)
	}
}

func sniffFormat(name string) string {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return "yaml"
	case ".jsonc":
		return "jsonc"
	default:
		return "json"
	}
}

func report(err error) {
	if f, ok := bicodec.AsFailure(err); ok {
		fmt.Fprintln(os.Stderr, f.Error())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
