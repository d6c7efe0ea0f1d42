// Command jsonxmlpatch applies a patch file to a JSON, XML or YAML document
// and writes the result. When the run fails the document is not written:
// a partially patched tree is never reported as a success.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/SvetozarSlivarov/JsonXmlPatchDemo/jsonx"
	"github.com/SvetozarSlivarov/JsonXmlPatchDemo/xmlx"
	"github.com/SvetozarSlivarov/JsonXmlPatchDemo/yamlpatch"
)

var (
	infoLogger  = log.New(os.Stderr, "INFO: ", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "ERROR: ", log.LstdFlags)
)

func main() {
	format := flag.String("format", "", "document format: json, xml or yaml (default: from the document extension)")
	outPath := flag.String("o", "", "output file (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <document> <patch>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	docPath, patchPath := flag.Arg(0), flag.Arg(1)
	docBytes, err := os.ReadFile(docPath)
	if err != nil {
		errorLogger.Fatalf("read document: %v", err)
	}
	patchBytes, err := os.ReadFile(patchPath)
	if err != nil {
		errorLogger.Fatalf("read patch: %v", err)
	}

	f := *format
	if f == "" {
		f = formatFromExt(docPath)
	}

	var out []byte
	switch f {
	case "json":
		out, err = runJSON(docBytes, patchBytes)
	case "xml":
		out, err = runXML(docBytes, patchBytes)
	case "yaml":
		out, err = runYAML(docBytes, patchBytes)
	default:
		errorLogger.Fatalf("unknown format %q (want json, xml or yaml)", f)
	}
	if err != nil {
		errorLogger.Fatalf("patch failed, document not written: %v", err)
	}

	if *outPath == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			errorLogger.Fatalf("write output: %v", err)
		}
	} else if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		errorLogger.Fatalf("write output: %v", err)
	}
	infoLogger.Printf("applied %s patch %s to %s", f, patchPath, docPath)
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return "xml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func runJSON(docBytes, patchBytes []byte) ([]byte, error) {
	doc, err := jsonx.Parse(docBytes)
	if err != nil {
		return nil, err
	}
	ops, err := jsonx.ParsePatch(patchBytes)
	if err != nil {
		return nil, err
	}
	if _, err := jsonx.Apply(doc, ops); err != nil {
		return nil, err
	}
	return jsonx.Marshal(doc)
}

func runXML(docBytes, patchBytes []byte) ([]byte, error) {
	doc, err := xmlx.ParseDocument(docBytes)
	if err != nil {
		return nil, err
	}
	ops, err := xmlx.ParsePatch(patchBytes)
	if err != nil {
		return nil, err
	}
	if _, err := xmlx.Apply(doc, ops); err != nil {
		return nil, err
	}
	return xmlx.SerializeDocument(doc)
}

func runYAML(docBytes, patchBytes []byte) ([]byte, error) {
	doc, err := yamlpatch.Parse(docBytes)
	if err != nil {
		return nil, err
	}
	ops, err := yamlpatch.ParsePatch(patchBytes)
	if err != nil {
		return nil, err
	}
	if err := doc.Apply(ops); err != nil {
		return nil, err
	}
	return doc.Marshal()
}
