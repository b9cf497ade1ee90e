//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"text/template"
)

// varKinds maps a fixed-width kind to its variable-length routine when the
// field tag carries the ",var" option.
var varKinds = map[string]string{
	"Int":          "VarInt",
	"UnsignedInt":  "VarUInt",
	"Long":         "VarLong",
	"UnsignedLong": "VarULong",
}

// Field represents a single field in a packet struct
type Field struct {
	Name      string // The Struct field name (e.g., "ProtocolVersion")
	WriteCall string // e.g. "WriteVarInt(w, p.ProtocolVersion)"
	ReadCall  string // e.g. "ReadVarInt(r)"
}

// GeneratedStruct represents a struct found in the source code marked for generation
type GeneratedStruct struct {
	Name              string
	Fields            []Field
	GenRead, GenWrite bool

	RegServerbound, RegClientbound bool
	PacketID                       string
}

func (s GeneratedStruct) Registered() bool {
	return s.RegServerbound || s.RegClientbound
}

type File struct {
	Name           string
	RegistryPrefix string
	Structs        []GeneratedStruct
}

func (f File) HasRegistry() bool {
	for _, s := range f.Structs {
		if s.Registered() {
			return true
		}
	}
	return false
}

// Marker is the unexported method closing the phase interface, e.g. gamePacket.
func (f File) Marker() string {
	return strings.ToLower(f.RegistryPrefix[:1]) + f.RegistryPrefix[1:] + "Packet"
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1] // Take the last argument as the directory
	fset := token.NewFileSet()
	var parsedFiles []File
	var pkgName string

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))

	for _, filePath := range filePaths {
		base := filepath.Base(filePath)
		// Skip generated files to avoid double parsing
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			fail(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		// Determine Registry Prefix (e.g., status.go -> Status)
		namePart := strings.TrimSuffix(base, filepath.Ext(base))
		registryPrefix := strings.ToUpper(namePart[:1]) + namePart[1:]

		structIDs := scanIDs(node)

		var fileStructs []GeneratedStruct
		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)

			// filter for only type declarations with comments
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			opts, isGen := parseGenOptions(gen.Doc)
			if !isGen {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				s := GeneratedStruct{
					Name:           tspec.Name.Name,
					GenRead:        opts["r"],
					GenWrite:       opts["w"],
					RegServerbound: opts["regserver"],
					RegClientbound: opts["regclient"],
					PacketID:       structIDs[tspec.Name.Name],
				}
				if s.RegServerbound && s.RegClientbound {
					fail(fmt.Errorf("%s: %s registered in both directions", base, s.Name))
				}
				if s.Registered() && s.PacketID == "" {
					fail(fmt.Errorf("%s: %s is registered but has no literal ID()", base, s.Name))
				}

				for _, field := range structType.Fields.List {
					for _, name := range field.Names {
						f, ok, err := parseField(name.Name, field.Tag)
						if err != nil {
							fail(fmt.Errorf("%s: %s.%s: %w", base, s.Name, name.Name, err))
						}
						if ok {
							s.Fields = append(s.Fields, f)
						}
					}
				}

				fileStructs = append(fileStructs, s)
			}
		}

		if len(fileStructs) > 0 {
			parsedFiles = append(parsedFiles, File{
				Name:           base,
				RegistryPrefix: registryPrefix,
				Structs:        fileStructs,
			})
		}
	}

	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName string
		Files   []File
	}{
		PkgName: pkgName,
		Files:   parsedFiles,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		fail(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fail(fmt.Errorf("formatting generated code: %w", err))
	}

	// Output next to the source files
	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		fail(err)
	}

	fmt.Printf("Generated %s for package %s\n", outFile, pkgName)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "gen_packet_codec:", err)
	os.Exit(1)
}

// scanIDs maps StructName -> ID from methods of the form
// func (Receiver) ID() int32 { return X }
func scanIDs(node *ast.File) map[string]string {
	structIDs := make(map[string]string)
	for _, decl := range node.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "ID" || fn.Recv == nil || len(fn.Recv.List) == 0 {
			continue
		}

		var recvName string
		recvType := fn.Recv.List[0].Type
		if star, ok := recvType.(*ast.StarExpr); ok {
			recvType = star.X
		}
		if ident, ok := recvType.(*ast.Ident); ok {
			recvName = ident.Name
		}

		if recvName == "" || fn.Body == nil {
			continue
		}

		for _, stmt := range fn.Body.List {
			if ret, ok := stmt.(*ast.ReturnStmt); ok && len(ret.Results) > 0 {
				if lit, ok := ret.Results[0].(*ast.BasicLit); ok {
					structIDs[recvName] = lit.Value
				}
			}
		}
	}
	return structIDs
}

// parseGenOptions finds the "@gen:opt,opt" line of a doc comment.
func parseGenOptions(doc *ast.CommentGroup) (map[string]bool, bool) {
	for _, comment := range doc.List {
		_, after, found := strings.Cut(comment.Text, "@gen:")
		if !found {
			continue
		}

		opts := make(map[string]bool)
		for _, opt := range strings.Split(strings.TrimSpace(after), ",") {
			opts[strings.TrimSpace(opt)] = true
		}
		return opts, true
	}
	return nil, false
}

// parseField turns a struct tag into the read and write calls for a field.
// Fields without a "field" tag are not part of the wire form.
func parseField(name string, tag *ast.BasicLit) (f Field, ok bool, err error) {
	rawTag := ""
	if tag != nil {
		if rawTag, err = strconv.Unquote(tag.Value); err != nil {
			return
		}
	}

	parsedTag := reflect.StructTag(rawTag)
	kind, options, _ := strings.Cut(parsedTag.Get("field"), ",")
	if kind == "" {
		return
	}

	if options == "var" {
		varKind, known := varKinds[kind]
		if !known {
			err = fmt.Errorf("kind %s has no variable-length form", kind)
			return
		}
		kind = varKind
	} else if options != "" {
		err = fmt.Errorf("unknown field option %q", options)
		return
	}

	writeFn, readFn := parsedTag.Get("write"), parsedTag.Get("read")
	if inner := parsedTag.Get("inner"); inner != "" {
		writeFn = "Write" + inner
		readFn = "Read" + inner
	}

	f.Name = name
	switch bound := parsedTag.Get("max"); {
	case bound != "":
		if _, err = strconv.Atoi(bound); err != nil {
			err = fmt.Errorf("max: %w", err)
			return
		}
		f.WriteCall = fmt.Sprintf("Write%sMax(w, p.%s, %s)", kind, name, bound)
		f.ReadCall = fmt.Sprintf("Read%sMax(r, %s)", kind, bound)
	case writeFn != "":
		f.WriteCall = fmt.Sprintf("Write%s(w, p.%s, %s)", kind, name, writeFn)
		f.ReadCall = fmt.Sprintf("Read%s(r, %s)", kind, readFn)
	default:
		f.WriteCall = fmt.Sprintf("Write%s(w, p.%s)", kind, name)
		f.ReadCall = fmt.Sprintf("Read%s(r)", kind)
	}

	ok = true
	return
}

const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.

package {{.PkgName}}

import (
	"io"
)
{{range .Files}}{{$file := .}}
// Source: {{.Name}}
{{- if .HasRegistry}}

var {{.RegistryPrefix}}ServerboundRegistry = map[int32]func() Packet{
{{- range .Structs}}
	{{- if .RegServerbound}}
	{{.PacketID}}: func() Packet { return &{{.Name}}{} },
	{{- end}}
{{- end}}
}

var {{.RegistryPrefix}}ClientboundRegistry = map[int32]func() Packet{
{{- range .Structs}}
	{{- if .RegClientbound}}
	{{.PacketID}}: func() Packet { return &{{.Name}}{} },
	{{- end}}
{{- end}}
}
{{- end}}
{{range .Structs}}
{{- if .Registered}}
func (p {{.Name}}) Phase() Phase { return {{$file.RegistryPrefix}} }

func (p {{.Name}}) Direction() Direction { return {{if .RegServerbound}}Serverbound{{else}}Clientbound{{end}} }

func (p *{{.Name}}) {{$file.Marker}}() {}
{{end}}
{{- if .GenWrite}}
func (p {{.Name}}) Encode(w io.Writer) (err error) {
	if err = WriteVarInt(w, p.ID()); err != nil {
		return
	}
{{- range .Fields}}
	if err = {{.WriteCall}}; err != nil {
		return
	}
{{- end}}
	return
}
{{end}}
{{- if .GenRead}}
func (p *{{.Name}}) Decode(r Reader) (err error) {
{{- range .Fields}}
	if p.{{.Name}}, err = {{.ReadCall}}; err != nil {
		return
	}
{{- end}}
	return nil
}
{{end}}
{{- end}}
{{- end}}
`
