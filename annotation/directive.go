package annotation

import (
	"fmt"
	"go/ast"
	"go/types"
	"reflect"
	"regexp"
	"strings"

	"golang.org/x/tools/go/packages"

	"mirror/internal/diagnostic"
	"mirror/internal/match"
	"mirror/member"
)

// Prefix starts every source directive.
const Prefix = "//mirror:"

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

var directiveName = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Directive is a //mirror:<name> [value] comment on a method declaration.
type Directive struct {
	Type   member.TypeID
	Method string
	Name   string
	Value  string
	Pos    string // file:line:column
}

func (d Directive) String() string {
	s := fmt.Sprintf("%s.%s %s%s", d.Type, d.Method, Prefix, d.Name)
	if d.Value != "" {
		s += " " + d.Value
	}

	return s
}

// LoadDirectives loads the packages matching patterns and collects the
// directives on their method declarations. Packages that fail to load are
// reported as error diagnostics; the directives of the others are still
// returned.
func LoadDirectives(patterns ...string) ([]Directive, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to load packages: %w", err)
	}

	var dirs []Directive

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			for _, e := range pkg.Errors {
				diags.AddError(diagnostic.CodeLoad, e.Msg, e.Pos, "")
			}

			continue
		}

		dirs = append(dirs, collect(pkg, &diags)...)
	}

	return dirs, diags, nil
}

// collect extracts the directives of one type-checked package.
func collect(pkg *packages.Package, diags *diagnostic.Diagnostics) []Directive {
	var dirs []Directive

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Doc == nil {
				continue
			}

			var (
				id     member.TypeID
				method bool
			)

			if obj, ok := pkg.TypesInfo.Defs[fn.Name].(*types.Func); ok {
				id, method = receiverID(obj)
			}

			seen := make(map[string]bool)

			for _, c := range fn.Doc.List {
				if !strings.HasPrefix(c.Text, Prefix) {
					continue
				}

				pos := pkg.Fset.Position(c.Slash).String()
				where := ""

				if method {
					where = diagnostic.MemberName(id.PkgPath, id.Name, fn.Name.Name)
				}

				name, value, _ := strings.Cut(strings.TrimPrefix(c.Text, Prefix), " ")
				if !directiveName.MatchString(name) {
					diags.AddError(diagnostic.CodeMalformed,
						fmt.Sprintf("invalid directive name %q", name), pos, where)

					continue
				}

				if !method {
					diags.AddWarning(diagnostic.CodeNotMethod,
						fmt.Sprintf("directive %s on function %s is ignored", name, fn.Name.Name), pos, "")

					continue
				}

				if seen[name] {
					diags.AddWarning(diagnostic.CodeDuplicate,
						fmt.Sprintf("directive %s repeated", name), pos, where)
				}

				seen[name] = true

				dirs = append(dirs, Directive{
					Type:   id,
					Method: fn.Name.Name,
					Name:   name,
					Value:  strings.TrimSpace(value),
					Pos:    pos,
				})
			}
		}
	}

	return dirs
}

// receiverID identifies the named receiver type of a method.
func receiverID(fn *types.Func) (member.TypeID, bool) {
	recv := fn.Signature().Recv()
	if recv == nil {
		return member.TypeID{}, false
	}

	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return member.TypeID{}, false
	}

	return member.TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()}, true
}

// Bind annotates the registered types with dirs. Directives naming types
// missing from known are reported as warnings, directives naming methods
// the type lacks as errors.
func (r *Registry) Bind(dirs []Directive, known *member.TypeRegistry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, d := range dirs {
		where := diagnostic.MemberName(d.Type.PkgPath, d.Type.Name, d.Method)

		t, ok := known.Lookup(d.Type)
		if !ok {
			diags.AddWarning(diagnostic.CodeUnregistered,
				fmt.Sprintf("type %s is not registered", d.Type), d.Pos, where)

			continue
		}

		if _, ok := member.MethodOf(t, d.Method); !ok {
			diag := diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeNoMethod,
				Message:  fmt.Sprintf("%s has no method %s", t, d.Method),
				Pos:      d.Pos,
				Member:   where,
			}

			if hint, ok := match.Suggest(d.Method, methodNames(t)); ok {
				diag.Suggestions = []string{hint}
			}

			diags.Add(diag)

			continue
		}

		r.Annotate(t, d.Method, d)
	}

	return diags
}

func methodNames(t reflect.Type) []string {
	set := t
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		set = reflect.PointerTo(t)
	}

	names := make([]string, set.NumMethod())
	for i := range names {
		names[i] = set.Method(i).Name
	}

	return names
}

// LocateDirective finds the directive called name for m in the default
// registry, searching embedded types the way Locate does.
func LocateDirective(m *member.Method, name string) (Directive, bool) {
	return LocateDirectiveIn(Default, m, name)
}

// LocateDirectiveIn is LocateDirective on the given registry.
func LocateDirectiveIn(r *Registry, m *member.Method, name string) (Directive, bool) {
	a, ok := r.locate(m, func(a any) bool {
		d, ok := a.(Directive)
		return ok && d.Name == name
	})
	if !ok {
		return Directive{}, false
	}

	return a.(Directive), true
}
