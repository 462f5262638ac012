// Package boundaries enforces the import rules between bounded contexts and
// their layers. Contexts may share only internal/shared; everything that
// crosses contexts is wired in internal/app.
package boundaries

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

type Violation struct {
	File   string
	Line   int
	Import string
	Rule   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d imports %q (%s)", v.File, v.Line, v.Import, v.Rule)
}

// Rules carries the module path plus the third-party packages the
// application layer may use directly.
type Rules struct {
	Module             string
	ApplicationAllowed []string
}

func DefaultRules(module string) Rules {
	return Rules{
		Module:             module,
		ApplicationAllowed: []string{"golang.org/x/sync"},
	}
}

// Check walks root (the repository root) and returns every violation found
// under root/contexts, sorted by file and line. Test files are skipped.
func Check(root string, rules Rules) ([]Violation, error) {
	var violations []Violation
	contextsDir := filepath.Join(root, "contexts")

	err := filepath.WalkDir(contextsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		normalized := filepath.ToSlash(rel)
		parts := strings.Split(normalized, "/")
		if len(parts) < 4 {
			return nil
		}
		servicePrefix := fmt.Sprintf("%s/contexts/%s/%s", rules.Module, parts[1], parts[2])
		violations = append(violations, rules.validateFile(path, normalized, parts[3], servicePrefix)...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].File == violations[j].File {
			if violations[i].Line == violations[j].Line {
				return violations[i].Import < violations[j].Import
			}
			return violations[i].Line < violations[j].Line
		}
		return violations[i].File < violations[j].File
	})
	return violations, nil
}

func (r Rules) validateFile(path string, normalizedPath string, layer string, servicePrefix string) []Violation {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return []Violation{{File: normalizedPath, Line: 1, Rule: "file must parse"}}
	}

	var violations []Violation
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, "\"")
		line := fset.Position(imp.Pos()).Line
		add := func(rule string) {
			violations = append(violations, Violation{
				File:   normalizedPath,
				Line:   line,
				Import: importPath,
				Rule:   rule,
			})
		}

		if hasPrefix(importPath, r.Module+"/contexts") && !hasPrefix(importPath, servicePrefix) {
			add("cross-context imports are forbidden")
		}

		var allowed []string
		switch layer {
		case "domain":
			allowed = []string{servicePrefix + "/domain", r.Module + "/internal/shared"}
		case "ports":
			allowed = []string{servicePrefix + "/domain", r.Module + "/internal/shared"}
		case "application":
			allowed = append([]string{
				servicePrefix + "/application",
				servicePrefix + "/domain",
				servicePrefix + "/ports",
				r.Module + "/internal/shared",
			}, r.ApplicationAllowed...)
		default:
			continue
		}

		if strings.Contains(importPath, "/adapters/") {
			add(layer + " must not import adapters")
		}
		if hasPrefix(importPath, r.Module+"/internal/platform") || hasPrefix(importPath, r.Module+"/internal/app") {
			add(layer + " must not import runtime infrastructure")
		}
		if !r.isStdlib(importPath) && !isAllowed(importPath, allowed) {
			add(layer + " import is outside explicit allowlist")
		}
	}
	return violations
}

func hasPrefix(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isAllowed(importPath string, allowedPrefixes []string) bool {
	for _, p := range allowedPrefixes {
		if hasPrefix(importPath, p) {
			return true
		}
	}
	return false
}

func (r Rules) isStdlib(importPath string) bool {
	if hasPrefix(importPath, r.Module) {
		return false
	}
	first := importPath
	if idx := strings.Index(first, "/"); idx != -1 {
		first = first[:idx]
	}
	return !strings.Contains(first, ".")
}
