// Package exports lists the value exports of a preload script so their names
// can be fed to the type declaration generator when none are configured.
//
// The scan is line based, not a parser. A variable statement is read up to
// the first ";" or end of line, so declarators continued on following lines
// after a multi-line initializer are not seen.
package exports

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`(?m)^\s*//.*$`)

	// export async function b / export class C / export enum E / export const enum E
	declExport = regexp.MustCompile(`(?m)^\s*export\s+(?:declare\s+)?(?:async\s+)?(?:class|function|(?:const\s+)?enum)\s*\*?\s*([A-Za-z_$][\w$]*)`)
	// export const a = 1, b = 2 / export let { c, d: e } = o
	varExport = regexp.MustCompile(`(?m)^\s*export\s+(?:declare\s+)?(?:const|let|var)\s+([^;\n]*)`)
	// export { a, b as c } [from '...']
	listExport = regexp.MustCompile(`(?m)^\s*export\s*\{([^}]*)\}`)
	// exports.a = / module.exports.a =
	cjsExport = regexp.MustCompile(`(?m)^\s*(?:module\.)?exports\.([A-Za-z_$][\w$]*)\s*=`)

	identifier   = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	leadingIdent = regexp.MustCompile(`^[A-Za-z_$][\w$]*`)
)

// Scan reads the script at path and returns its exported value names.
func Scan(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preload script %s: %w", path, err)
	}
	return Names(string(data)), nil
}

type match struct {
	pos  int
	name string
}

// Names returns the exported value names of src in source order, without
// duplicates. Type-only exports and the default export are skipped.
func Names(src string) []string {
	src = blockComment.ReplaceAllStringFunc(src, blank)
	src = lineComment.ReplaceAllStringFunc(src, blank)

	var found []match
	for _, re := range []*regexp.Regexp{declExport, cjsExport} {
		for _, loc := range re.FindAllStringSubmatchIndex(src, -1) {
			found = append(found, match{pos: loc[0], name: src[loc[2]:loc[3]]})
		}
	}
	for _, loc := range varExport.FindAllStringSubmatchIndex(src, -1) {
		for _, name := range declaratorNames(src[loc[2]:loc[3]]) {
			found = append(found, match{pos: loc[0], name: name})
		}
	}
	for _, loc := range listExport.FindAllStringSubmatchIndex(src, -1) {
		for _, name := range listNames(src[loc[2]:loc[3]]) {
			found = append(found, match{pos: loc[0], name: name})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	seen := make(map[string]bool, len(found))
	var names []string
	for _, m := range found {
		if m.name == "default" || seen[m.name] {
			continue
		}
		seen[m.name] = true
		names = append(names, m.name)
	}
	return names
}

// listNames parses the body of an export list: "a, b as c, type T".
func listNames(body string) []string {
	var names []string
	for _, item := range strings.Split(body, ",") {
		fields := strings.Fields(item)
		if len(fields) == 0 || fields[0] == "type" {
			continue
		}
		name := fields[len(fields)-1]
		if identifier.MatchString(name) {
			names = append(names, name)
		}
	}
	return names
}

// declaratorNames returns the names bound by a variable declaration list,
// e.g. "a = 1, { b, c: d, ...e } = o, [f, , g] = arr".
func declaratorNames(list string) []string {
	if strings.HasPrefix(list, "enum ") {
		return nil
	}
	var names []string
	for _, decl := range splitTopLevel(list) {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		switch decl[0] {
		case '{', '[':
			end := closingIndex(decl)
			if end < 0 {
				continue
			}
			names = append(names, patternNames(decl[:end+1])...)
		default:
			if name := leadingIdentifier(decl); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// patternNames returns the bindings of a destructuring pattern.
func patternNames(pattern string) []string {
	object := pattern[0] == '{'
	var names []string
	for _, elem := range splitTopLevel(pattern[1 : len(pattern)-1]) {
		elem = strings.TrimSpace(elem)
		elem = strings.TrimPrefix(elem, "...")
		if elem == "" {
			continue
		}
		if object {
			if key, target, ok := cutTopLevel(elem, ':'); ok {
				elem = strings.TrimSpace(target)
				if key == "" {
					continue
				}
			}
		}
		if elem[0] == '{' || elem[0] == '[' {
			if end := closingIndex(elem); end > 0 {
				names = append(names, patternNames(elem[:end+1])...)
			}
			continue
		}
		if name := leadingIdentifier(elem); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// splitTopLevel splits s at commas outside brackets and string literals.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// cutTopLevel splits s at the first sep outside brackets.
func cutTopLevel(s string, sep byte) (before, after string, found bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// closingIndex returns the index of the bracket closing s[0], or -1.
func closingIndex(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// leadingIdentifier returns the identifier s starts with, or "".
func leadingIdentifier(s string) string {
	return leadingIdent.FindString(s)
}

// blank replaces a comment with spaces and newlines so offsets are kept.
func blank(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		return ' '
	}, s)
}
