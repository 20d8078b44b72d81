package generator

import (
	"regexp"
	"strings"
)

// The matchers perform lightweight structural recognition of C++
// declarations using regular expressions over joined physical lines. They
// are deliberately heuristic: anything they fail to recognize is passed
// through untouched by the scan loop.

var (
	classDeclRe = regexp.MustCompile(`^(class|struct)\s+(\w+)`)
	namespaceRe = regexp.MustCompile(`^namespace\s+(\w+)\s*\{`)
	accessRe    = regexp.MustCompile(`^(public|private|protected)\s*:\s*$`)
	enumRe      = regexp.MustCompile(`^enum\s+(?:class\s+)?(\w+)\s*(?::\s*\w+)?\s*\{`)

	funcRe = regexp.MustCompile(
		`^(?:(?:virtual|static|inline|explicit|constexpr)\s+)*` +
			`(?:[\w:<>*&]+\s+)*` +
			`(~?\w+|operator=)\s*\((.*?)\)\s*(?:const\s*)?` +
			`(?:noexcept\s*(?:\([^)]*\))?\s*)?` +
			`(?:=\s*(?:default|delete|0))?\s*`)

	varRe = regexp.MustCompile(
		`^(?:(?:static|constexpr|mutable|inline)\s+)?(?:const\s+)?` +
			`(.+?)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*(?:=\s*.*)?$`)

	throwSpecRe    = regexp.MustCompile(`throw\s*\((.*?)\)`)
	paramDefaultRe = regexp.MustCompile(`\s*=\s*.*$`)
	paramNameRe    = regexp.MustCompile(`^(.+?)\s*([a-zA-Z_][a-zA-Z0-9_]*)$`)
	identSplitRe   = regexp.MustCompile(`([A-Z])`)
	spaceRunRe     = regexp.MustCompile(`\s+`)

	// Storage and qualifier keywords stripped from return types.
	retTypeKeywordRe = regexp.MustCompile(
		`\b(?:virtual|inline|explicit|constexpr|static|friend|mutable|volatile|register|extern|thread_local|auto|typename|override|final)\b`)
)

var accessPrefixes = []string{"public:", "private:", "protected:"}

// statementKeywords are control-flow words that would otherwise satisfy
// the function pattern when a body line leaks past the shielding.
var statementKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "return": true, "catch": true,
}

var variableSkipPrefixes = []string{
	"class ", "struct ", "enum ", "namespace ", "using ", "typedef ",
	"template ", "friend ", "public:", "private:", "protected:",
}

// matchClass recognizes a class or struct opener starting at start,
// joining continuation lines until it finds the opening brace. It gives up
// on forward declarations (terminating ';') and refuses to scan across
// comment lines. consumed is the number of physical lines belonging to
// the declaration when found is true.
func matchClass(lines []string, start int) (decl ClassDecl, consumed int, found bool) {
	stripped := strings.TrimSpace(lines[start])
	m := classDeclRe.FindStringSubmatch(stripped)
	if m == nil {
		return ClassDecl{}, 0, false
	}

	decl = ClassDecl{Kind: m[1], Name: m[2]}
	consumed = 1
	if strings.Contains(stripped, "{") {
		return decl, consumed, true
	}
	if strings.Contains(stripped, ";") {
		return ClassDecl{}, 0, false // forward declaration
	}

	for j := start + 1; j < len(lines); j++ {
		next := strings.TrimSpace(lines[j])
		consumed++
		if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/*") {
			break
		}
		if strings.Contains(next, "{") {
			return decl, consumed, true
		}
		if strings.Contains(next, ";") {
			break // forward declaration
		}
	}
	return ClassDecl{}, 0, false
}

// matchFunction recognizes a function, constructor, destructor or
// copy/move assignment operator starting at start. Multi-line signatures
// are joined until a terminating ';' or '{'. currentClass is the innermost
// enclosing class name, or empty at file scope; it drives the
// special-member classification. end is the index of the last consumed
// line.
func matchFunction(lines []string, start int, currentClass string) (decl FunctionDecl, end int, ok bool) {
	fullDecl := strings.TrimSpace(lines[start])
	end = start
	for end < len(lines) && !strings.ContainsAny(fullDecl, ";{") {
		end++
		if end < len(lines) {
			fullDecl += " " + strings.TrimSpace(lines[end])
		}
	}

	switch {
	case strings.Contains(fullDecl, "{"):
		fullDecl = strings.TrimSpace(fullDecl[:strings.Index(fullDecl, "{")])
	case strings.Contains(fullDecl, ";"):
		fullDecl = strings.TrimSpace(fullDecl[:strings.Index(fullDecl, ";")])
	default:
		return FunctionDecl{}, 0, false
	}

	// operator= is only documented as a copy or move assignment for the
	// enclosing class; every other assignment operator is rejected.
	isAssignment := strings.Contains(fullDecl, "operator=")
	var assignKind string
	if isAssignment {
		if currentClass != "" {
			q := regexp.QuoteMeta(currentClass)
			assignRe := regexp.MustCompile(`operator\s*=\s*\((const\s+` + q + `\s*&|` + q + `\s*&&)`)
			if assignRe.MatchString(fullDecl) {
				if strings.Contains(fullDecl, "const") {
					assignKind = "copy"
				} else {
					assignKind = "move"
				}
			}
		}
		if assignKind == "" {
			return FunctionDecl{}, 0, false
		}
	}

	m := funcRe.FindStringSubmatch(fullDecl)
	if m == nil {
		return FunctionDecl{}, 0, false
	}
	name := m[1]
	rawParams := m[2]
	if statementKeywords[name] || statementKeywords[firstWord(fullDecl)] {
		return FunctionDecl{}, 0, false
	}

	// Extract the return type from whatever precedes the name. Empty for
	// constructors and destructors.
	retRe := regexp.MustCompile(
		`^(?:(?:virtual|static|inline|explicit|constexpr)\s+)*((?:[\w:<>*&]+\s+)*)` +
			regexp.QuoteMeta(name) + `\s*\(`)
	returnType := ""
	if rm := retRe.FindStringSubmatch(fullDecl); rm != nil {
		returnType = cleanReturnType(rm[1])
	}

	params := parseParams(rawParams)

	afterParams := fullDecl
	if idx := strings.LastIndex(fullDecl, ")"); idx >= 0 {
		afterParams = fullDecl[idx+1:]
	}

	decl = FunctionDecl{
		Name:       name,
		ReturnType: returnType,
		Params:     params,
		IsConst:    strings.Contains(afterParams, "const"),
		IsStatic:   strings.Contains(fullDecl, "static"),
		IsNoexcept: strings.Contains(fullDecl, "noexcept"),
	}

	if tm := throwSpecRe.FindStringSubmatch(fullDecl); tm != nil {
		for _, t := range strings.Split(tm[1], ",") {
			if t = strings.TrimSpace(t); t != "" {
				decl.ThrowSpec = append(decl.ThrowSpec, t)
			}
		}
	}

	if currentClass != "" {
		decl.IsConstructor = name == currentClass
		decl.IsDestructor = name == "~"+currentClass
		if decl.IsConstructor && len(params) == 1 {
			q := regexp.QuoteMeta(currentClass)
			if regexp.MustCompile(`^const\s+` + q + `\s*&`).MatchString(params[0].Type) {
				decl.IsCopyConstructor = true
			} else if regexp.MustCompile(`^` + q + `\s*&&`).MatchString(params[0].Type) {
				decl.IsMoveConstructor = true
			}
		}
	}
	decl.IsCopyAssignment = assignKind == "copy"
	decl.IsMoveAssignment = assignKind == "move"

	return decl, end, true
}

// parseParams splits a parameter list on commas and divides each entry
// into type and name. The split has no nested-template awareness, so a
// comma inside template arguments produces bogus entries; this is a known
// limitation. A parameter whose trailing token is not a plain identifier
// (an unnamed parameter like "const Foo&") keeps its full text as type
// with an empty name.
func parseParams(raw string) []Param {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var params []Param
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = paramDefaultRe.ReplaceAllString(p, "")

		if m := paramNameRe.FindStringSubmatch(p); m != nil && strings.TrimSpace(m[1]) != "" {
			params = append(params, Param{Type: strings.TrimSpace(m[1]), Name: m[2]})
		} else {
			params = append(params, Param{Type: p})
		}
	}
	return params
}

// matchVariable recognizes a member or file-scope variable declaration
// starting at start, joining lines until the terminating ';'.
func matchVariable(lines []string, start int) (decl VariableDecl, end int, ok bool) {
	line := strings.TrimSpace(lines[start])

	// Lines carrying braces or parens are function-shaped, except a plain
	// initializer-free statement terminated by ';'.
	if strings.ContainsAny(line, "{}()") &&
		!(strings.Contains(line, ";") && !strings.Contains(line, "=")) {
		return VariableDecl{}, 0, false
	}
	if hasAnyPrefix(line, variableSkipPrefixes) {
		return VariableDecl{}, 0, false
	}

	fullDecl := line
	end = start
	for end < len(lines) && !strings.Contains(fullDecl, ";") {
		end++
		if end < len(lines) {
			fullDecl = strings.TrimRight(fullDecl, " \t") + " " + strings.TrimSpace(lines[end])
		}
	}
	if !strings.Contains(fullDecl, ";") {
		return VariableDecl{}, 0, false
	}
	fullDecl = strings.TrimSpace(fullDecl[:strings.Index(fullDecl, ";")])

	if hasAnyPrefix(fullDecl, variableSkipPrefixes) {
		return VariableDecl{}, 0, false
	}

	m := varRe.FindStringSubmatch(fullDecl)
	if m == nil {
		return VariableDecl{}, 0, false
	}

	typ := strings.TrimSpace(m[1])
	for _, spec := range accessPrefixes {
		if strings.HasPrefix(typ, spec) {
			typ = strings.TrimSpace(strings.TrimPrefix(typ, spec))
		}
	}

	return VariableDecl{
		Name:        m[2],
		Type:        typ,
		IsStatic:    strings.Contains(fullDecl, "static"),
		IsConstexpr: strings.Contains(fullDecl, "constexpr"),
		IsMutable:   strings.Contains(fullDecl, "mutable"),
		fullDecl:    fullDecl,
	}, end, true
}

// matchEnum recognizes a named enum opener on a single line. Anonymous
// enums never match.
func matchEnum(line string) (EnumDecl, bool) {
	m := enumRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return EnumDecl{}, false
	}
	return EnumDecl{Name: m[1]}, true
}

func cleanReturnType(s string) string {
	s = strings.TrimSpace(s)
	for _, spec := range accessPrefixes {
		if strings.HasPrefix(s, spec) {
			s = strings.TrimSpace(strings.TrimPrefix(s, spec))
		}
	}
	s = retTypeKeywordRe.ReplaceAllString(s, "")
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
}

// firstWord returns the leading identifier of a joined declaration.
func firstWord(s string) string {
	end := 0
	for end < len(s) && (s[end] == '_' ||
		('a' <= s[end] && s[end] <= 'z') || ('A' <= s[end] && s[end] <= 'Z') ||
		('0' <= s[end] && s[end] <= '9')) {
		end++
	}
	return s[:end]
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// indentOf returns the leading whitespace of a line.
func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
