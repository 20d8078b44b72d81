// Package generator inserts Doxygen comment blocks above undocumented C++
// declarations. It is a line-oriented transformer: input lines come back
// verbatim and in order, interleaved with synthesized comments. Parsing is
// heuristic by design, built on regular expressions and brace-depth
// accounting rather than a real grammar; declarations it cannot classify
// simply pass through uncommented.
package generator

import (
	"strings"

	"github.com/psanodiya94/doxygen-comment-generator/internal/braces"
	"github.com/psanodiya94/doxygen-comment-generator/internal/testframe"
)

// Options configures a Generator.
type Options struct {
	// EnhanceExisting captures existing documentation blocks instead of
	// skipping the declarations they precede. Captured blocks are
	// preserved unchanged; rewriting them is an unimplemented extension
	// point, so the flag currently changes which declarations receive
	// fresh comments, nothing more.
	EnhanceExisting bool
}

// Generator transforms one file at a time. State is per-file: callers
// processing a batch must use a fresh Generator per file or call Process,
// which resets before scanning.
type Generator struct {
	enhanceExisting bool
	analyzer        *testframe.Analyzer

	currentClass     string
	currentNamespace string

	isTestFile bool
	framework  testframe.Framework
	captured   [][]string
}

// New creates a Generator.
func New(opts Options) *Generator {
	return &Generator{
		enhanceExisting: opts.EnhanceExisting,
		analyzer:        testframe.NewAnalyzer(),
	}
}

// Reset clears all per-file scanning state.
func (g *Generator) Reset() {
	g.currentClass = ""
	g.currentNamespace = ""
	g.isTestFile = false
	g.framework = testframe.None
	g.captured = nil
}

// IsTestFile reports whether the last processed file used a recognized
// testing framework.
func (g *Generator) IsTestFile() bool { return g.isTestFile }

// Framework returns the dialect detected for the last processed file.
func (g *Generator) Framework() testframe.Framework { return g.framework }

// CapturedComments returns the existing documentation blocks collected
// during the last pass in enhance mode.
func (g *Generator) CapturedComments() [][]string { return g.captured }

// Process transforms a file's lines, returning the same lines with
// comment blocks spliced in. Trailing blank lines are trimmed.
func (g *Generator) Process(lines []string) []string {
	g.Reset()

	g.framework = g.analyzer.Detect(lines)
	g.isTestFile = g.framework != testframe.None

	var out []string
	if g.isTestFile {
		out = g.scanTestFile(lines)
	} else {
		out = g.scan(lines)
	}

	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return out
}

// Render joins processed lines into a writable file body with a
// guaranteed trailing newline.
func Render(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// scan is the top-level walk for non-test files.
func (g *Generator) scan(lines []string) []string {
	var out []string
	suppress := false // an existing doc block precedes the next declaration
	inBody := 0       // >0 while inside a recognized function or enum body

	i := 0
	for i < len(lines) {
		line := lines[i]
		stripped := strings.TrimSpace(line)

		if inBody > 0 {
			inBody += braces.Delta(stripped)
			out = append(out, line)
			i++
			continue
		}

		if stripped == "" {
			out = append(out, line)
			i++
			continue
		}

		if isDocCommentStart(stripped) {
			block, next := consumeDocBlock(lines, i)
			out = append(out, block...)
			if g.enhanceExisting {
				g.captured = append(g.captured, block)
			}
			suppress = true
			i = next
			continue
		}

		if strings.HasPrefix(stripped, "#") || strings.HasPrefix(stripped, "//") {
			out = append(out, line)
			i++
			continue
		}

		if m := namespaceRe.FindStringSubmatch(stripped); m != nil {
			g.currentNamespace = m[1]
			out = append(out, line)
			suppress = false
			i++
			continue
		}

		if decl, consumed, found := matchClass(lines, i); found {
			g.currentClass = decl.Name
			if !suppress {
				out = appendSeparator(out)
				out = append(out, classComment(decl, indentOf(lines[i]))...)
			}
			out = append(out, lines[i:i+consumed]...)
			bal := bodyBalance(lines[i : i+consumed])
			i += consumed
			suppress = false
			if bal > 0 {
				i, out = g.scanClassBody(lines, i, out, bal)
			}
			g.currentClass = ""
			continue
		}

		if decl, end, ok := matchFunction(lines, i, g.currentClass); ok {
			if !suppress {
				out = appendSeparator(out)
				out = append(out, functionComment(decl, g.currentClass, indentOf(lines[i]))...)
			}
			out = append(out, lines[i:end+1]...)
			if bal := bodyBalance(lines[i : end+1]); bal > 0 {
				inBody = bal
			}
			suppress = false
			i = end + 1
			continue
		}

		if decl, ok := matchEnum(stripped); ok {
			if !suppress {
				out = appendSeparator(out)
				out = append(out, enumComment(decl, indentOf(line))...)
			}
			out = append(out, line)
			// Shield the enumerator list from the variable matcher.
			if bal := braces.Delta(stripped); bal > 0 {
				inBody = bal
			}
			suppress = false
			i++
			continue
		}

		if decl, end, ok := matchVariable(lines, i); ok {
			comment := variableComment(decl, indentOf(lines[i]))
			if !suppress && comment != nil {
				out = appendSeparator(out)
				out = append(out, comment...)
			}
			out = append(out, lines[i:end+1]...)
			suppress = false
			i = end + 1
			continue
		}

		if (stripped == "}" || stripped == "};") && (g.currentClass != "" || g.currentNamespace != "") {
			out = append(out, line)
			if strings.Contains(stripped, ";") {
				if g.currentClass != "" {
					g.currentClass = ""
				} else {
					g.currentNamespace = ""
				}
			}
			suppress = false
			i++
			continue
		}

		out = append(out, line)
		suppress = false
		i++
	}
	return out
}

// scanClassBody walks the body of a class or struct whose opening brace
// has already been emitted. It returns the index past the closing line
// and the extended output. Access-region markers are held back and
// re-emitted directly before the next declaration's comment block so the
// comment never wedges between marker and declaration.
func (g *Generator) scanClassBody(lines []string, i int, out []string, depth int) (int, []string) {
	inBody := 0
	pendingAccess := ""
	hasPending := false
	suppress := false

	flushAccess := func() {
		if hasPending {
			out = append(out, pendingAccess)
			hasPending = false
		}
	}

	for i < len(lines) {
		line := lines[i]
		stripped := strings.TrimSpace(line)
		depth += braces.Delta(stripped)

		if inBody > 0 {
			inBody += braces.Delta(stripped)
			out = append(out, line)
			i++
			continue
		}

		if accessRe.MatchString(stripped) {
			pendingAccess = line
			hasPending = true
			i++
			continue
		}

		if stripped == "" {
			out = append(out, line)
			i++
			continue
		}

		if isDocCommentStart(stripped) {
			flushAccess()
			block, next := consumeDocBlock(lines, i)
			out = append(out, block...)
			if g.enhanceExisting {
				g.captured = append(g.captured, block)
			}
			suppress = true
			i = next
			continue
		}

		if strings.HasPrefix(stripped, "//") || strings.HasPrefix(stripped, "#") {
			out = append(out, line)
			i++
			continue
		}

		if decl, end, ok := matchFunction(lines, i, g.currentClass); ok {
			flushAccess()
			if !suppress {
				out = append(out, functionComment(decl, g.currentClass, indentOf(lines[i]))...)
			}
			out = append(out, lines[i:end+1]...)
			for k := i + 1; k <= end; k++ {
				depth += braces.Delta(lines[k])
			}
			if bal := bodyBalance(lines[i : end+1]); bal > 0 {
				inBody = bal
			}
			suppress = false
			i = end + 1
			continue
		}

		if decl, end, ok := matchVariable(lines, i); ok {
			comment := variableComment(decl, indentOf(lines[i]))
			if !suppress && comment != nil {
				out = appendSeparator(out)
			}
			flushAccess()
			if !suppress && comment != nil {
				out = append(out, comment...)
			}
			out = append(out, lines[i:end+1]...)
			for k := i + 1; k <= end; k++ {
				depth += braces.Delta(lines[k])
			}
			suppress = false
			i = end + 1
			continue
		}

		if depth <= 0 {
			flushAccess()
			out = append(out, line)
			i++
			break
		}

		flushAccess()
		out = append(out, line)
		suppress = false
		i++
	}
	return i, out
}

// scanTestFile replaces the generic function-matching path with
// test-case-body matching for files using a recognized framework.
func (g *Generator) scanTestFile(lines []string) []string {
	var out []string
	suppress := false

	i := 0
	for i < len(lines) {
		line := lines[i]
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			out = append(out, line)
			i++
			continue
		}

		if isDocCommentStart(stripped) {
			block, next := consumeDocBlock(lines, i)
			out = append(out, block...)
			if g.enhanceExisting {
				g.captured = append(g.captured, block)
			}
			suppress = true
			i = next
			continue
		}

		if tc, end, ok := g.analyzer.ExtractCase(lines, i, g.framework); ok {
			if !suppress {
				out = appendSeparator(out)
				out = append(out, testCaseComment(tc, indentOf(line))...)
			}
			out = append(out, lines[i:end+1]...)
			out = append(out, "")
			suppress = false
			i = end + 1
			continue
		}

		out = append(out, line)
		suppress = false
		i++
	}
	return out
}

// bodyBalance returns the unclosed brace depth of a declaration segment,
// counting from its first opening brace. Zero means the segment has no
// body or closes it on the same lines.
func bodyBalance(segment []string) int {
	text := strings.Join(segment, "\n")
	idx := strings.Index(text, "{")
	if idx < 0 {
		return 0
	}
	return braces.Delta(text[idx:])
}

func isDocCommentStart(stripped string) bool {
	return strings.HasPrefix(stripped, "/**") ||
		strings.HasPrefix(stripped, "///") ||
		strings.HasPrefix(stripped, "/*!")
}

// consumeDocBlock returns the documentation block starting at i and the
// index of the first line past it. Runs of /// lines form one block;
// /** and /*! blocks extend through the closing */ marker.
func consumeDocBlock(lines []string, i int) ([]string, int) {
	if strings.HasPrefix(strings.TrimSpace(lines[i]), "///") {
		j := i
		for j < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[j]), "///") {
			j++
		}
		return lines[i:j], j
	}

	j := i
	for j < len(lines) && !strings.Contains(lines[j], "*/") {
		j++
	}
	if j < len(lines) {
		j++
	}
	return lines[i:j], j
}

// appendSeparator inserts a blank line before a comment block unless the
// output already ends with one.
func appendSeparator(out []string) []string {
	if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
		return append(out, "")
	}
	return out
}
