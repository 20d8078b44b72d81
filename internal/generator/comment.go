package generator

import (
	"strings"

	"github.com/psanodiya94/doxygen-comment-generator/internal/testframe"
)

// Comment synthesizers. Each renders a descriptor into Doxygen comment
// lines, every line prefixed with the indentation of the declaration it
// precedes.

// namePrefixes maps identifier prefixes to brief-line openings. Order
// matters: the first matching prefix wins.
var namePrefixes = []struct {
	prefix string
	desc   string
}{
	{"get", "Gets the "},
	{"set", "Sets the "},
	{"is", "Checks if "},
	{"has", "Checks if has "},
	{"create", "Creates a new "},
	{"init", "Initializes the "},
	{"update", "Updates the "},
	{"delete", "Deletes the "},
	{"remove", "Removes the "},
	{"add", "Adds a new "},
	{"find", "Finds the "},
	{"calculate", "Calculates the "},
	{"compute", "Computes the "},
}

func classComment(decl ClassDecl, indent string) []string {
	return []string{
		indent + "/**",
		indent + " * @brief " + decl.Kind + " " + decl.Name,
		indent + " *",
		indent + " * @details Detailed description of " + decl.Kind + " " + decl.Name,
		indent + " */",
	}
}

func enumComment(decl EnumDecl, indent string) []string {
	return []string{
		indent + "/**",
		indent + " * @brief Enum " + decl.Name,
		indent + " *",
		indent + " * @details Detailed description of enum " + decl.Name,
		indent + " */",
	}
}

func functionComment(decl FunctionDecl, currentClass, indent string) []string {
	comment := []string{indent + "/**"}

	brief := ""
	switch {
	case decl.IsCopyConstructor:
		brief = "Copy constructor for " + currentClass
	case decl.IsMoveConstructor:
		brief = "Move constructor for " + currentClass
	case decl.IsCopyAssignment:
		brief = "Copy assignment operator for " + currentClass
	case decl.IsMoveAssignment:
		brief = "Move assignment operator for " + currentClass
	case decl.IsConstructor:
		brief = "Constructor for " + currentClass
	case decl.IsDestructor:
		brief = "Destructor for " + currentClass
	default:
		brief = briefDescription(decl.Name)
	}
	comment = append(comment,
		indent+" * @brief "+brief,
		indent+" * @details")

	for _, p := range decl.Params {
		if p.Name == "" {
			continue
		}
		comment = append(comment, indent+" * @param "+strings.TrimLeft(p.Name, "&*"))
	}

	ret := decl.ReturnType
	if !decl.IsConstructor && !decl.IsDestructor && ret != "" && ret != "void" {
		comment = append(comment, indent+" * @return "+ret)
	}

	if len(decl.ThrowSpec) > 0 {
		for _, exc := range decl.ThrowSpec {
			comment = append(comment, indent+" * @throws "+exc)
		}
	} else if !decl.IsNoexcept {
		comment = append(comment, indent+" * @throws std::exception on error")
	}

	if decl.IsStatic {
		comment = append(comment, indent+" * @static")
	}
	if decl.IsConst {
		comment = append(comment, indent+" * @const")
	}

	return append(comment, indent+" */")
}

// variableComment returns nil when the joined declaration turned out to
// carry parentheses, which marks a function declaration that slipped past
// the line-level rejection.
func variableComment(decl VariableDecl, indent string) []string {
	if strings.ContainsAny(decl.fullDecl, "()") {
		return nil
	}

	comment := []string{
		indent + "/**",
		indent + " * @brief Variable " + decl.Name,
		indent + " *",
	}
	if decl.IsStatic {
		comment = append(comment, indent+" * @static")
	}
	if decl.IsConstexpr {
		comment = append(comment, indent+" * @constexpr")
	}
	if decl.IsMutable {
		comment = append(comment, indent+" * @mutable")
	}
	return append(comment, indent+" */")
}

func testCaseComment(tc *testframe.TestCase, indent string) []string {
	comment := []string{
		indent + "/**",
		indent + " * @brief " + testframe.Describe(tc),
		indent + " *",
		indent + " * @details",
	}

	if tc.Suite != "" {
		label := "Test Category"
		if tc.Framework == testframe.GoogleTest {
			label = "Test Suite"
		}
		comment = append(comment, indent+" * "+label+": "+tc.Suite)
	}
	if tc.Fixture != "" {
		comment = append(comment, indent+" * Test Fixture: "+tc.Fixture)
	}
	comment = append(comment, indent+" * Framework: "+tc.Framework.DisplayName())

	if coverage := testframe.Coverage(tc); len(coverage) > 0 {
		comment = append(comment, indent+" *", indent+" * Test Coverage:")
		for _, point := range coverage {
			comment = append(comment, indent+" * - "+point)
		}
	}

	if tc.Type != "" {
		comment = append(comment, indent+" *", indent+" * @test "+tc.Type)
	}

	return append(comment, indent+" */")
}

// briefDescription derives readable prose from an identifier: camelCase is
// split on capitals, underscores become spaces, and a handful of common
// verb prefixes map to sentence openings.
func briefDescription(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range namePrefixes {
		if strings.HasPrefix(lower, entry.prefix) {
			rest := name[len(entry.prefix):]
			if rest == "" {
				return strings.TrimRight(entry.desc, " ")
			}
			return entry.desc + strings.TrimSpace(strings.ToLower(splitWords(rest)))
		}
	}
	return capitalize(strings.ToLower(strings.TrimSpace(splitWords(name))))
}

// splitWords inserts a space before each uppercase letter and replaces
// underscores with spaces.
func splitWords(name string) string {
	s := identSplitRe.ReplaceAllString(name, " $1")
	return strings.ReplaceAll(s, "_", " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
