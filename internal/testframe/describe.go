package testframe

import (
	"regexp"
	"strings"
)

var camelBoundaryRe = regexp.MustCompile(`([A-Z])`)

// semanticPrefixes turn the leading word of a test name into a sentence
// opening. First match wins.
var semanticPrefixes = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)^test\s+`), "Tests "},
	{regexp.MustCompile(`(?i)^when\s+`), "When "},
	{regexp.MustCompile(`(?i)^should\s+`), "Should "},
	{regexp.MustCompile(`(?i)^verify\s+`), "Verifies "},
	{regexp.MustCompile(`(?i)^check\s+`), "Checks "},
	{regexp.MustCompile(`(?i)^ensure\s+`), "Ensures "},
	{regexp.MustCompile(`(?i)^validate\s+`), "Validates "},
}

var describingWords = []string{
	"test", "verify", "check", "ensure", "validate", "when", "should",
}

// coveragePhrases maps assertion names to prose fragments by substring
// containment, checked in order.
var coveragePhrases = []struct {
	pattern string
	prose   string
}{
	{"EXPECT_EQ", "equality comparison"},
	{"EXPECT_NE", "inequality comparison"},
	{"EXPECT_TRUE", "boolean true condition"},
	{"EXPECT_FALSE", "boolean false condition"},
	{"EXPECT_THROW", "exception throwing behavior"},
	{"EXPECT_NO_THROW", "no exception behavior"},
	{"REQUIRE", "required conditions"},
	{"CHECK", "checked conditions"},
	{"BOOST_CHECK_EQUAL", "equality validation"},
	{"CPPUNIT_ASSERT_EQUAL", "equality validation"},
	{"CPPUNIT_ASSERT_THROW", "exception throwing behavior"},
	{"CPPUNIT_ASSERT_NO_THROW", "no exception behavior"},
	{"CPPUNIT_FAIL", "explicit failure reporting"},
	{"CPPUNIT_ASSERT", "asserted conditions"},
}

const maxCoveragePoints = 5

// Describe derives a human-readable sentence from a test case name.
// snake_case names have underscores replaced, CamelCase names get a space
// before each capital; a recognized leading word becomes a sentence
// opening, otherwise "Tests " is prefixed.
func Describe(tc *TestCase) string {
	var readable string
	if strings.Contains(tc.Name, "_") {
		readable = strings.ReplaceAll(tc.Name, "_", " ")
	} else {
		readable = strings.TrimSpace(camelBoundaryRe.ReplaceAllString(tc.Name, " $1"))
	}

	for _, p := range semanticPrefixes {
		if p.re.MatchString(readable) {
			return p.re.ReplaceAllString(readable, p.replacement)
		}
	}

	lower := strings.ToLower(readable)
	for _, w := range describingWords {
		if strings.HasPrefix(lower, w) {
			return readable
		}
	}
	return "Tests " + lower
}

// Coverage maps the test's assertion vocabulary to a bounded, deduplicated
// list of prose coverage points.
func Coverage(tc *TestCase) []string {
	var points []string
	seen := make(map[string]bool)

	for _, assertion := range tc.Assertions {
		for _, cp := range coveragePhrases {
			if strings.Contains(assertion, cp.pattern) {
				point := "Covers " + cp.prose
				if !seen[point] {
					seen[point] = true
					points = append(points, point)
				}
				break
			}
		}
	}

	if len(points) > maxCoveragePoints {
		points = points[:maxCoveragePoints]
	}
	return points
}
