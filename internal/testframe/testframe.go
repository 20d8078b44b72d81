// Package testframe detects which C++ testing framework a file uses and
// extracts test-case information for documentation purposes. Five dialects
// are supported: Google Test, Catch2, doctest, Boost.Test and CppUnit.
// Each dialect lives behind the same small interface, so adding another
// framework is additive.
package testframe

import (
	"regexp"
	"strings"

	"github.com/psanodiya94/doxygen-comment-generator/internal/braces"
)

// Framework identifies one supported test-macro dialect.
type Framework int

const (
	None Framework = iota
	GoogleTest
	Catch2
	Doctest
	BoostTest
	CppUnit
)

// String returns the internal dialect tag.
func (f Framework) String() string {
	switch f {
	case GoogleTest:
		return "gtest"
	case Catch2:
		return "catch2"
	case Doctest:
		return "doctest"
	case BoostTest:
		return "boost"
	case CppUnit:
		return "cppunit"
	}
	return ""
}

// DisplayName returns the human-readable framework name used in comments.
func (f Framework) DisplayName() string {
	switch f {
	case GoogleTest:
		return "Google Test"
	case Catch2:
		return "Catch2"
	case Doctest:
		return "doctest"
	case BoostTest:
		return "Boost.Test"
	case CppUnit:
		return "CppUnit"
	}
	return ""
}

// MarshalText renders the dialect tag, so JSON reports carry "gtest"
// rather than an enum ordinal.
func (f Framework) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// TestCase describes one recognized test-case occurrence.
type TestCase struct {
	Framework  Framework
	Name       string
	Suite      string // suite, tag or category; empty when the dialect has none
	Type       string // the macro spelling used, e.g. TEST_F
	Fixture    string
	Assertions []string // assertion macros present in the body
}

// dialect is one test-macro vocabulary. match reports the test case
// starting at start together with the index of the last body line.
type dialect interface {
	framework() Framework
	detectInclude(content string) bool
	detectMacro(content string) bool
	match(lines []string, start int) (*TestCase, int, bool)
}

// Analyzer detects frameworks and extracts test cases.
type Analyzer struct {
	dialects []dialect
}

// NewAnalyzer returns an Analyzer covering all supported dialects.
func NewAnalyzer() *Analyzer {
	return &Analyzer{dialects: []dialect{
		gtestDialect{},
		catchDialect{fw: Catch2},
		catchDialect{fw: Doctest},
		boostDialect{},
		cppunitDialect{},
	}}
}

// Detect determines which framework a file uses. Include paths are
// checked first in priority order; macro spellings are the fallback.
// Returns None when nothing matches.
func (a *Analyzer) Detect(lines []string) Framework {
	content := strings.Join(lines, "\n")

	for _, d := range a.dialects {
		if d.detectInclude(content) {
			return d.framework()
		}
	}
	for _, d := range a.dialects {
		if d.detectMacro(content) {
			return d.framework()
		}
	}
	return None
}

// ExtractCase tries to recognize a test case starting at start for the
// given framework. end is the index of the last line of the test body.
func (a *Analyzer) ExtractCase(lines []string, start int, fw Framework) (tc *TestCase, end int, ok bool) {
	for _, d := range a.dialects {
		if d.framework() == fw {
			return d.match(lines, start)
		}
	}
	return nil, 0, false
}

// extractAssertions collects every assertion macro from the vocabulary
// that appears anywhere in the body text. Presence only, not occurrence
// counts; substring matching mirrors the dialect grammars' looseness.
func extractAssertions(body []string, vocabulary []string) []string {
	text := strings.Join(body, "\n")
	var found []string
	for _, name := range vocabulary {
		if strings.Contains(text, name) {
			found = append(found, name)
		}
	}
	return found
}

// Google Test

var (
	gtestIncludeRe = regexp.MustCompile(`#include\s*[<"]gtest/gtest\.h[>"]`)
	gtestCaseRe    = regexp.MustCompile(`(TYPED_TEST_P|TYPED_TEST|TEST_F|TEST_P|TEST)\s*\(\s*(\w+)\s*,\s*(\w+)\s*\)`)
)

var gtestAssertions = []string{
	"EXPECT_EQ", "EXPECT_NE", "EXPECT_LT", "EXPECT_LE", "EXPECT_GT", "EXPECT_GE",
	"EXPECT_TRUE", "EXPECT_FALSE", "EXPECT_STREQ", "EXPECT_STRNE",
	"EXPECT_THROW", "EXPECT_NO_THROW", "EXPECT_ANY_THROW",
	"ASSERT_EQ", "ASSERT_NE", "ASSERT_LT", "ASSERT_LE", "ASSERT_GT", "ASSERT_GE",
	"ASSERT_TRUE", "ASSERT_FALSE", "ASSERT_THROW", "ASSERT_NO_THROW",
}

type gtestDialect struct{}

func (gtestDialect) framework() Framework { return GoogleTest }

func (gtestDialect) detectInclude(content string) bool {
	return gtestIncludeRe.MatchString(content)
}

func (gtestDialect) detectMacro(content string) bool {
	return gtestCaseRe.MatchString(content)
}

func (gtestDialect) match(lines []string, start int) (*TestCase, int, bool) {
	m := gtestCaseRe.FindStringSubmatch(lines[start])
	if m == nil {
		return nil, 0, false
	}

	tc := &TestCase{
		Framework: GoogleTest,
		Type:      m[1],
		Suite:     m[2],
		Name:      m[3],
	}
	if strings.Contains(tc.Type, "TEST_F") {
		tc.Fixture = tc.Suite
	}

	bodyStart, bodyEnd := braces.BodyBounds(lines, start)
	tc.Assertions = extractAssertions(lines[bodyStart:bodyEnd+1], gtestAssertions)
	return tc, bodyEnd, true
}

// Catch2 and doctest share their macro grammar; only the include path
// tells them apart, and only Catch2 carries a tag string.

var (
	catch2IncludeRe  = regexp.MustCompile(`#include\s*[<"]catch2?/catch.*\.hpp[>"]`)
	doctestIncludeRe = regexp.MustCompile(`#include\s*[<"]doctest/doctest\.h[>"]`)
	catch2CaseRe     = regexp.MustCompile(`(TEST_CASE|SCENARIO)\s*\(\s*"([^"]+)"(?:\s*,\s*"([^"]*)")?\s*\)`)
	catch2TemplateRe = regexp.MustCompile(`TEMPLATE_TEST_CASE\s*\(\s*"([^"]+)"`)
	doctestCaseRe    = regexp.MustCompile(`(TEST_CASE|SCENARIO|TEST_SUITE)\s*\(\s*"([^"]+)"\s*\)`)
)

var catchAssertions = []string{
	"REQUIRE", "REQUIRE_FALSE", "REQUIRE_THROWS", "REQUIRE_NOTHROW",
	"CHECK", "CHECK_FALSE", "CHECK_THROWS", "CHECK_NOTHROW",
}

type catchDialect struct {
	fw Framework
}

func (d catchDialect) framework() Framework { return d.fw }

func (d catchDialect) detectInclude(content string) bool {
	if d.fw == Doctest {
		return doctestIncludeRe.MatchString(content)
	}
	return catch2IncludeRe.MatchString(content)
}

func (d catchDialect) detectMacro(content string) bool {
	if d.fw == Doctest {
		return doctestCaseRe.MatchString(content)
	}
	return catch2CaseRe.MatchString(content) || catch2TemplateRe.MatchString(content)
}

func (d catchDialect) match(lines []string, start int) (*TestCase, int, bool) {
	line := lines[start]

	var tc *TestCase
	if d.fw == Doctest {
		if m := doctestCaseRe.FindStringSubmatch(line); m != nil {
			tc = &TestCase{Framework: Doctest, Type: m[1], Name: m[2]}
		}
	} else if m := catch2CaseRe.FindStringSubmatch(line); m != nil {
		tc = &TestCase{Framework: Catch2, Type: m[1], Name: m[2], Suite: m[3]}
	} else if m := catch2TemplateRe.FindStringSubmatch(line); m != nil {
		tc = &TestCase{Framework: Catch2, Type: "TEMPLATE_TEST_CASE", Name: m[1]}
	}
	if tc == nil {
		return nil, 0, false
	}

	bodyStart, bodyEnd := braces.BodyBounds(lines, start)
	tc.Assertions = extractAssertions(lines[bodyStart:bodyEnd+1], catchAssertions)
	return tc, bodyEnd, true
}

// Boost.Test

var (
	boostIncludeRe = regexp.MustCompile(`#include\s*[<"]boost/test/`)
	boostAutoRe    = regexp.MustCompile(`(BOOST_AUTO_TEST_CASE)\s*\(\s*(\w+)\s*\)`)
	boostFixtureRe = regexp.MustCompile(`(BOOST_FIXTURE_TEST_CASE)\s*\(\s*(\w+)\s*,\s*(\w+)\s*\)`)
	boostSuiteRe   = regexp.MustCompile(`(BOOST_AUTO_TEST_SUITE)\s*\(\s*(\w+)\s*\)`)
)

var boostAssertions = []string{
	"BOOST_CHECK", "BOOST_REQUIRE", "BOOST_CHECK_EQUAL", "BOOST_REQUIRE_EQUAL",
	"BOOST_CHECK_THROW", "BOOST_REQUIRE_THROW", "BOOST_CHECK_NO_THROW",
}

type boostDialect struct{}

func (boostDialect) framework() Framework { return BoostTest }

func (boostDialect) detectInclude(content string) bool {
	return boostIncludeRe.MatchString(content)
}

func (boostDialect) detectMacro(content string) bool {
	return boostAutoRe.MatchString(content) ||
		boostFixtureRe.MatchString(content) ||
		boostSuiteRe.MatchString(content)
}

func (boostDialect) match(lines []string, start int) (*TestCase, int, bool) {
	line := lines[start]

	if m := boostFixtureRe.FindStringSubmatch(line); m != nil {
		tc := &TestCase{Framework: BoostTest, Type: m[1], Name: m[2], Fixture: m[3]}
		bodyStart, bodyEnd := braces.BodyBounds(lines, start)
		tc.Assertions = extractAssertions(lines[bodyStart:bodyEnd+1], boostAssertions)
		return tc, bodyEnd, true
	}
	if m := boostAutoRe.FindStringSubmatch(line); m != nil {
		tc := &TestCase{Framework: BoostTest, Type: m[1], Name: m[2]}
		bodyStart, bodyEnd := braces.BodyBounds(lines, start)
		tc.Assertions = extractAssertions(lines[bodyStart:bodyEnd+1], boostAssertions)
		return tc, bodyEnd, true
	}
	// Suite openers have no body of their own; stop at the macro line so
	// the first contained test case is not swallowed.
	if m := boostSuiteRe.FindStringSubmatch(line); m != nil {
		tc := &TestCase{Framework: BoostTest, Type: m[1], Name: m[2]}
		return tc, start, true
	}
	return nil, 0, false
}

// CppUnit recognizes both the CPPUNIT_TEST registration macro and fixture
// methods whose name starts with "test".

var (
	cppunitIncludeRe = regexp.MustCompile(`#include\s*[<"]cppunit/`)
	cppunitMacroRe   = regexp.MustCompile(`CPPUNIT_TEST\s*\(\s*(\w+)\s*\)`)
	cppunitMethodRe  = regexp.MustCompile(`void\s+(test\w*)\s*\(`)
)

var cppunitAssertions = []string{
	"CPPUNIT_ASSERT", "CPPUNIT_ASSERT_EQUAL", "CPPUNIT_ASSERT_THROW",
	"CPPUNIT_ASSERT_NO_THROW", "CPPUNIT_ASSERT_MESSAGE", "CPPUNIT_FAIL",
}

type cppunitDialect struct{}

func (cppunitDialect) framework() Framework { return CppUnit }

func (cppunitDialect) detectInclude(content string) bool {
	return cppunitIncludeRe.MatchString(content)
}

func (cppunitDialect) detectMacro(content string) bool {
	return cppunitMacroRe.MatchString(content)
}

func (cppunitDialect) match(lines []string, start int) (*TestCase, int, bool) {
	line := lines[start]

	// Registration macro: a single line, no body to scan.
	if m := cppunitMacroRe.FindStringSubmatch(line); m != nil {
		return &TestCase{Framework: CppUnit, Type: "CPPUNIT_TEST", Name: m[1]}, start, true
	}
	if m := cppunitMethodRe.FindStringSubmatch(line); m != nil {
		tc := &TestCase{Framework: CppUnit, Type: "CPPUNIT_TEST_METHOD", Name: m[1]}
		bodyStart, bodyEnd := braces.BodyBounds(lines, start)
		tc.Assertions = extractAssertions(lines[bodyStart:bodyEnd+1], cppunitAssertions)
		return tc, bodyEnd, true
	}
	return nil, 0, false
}
