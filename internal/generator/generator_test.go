package generator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/psanodiya94/doxygen-comment-generator/internal/testframe"
)

func process(t *testing.T, input string) []string {
	t.Helper()
	g := New(Options{})
	return g.Process(strings.Split(input, "\n"))
}

// containsSubsequence reports whether want appears in lines in order,
// not necessarily adjacent.
func containsSubsequence(lines, want []string) bool {
	j := 0
	for _, line := range lines {
		if j < len(want) && line == want[j] {
			j++
		}
	}
	return j == len(want)
}

func TestProcessSimpleFunction(t *testing.T) {
	out := process(t, strings.Join([]string{
		"#include <string>",
		"",
		"int add(int a, int b);",
	}, "\n"))

	want := []string{
		"#include <string>",
		"",
		"/**",
		" * @brief Adds a new",
		" * @details",
		" * @param a",
		" * @param b",
		" * @return int",
		" * @throws std::exception on error",
		" */",
		"int add(int a, int b);",
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	inputs := []string{
		strings.Join([]string{
			"#include <string>",
			"",
			"int add(int a, int b);",
		}, "\n"),
		strings.Join([]string{
			"class Widget {",
			"public:",
			"    Widget();",
			"    ~Widget();",
			"",
			"private:",
			"    int count_;",
			"};",
		}, "\n"),
		strings.Join([]string{
			"#include <gtest/gtest.h>",
			"",
			"TEST(MathTest, HandlesAddition) {",
			"    EXPECT_EQ(add(1, 2), 3);",
			"}",
		}, "\n"),
	}
	for _, input := range inputs {
		first := process(t, input)
		second := process(t, strings.Join(first, "\n"))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("second pass changed output (-first +second):\n%s", diff)
		}
	}
}

func TestProcessPreservesInputLines(t *testing.T) {
	input := []string{
		"#include <vector>",
		"",
		"namespace geometry {",
		"",
		"class Point {",
		"public:",
		"    Point();",
		"    int getX() const;",
		"",
		"private:",
		"    int x_;",
		"};",
		"",
		"}",
	}
	g := New(Options{})
	out := g.Process(input)

	inputNonBlank := make([]string, 0, len(input))
	for _, l := range input {
		if strings.TrimSpace(l) != "" {
			inputNonBlank = append(inputNonBlank, l)
		}
	}
	if !containsSubsequence(out, inputNonBlank) {
		t.Fatalf("input lines missing or reordered in output:\n%s", strings.Join(out, "\n"))
	}
}

func TestProcessSpecialMembers(t *testing.T) {
	out := process(t, strings.Join([]string{
		"class Buffer {",
		"public:",
		"    Buffer(const Buffer& other);",
		"    Buffer(Buffer&& other) noexcept;",
		"    Buffer& operator=(const Buffer& other);",
		"    Buffer& operator=(Buffer&& other) noexcept;",
		"};",
	}, "\n"))

	joined := strings.Join(out, "\n")
	for _, brief := range []string{
		"Copy constructor for Buffer",
		"Move constructor for Buffer",
		"Copy assignment operator for Buffer",
		"Move assignment operator for Buffer",
	} {
		if !strings.Contains(joined, brief) {
			t.Errorf("missing brief %q in:\n%s", brief, joined)
		}
	}
}

func TestProcessAccessMarkerStaysAdjacent(t *testing.T) {
	out := process(t, strings.Join([]string{
		"class Widget {",
		"public:",
		"    void reset();",
		"};",
	}, "\n"))

	want := []string{
		"public:",
		"    /**",
	}
	if !containsSubsequence(out, want) {
		t.Fatalf("access marker not directly re-emitted before comment:\n%s",
			strings.Join(out, "\n"))
	}
	for i, line := range out {
		if strings.TrimSpace(line) == "public:" {
			if i+1 >= len(out) || strings.TrimSpace(out[i+1]) == "" {
				t.Fatalf("blank line wedged after access marker:\n%s", strings.Join(out, "\n"))
			}
		}
	}
}

func TestProcessIndentationFidelity(t *testing.T) {
	out := process(t, strings.Join([]string{
		"namespace app {",
		"    class Point {",
		"    public:",
		"        int getX() const;",
		"    };",
		"}",
	}, "\n"))

	sawMethodComment := false
	for _, line := range out {
		if strings.Contains(line, "@brief Gets the x") {
			if !strings.HasPrefix(line, strings.Repeat(" ", 8)+" *") {
				t.Errorf("method comment not indented with declaration: %q", line)
			}
			sawMethodComment = true
		}
	}
	if !sawMethodComment {
		t.Fatalf("no method comment generated:\n%s", strings.Join(out, "\n"))
	}
}

func TestProcessSkipsDocumentedDeclarations(t *testing.T) {
	input := strings.Join([]string{
		"/**",
		" * @brief Adds two numbers",
		" */",
		"int add(int a, int b);",
	}, "\n")
	out := process(t, input)
	if diff := cmp.Diff(strings.Split(input, "\n"), out); diff != "" {
		t.Errorf("documented declaration must pass through (-want +got):\n%s", diff)
	}
}

func TestProcessForwardDeclarationUncommented(t *testing.T) {
	out := process(t, strings.Join([]string{
		"class Widget;",
		"",
		"Widget* make();",
	}, "\n"))
	joined := strings.Join(out, "\n")
	if strings.Contains(joined, "@brief class Widget") {
		t.Fatalf("forward declaration must not be commented:\n%s", joined)
	}
}

func TestProcessAnonymousEnumUncommented(t *testing.T) {
	out := process(t, strings.Join([]string{
		"enum {",
		"    RED,",
		"    GREEN",
		"};",
	}, "\n"))
	for _, line := range out {
		if strings.Contains(line, "@brief") {
			t.Fatalf("anonymous enum must not produce comments, got %q", line)
		}
	}
}

func TestProcessNamedEnum(t *testing.T) {
	out := process(t, strings.Join([]string{
		"enum class Color : int {",
		"    RED,",
		"    GREEN",
		"};",
	}, "\n"))
	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, "@brief Enum Color") {
		t.Fatalf("named enum must be commented:\n%s", joined)
	}
	if strings.Contains(joined, "@brief Variable RED") {
		t.Fatalf("enumerators must not be treated as variables:\n%s", joined)
	}
}

func TestProcessFunctionBodyShielded(t *testing.T) {
	out := process(t, strings.Join([]string{
		"void run() {",
		"    int local = 0;",
		"    helper(local);",
		"}",
	}, "\n"))
	joined := strings.Join(out, "\n")
	if strings.Contains(joined, "@brief Variable local") {
		t.Fatalf("body locals must not be commented:\n%s", joined)
	}
	if c := strings.Count(joined, "/**"); c != 1 {
		t.Fatalf("expected exactly one comment block, got %d:\n%s", c, joined)
	}
}

func TestProcessGoogleTestFile(t *testing.T) {
	g := New(Options{})
	out := g.Process([]string{
		"#include <gtest/gtest.h>",
		"",
		"TEST(MathTest, HandlesAddition) {",
		"    EXPECT_EQ(add(1, 2), 3);",
		"}",
	})

	if !g.IsTestFile() {
		t.Fatal("expected a test file")
	}
	if g.Framework() != testframe.GoogleTest {
		t.Fatalf("Framework = %v, want GoogleTest", g.Framework())
	}

	joined := strings.Join(out, "\n")
	for _, want := range []string{
		"@brief Tests handles addition",
		"Test Suite: MathTest",
		"Framework: Google Test",
		"- Covers equality comparison",
		"@test TEST",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestProcessCapturesExistingCommentsInEnhanceMode(t *testing.T) {
	g := New(Options{EnhanceExisting: true})
	g.Process([]string{
		"/**",
		" * @brief Old docs",
		" */",
		"int add(int a, int b);",
	})

	captured := g.CapturedComments()
	if len(captured) != 1 {
		t.Fatalf("expected 1 captured block, got %d", len(captured))
	}
	if len(captured[0]) != 3 || !strings.Contains(captured[0][1], "Old docs") {
		t.Errorf("unexpected captured block: %v", captured[0])
	}
}

func TestProcessResetsBetweenFiles(t *testing.T) {
	g := New(Options{})
	g.Process([]string{
		"#include <gtest/gtest.h>",
		"TEST(S, N) {}",
	})
	if !g.IsTestFile() {
		t.Fatal("first file should be a test file")
	}

	g.Process([]string{"int x;"})
	if g.IsTestFile() {
		t.Fatal("state leaked: second file is not a test file")
	}
	if g.Framework() != testframe.None {
		t.Fatalf("Framework = %v, want None", g.Framework())
	}
}

func TestRender(t *testing.T) {
	if got := Render([]string{"a", "b"}); got != "a\nb\n" {
		t.Errorf("Render = %q, want %q", got, "a\nb\n")
	}
}
