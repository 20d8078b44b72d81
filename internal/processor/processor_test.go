package processor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psanodiya94/doxygen-comment-generator/internal/testframe"
)

const header = `class Widget {
public:
    Widget();
};
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProcessFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.h")
	writeFile(t, path, header)

	p := New(Options{})
	res := p.ProcessFile(path, "")
	if !res.OK {
		t.Fatalf("ProcessFile failed: %s", res.Message)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "@brief class Widget") {
		t.Errorf("missing class comment in:\n%s", got)
	}
	if !strings.Contains(got, "Constructor for Widget") {
		t.Errorf("missing constructor comment in:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("output must end with a newline")
	}
}

func TestProcessFileDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.h")
	writeFile(t, path, header)

	var buf bytes.Buffer
	p := New(Options{DryRun: true, Out: &buf})
	res := p.ProcessFile(path, "")
	if !res.OK {
		t.Fatalf("ProcessFile failed: %s", res.Message)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != header {
		t.Error("dry run must not modify the input file")
	}
	if !strings.Contains(buf.String(), "@brief class Widget") {
		t.Errorf("dry run must print the transformed content, got:\n%s", buf.String())
	}
}

func TestProcessFileSingleOutputPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.h")
	writeFile(t, path, header)
	target := filepath.Join(dir, "widget_documented.h")

	p := New(Options{OutputDir: target})
	res := p.ProcessFile(path, "")
	if !res.OK {
		t.Fatalf("ProcessFile failed: %s", res.Message)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "@brief class Widget") {
		t.Errorf("output file missing comments:\n%s", data)
	}
}

func TestProcessFileOutputDir(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	path := filepath.Join(src, "nested", "widget.h")
	writeFile(t, path, header)

	p := New(Options{OutputDir: out, Recursive: true})
	res := p.ProcessFile(path, src)
	if !res.OK {
		t.Fatalf("ProcessFile failed: %s", res.Message)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != header {
		t.Error("source file must stay untouched when an output dir is set")
	}

	copied, err := os.ReadFile(filepath.Join(out, "nested", "widget.h"))
	if err != nil {
		t.Fatalf("relative tree not recreated under output dir: %v", err)
	}
	if !strings.Contains(string(copied), "@brief class Widget") {
		t.Errorf("output file missing comments:\n%s", copied)
	}
}

func TestProcessFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	writeFile(t, path, "hello")

	p := New(Options{})
	res := p.ProcessFile(path, "")
	if res.OK {
		t.Fatal("expected failure for unsupported extension")
	}
	if !strings.Contains(res.Message, "unsupported file extension") {
		t.Errorf("unexpected message: %s", res.Message)
	}
}

func TestProcessFileDetectsTestFramework(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget_test.cpp")
	writeFile(t, path, strings.Join([]string{
		"#include <gtest/gtest.h>",
		"",
		"TEST(WidgetTest, Creates) {",
		"    EXPECT_TRUE(ok);",
		"}",
		"",
	}, "\n"))

	p := New(Options{DryRun: true, Out: &bytes.Buffer{}})
	res := p.ProcessFile(path, "")
	if !res.OK {
		t.Fatalf("ProcessFile failed: %s", res.Message)
	}
	if !res.TestFile {
		t.Error("expected TestFile to be set")
	}
	if res.Framework != testframe.GoogleTest {
		t.Errorf("Framework = %v, want GoogleTest", res.Framework)
	}
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.h"), "int getCount();\n")
	writeFile(t, filepath.Join(dir, "sub", "b.cpp"), "void run() {\n}\n")
	writeFile(t, filepath.Join(dir, "README.md"), "docs")

	p := New(Options{Recursive: true})
	results, err := p.ProcessDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if !res.OK {
			t.Errorf("processing %s failed: %s", res.File, res.Message)
		}
	}
}

func TestProcessProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "include", "widget.h"), header)
	writeFile(t, filepath.Join(root, "src", "widget.cpp"), "void run() {\n}\n")
	writeFile(t, filepath.Join(root, "docs", "ignored.cpp"), "int x;\n")

	p := New(Options{Recursive: true})
	results, err := p.ProcessProject(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results (docs/ is not a source dir), got %d", len(results))
	}
}

func TestProcessProjectNoSourceDirs(t *testing.T) {
	p := New(Options{Recursive: true})
	if _, err := p.ProcessProject(t.TempDir()); err == nil {
		t.Fatal("expected an error for a root without source directories")
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("a\r\nb\nc\n")
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("splitLines = %v", got)
	}
}
