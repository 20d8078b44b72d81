// Package processor orchestrates comment generation over files,
// directories, and whole project trees.
package processor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/psanodiya94/doxygen-comment-generator/internal/generator"
	"github.com/psanodiya94/doxygen-comment-generator/internal/log"
	"github.com/psanodiya94/doxygen-comment-generator/internal/scanner"
	"github.com/psanodiya94/doxygen-comment-generator/internal/testframe"
)

// Options controls how files are processed and where output goes.
type Options struct {
	EnhanceExisting bool
	Recursive       bool
	DryRun          bool
	OutputDir       string
	Exclude         []string

	// Out receives the transformed content in dry-run mode. Defaults to
	// os.Stdout.
	Out io.Writer
}

// Result records the outcome of processing one file.
type Result struct {
	File      string              `json:"file"`
	OK        bool                `json:"ok"`
	Message   string              `json:"message,omitempty"`
	TestFile  bool                `json:"test_file,omitempty"`
	Framework testframe.Framework `json:"framework,omitempty"`
}

// Processor runs the generator over inputs.
type Processor struct {
	opts Options
}

// New creates a processor with the given options.
func New(opts Options) *Processor {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Processor{opts: opts}
}

// ProcessFile generates comments for a single file. The baseDir, when
// not empty, anchors the relative path recreated under OutputDir.
func (p *Processor) ProcessFile(path, baseDir string) Result {
	if err := scanner.CheckExtension(path); err != nil {
		return Result{File: path, Message: err.Error()}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{File: path, Message: fmt.Sprintf("read failed: %v", err)}
	}

	// A fresh generator per file keeps scan state from leaking between
	// inputs.
	gen := generator.New(generator.Options{EnhanceExisting: p.opts.EnhanceExisting})
	lines := splitLines(string(data))
	outLines := gen.Process(lines)

	res := Result{
		File:      path,
		OK:        true,
		TestFile:  gen.IsTestFile(),
		Framework: gen.Framework(),
	}
	if res.TestFile {
		log.Logger().Infof("Detected test file using %s framework", res.Framework.DisplayName())
	}

	if p.opts.DryRun {
		fmt.Fprint(p.opts.Out, generator.Render(outLines))
		res.Message = "dry run, no changes written"
		return res
	}

	target, err := p.targetPath(path, baseDir)
	if err != nil {
		return Result{File: path, Message: err.Error(), TestFile: res.TestFile, Framework: res.Framework}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Result{File: path, Message: fmt.Sprintf("creating output directory: %v", err)}
	}
	if err := os.WriteFile(target, []byte(generator.Render(outLines)), 0o644); err != nil {
		return Result{File: path, Message: fmt.Sprintf("write failed: %v", err)}
	}

	log.Logger().Debugf("processed %s -> %s", path, target)
	return res
}

// ProcessDirectory generates comments for every C++ file under dir.
func (p *Processor) ProcessDirectory(dir string) ([]Result, error) {
	sc := scanner.NewScanner(p.opts.Exclude, p.opts.Recursive)
	files, err := sc.FindFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		log.Logger().Warnf("no C++ files found in %s", dir)
	}

	results := make([]Result, 0, len(files))
	for _, f := range files {
		results = append(results, p.ProcessFile(f, dir))
	}
	return results, nil
}

// ProcessProject processes the standard source directories under a
// project root.
func (p *Processor) ProcessProject(root string) ([]Result, error) {
	dirs, err := scanner.ProjectDirs(root)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, dir := range dirs {
		log.Logger().Infof("processing %s", dir)
		rs, err := p.ProcessDirectory(dir)
		if err != nil {
			return results, err
		}
		results = append(results, rs...)
	}
	return results, nil
}

func (p *Processor) targetPath(path, baseDir string) (string, error) {
	if p.opts.OutputDir == "" {
		return path, nil
	}
	if baseDir == "" {
		// Single-file mode: -o names the output file itself, unless it
		// is an existing directory.
		if st, err := os.Stat(p.opts.OutputDir); err == nil && st.IsDir() {
			return filepath.Join(p.opts.OutputDir, filepath.Base(path)), nil
		}
		return p.opts.OutputDir, nil
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", fmt.Errorf("resolving output path for %s: %w", path, err)
	}
	return filepath.Join(p.opts.OutputDir, rel), nil
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	// Split leaves a trailing empty element for newline-terminated files.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
