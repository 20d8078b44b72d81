// Package scanner finds C++ source and header files for processing.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsupportedExtension marks a path whose extension is not a
// recognized C++ header or source extension.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

var supportedExtensions = map[string]bool{
	".h": true, ".hpp": true, ".hh": true, ".hxx": true,
	".cpp": true, ".cc": true, ".cxx": true, ".c++": true,
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git": true, ".svn": true, "build": true,
	"cmake-build-debug": true, "cmake-build-release": true,
}

// IsSupported reports whether the path has a recognized C++ extension.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsHeader reports whether the path has a header extension.
func IsHeader(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".h", ".hpp", ".hh", ".hxx":
		return true
	}
	return false
}

// CheckExtension returns ErrUnsupportedExtension for paths that cannot
// be processed.
func CheckExtension(path string) error {
	if !IsSupported(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(path))
	}
	return nil
}

// Scanner finds C++ files in directories.
type Scanner struct {
	Excludes  []string
	Recursive bool
}

// NewScanner creates a scanner with extra excluded directory names.
func NewScanner(excludes []string, recursive bool) *Scanner {
	return &Scanner{Excludes: excludes, Recursive: recursive}
}

// FindFiles returns the sorted C++ files under dir.
func (s *Scanner) FindFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	var files []string
	if !s.Recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && IsSupported(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
		sort.Strings(files)
		return files, nil
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if path != dir && s.shouldSkip(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSupported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ProjectDirs returns the standard source directories that exist under a
// project root.
func ProjectDirs(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	candidates := []string{
		"include", "inc", "includes",
		"src", "source", "sources", "test", "tests",
	}
	var dirs []string
	for _, name := range candidates {
		p := filepath.Join(root, name)
		if st, err := os.Stat(p); err == nil && st.IsDir() {
			dirs = append(dirs, p)
		}
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no standard source directories found in %s", root)
	}
	return dirs, nil
}

func (s *Scanner) shouldSkip(name string) bool {
	if skipDirs[name] {
		return true
	}
	for _, exclude := range s.Excludes {
		if name == exclude {
			return true
		}
	}
	return false
}
