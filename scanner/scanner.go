package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type FileInfo struct {
	Path string
	Size int64
}

// Scanner discovers the files eligible for rewriting under a root
// directory. Discovery is purely path-based: extension match, skipped
// directory segments, and an ignore list of path substrings.
type Scanner struct {
	rootDir      string
	extensions   []string
	skipSegments []string
	ignorePaths  []string
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// SkipSegments excludes any path containing one of the given directory
// names as a segment, e.g. build output or test trees.
func (s *Scanner) SkipSegments(segments ...string) *Scanner {
	s.skipSegments = append(s.skipSegments, segments...)
	return s
}

// IgnorePaths excludes any path containing one of the given substrings.
func (s *Scanner) IgnorePaths(paths ...string) *Scanner {
	s.ignorePaths = append(s.ignorePaths, paths...)
	return s
}

// Scan walks the root and returns eligible files sorted by path, so batch
// processing order is reproducible across runs.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if s.isTargetFile(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if !s.hasTargetExtension(path) {
		return false
	}

	slashed := filepath.ToSlash(path)
	for _, segment := range strings.Split(slashed, "/") {
		for _, skip := range s.skipSegments {
			if segment == skip {
				return false
			}
		}
	}
	for _, ignore := range s.ignorePaths {
		if strings.Contains(slashed, ignore) {
			return false
		}
	}
	return true
}

func (s *Scanner) hasTargetExtension(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
