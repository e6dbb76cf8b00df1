// Package solution names, writes and scans solution files. A solution file is
// named "<frontend id>_<slug>.<ext>", for example "1_two-sum.go".
package solution

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/model"
)

var extensions = map[string]string{
	"bash":       "sh",
	"c":          "c",
	"cpp":        "cpp",
	"csharp":     "cs",
	"dart":       "dart",
	"elixir":     "ex",
	"erlang":     "erl",
	"golang":     "go",
	"java":       "java",
	"javascript": "js",
	"kotlin":     "kt",
	"mysql":      "sql",
	"php":        "php",
	"python":     "py",
	"python3":    "py",
	"racket":     "rkt",
	"ruby":       "rb",
	"rust":       "rs",
	"scala":      "scala",
	"swift":      "swift",
	"typescript": "ts",
}

// preferred resolves extensions shared by several languages.
var preferred = map[string]string{
	"py": "python3",
}

var commentPrefix = map[string]string{
	"py":  "#",
	"rb":  "#",
	"sh":  "#",
	"ex":  "#",
	"sql": "--",
	"erl": "%",
	"rkt": ";;",
}

var fileNamePattern = regexp.MustCompile(`^(\d+)_([a-z0-9-]+)\.(\w+)$`)

// Extension maps a snippet language slug to a file extension.
func Extension(langSlug string) (string, error) {
	ext, ok := extensions[langSlug]
	if !ok {
		return "", apperr.New(apperr.KindLanguageMissing, langSlug)
	}
	return ext, nil
}

// LangSlug maps a file extension back to a language slug.
func LangSlug(ext string) (string, error) {
	if slug, ok := preferred[ext]; ok {
		return slug, nil
	}
	for slug, e := range extensions {
		if e == ext {
			return slug, nil
		}
	}
	return "", apperr.New(apperr.KindLangIDParse, ext)
}

// FileName builds the solution file name for a question.
func FileName(id int, slug, langSlug string) (string, error) {
	ext, err := Extension(langSlug)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d_%s.%s", id, slug, ext), nil
}

// File is a parsed solution file name.
type File struct {
	ID       int
	Slug     string
	LangSlug string
}

// ParseFileName splits a solution file name into its parts.
func ParseFileName(name string) (File, error) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return File{}, apperr.New(apperr.KindFilenameFormat, name)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return File{}, apperr.Wrap(apperr.KindFilenameFormat, err, name)
	}
	lang, err := LangSlug(m[3])
	if err != nil {
		return File{}, err
	}
	return File{ID: id, Slug: m[2], LangSlug: lang}, nil
}

// Writer owns the solutions directory.
type Writer struct {
	Dir string
}

// Write creates the solution file for q from snippet. An existing file is left
// untouched and reported with created false.
func (w Writer) Write(q model.Question, snippet model.Snippet) (path string, created bool, err error) {
	name, err := FileName(q.FrontendID, q.Slug, snippet.LangSlug)
	if err != nil {
		return "", false, err
	}
	path = filepath.Join(w.Dir, name)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create %s: %w", w.Dir, err)
	}
	if err := os.WriteFile(path, []byte(header(q, name)+snippet.Code+"\n"), 0o644); err != nil {
		return "", false, fmt.Errorf("write %s: %w", path, err)
	}
	return path, true, nil
}

func header(q model.Question, name string) string {
	prefix := "//"
	if p, ok := commentPrefix[filepath.Ext(name)[1:]]; ok {
		prefix = p
	}
	return fmt.Sprintf("%s %d. %s\n%s https://leetcode.com/problems/%s/\n\n", prefix, q.FrontendID, q.Title, prefix, q.Slug)
}

// Scan returns the frontend ids that have a solution file. Files that do not
// follow the naming scheme are ignored. A missing directory yields no ids.
func (w Writer) Scan() (map[int]bool, error) {
	entries, err := os.ReadDir(w.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[int]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.Dir, err)
	}
	ids := make(map[int]bool, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		f, err := ParseFileName(entry.Name())
		if err != nil {
			continue
		}
		ids[f.ID] = true
	}
	return ids, nil
}

// Languages lists the supported language slugs.
func Languages() []string {
	out := make([]string, 0, len(extensions))
	for slug := range extensions {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}
