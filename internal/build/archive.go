// Where: internal/build/archive.go
// What: Source path resolution and deterministic zip construction.
// Why: Identical input trees must produce byte-identical archives.
package build

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// archiveEpoch is the fixed modification time stamped on every entry.
// The zip format cannot represent times before 1980.
var archiveEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// entryMode is the fixed permission bits stamped on every entry, so host
// umask differences never leak into the output bytes.
const entryMode fs.FileMode = 0o644

// Target is a resolved build source.
type Target struct {
	SourcePath string
	IsDir      bool
}

// Artifact is a fully built archive held in memory. It is never partially
// written: construction either succeeds with a valid zip or fails without
// touching any output path.
type Artifact struct {
	Bytes      []byte
	EntryCount int
}

// Size returns the compressed archive size in bytes.
func (a Artifact) Size() int64 {
	return int64(len(a.Bytes))
}

// ResolveTarget classifies a source path as a single file or a directory.
func ResolveTarget(path string) (Target, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Target{}, &InvalidPathError{Path: path, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Target{}, &InvalidPathError{Path: path, Err: err}
	}
	switch {
	case info.IsDir():
		return Target{SourcePath: abs, IsDir: true}, nil
	case info.Mode().IsRegular():
		return Target{SourcePath: abs, IsDir: false}, nil
	default:
		return Target{}, &InvalidPathError{
			Path: path,
			Err:  fmt.Errorf("not a regular file or directory (mode %s)", info.Mode()),
		}
	}
}

// BuildArchive produces a deterministic zip archive from the target.
// A single file lands at the archive root under its base name; a directory
// contributes every regular file beneath it with relative paths preserved.
// Entries are ordered lexicographically by slash path.
func BuildArchive(target Target) (Artifact, error) {
	entries, err := collectEntries(target)
	if err != nil {
		return Artifact{}, err
	}
	if len(entries) == 0 {
		return Artifact{}, &ArchiveError{
			Source: target.SourcePath,
			Err:    errors.New("no files to archive"),
		}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range names {
		if err := appendEntry(writer, name, entries[name]); err != nil {
			return Artifact{}, &ArchiveError{Source: target.SourcePath, Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return Artifact{}, &ArchiveError{Source: target.SourcePath, Err: err}
	}

	return Artifact{Bytes: buf.Bytes(), EntryCount: len(names)}, nil
}

// collectEntries maps archive entry names to source file paths.
func collectEntries(target Target) (map[string]string, error) {
	if !target.IsDir {
		return map[string]string{
			filepath.Base(target.SourcePath): target.SourcePath,
		}, nil
	}

	entries := map[string]string{}
	err := filepath.WalkDir(target.SourcePath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(target.SourcePath, path)
		if err != nil {
			return err
		}
		entries[filepath.ToSlash(rel)] = path
		return nil
	})
	if err != nil {
		return nil, &ArchiveError{Source: target.SourcePath, Err: err}
	}
	return entries, nil
}

func appendEntry(writer *zip.Writer, name, source string) error {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: archiveEpoch,
	}
	header.SetMode(entryMode)

	dst, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	src, err := os.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}
	return nil
}

// WriteFile persists the artifact to path atomically: the bytes land in a
// temporary sibling file which is renamed into place, so a failed write
// never leaves a truncated archive behind.
func (a Artifact) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".lambda-cli-*.zip")
	if err != nil {
		return &ArchiveError{Source: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(a.Bytes); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &ArchiveError{Source: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &ArchiveError{Source: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &ArchiveError{Source: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &ArchiveError{Source: path, Err: err}
	}
	return nil
}
