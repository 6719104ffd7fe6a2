// Where: internal/config/store.go
// What: Persisted per-directory configuration store.
// Why: Resolve saved profile/region defaults for a working directory, git-style.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/lambda-function-cli/internal/meta"
)

// Entry holds the saved credential defaults for one directory. Field names
// follow the on-disk JSON keys the store has always used.
type Entry struct {
	Profile         string `json:"profile_name,omitempty"`
	Region          string `json:"region_name,omitempty"`
	AccessKeyID     string `json:"aws_access_key_id,omitempty"`
	SecretAccessKey string `json:"aws_secret_access_key,omitempty"`
	SessionToken    string `json:"aws_session_token,omitempty"`
}

// IsZero reports whether the entry carries no values.
func (e Entry) IsZero() bool {
	return e == Entry{}
}

// Store maps absolute directory paths to saved entries.
type Store struct {
	Entries map[string]Entry
}

// ConfigError reports a failure reading, parsing, or writing the store.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DefaultPath returns the store location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Path: meta.ConfigFileName, Err: err}
	}
	return filepath.Join(home, meta.ConfigDirName, meta.ConfigFileName), nil
}

// Load reads and validates the store file. A missing file yields an empty
// store; any other failure is a ConfigError.
func Load(path string) (Store, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{Entries: map[string]Entry{}}, nil
		}
		return Store{}, &ConfigError{Path: path, Err: err}
	}

	jsonData, err := validateStoreDocument(payload)
	if err != nil {
		return Store{}, &ConfigError{Path: path, Err: err}
	}

	entries := map[string]Entry{}
	if err := json.Unmarshal(jsonData, &entries); err != nil {
		return Store{}, &ConfigError{Path: path, Err: err}
	}
	normalized := make(map[string]Entry, len(entries))
	for dir, entry := range entries {
		expanded, err := expandHome(dir)
		if err != nil {
			return Store{}, &ConfigError{Path: path, Err: fmt.Errorf("entry %q: %w", dir, err)}
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return Store{}, &ConfigError{Path: path, Err: fmt.Errorf("entry %q: %w", dir, err)}
		}
		normalized[abs] = entry
	}
	return Store{Entries: normalized}, nil
}

// expandHome resolves a leading ~ against the user's home directory.
// Hand-edited store files commonly use it for entry keys.
func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}

// Save writes the store atomically, creating the parent directory with
// user-only permissions since entries may carry secrets.
func Save(path string, store Store) error {
	payload, err := json.MarshalIndent(store.Entries, "", "    ")
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*")
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &ConfigError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &ConfigError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return &ConfigError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}

// Effective returns the entry for dir, falling back to the nearest parent
// directory with a saved entry. The second return is the matched directory.
func (s Store) Effective(dir string) (Entry, string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Entry{}, "", false
	}
	for {
		if entry, ok := s.Entries[abs]; ok {
			return entry, abs, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return Entry{}, "", false
		}
		abs = parent
	}
}

// Exact returns the entry saved for exactly dir, without parent fallback.
func (s Store) Exact(dir string) (Entry, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Entry{}, false
	}
	entry, ok := s.Entries[abs]
	return entry, ok
}

// Set stores an entry for dir under its absolute path.
func (s *Store) Set(dir string, entry Entry) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return &ConfigError{Path: dir, Err: err}
	}
	if s.Entries == nil {
		s.Entries = map[string]Entry{}
	}
	s.Entries[abs] = entry
	return nil
}

// Delete removes the entry saved for exactly dir. It reports whether an
// entry was present.
func (s *Store) Delete(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	if _, ok := s.Entries[abs]; !ok {
		return false
	}
	delete(s.Entries, abs)
	return true
}
