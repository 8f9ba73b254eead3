package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user tool.

// DefaultFileName is the data file used when nothing else is configured.
const DefaultFileName = "user_data.txt"

// Record is one persisted task. Fields are declared in key order so the
// written file reads the same as a sort_keys dump.
type Record struct {
	Body           string `json:"body"`
	Category       string `json:"category"`
	RepeatInterval string `json:"repeat_interval,omitempty"`
	RepeatMode     string `json:"repeat_mode,omitempty"`
	StartDate      string `json:"start_date"`
}

// File is the whole data document. Top-level keys other than categories and
// tasks are kept in Extra and written back untouched.
type File struct {
	Categories []string
	Tasks      []Record
	Extra      map[string]json.RawMessage
}

func (f *File) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["categories"]; ok {
		if err := json.Unmarshal(v, &f.Categories); err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		delete(raw, "categories")
	}
	if v, ok := raw["tasks"]; ok {
		if err := json.Unmarshal(v, &f.Tasks); err != nil {
			return fmt.Errorf("tasks: %w", err)
		}
		delete(raw, "tasks")
	}
	if len(raw) > 0 {
		f.Extra = raw
	}
	return nil
}

func (f File) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(f.Extra)+2)
	for k, v := range f.Extra {
		doc[k] = v
	}
	categories := f.Categories
	if categories == nil {
		categories = []string{}
	}
	tasks := f.Tasks
	if tasks == nil {
		tasks = []Record{}
	}
	doc["categories"] = categories
	doc["tasks"] = tasks
	// map keys marshal sorted
	return json.Marshal(doc)
}

// DataPath resolves name against the working directory unless it is absolute.
func DataPath(name string) (string, error) {
	if name == "" {
		name = DefaultFileName
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, name), nil
}

// Load reads and validates the data file. A missing file is an empty store.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{Categories: []string{}, Tasks: []Record{}}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("validate %s: %w", filepath.Base(path), err)
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return &f, nil
}

// Save overwrites path with f. The document is written to a temp file in the
// same directory and renamed into place.
func Save(path string, f *File) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
