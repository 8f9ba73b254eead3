package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `{
  "categories": ["Work", "Home"],
  "owner": {"name": "sam"},
  "tasks": [
    {"body": "Finish report.", "category": "Work", "start_date": "2015-07-20"},
    {"body": "Water plants.", "category": "Home", "start_date": "2015-7-22",
     "repeat_mode": "Every", "repeat_interval": "1 day"}
  ]
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load(writeFile(t, sample))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(f.Categories) != 2 || f.Categories[0] != "Work" {
		t.Errorf("Categories = %v", f.Categories)
	}
	if len(f.Tasks) != 2 {
		t.Fatalf("Tasks count: got %d, want 2", len(f.Tasks))
	}
	if f.Tasks[1].RepeatMode != "Every" || f.Tasks[1].RepeatInterval != "1 day" {
		t.Errorf("repeat fields not loaded: %+v", f.Tasks[1])
	}
	if _, ok := f.Extra["owner"]; !ok {
		t.Error("unknown top-level key should be kept in Extra")
	}
}

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(f.Tasks) != 0 || len(f.Categories) != 0 {
		t.Errorf("expected empty file, got %+v", f)
	}
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"not json", `{"tasks": [`, "json"},
		{"missing categories", `{"tasks": []}`, "categories"},
		{"bad date", `{"categories": [], "tasks": [{"body": "x", "category": "c", "start_date": "July 4"}]}`, "tasks[0].start_date"},
		{"missing body", `{"categories": [], "tasks": [{"category": "c", "start_date": "2015-07-04"}]}`, "tasks[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestSaveWritesSortedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	f, err := Load(writeFile(t, sample))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := Save(path, f); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(b)

	ci := strings.Index(out, `"categories"`)
	oi := strings.Index(out, `"owner"`)
	ti := strings.Index(out, `"tasks"`)
	if !(ci >= 0 && ci < oi && oi < ti) {
		t.Errorf("top-level keys not in sorted order:\n%s", out)
	}
	if !strings.Contains(out, `"start_date": "2015-7-22"`) {
		t.Errorf("records should be written as given:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("expected trailing newline")
	}
	if strings.Contains(out, `"repeat_mode": ""`) {
		t.Error("empty repeat fields should be omitted")
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.Tasks) != 2 || reloaded.Tasks[0].Body != "Finish report." {
		t.Errorf("reloaded tasks = %+v", reloaded.Tasks)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the data file after save, found %d entries", len(entries))
	}
}

func TestSaveEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := Save(path, &File{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("empty document should still validate: %v", err)
	}
	if f.Categories == nil || f.Tasks == nil {
		t.Error("expected empty, non-nil slices after round trip")
	}
}

func TestDataPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "data.json")
	got, err := DataPath(abs)
	if err != nil || got != abs {
		t.Errorf("DataPath(%q) = %q, %v", abs, got, err)
	}
	got, err = DataPath("")
	if err != nil {
		t.Fatalf("DataPath: %v", err)
	}
	if filepath.Base(got) != DefaultFileName || !filepath.IsAbs(got) {
		t.Errorf("DataPath(\"\") = %q", got)
	}
}
