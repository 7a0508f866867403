package siptrack

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestMappingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme_mapping.json")
	want := map[string]string{
		"Fund X - Growth Option": "C1",
		"Fund Y - Direct Plan":   "C2",
	}
	if err := SaveMappings(path, want); err != nil {
		t.Fatalf("SaveMappings: %v", err)
	}
	got, err := LoadMappings(path)
	if err != nil {
		t.Fatalf("LoadMappings: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadMappings = %v, want %v", got, want)
	}
}

func TestLoadMappingsMissingFile(t *testing.T) {
	got, err := LoadMappings(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadMappings: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadMappings on a missing file = %v, want empty", got)
	}
}
