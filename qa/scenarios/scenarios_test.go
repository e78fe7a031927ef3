package scenarios

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenarios found")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestParseError(t *testing.T) {
	for _, name := range []string{"invalid_capacity", "empty_catalog", "invalid_config", "record_mismatch"} {
		if err, perr := parseError(name); err == nil || perr != nil {
			t.Errorf("%s not mapped", name)
		}
	}
	if _, err := parseError("zero_capacity"); err == nil {
		t.Fatal("zero_capacity cannot come out of a built catalog")
	}
	if _, err := parseError("boom"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	tmp, err := os.CreateTemp(t.TempDir(), "bad*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(":"); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp.Name()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
