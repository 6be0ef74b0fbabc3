package buildinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLabel(t *testing.T) {
	cases := []struct {
		name    string
		number  string
		info    string
		version string
		flavor  string
		want    string
		app     string
	}{
		{"text_number", "42\n", "", "1.2.0", FlavorProd, "Aerial Rush  v1.2.0  b42", "Aerial Rush"},
		{"missing_number", "", "", "1.2.0", FlavorProd, "Aerial Rush  v1.2.0  b?", "Aerial Rush"},
		{"blank_number", "  \n", "", "1.2.0", FlavorProd, "Aerial Rush  v1.2.0  b?", "Aerial Rush"},
		{"yaml_fallback", "", "build_number: 7\n", "0.1.0", FlavorProd, "Aerial Rush  v0.1.0  b7", "Aerial Rush"},
		{"text_wins", "9", "build_number: 7\n", "0.1.0", FlavorProd, "Aerial Rush  v0.1.0  b9", "Aerial Rush"},
		{"dev_flavor", "3", "", "0.1.0", FlavorDev, "Aerial Rush  v0.1.0-dev  b3", "Aerial Rush Dev"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := Parse([]byte(c.number), []byte(c.info), c.version, c.flavor)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := b.Label(); got != c.want {
				t.Fatalf("label = %q, want %q", got, c.want)
			}
			if b.AppName != c.app {
				t.Fatalf("app name = %q, want %q", b.AppName, c.app)
			}
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse(nil, []byte("build_number: [nope"), "0.1.0", FlavorProd); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLastBuild(t *testing.T) {
	b, err := Parse(nil, []byte("last_build_utc: \"2026-10-18T09:00:00Z\"\n"), "0.1.0", FlavorProd)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, ok := b.LastBuild()
	if !ok {
		t.Fatalf("expected last build time")
	}
	if want := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("last build = %v, want %v", got, want)
	}

	b.Info.LastBuildUTC = "yesterday"
	if _, ok := b.LastBuild(); ok {
		t.Fatalf("expected malformed time to be rejected")
	}
}

func TestLoadEmbedded(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.HasPrefix(b.Label(), "Aerial Rush  v") {
		t.Fatalf("unexpected label %q", b.Label())
	}
	if b.Number == "" {
		t.Fatalf("build number must never be empty")
	}
}

func TestStamp(t *testing.T) {
	t.Run("fresh_dir", func(t *testing.T) {
		dir := t.TempDir()
		now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
		info, err := Stamp(dir, now)
		if err != nil {
			t.Fatalf("Stamp: %v", err)
		}
		if info.BuildNumber != 1 {
			t.Fatalf("build number = %d, want 1", info.BuildNumber)
		}
		if info.LastBuildUTC != "2026-01-02T02:04:05Z" {
			t.Fatalf("last build = %q", info.LastBuildUTC)
		}
	})

	t.Run("increments_and_roundtrips", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, BuildNumberFile), []byte("41\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Stamp(dir, time.Now()); err != nil {
			t.Fatalf("Stamp: %v", err)
		}

		number, err := os.ReadFile(filepath.Join(dir, BuildNumberFile))
		if err != nil {
			t.Fatal(err)
		}
		info, err := os.ReadFile(filepath.Join(dir, InfoFile))
		if err != nil {
			t.Fatal(err)
		}
		b, err := Parse(number, info, "0.1.0", FlavorProd)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if b.Number != "42" || b.Info.BuildNumber != 42 {
			t.Fatalf("got number %q / %d, want 42", b.Number, b.Info.BuildNumber)
		}
		if _, ok := b.LastBuild(); !ok {
			t.Fatalf("expected stamped time to parse")
		}
	})

	t.Run("garbage_restarts", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, BuildNumberFile), []byte("abc"), 0o644); err != nil {
			t.Fatal(err)
		}
		info, err := Stamp(dir, time.Now())
		if err != nil {
			t.Fatalf("Stamp: %v", err)
		}
		if info.BuildNumber != 1 {
			t.Fatalf("build number = %d, want 1", info.BuildNumber)
		}
	})
}
