// Package buildinfo exposes the version and build number shown by the build
// overlay and stamped by cmd/buildstamp.
package buildinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aerialrush/aerialrush/assets"
	"gopkg.in/yaml.v3"
)

// Set with -ldflags "-X github.com/aerialrush/aerialrush/buildinfo.Version=...".
var (
	Version = "0.1.0"
	Flavor  = FlavorProd
)

const (
	FlavorProd = "prod"
	FlavorDev  = "dev"

	BuildNumberFile = "build_number"
	InfoFile        = "build_info.yaml"

	unknownBuild = "?"
)

// Info is the stamped build metadata asset.
type Info struct {
	BuildNumber  int    `yaml:"build_number"`
	LastBuildUTC string `yaml:"last_build_utc"`
}

// Build is everything the overlay needs to describe the running binary.
type Build struct {
	AppName string
	Version string
	Number  string
	Info    Info
}

// Load reads the embedded build assets using the link-time version and flavor.
func Load() (Build, error) {
	number, err := assets.LoadFile(BuildNumberFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Build{}, fmt.Errorf("buildinfo: load %s: %w", BuildNumberFile, err)
	}
	info, err := assets.LoadFile(InfoFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Build{}, fmt.Errorf("buildinfo: load %s: %w", InfoFile, err)
	}
	return Parse(number, info, Version, Flavor)
}

// Parse assembles a Build from raw asset contents. Either asset may be empty.
func Parse(numberText, infoYAML []byte, version, flavor string) (Build, error) {
	var info Info
	if len(strings.TrimSpace(string(infoYAML))) > 0 {
		if err := yaml.Unmarshal(infoYAML, &info); err != nil {
			return Build{}, fmt.Errorf("buildinfo: unmarshal %s: %w", InfoFile, err)
		}
	}

	number := strings.TrimSpace(string(numberText))
	if number == "" && info.BuildNumber > 0 {
		number = strconv.Itoa(info.BuildNumber)
	}
	if number == "" {
		number = unknownBuild
	}

	b := Build{
		AppName: "Aerial Rush",
		Version: version,
		Number:  number,
		Info:    info,
	}
	if flavor == FlavorDev {
		b.AppName += " Dev"
		b.Version += "-dev"
	}
	return b, nil
}

// Label is the overlay text, e.g. "Aerial Rush  v0.1.0  b42".
func (b Build) Label() string {
	return fmt.Sprintf("Aerial Rush  v%s  b%s", b.Version, b.Number)
}

// LastBuild parses Info.LastBuildUTC; ok is false when it is missing or malformed.
func (b Build) LastBuild() (time.Time, bool) {
	if b.Info.LastBuildUTC == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, b.Info.LastBuildUTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Stamp increments the build number stored in dir and records now as the last
// build time. A missing or unreadable number restarts at 1.
func Stamp(dir string, now time.Time) (Info, error) {
	numberPath := filepath.Join(dir, BuildNumberFile)
	infoPath := filepath.Join(dir, InfoFile)

	current := 0
	if data, err := os.ReadFile(numberPath); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && n > 0 {
			current = n
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Info{}, fmt.Errorf("buildinfo: read %s: %w", numberPath, err)
	}

	info := Info{
		BuildNumber:  current + 1,
		LastBuildUTC: now.UTC().Format(time.RFC3339),
	}

	if err := os.WriteFile(numberPath, []byte(strconv.Itoa(info.BuildNumber)+"\n"), 0o644); err != nil {
		return Info{}, fmt.Errorf("buildinfo: write %s: %w", numberPath, err)
	}
	data, err := yaml.Marshal(&info)
	if err != nil {
		return Info{}, fmt.Errorf("buildinfo: marshal %s: %w", InfoFile, err)
	}
	if err := os.WriteFile(infoPath, data, 0o644); err != nil {
		return Info{}, fmt.Errorf("buildinfo: write %s: %w", infoPath, err)
	}
	return info, nil
}
