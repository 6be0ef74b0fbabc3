package assets

import (
	"embed"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed build_number build_info.yaml
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// SolidRect returns a w x h image filled with c.
func SolidRect(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c)
	return img
}

// Aircraft draws a simple arrow-shaped silhouette pointing up.
func Aircraft(size int, body, wing color.Color) *ebiten.Image {
	size = max(size, 8)
	img := ebiten.NewImage(size, size)
	s := float32(size)

	// wings
	vector.DrawFilledRect(img, 0, s*0.45, s, s*0.18, wing, false)
	// tail
	vector.DrawFilledRect(img, s*0.3, s*0.82, s*0.4, s*0.12, wing, false)
	// fuselage
	vector.DrawFilledRect(img, s*0.42, 0, s*0.16, s, body, false)
	return img
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
