package poster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Assets is a read-only cache of parsed fonts shared across generations. Faces are created per
// render and closed afterwards; only the parsed font files stay resident.
type Assets struct {
	fonts map[string]*opentype.Font
}

// NewAssets parses the given font files, keyed by the name layouts refer to them by.
func NewAssets(fontFiles map[string][]byte) (*Assets, error) {
	assets := &Assets{fonts: make(map[string]*opentype.Font, len(fontFiles))}
	for name, data := range fontFiles {
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
		}
		assets.fonts[name] = parsed
	}
	return assets, nil
}

// LoadAssets reads every font the templates need from dir. Fonts that are missing or broken are
// logged and left out, templates depending on them fail at render time and are skipped.
func LoadAssets(dir string, templates []Template, logger *zap.Logger) *Assets {
	assets := &Assets{fonts: make(map[string]*opentype.Font)}
	for _, template := range templates {
		for _, name := range template.Layout.Fonts() {
			if assets.HasFont(name) {
				continue
			}
			parsed, err := readFont(filepath.Join(dir, name))
			if err != nil {
				logger.Warn("poster font unavailable", zap.String("font", name), zap.Error(err))
				continue
			}
			assets.fonts[name] = parsed
		}
	}
	return assets
}

func readFont(path string) (*opentype.Font, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

// HasFont reports whether the named font was parsed.
func (a *Assets) HasFont(name string) bool {
	_, ok := a.fonts[name]
	return ok
}

// Face returns a new face of the named font at size pixels. The caller closes it.
func (a *Assets) Face(name string, size float64) (font.Face, error) {
	parsed, ok := a.fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %s not loaded", name)
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
