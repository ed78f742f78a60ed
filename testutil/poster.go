package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"
	"testing"

	"festival/poster"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TemplatePNG encodes a plain dark image usable as a poster template.
func TemplatePNG(t testing.TB, width int, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 20, G: 20, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// Templates serves template images from memory. Unknown ids behave like missing files.
type Templates map[string][]byte

func (m Templates) Open(id string) (io.ReadCloser, error) {
	data, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", id, os.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// PosterAssets stands the Go fonts in for the poster fonts.
func PosterAssets(t testing.TB) *poster.Assets {
	t.Helper()
	assets, err := poster.NewAssets(map[string][]byte{
		poster.FontBold:    gobold.TTF,
		poster.FontRegular: goregular.TTF,
	})
	require.NoError(t, err)
	return assets
}

// Published is one artifact handed to a MemoryPublisher.
type Published struct {
	Folder string
	Key    string
	Data   []byte
}

// MemoryPublisher keeps published artifacts and returns memory:// URLs. Err makes every publish
// fail.
type MemoryPublisher struct {
	mu        sync.Mutex
	Err       error
	Published []Published
}

func (p *MemoryPublisher) Publish(ctx context.Context, data []byte, folder string, key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return "", p.Err
	}
	p.Published = append(p.Published, Published{Folder: folder, Key: key, Data: data})
	return fmt.Sprintf("memory://%s/%s", folder, key), nil
}

func (p *MemoryPublisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, len(p.Published))
	for i, published := range p.Published {
		keys[i] = published.Folder + "/" + published.Key
	}
	return keys
}
