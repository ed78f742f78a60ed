package poster_test

import (
	"os"
	"path/filepath"
	"testing"

	"festival/poster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
)

func TestLoadAssetsSkipsMissingFonts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, poster.FontBold), gobold.TTF, 0o644))

	assets := poster.LoadAssets(dir, poster.DefaultTemplates([]string{"template_black.png", "template_pink.png"}), zap.NewNop())
	assert.True(t, assets.HasFont(poster.FontBold))
	assert.False(t, assets.HasFont(poster.FontRegular))

	_, err := assets.Face(poster.FontRegular, 12)
	assert.Error(t, err)
	face, err := assets.Face(poster.FontBold, 12)
	require.NoError(t, err)
	assert.NoError(t, face.Close())
}
