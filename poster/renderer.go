package poster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	// templates may be exported as jpeg as well
	_ "image/jpeg"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer composites poster text onto template images.
type Renderer struct {
	assets  *Assets
	encoder png.Encoder
}

func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{
		assets:  assets,
		encoder: png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Render decodes the template, draws data with layout and returns the PNG encoding.
func (r *Renderer) Render(template io.Reader, layout Layout, data Data) ([]byte, error) {
	source, _, err := image.Decode(template)
	if err != nil {
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}
	bounds := source.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, source, bounds.Min, draw.Src)

	faces := newFaceSet(r.assets)
	defer faces.close()

	eventField := layout.Event
	if data.General {
		eventField.Y = layout.GeneralEventY
	}
	texts := []placedText{
		{layout.ResultLabel, layout.ResultLabelText},
		{layout.ResultNumber, data.ResultNumber},
		{layout.Category, data.Category},
		{eventField, data.Event},
	}
	for i, winner := range data.Winners {
		offset := i * layout.WinnerStep
		name := layout.WinnerName
		name.Y += offset
		group := layout.WinnerGroup
		group.Y += offset
		texts = append(texts, placedText{name, winner.Name}, placedText{group, winner.Group})
	}

	for _, t := range texts {
		if t.text == "" {
			continue
		}
		if err := faces.drawText(canvas, t.field, t.text); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := r.encoder.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode poster: %w", err)
	}
	return buf.Bytes(), nil
}

type placedText struct {
	field TextField
	text  string
}

type faceKey struct {
	font string
	size float64
}

// faceSet reuses faces within a single render.
type faceSet struct {
	assets *Assets
	faces  map[faceKey]font.Face
}

func newFaceSet(assets *Assets) *faceSet {
	return &faceSet{assets: assets, faces: make(map[faceKey]font.Face)}
}

func (s *faceSet) face(name string, size float64) (font.Face, error) {
	key := faceKey{font: name, size: size}
	if face, ok := s.faces[key]; ok {
		return face, nil
	}
	face, err := s.assets.Face(name, size)
	if err != nil {
		return nil, err
	}
	s.faces[key] = face
	return face, nil
}

func (s *faceSet) drawText(dst draw.Image, field TextField, text string) error {
	face, err := s.face(field.Font, field.Size)
	if err != nil {
		return err
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(field.Color),
		Face: face,
		// font.Drawer draws on the baseline, layouts give the top edge
		Dot: fixed.Point26_6{
			X: fixed.I(field.X),
			Y: fixed.I(field.Y) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(text)
	return nil
}

func (s *faceSet) close() {
	for _, face := range s.faces {
		_ = face.Close()
	}
}
