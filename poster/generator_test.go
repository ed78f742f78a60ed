package poster_test

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"festival/app_error"
	"festival/poster"
	"festival/repository"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newGenerator(t *testing.T, db *gorm.DB, publisher poster.Publisher, ids ...string) *poster.Generator {
	t.Helper()
	templates := testutil.Templates{
		"template_black.png": testutil.TemplatePNG(t, 64, 48),
		"template_pink.png":  testutil.TemplatePNG(t, 64, 48),
	}
	return poster.NewGenerator(
		repository.NewEventRepository(db),
		repository.NewResultRepository(db),
		templates,
		poster.DefaultTemplates(ids),
		testutil.PosterAssets(t),
		publisher,
		zap.NewNop(),
	)
}

func seedDashResults(t *testing.T, db *gorm.DB, f *testutil.Festival) {
	t.Helper()
	rows := []*repository.Result{
		{RegistrationId: f.Registration("100m Dash", "Alice").Id, Position: 1, Points: 10, ResultNumber: "R5", IncludeInPoster: true, DisplayOrder: 1},
		{RegistrationId: f.Registration("100m Dash", "Bob").Id, Position: 1, Points: 10, ResultNumber: "R5", IncludeInPoster: true, DisplayOrder: 2},
		{RegistrationId: f.Registration("100m Dash", "Carol").Id, Position: 3, Points: 5, ResultNumber: "R5", IncludeInPoster: true, DisplayOrder: 1},
	}
	require.NoError(t, repository.NewResultRepository(db).ReplaceEventResults(context.Background(), f.Events["100m Dash"].Id, rows))
}

func TestGenerateProducesOnePosterPerTemplate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	seedDashResults(t, db, f)
	publisher := &testutil.MemoryPublisher{}
	generator := newGenerator(t, db, publisher, "template_black.png", "template_pink.png")
	dash := f.Events["100m Dash"]

	artifacts, err := generator.Generate(ctx, dash.Id)
	require.NoError(t, err)
	key := func(stem string) string {
		return poster.Key(dash.Id, poster.Template{Id: stem + ".png"})
	}
	assert.Equal(t, []poster.Artifact{
		{TemplateId: "template_black.png", URL: "memory://generated_posters/" + key("template_black")},
		{TemplateId: "template_pink.png", URL: "memory://generated_posters/" + key("template_pink")},
	}, artifacts)

	for _, published := range publisher.Published {
		img, err := png.Decode(bytes.NewReader(published.Data))
		require.NoError(t, err)
		assert.Equal(t, 64, img.Bounds().Dx())
	}

	again, err := generator.Generate(ctx, dash.Id)
	require.NoError(t, err)
	assert.Equal(t, artifacts, again, "regenerating reuses the same keys")
	keys := publisher.Keys()
	assert.Equal(t, keys[:2], keys[2:])
}

func TestGenerateSkipsFailingTemplates(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	seedDashResults(t, db, f)
	publisher := &testutil.MemoryPublisher{}
	generator := newGenerator(t, db, publisher, "template_missing.png", "template_pink.png")

	artifacts, err := generator.Generate(context.Background(), f.Events["100m Dash"].Id)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "template_pink.png", artifacts[0].TemplateId)

	failing := newGenerator(t, db, &testutil.MemoryPublisher{Err: assert.AnError}, "template_pink.png")
	artifacts, err = failing.Generate(context.Background(), f.Events["100m Dash"].Id)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestGenerateWithoutResults(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	publisher := &testutil.MemoryPublisher{}
	generator := newGenerator(t, db, publisher, "template_black.png")

	artifacts, err := generator.Generate(context.Background(), f.Events["Relay"].Id)
	require.NoError(t, err)
	assert.NotNil(t, artifacts)
	assert.Empty(t, artifacts)
	assert.Empty(t, publisher.Keys())

	_, err = generator.Generate(context.Background(), 999)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
}

func TestGenerateConcurrentCallsAgree(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	seedDashResults(t, db, f)
	generator := newGenerator(t, db, &testutil.MemoryPublisher{}, "template_black.png", "template_pink.png")

	var wg sync.WaitGroup
	results := make([][]poster.Artifact, 4)
	errs := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = generator.Generate(context.Background(), f.Events["100m Dash"].Id)
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
		assert.Len(t, results[i], 2)
	}
}

// gatedPublisher holds every publish until released, giving up when its context ends.
type gatedPublisher struct {
	inner   *testutil.MemoryPublisher
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (p *gatedPublisher) Publish(ctx context.Context, data []byte, folder string, key string) (string, error) {
	p.once.Do(func() { close(p.started) })
	select {
	case <-p.release:
		return p.inner.Publish(ctx, data, folder, key)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestGenerateSurvivesCancelledCaller(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	seedDashResults(t, db, f)
	publisher := &gatedPublisher{
		inner:   &testutil.MemoryPublisher{},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	generator := newGenerator(t, db, publisher, "template_black.png")
	dash := f.Events["100m Dash"]

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := generator.Generate(ctx, dash.Id)
		done <- err
	}()
	<-publisher.started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(publisher.release)
	assert.Eventually(t, func() bool {
		return len(publisher.inner.Keys()) > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, poster.Folder+"/"+poster.Key(dash.Id, poster.DefaultTemplates([]string{"template_black.png"})[0]), publisher.inner.Keys()[0])

	artifacts, err := generator.Generate(context.Background(), dash.Id)
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)

	_, err = generator.Generate(ctx, dash.Id)
	assert.ErrorIs(t, err, context.Canceled)
}

type panickingTemplate struct{ closed bool }

func (p *panickingTemplate) Read([]byte) (int, error) { panic("corrupt template") }
func (p *panickingTemplate) Close() error {
	p.closed = true
	return nil
}

type panickingTemplates struct{ file *panickingTemplate }

func (s panickingTemplates) Open(string) (io.ReadCloser, error) { return s.file, nil }

func TestGenerateClosesTemplateWhenRenderPanics(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	seedDashResults(t, db, f)
	source := panickingTemplates{file: &panickingTemplate{}}
	publisher := &testutil.MemoryPublisher{}
	generator := poster.NewGenerator(
		repository.NewEventRepository(db),
		repository.NewResultRepository(db),
		source,
		poster.DefaultTemplates([]string{"template_black.png"}),
		testutil.PosterAssets(t),
		publisher,
		zap.NewNop(),
	)

	artifacts, err := generator.Generate(context.Background(), f.Events["100m Dash"].Id)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
	assert.Empty(t, publisher.Keys())
	assert.True(t, source.file.closed)
}
