package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"festival/app_error"
	"festival/metrics"
	"festival/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const Folder = "generated_posters"

type EventFinder interface {
	GetEventById(ctx context.Context, eventId int, preloads ...string) (*repository.Event, error)
}

type PosterResultFinder interface {
	GetPosterResults(ctx context.Context, eventId int) ([]*repository.Result, error)
}

// TemplateSource opens template images by id.
type TemplateSource interface {
	Open(id string) (io.ReadCloser, error)
}

// DirTemplates reads templates from a directory on disk.
type DirTemplates string

func (d DirTemplates) Open(id string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(string(d), id))
}

type Artifact struct {
	TemplateId string
	URL        string
}

type Generator struct {
	events    EventFinder
	results   PosterResultFinder
	source    TemplateSource
	templates []Template
	renderer  *Renderer
	publisher Publisher
	logger    *zap.Logger
	inflight  singleflight.Group
}

func NewGenerator(
	events EventFinder,
	results PosterResultFinder,
	source TemplateSource,
	templates []Template,
	assets *Assets,
	publisher Publisher,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		events:    events,
		results:   results,
		source:    source,
		templates: templates,
		renderer:  NewRenderer(assets),
		publisher: publisher,
		logger:    logger,
	}
}

// Key is the storage key of an event's poster for a template. It is stable so that
// regenerating overwrites instead of accumulating artifacts.
func Key(eventId int, template Template) string {
	return fmt.Sprintf("event_%d_%s", eventId, template.Stem())
}

// Generate renders and publishes one poster per template for the event. An event without
// poster-eligible results yields an empty list. Templates that fail are logged and left out.
// Concurrent calls for the same event share one generation, which runs detached from the
// callers' cancellation; a cancelled caller stops waiting without aborting it for the others.
func (g *Generator) Generate(ctx context.Context, eventId int) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	shared := context.WithoutCancel(ctx)
	ch := g.inflight.DoChan(strconv.Itoa(eventId), func() (interface{}, error) {
		return g.generate(shared, eventId)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		artifacts := res.Val.([]Artifact)
		out := make([]Artifact, len(artifacts))
		copy(out, artifacts)
		return out, nil
	}
}

func (g *Generator) generate(ctx context.Context, eventId int) ([]Artifact, error) {
	t := time.Now()
	event, err := g.events.GetEventById(ctx, eventId, "Categories")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("event", eventId)
		}
		return nil, fmt.Errorf("failed to load event %d: %w", eventId, err)
	}
	results, err := g.results.GetPosterResults(ctx, eventId)
	if err != nil {
		return nil, fmt.Errorf("failed to load poster results for event %d: %w", eventId, err)
	}
	artifacts := make([]Artifact, 0, len(g.templates))
	if len(results) == 0 {
		g.logger.Info("no poster results published yet", zap.Int("event_id", eventId))
		return artifacts, nil
	}

	data := Prepare(event, results)
	for _, template := range g.templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		artifact, stage, err := g.produce(ctx, eventId, template, data)
		if err != nil {
			metrics.PosterFailureCounter.WithLabelValues(stage).Inc()
			g.logger.Error("skipping poster template",
				zap.Int("event_id", eventId),
				zap.String("template", template.Id),
				zap.String("stage", stage),
				zap.Error(err))
			continue
		}
		metrics.PostersGeneratedCounter.Inc()
		artifacts = append(artifacts, artifact)
	}
	metrics.PosterGenerationDuration.Observe(time.Since(t).Seconds())
	return artifacts, nil
}

// produce handles a single template. The decoded template is dropped before the next one is
// opened, only one large image buffer is alive at a time.
func (g *Generator) produce(ctx context.Context, eventId int, template Template, data Data) (artifact Artifact, stage string, err error) {
	stage = "template"
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while rendering: %v", r)
		}
	}()

	file, err := g.source.Open(template.Id)
	if err != nil {
		return artifact, stage, err
	}
	defer file.Close()
	stage = "render"
	rendered, err := g.renderer.Render(file, template.Layout, data)
	if err != nil {
		return artifact, stage, err
	}

	stage = "publish"
	artifactURL, err := g.publisher.Publish(ctx, rendered, Folder, Key(eventId, template))
	if err != nil {
		return artifact, stage, err
	}
	return Artifact{TemplateId: template.Id, URL: artifactURL}, stage, nil
}
