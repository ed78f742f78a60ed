package service_test

import (
	"context"
	"testing"

	"festival/poster"
	"festival/repository"
	"festival/service"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGeneratePostersAnnouncesPosterURLs(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	_, err := service.NewResultService(db, zap.NewNop()).SubmitResults(ctx, dashSheet(f))
	require.NoError(t, err)

	generator := poster.NewGenerator(
		repository.NewEventRepository(db),
		repository.NewResultRepository(db),
		testutil.Templates{"template_black.png": testutil.TemplatePNG(t, 32, 32)},
		poster.DefaultTemplates([]string{"template_black.png"}),
		testutil.PosterAssets(t),
		&testutil.MemoryPublisher{},
		zap.NewNop(),
	)
	announcer := &recordingAnnouncer{}
	posters := service.NewPosterService(db, generator, zap.NewNop(), announcer)

	artifacts, err := posters.GeneratePosters(ctx, f.Events["100m Dash"].Id)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	require.Len(t, announcer.announcements, 1)
	announcement := announcer.announcements[0]
	assert.Equal(t, []string{artifacts[0].URL}, announcement.PosterURLs)
	names := make([]string, len(announcement.Winners))
	for i, winner := range announcement.Winners {
		names[i] = winner.Name
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)

	artifacts, err = posters.GeneratePosters(ctx, f.Events["Relay"].Id)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
	assert.Len(t, announcer.announcements, 1, "nothing to announce without posters")
}
