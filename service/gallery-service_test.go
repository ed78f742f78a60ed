package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"festival/app_error"
	"festival/repository"
	"festival/service"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadGalleryImage(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	publisher := &testutil.MemoryPublisher{}
	gallery := service.NewGalleryService(db, publisher)
	png := testutil.TemplatePNG(t, 4, 4)

	first, err := gallery.UploadGalleryImage(ctx, &repository.GalleryImage{Caption: "Opening", Year: 2024}, png)
	require.NoError(t, err)
	_, err = gallery.UploadGalleryImage(ctx, &repository.GalleryImage{Caption: "Closing", Year: 2025}, png)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.ImageURL, "memory://gallery/"))

	keys := publisher.Keys()
	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1], "uploads never share a key")

	year := 2024
	images, err := gallery.GetGalleryImages(&year)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "Opening", images[0].Caption)
	all, err := gallery.GetGalleryImages(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = gallery.UploadGalleryImage(ctx, &repository.GalleryImage{Caption: "Notes"}, []byte("plain text"))
	var validationErr *app_error.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"year is required", "file of type text/plain; charset=utf-8 is not an image"}, validationErr.Messages)
	assert.Len(t, publisher.Keys(), 2)
}

func TestCarouselListsActiveImagesInOrder(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	gallery := service.NewGalleryService(db, &testutil.MemoryPublisher{})
	png := testutil.TemplatePNG(t, 4, 4)

	for _, image := range []*repository.CarouselImage{
		{Title: "Second", Order: 2, IsActive: true},
		{Title: "Hidden", Order: 0, IsActive: false},
		{Title: "First", Order: 1, IsActive: true},
	} {
		_, err := gallery.UploadCarouselImage(ctx, image, png)
		require.NoError(t, err)
	}

	images, err := gallery.GetCarouselImages()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "First", images[0].Title)
	assert.Equal(t, "Second", images[1].Title)

	publisher := &testutil.MemoryPublisher{Err: assert.AnError}
	_, err = service.NewGalleryService(db, publisher).UploadCarouselImage(ctx, &repository.CarouselImage{Title: "x"}, png)
	assert.Equal(t, http.StatusInternalServerError, app_error.Status(err))
}
