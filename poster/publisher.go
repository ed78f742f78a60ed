package poster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Publisher stores a finished artifact under folder/key and returns a URL it can be fetched
// from. Publishing the same key again overwrites the artifact.
type Publisher interface {
	Publish(ctx context.Context, data []byte, folder string, key string) (string, error)
}

// LocalPublisher writes artifacts below Root and serves them from BaseURL + "/media". The file
// extension follows the sniffed image type.
type LocalPublisher struct {
	Root    string
	BaseURL string
}

func NewLocalPublisher(root string, baseURL string) *LocalPublisher {
	return &LocalPublisher{Root: root, BaseURL: baseURL}
}

func (p *LocalPublisher) Publish(ctx context.Context, data []byte, folder string, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fileName := key + extension(data)
	dir := filepath.Join(p.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	return url.JoinPath(strings.TrimRight(p.BaseURL, "/"), "media", folder, fileName)
}

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func extension(data []byte) string {
	if ext, ok := extensions[http.DetectContentType(data)]; ok {
		return ext
	}
	return ".png"
}

// FallbackPublisher tries its publishers in order and returns the first URL produced.
type FallbackPublisher struct {
	publishers []Publisher
	logger     *zap.Logger
}

func NewFallbackPublisher(logger *zap.Logger, publishers ...Publisher) *FallbackPublisher {
	return &FallbackPublisher{publishers: publishers, logger: logger}
}

func (p *FallbackPublisher) Publish(ctx context.Context, data []byte, folder string, key string) (string, error) {
	errs := make([]error, 0, len(p.publishers))
	for i, publisher := range p.publishers {
		artifactURL, err := publisher.Publish(ctx, data, folder, key)
		if err == nil {
			return artifactURL, nil
		}
		p.logger.Warn("publisher failed",
			zap.Int("publisher", i),
			zap.String("key", key),
			zap.Error(err))
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("no publisher configured for %s", key)
	}
	return "", errors.Join(errs...)
}
