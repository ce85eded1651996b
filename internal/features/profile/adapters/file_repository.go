package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/features/profile/domain"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ErrProfileNotFound is returned when the data file does not exist.
var ErrProfileNotFound = errors.New("profile file not found")

// FileRepository reads the portfolio from a YAML or JSON file.
// The format follows the file extension.
type FileRepository struct {
	path string
}

// NewFileRepository creates a new FileRepository.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
	}
}

// Load reads, normalizes and validates the profile file.
func (r *FileRepository) Load(ctx context.Context) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(r.path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, r.path)
		}
		return nil, fmt.Errorf("adapters: failed to read profile %s: %w", r.path, err)
	}

	var p domain.Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("adapters: failed to decode profile %s: %w", r.path, err)
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	logger.Named("profile").Info("Profile loaded",
		zap.String("path", r.path),
		zap.Int("testimonials", len(p.Testimonials)),
		zap.Int("sections", len(p.Page.Sections)),
	)

	return &p, nil
}
