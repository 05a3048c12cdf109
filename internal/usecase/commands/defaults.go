package commands

import (
	"context"
	"log/slog"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
)

type DefaultsCommands interface {
	Set(ctx context.Context, record DefaultsRecord) error
}

type defaultsCommandsImpl struct {
	repo   DefaultsRepository
	cache  QuoteCacheInvalidator
	logger *slog.Logger
}

func NewDefaultsCommands(repo DefaultsRepository, cache QuoteCacheInvalidator, logger *slog.Logger) DefaultsCommands {
	return &defaultsCommandsImpl{repo: repo, cache: cache, logger: logger}
}

func (c *defaultsCommandsImpl) Set(ctx context.Context, record DefaultsRecord) error {
	if !record.Level.IsValid() || record.Level == rule.LevelSurge {
		return errs.ErrInvalidSheetLevel
	}
	if record.Rate != nil && *record.Rate < 0 {
		return errs.ErrDomainValidation
	}
	if record.Capacity != nil {
		cap := *record.Capacity
		if cap.Min < 0 || cap.Max < cap.Min || cap.Allocated < 0 {
			return errs.ErrDomainValidation
		}
	}
	if err := c.repo.Set(ctx, record); err != nil {
		return err
	}
	if c.cache != nil {
		c.cache.Invalidate(ctx)
	}
	return nil
}
