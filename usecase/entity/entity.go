// Package entity fronts the entity store for the API layer, adding logging
// around the store operations.
package entity

import (
	"context"

	"go.uber.org/zap"

	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/repository"
)

type UseCase struct {
	store  repository.EntityStore
	logger *zap.Logger
}

func New(store repository.EntityStore, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, entity string, opts domain.ListOptions) (domain.ListResult, error) {
	result, err := uc.store.List(entity, opts)
	if err != nil {
		return domain.ListResult{}, err
	}
	uc.logger.Debug("listed records",
		zap.String("entity", entity),
		zap.Int("total", result.Total),
		zap.Int("page", result.Page),
	)
	return result, nil
}

func (uc *UseCase) Get(ctx context.Context, entity, id string) (domain.Record, error) {
	return uc.store.Get(entity, id)
}

// GetVersion performs a point-in-time read of a historical snapshot.
func (uc *UseCase) GetVersion(ctx context.Context, entity, id string, version int64) (domain.Record, error) {
	return uc.store.Get(entity, id, repository.WithVersion(version))
}

func (uc *UseCase) Create(ctx context.Context, entity string, payload domain.Record) (domain.Record, error) {
	created, err := uc.store.Create(entity, payload)
	if err != nil {
		uc.logger.Warn("create failed", zap.String("entity", entity), zap.Error(err))
		return nil, err
	}
	uc.logger.Info("record created",
		zap.String("entity", entity),
		zap.String("id", created.ID()),
	)
	return created, nil
}

func (uc *UseCase) Update(ctx context.Context, entity, id string, payload domain.Record) (domain.Record, error) {
	updated, err := uc.store.Update(entity, id, payload)
	if err != nil {
		uc.logger.Warn("update failed", zap.String("entity", entity), zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if updated != nil {
		uc.logger.Info("record updated",
			zap.String("entity", entity),
			zap.String("id", id),
			zap.Int64("version", updated.Version()),
		)
	}
	return updated, nil
}

func (uc *UseCase) Delete(ctx context.Context, entity, id string) (bool, error) {
	deleted, err := uc.store.Delete(entity, id)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.logger.Info("record deleted", zap.String("entity", entity), zap.String("id", id))
	}
	return deleted, nil
}

func (uc *UseCase) History(ctx context.Context, entity, id string) ([]domain.HistoryEntry, error) {
	return uc.store.History(entity, id)
}

func (uc *UseCase) ExportState(ctx context.Context) (map[string][]domain.Record, error) {
	return uc.store.ExportState()
}

func (uc *UseCase) Entities(ctx context.Context) []string {
	return uc.store.Entities()
}
