package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/focustally/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type RunRepo interface {
	Create(ctx context.Context, run *domain.ReportRun) error
	GetByID(ctx context.Context, id string) (*domain.ReportRun, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ReportRun, error)
	Delete(ctx context.Context, id string) error
}
