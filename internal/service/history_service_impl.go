package service

import (
	"context"

	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/repository"
)

type historyService struct {
	runs repository.RunRepo
}

func NewHistoryService(runs repository.RunRepo) HistoryService {
	return &historyService{runs: runs}
}

func (s *historyService) List(ctx context.Context, limit int) ([]*domain.ReportRun, error) {
	return s.runs.ListRecent(ctx, limit)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.ReportRun, error) {
	return s.runs.GetByID(ctx, id)
}

func (s *historyService) Remove(ctx context.Context, id string) error {
	return s.runs.Delete(ctx, id)
}
