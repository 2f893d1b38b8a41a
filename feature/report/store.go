package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ornasync/feature/match"
)

// Store persists runs to the report database.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewStore migrates the run tables and returns a Store.
func NewStore(db *gorm.DB, log *zap.Logger) (*Store, error) {
	if err := db.AutoMigrate(&Run{}, &MismatchRecord{}, &MissingRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate report tables: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// SaveRun stores the reporter's findings as a new run and returns it.
func (s *Store) SaveRun(ctx context.Context, rep *match.Reporter, fix bool, targets []string, started, finished time.Time) (*Run, error) {
	run := &Run{
		ID:         uuid.NewString(),
		StartedAt:  started,
		FinishedAt: finished,
		Fix:        fix,
		Targets:    strings.Join(targets, ","),
	}
	for _, m := range rep.Mismatches {
		run.Mismatches = append(run.Mismatches, MismatchRecord{
			Kind:     m.Kind,
			Entity:   m.Entity,
			EntityID: m.EntityID,
			Field:    m.Field,
			Guide:    m.Guide,
			Codex:    m.Codex,
			Fixed:    m.Fixed,
		})
	}
	for _, m := range rep.Missings {
		run.Missings = append(run.Missings, MissingRecord{
			Kind:    m.Kind,
			Name:    m.Name,
			Key:     m.Key,
			OnGuide: m.OnGuide,
		})
	}

	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to store run: %w", err)
	}
	s.log.Info("run stored",
		zap.String("run_id", run.ID),
		zap.Int("mismatches", len(run.Mismatches)),
		zap.Int("missings", len(run.Missings)))
	return run, nil
}

// LastRuns returns the most recent runs, newest first, without children.
func (s *Store) LastRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Run loads one run with its mismatches and missing entities.
func (s *Store) Run(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.db.WithContext(ctx).
		Preload("Mismatches").
		Preload("Missings").
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}
