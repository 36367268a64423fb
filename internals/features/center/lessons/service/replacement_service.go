// file: internals/features/center/lessons/service/replacement_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/repository"
	"steam_backend/internals/features/center/lessons/schedule"
	"steam_backend/internals/helpers/dbtime"
)

const (
	MinGapAfterPrevious = 30 * time.Minute
	MinLeadBeforeNext   = 2 * time.Hour
)

const humanTime = "15:04 02/01/2006"

// ReplacementService reschedules single lesson occurrences.
type ReplacementService struct {
	Store  repository.Store
	Timing *TimingService
}

func NewReplacementService(store repository.Store, clock dbtime.Clock) *ReplacementService {
	return &ReplacementService{Store: store, Timing: NewTimingService(store, clock)}
}

// Validate checks a proposal without writing anything.
func (s *ReplacementService) Validate(ctx context.Context, lessonID uuid.UUID, proposed time.Time) error {
	lesson, err := s.Store.GetLesson(ctx, lessonID)
	if err != nil {
		return notFound(err, "lesson")
	}
	return s.validate(ctx, s.Store, *lesson, proposed)
}

func (s *ReplacementService) validate(ctx context.Context, st repository.Store, lesson lessonModel.LessonModel, proposed time.Time) error {
	self, err := s.Timing.resolveLesson(ctx, st, lesson)
	if err != nil {
		return err
	}
	if self.Status != schedule.NotStarted {
		return fiber.NewError(fiber.StatusForbidden, "only lessons that have not started can be rescheduled")
	}

	proposed = proposed.In(dbtime.Location())
	if proposed.Before(s.Timing.Clock.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "replacement time cannot be in the past")
	}

	if prev, err := s.neighbour(ctx, st, lesson, -1); err != nil {
		return err
	} else if prev != nil && prev.End != nil {
		earliest := prev.End.Add(MinGapAfterPrevious)
		if proposed.Before(earliest) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("replacement must start at or after %s, 30 minutes after the previous lesson ends", earliest.Format(humanTime)))
		}
	}

	if next, err := s.neighbour(ctx, st, lesson, +1); err != nil {
		return err
	} else if next != nil && next.Start != nil {
		latest := next.Start.Add(-MinLeadBeforeNext)
		if proposed.After(latest) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("replacement must start at or before %s, 2 hours before the next lesson begins", latest.Format(humanTime)))
		}
	}
	return nil
}

// neighbour resolves the lesson at seq+delta in the same module, or nil.
func (s *ReplacementService) neighbour(ctx context.Context, st repository.Store, lesson lessonModel.LessonModel, delta int) (*LessonTiming, error) {
	seq := lesson.LessonSequenceNumber + delta
	if seq < 1 {
		return nil, nil
	}
	n, err := st.LessonAt(ctx, lesson.LessonModuleID, seq)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load neighbour %d: %w", seq, err)
	}
	return s.Timing.resolveLesson(ctx, st, *n)
}

// Replace validates and then swaps every alive replacement of the lesson for the new one.
func (s *ReplacementService) Replace(ctx context.Context, lessonID uuid.UUID, proposed time.Time) (rep *lessonModel.LessonReplacementModel, err error) {
	defer func() { replacementOps.WithLabelValues(outcome(err)).Inc() }()

	err = s.Store.Transaction(ctx, func(tx repository.Store) error {
		lesson, err := tx.LockLesson(ctx, lessonID)
		if err != nil {
			return notFound(err, "lesson")
		}
		if err := s.validate(ctx, tx, *lesson, proposed); err != nil {
			return err
		}
		if err := tx.SoftDeleteReplacements(ctx, lessonID); err != nil {
			return fmt.Errorf("retire replacements: %w", err)
		}
		rep = &lessonModel.LessonReplacementModel{
			LessonReplacementLessonID: lessonID,
			LessonReplacementSchedule: proposed.In(dbtime.Location()),
		}
		if err := tx.CreateReplacement(ctx, rep); err != nil {
			return fmt.Errorf("create replacement: %w", err)
		}
		return nil
	})
	if err != nil {
		if !isBusinessError(err) {
			configs.Log.Error("replace lesson failed", zap.String("lesson_id", lessonID.String()), zap.Error(err))
		}
		return nil, err
	}

	configs.Log.Info("lesson rescheduled",
		zap.String("lesson_id", lessonID.String()),
		zap.Time("schedule", rep.LessonReplacementSchedule))
	return rep, nil
}

func (s *ReplacementService) List(ctx context.Context, lessonID uuid.UUID) ([]lessonModel.LessonReplacementModel, error) {
	if _, err := s.Store.GetLesson(ctx, lessonID); err != nil {
		return nil, notFound(err, "lesson")
	}
	return s.Store.ListReplacements(ctx, lessonID)
}
