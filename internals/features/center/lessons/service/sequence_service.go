// file: internals/features/center/lessons/service/sequence_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"steam_backend/internals/configs"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/repository"
)

// SequenceService keeps lesson numbers in a module contiguous (1..total_lessons).
type SequenceService struct {
	Store repository.Store
}

func NewSequenceService(store repository.Store) *SequenceService {
	return &SequenceService{Store: store}
}

func DefaultLessonName(seq int) string { return fmt.Sprintf("Lesson %d", seq) }

// Insert makes room at seq and places a new lesson there.
func (s *SequenceService) Insert(ctx context.Context, moduleID uuid.UUID, name string, seq int) (lesson *lessonModel.LessonModel, err error) {
	defer func() { sequenceOps.WithLabelValues("insert", outcome(err)).Inc() }()

	if seq <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "sequence_number must be greater than 0")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultLessonName(seq)
	}

	err = s.Store.Transaction(ctx, func(tx repository.Store) error {
		module, err := tx.LockModule(ctx, moduleID)
		if err != nil {
			return notFound(err, "module")
		}
		if seq > module.CourseModuleTotalLessons+1 {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("sequence_number must be between 1 and %d", module.CourseModuleTotalLessons+1))
		}

		lessons, err := tx.ListLessons(ctx, moduleID)
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		// descending, so no two alive rows ever share a number
		for i := len(lessons) - 1; i >= 0; i-- {
			l := lessons[i]
			if l.LessonSequenceNumber < seq {
				break
			}
			if err := tx.SetLessonSequence(ctx, l.LessonID, l.LessonSequenceNumber+1); err != nil {
				return fmt.Errorf("shift lesson %s: %w", l.LessonID, err)
			}
		}
		if err := tx.ShiftLessonSlots(ctx, moduleID, seq, 1); err != nil {
			return fmt.Errorf("shift lesson slots: %w", err)
		}

		lesson = &lessonModel.LessonModel{
			LessonModuleID:       moduleID,
			LessonName:           name,
			LessonSequenceNumber: seq,
		}
		if err := tx.CreateLessons(ctx, []*lessonModel.LessonModel{lesson}); err != nil {
			return fmt.Errorf("create lesson: %w", err)
		}
		if err := tx.SetModuleTotal(ctx, moduleID, module.CourseModuleTotalLessons+1); err != nil {
			return fmt.Errorf("bump total: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	configs.Log.Info("lesson inserted",
		zap.String("module_id", moduleID.String()),
		zap.String("lesson_id", lesson.LessonID.String()),
		zap.Int("sequence_number", seq))
	return lesson, nil
}

// Delete soft-deletes a lesson and closes the gap behind it.
func (s *SequenceService) Delete(ctx context.Context, lessonID uuid.UUID) (err error) {
	defer func() { sequenceOps.WithLabelValues("delete", outcome(err)).Inc() }()

	var moduleID uuid.UUID
	err = s.Store.Transaction(ctx, func(tx repository.Store) error {
		first, err := tx.GetLesson(ctx, lessonID)
		if err != nil {
			return notFound(err, "lesson")
		}
		module, err := tx.LockModule(ctx, first.LessonModuleID)
		if err != nil {
			return notFound(err, "module")
		}
		moduleID = module.CourseModuleID

		// re-read under the module lock; a concurrent delete may have won
		lesson, err := tx.GetLesson(ctx, lessonID)
		if err != nil {
			return notFound(err, "lesson")
		}
		if module.CourseModuleTotalLessons <= 1 {
			return fiber.NewError(fiber.StatusBadRequest, "a module keeps at least one lesson; delete the module instead")
		}

		if err := tx.SoftDeleteLessons(ctx, []uuid.UUID{lesson.LessonID}); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}

		lessons, err := tx.ListLessons(ctx, module.CourseModuleID)
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		// ascending, mirror of Insert
		for _, l := range lessons {
			if l.LessonSequenceNumber <= lesson.LessonSequenceNumber {
				continue
			}
			if err := tx.SetLessonSequence(ctx, l.LessonID, l.LessonSequenceNumber-1); err != nil {
				return fmt.Errorf("shift lesson %s: %w", l.LessonID, err)
			}
		}

		n := lesson.LessonSequenceNumber
		if err := tx.SoftDeleteLessonSlots(ctx, module.CourseModuleID, n, n); err != nil {
			return fmt.Errorf("delete lesson slot: %w", err)
		}
		if err := tx.ShiftLessonSlots(ctx, module.CourseModuleID, n+1, -1); err != nil {
			return fmt.Errorf("shift lesson slots: %w", err)
		}

		if err := tx.SetModuleTotal(ctx, module.CourseModuleID, module.CourseModuleTotalLessons-1); err != nil {
			return fmt.Errorf("drop total: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	configs.Log.Info("lesson deleted",
		zap.String("module_id", moduleID.String()),
		zap.String("lesson_id", lessonID.String()))
	return nil
}

// Rename changes the display name only.
func (s *SequenceService) Rename(ctx context.Context, lessonID uuid.UUID, name string) (*lessonModel.LessonModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if err := s.Store.RenameLesson(ctx, lessonID, name); err != nil {
		return nil, notFound(err, "lesson")
	}
	l, err := s.Store.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, notFound(err, "lesson")
	}
	return l, nil
}
