// file: internals/features/center/course_modules/service/module_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/repository"
	lessonService "steam_backend/internals/features/center/lessons/service"
)

// ModuleService owns the module ↔ lessons lifecycle: generation, resize and cascade delete.
type ModuleService struct {
	Store repository.Store
}

func NewModuleService(store repository.Store) *ModuleService {
	return &ModuleService{Store: store}
}

type ModulePatch struct {
	Name           *string
	Description    *string
	SequenceNumber *int
	TotalLessons   *int
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return fmt.Errorf("load %s: %w", what, err)
}

func ensureSequenceFree(ctx context.Context, st repository.Store, classRoomID, self uuid.UUID, seq int) error {
	if seq < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "sequence_number must be greater than 0")
	}
	mods, err := st.ListModules(ctx, classRoomID)
	if err != nil {
		return fmt.Errorf("list modules: %w", err)
	}
	for _, m := range mods {
		if m.CourseModuleID != self && m.CourseModuleSequenceNumber == seq {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("sequence_number %d is already used in this class", seq))
		}
	}
	return nil
}

func generateLessons(moduleID uuid.UUID, from, to int) []*lessonModel.LessonModel {
	out := make([]*lessonModel.LessonModel, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, &lessonModel.LessonModel{
			LessonModuleID:       moduleID,
			LessonName:           lessonService.DefaultLessonName(i),
			LessonSequenceNumber: i,
		})
	}
	return out
}

// Create stores the module and generates lessons 1..total_lessons.
func (s *ModuleService) Create(ctx context.Context, m *moduleModel.CourseModuleModel) (*moduleModel.CourseModuleModel, error) {
	m.CourseModuleName = strings.TrimSpace(m.CourseModuleName)
	if m.CourseModuleTotalLessons < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "total_lessons must be at least 1")
	}

	err := s.Store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.GetClassRoom(ctx, m.CourseModuleClassRoomID); err != nil {
			return notFound(err, "class room")
		}
		if err := ensureSequenceFree(ctx, tx, m.CourseModuleClassRoomID, uuid.Nil, m.CourseModuleSequenceNumber); err != nil {
			return err
		}
		if err := tx.CreateModule(ctx, m); err != nil {
			return fmt.Errorf("create module: %w", err)
		}
		if err := tx.CreateLessons(ctx, generateLessons(m.CourseModuleID, 1, m.CourseModuleTotalLessons)); err != nil {
			return fmt.Errorf("generate lessons: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	configs.Log.Info("module created",
		zap.String("module_id", m.CourseModuleID.String()),
		zap.Int("total_lessons", m.CourseModuleTotalLessons))
	return m, nil
}

// Update applies the patch; a new total appends "Lesson i" rows or soft-deletes the trailing ones.
func (s *ModuleService) Update(ctx context.Context, id uuid.UUID, p ModulePatch) (*moduleModel.CourseModuleModel, error) {
	var out *moduleModel.CourseModuleModel
	err := s.Store.Transaction(ctx, func(tx repository.Store) error {
		m, err := tx.LockModule(ctx, id)
		if err != nil {
			return notFound(err, "module")
		}

		if p.Name != nil {
			name := strings.TrimSpace(*p.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name is required")
			}
			m.CourseModuleName = name
		}
		if p.Description != nil {
			m.CourseModuleDescription = p.Description
		}
		if p.SequenceNumber != nil && *p.SequenceNumber != m.CourseModuleSequenceNumber {
			if err := ensureSequenceFree(ctx, tx, m.CourseModuleClassRoomID, m.CourseModuleID, *p.SequenceNumber); err != nil {
				return err
			}
			m.CourseModuleSequenceNumber = *p.SequenceNumber
		}

		if p.TotalLessons != nil && *p.TotalLessons != m.CourseModuleTotalLessons {
			if err := s.resize(ctx, tx, m.CourseModuleID, *p.TotalLessons); err != nil {
				return err
			}
			m.CourseModuleTotalLessons = *p.TotalLessons
		}

		if err := tx.UpdateModule(ctx, m); err != nil {
			return fmt.Errorf("update module: %w", err)
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ModuleService) resize(ctx context.Context, tx repository.Store, moduleID uuid.UUID, total int) error {
	if total < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "total_lessons must be at least 1")
	}
	lessons, err := tx.ListLessons(ctx, moduleID)
	if err != nil {
		return fmt.Errorf("list lessons: %w", err)
	}
	current := len(lessons)

	switch {
	case total > current:
		if err := tx.CreateLessons(ctx, generateLessons(moduleID, current+1, total)); err != nil {
			return fmt.Errorf("append lessons: %w", err)
		}
	case total < current:
		ids := make([]uuid.UUID, 0, current-total)
		for _, l := range lessons {
			if l.LessonSequenceNumber > total {
				ids = append(ids, l.LessonID)
			}
		}
		if err := tx.SoftDeleteLessons(ctx, ids); err != nil {
			return fmt.Errorf("trim lessons: %w", err)
		}
		if err := tx.SoftDeleteLessonSlots(ctx, moduleID, total+1, 0); err != nil {
			return fmt.Errorf("trim lesson slots: %w", err)
		}
	}
	return nil
}

// Delete soft-deletes the module together with all of its lessons.
func (s *ModuleService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.Store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.LockModule(ctx, id); err != nil {
			return notFound(err, "module")
		}
		lessons, err := tx.ListLessons(ctx, id)
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		ids := make([]uuid.UUID, len(lessons))
		for i, l := range lessons {
			ids[i] = l.LessonID
		}
		if err := tx.SoftDeleteLessons(ctx, ids); err != nil {
			return fmt.Errorf("delete lessons: %w", err)
		}
		if err := tx.SoftDeleteLessonSlots(ctx, id, 1, 0); err != nil {
			return fmt.Errorf("delete lesson slots: %w", err)
		}
		if err := tx.SoftDeleteModule(ctx, id); err != nil {
			return fmt.Errorf("delete module: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	configs.Log.Info("module deleted", zap.String("module_id", id.String()))
	return nil
}
