// file: internals/features/center/lessons/repository/store.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
)

// Store is the persistence the lesson engine needs. Reads see alive rows only.
// Lookups that miss return gorm.ErrRecordNotFound.
type Store interface {
	// Transaction runs fn atomically; fn must use the Store it is handed.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	GetClassRoom(ctx context.Context, id uuid.UUID) (*classModel.ClassRoomModel, error)

	GetModule(ctx context.Context, id uuid.UUID) (*moduleModel.CourseModuleModel, error)
	// LockModule reads the module FOR UPDATE; renumbering in a module is serialized on it.
	LockModule(ctx context.Context, id uuid.UUID) (*moduleModel.CourseModuleModel, error)
	ListModules(ctx context.Context, classRoomID uuid.UUID) ([]moduleModel.CourseModuleModel, error)
	CreateModule(ctx context.Context, m *moduleModel.CourseModuleModel) error
	UpdateModule(ctx context.Context, m *moduleModel.CourseModuleModel) error
	SetModuleTotal(ctx context.Context, moduleID uuid.UUID, total int) error
	SoftDeleteModule(ctx context.Context, id uuid.UUID) error

	GetLesson(ctx context.Context, id uuid.UUID) (*lessonModel.LessonModel, error)
	LockLesson(ctx context.Context, id uuid.UUID) (*lessonModel.LessonModel, error)
	LessonAt(ctx context.Context, moduleID uuid.UUID, seq int) (*lessonModel.LessonModel, error)
	// ListLessons is ordered by sequence number ascending.
	ListLessons(ctx context.Context, moduleID uuid.UUID) ([]lessonModel.LessonModel, error)
	CreateLessons(ctx context.Context, lessons []*lessonModel.LessonModel) error
	SetLessonSequence(ctx context.Context, lessonID uuid.UUID, seq int) error
	RenameLesson(ctx context.Context, lessonID uuid.UUID, name string) error
	SoftDeleteLessons(ctx context.Context, ids []uuid.UUID) error

	// Galleries and evaluations are keyed by lesson number and move with their lesson.
	// ShiftLessonSlots moves every alive row numbered >= from by delta.
	ShiftLessonSlots(ctx context.Context, moduleID uuid.UUID, from, delta int) error
	// SoftDeleteLessonSlots drops rows numbered from..to; to == 0 leaves the range open.
	SoftDeleteLessonSlots(ctx context.Context, moduleID uuid.UUID, from, to int) error

	// EarliestReplacements maps each lesson to its authoritative replacement start.
	EarliestReplacements(ctx context.Context, lessonIDs []uuid.UUID) (map[uuid.UUID]time.Time, error)
	ListReplacements(ctx context.Context, lessonID uuid.UUID) ([]lessonModel.LessonReplacementModel, error)
	SoftDeleteReplacements(ctx context.Context, lessonID uuid.UUID) error
	CreateReplacement(ctx context.Context, r *lessonModel.LessonReplacementModel) error
}
