// file: internals/features/center/lessons/repository/gorm_store.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	evaluationModel "steam_backend/internals/features/center/lesson_evaluations/model"
	galleryModel "steam_backend/internals/features/center/lesson_galleries/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

/* ====================== CLASS ROOM ====================== */

func (s *GormStore) GetClassRoom(ctx context.Context, id uuid.UUID) (*classModel.ClassRoomModel, error) {
	var m classModel.ClassRoomModel
	if err := s.db.WithContext(ctx).First(&m, "class_room_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* ====================== MODULE ====================== */

func (s *GormStore) GetModule(ctx context.Context, id uuid.UUID) (*moduleModel.CourseModuleModel, error) {
	var m moduleModel.CourseModuleModel
	if err := s.db.WithContext(ctx).First(&m, "course_module_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) LockModule(ctx context.Context, id uuid.UUID) (*moduleModel.CourseModuleModel, error) {
	var m moduleModel.CourseModuleModel
	if err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "course_module_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) ListModules(ctx context.Context, classRoomID uuid.UUID) ([]moduleModel.CourseModuleModel, error) {
	var rows []moduleModel.CourseModuleModel
	err := s.db.WithContext(ctx).
		Where("course_module_class_room_id = ?", classRoomID).
		Order("course_module_sequence_number ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) CreateModule(ctx context.Context, m *moduleModel.CourseModuleModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *GormStore) UpdateModule(ctx context.Context, m *moduleModel.CourseModuleModel) error {
	return s.db.WithContext(ctx).Model(m).
		Select("course_module_name", "course_module_description", "course_module_sequence_number", "course_module_total_lessons").
		Updates(m).Error
}

func (s *GormStore) SetModuleTotal(ctx context.Context, moduleID uuid.UUID, total int) error {
	return s.db.WithContext(ctx).Model(&moduleModel.CourseModuleModel{}).
		Where("course_module_id = ?", moduleID).
		Update("course_module_total_lessons", total).Error
}

func (s *GormStore) SoftDeleteModule(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Where("course_module_id = ?", id).Delete(&moduleModel.CourseModuleModel{}).Error
}

/* ====================== LESSON ====================== */

func (s *GormStore) GetLesson(ctx context.Context, id uuid.UUID) (*lessonModel.LessonModel, error) {
	var m lessonModel.LessonModel
	if err := s.db.WithContext(ctx).First(&m, "lesson_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) LockLesson(ctx context.Context, id uuid.UUID) (*lessonModel.LessonModel, error) {
	var m lessonModel.LessonModel
	if err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "lesson_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) LessonAt(ctx context.Context, moduleID uuid.UUID, seq int) (*lessonModel.LessonModel, error) {
	var m lessonModel.LessonModel
	if err := s.db.WithContext(ctx).
		Where("lesson_module_id = ? AND lesson_sequence_number = ?", moduleID, seq).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) ListLessons(ctx context.Context, moduleID uuid.UUID) ([]lessonModel.LessonModel, error) {
	var rows []lessonModel.LessonModel
	err := s.db.WithContext(ctx).
		Where("lesson_module_id = ?", moduleID).
		Order("lesson_sequence_number ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) CreateLessons(ctx context.Context, lessons []*lessonModel.LessonModel) error {
	if len(lessons) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(lessons, 200).Error
}

// SetLessonSequence touches one row per statement; callers order the calls so the partial
// unique index never sees two alive rows on one number.
func (s *GormStore) SetLessonSequence(ctx context.Context, lessonID uuid.UUID, seq int) error {
	return s.db.WithContext(ctx).Model(&lessonModel.LessonModel{}).
		Where("lesson_id = ?", lessonID).
		Update("lesson_sequence_number", seq).Error
}

func (s *GormStore) RenameLesson(ctx context.Context, lessonID uuid.UUID, name string) error {
	res := s.db.WithContext(ctx).Model(&lessonModel.LessonModel{}).
		Where("lesson_id = ?", lessonID).
		Update("lesson_name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormStore) SoftDeleteLessons(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Where("lesson_id IN ?", ids).Delete(&lessonModel.LessonModel{}).Error
}

/* ====================== LESSON SLOTS ====================== */

// slotTable is a table whose rows hang off (module, lesson_number).
type slotTable struct {
	model  any
	module string
	number string
}

var slotTables = []slotTable{
	{&galleryModel.LessonGalleryModel{}, "lesson_gallery_module_id", "lesson_gallery_lesson_number"},
	{&evaluationModel.LessonEvaluationModel{}, "lesson_evaluation_module_id", "lesson_evaluation_lesson_number"},
}

// ShiftLessonSlots parks the moved rows on negative numbers first so the partial unique
// indexes on the lesson slot never see a collision mid-update.
func (s *GormStore) ShiftLessonSlots(ctx context.Context, moduleID uuid.UUID, from, delta int) error {
	if delta == 0 {
		return nil
	}
	for _, t := range slotTables {
		err := s.db.WithContext(ctx).Model(t.model).
			Where(t.module+" = ? AND "+t.number+" >= ?", moduleID, from).
			Update(t.number, gorm.Expr("-("+t.number+" + ?)", delta)).Error
		if err != nil {
			return err
		}
		err = s.db.WithContext(ctx).Model(t.model).
			Where(t.module+" = ? AND "+t.number+" < 0", moduleID).
			Update(t.number, gorm.Expr("-"+t.number)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *GormStore) SoftDeleteLessonSlots(ctx context.Context, moduleID uuid.UUID, from, to int) error {
	for _, t := range slotTables {
		q := s.db.WithContext(ctx).Where(t.module+" = ? AND "+t.number+" >= ?", moduleID, from)
		if to > 0 {
			q = q.Where(t.number+" <= ?", to)
		}
		if err := q.Delete(t.model).Error; err != nil {
			return err
		}
	}
	return nil
}

/* ====================== REPLACEMENT ====================== */

func (s *GormStore) EarliestReplacements(ctx context.Context, lessonIDs []uuid.UUID) (map[uuid.UUID]time.Time, error) {
	out := make(map[uuid.UUID]time.Time, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		LessonID uuid.UUID
		Schedule time.Time
	}
	if err := s.db.WithContext(ctx).Model(&lessonModel.LessonReplacementModel{}).
		Select("lesson_replacement_lesson_id AS lesson_id, MIN(lesson_replacement_schedule) AS schedule").
		Where("lesson_replacement_lesson_id IN ?", lessonIDs).
		Group("lesson_replacement_lesson_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.LessonID] = r.Schedule
	}
	return out, nil
}

func (s *GormStore) ListReplacements(ctx context.Context, lessonID uuid.UUID) ([]lessonModel.LessonReplacementModel, error) {
	var rows []lessonModel.LessonReplacementModel
	err := s.db.WithContext(ctx).
		Where("lesson_replacement_lesson_id = ?", lessonID).
		Order("lesson_replacement_schedule ASC, lesson_replacement_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) SoftDeleteReplacements(ctx context.Context, lessonID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("lesson_replacement_lesson_id = ?", lessonID).
		Delete(&lessonModel.LessonReplacementModel{}).Error
}

func (s *GormStore) CreateReplacement(ctx context.Context, r *lessonModel.LessonReplacementModel) error {
	return s.db.WithContext(ctx).Create(r).Error
}
