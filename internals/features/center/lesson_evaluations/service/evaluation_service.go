// file: internals/features/center/lesson_evaluations/service/evaluation_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"steam_backend/internals/configs"
	"steam_backend/internals/constants"
	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	regModel "steam_backend/internals/features/center/course_registrations/model"
	"steam_backend/internals/features/center/lesson_evaluations/model"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

// Actor is the web user doing the evaluating.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

type EvaluationService struct {
	DB    *gorm.DB
	Clock dbtime.Clock
}

func NewEvaluationService(db *gorm.DB, clock dbtime.Clock) *EvaluationService {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	return &EvaluationService{DB: db, Clock: clock}
}

// CheckEvaluator lets managers through and limits teachers to their own classes.
func CheckEvaluator(class *classModel.ClassRoomModel, a Actor) error {
	if a.Role == constants.RoleTeacher && !class.HasStaff(a.UserID) {
		return fiber.NewError(fiber.StatusForbidden, "you are not the teacher of this class")
	}
	return nil
}

// CheckEditable forbids changing evaluations once the class's last day has passed.
func CheckEditable(class *classModel.ClassRoomModel, clk dbtime.Clock, action string) error {
	if class.Ended(clk) {
		return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("cannot %s evaluation after class has ended", action))
	}
	return nil
}

// slot loads the module and its class for an evaluation.
func slot(tx *gorm.DB, moduleID uuid.UUID) (*moduleModel.CourseModuleModel, *classModel.ClassRoomModel, error) {
	var module moduleModel.CourseModuleModel
	if err := tx.First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		return nil, nil, notFound(err, "module")
	}
	var class classModel.ClassRoomModel
	if err := tx.First(&class, "class_room_id = ?", module.CourseModuleClassRoomID).Error; err != nil {
		return nil, nil, notFound(err, "class room")
	}
	return &module, &class, nil
}

// Create scores an enrolled student for a lesson slot that exists in the module.
func (s *EvaluationService) Create(ctx context.Context, a Actor, m *model.LessonEvaluationModel) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, class, err := slot(tx, m.LessonEvaluationModuleID)
		if err != nil {
			return err
		}
		if err := CheckEvaluator(class, a); err != nil {
			return err
		}
		if !module.HasLessonNumber(m.LessonEvaluationLessonNumber) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("lesson_number must be between 1 and %d", module.CourseModuleTotalLessons))
		}
		var n int64
		if err := tx.Model(&regModel.CourseRegistrationModel{}).
			Scopes(regModel.EnrolledScope).
			Where("course_registration_class_room_id = ? AND course_registration_student_id = ?",
				class.ClassRoomID, m.LessonEvaluationStudentID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "student is not enrolled in this class")
		}
		return tx.Create(m).Error
	})
	return helper.MapPGError(err, "evaluation for this student in this lesson already exists")
}

// Update applies fn to the evaluation unless the class has ended.
func (s *EvaluationService) Update(ctx context.Context, a Actor, id uuid.UUID, fn func(*model.LessonEvaluationModel)) (*model.LessonEvaluationModel, error) {
	var out model.LessonEvaluationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.guard(tx, a, id, "update", &out); err != nil {
			return err
		}
		fn(&out)
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete soft-deletes the evaluation unless the class has ended.
func (s *EvaluationService) Delete(ctx context.Context, a Actor, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.LessonEvaluationModel
		if err := s.guard(tx, a, id, "delete", &m); err != nil {
			return err
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		configs.Log.Info("lesson evaluation deleted",
			zap.String("lesson_evaluation_id", id.String()), zap.String("by", a.UserID.String()))
		return nil
	})
}

func (s *EvaluationService) guard(tx *gorm.DB, a Actor, id uuid.UUID, action string, out *model.LessonEvaluationModel) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(out, "lesson_evaluation_id = ?", id).Error; err != nil {
		return notFound(err, "evaluation")
	}
	_, class, err := slot(tx, out.LessonEvaluationModuleID)
	if err != nil {
		return err
	}
	if err := CheckEvaluator(class, a); err != nil {
		return err
	}
	return CheckEditable(class, s.Clock, action)
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return fmt.Errorf("load %s: %w", what, err)
}
