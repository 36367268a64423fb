// file: internals/features/center/course_registrations/service/registration_service.go
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
	classModel "steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/features/center/course_registrations/model"
	courseModel "steam_backend/internals/features/center/courses/model"
	studentModel "steam_backend/internals/features/center/students/model"
	helper "steam_backend/internals/helpers"
)

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

// CheckTransition enforces the status rules: approved may only be cancelled,
// rejected and cancelled are final.
func CheckTransition(from, to string) error {
	if from == to {
		return nil
	}
	switch from {
	case model.StatusApproved:
		if to != model.StatusCancelled {
			return fiber.NewError(fiber.StatusBadRequest, "an approved registration can only be cancelled")
		}
	case model.StatusRejected, model.StatusCancelled:
		return fiber.NewError(fiber.StatusBadRequest, "a "+from+" registration cannot change status")
	}
	return nil
}

func CheckPaid(amount, paid int64) error {
	if paid < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "paid_amount cannot be negative")
	}
	if paid > amount {
		return fiber.NewError(fiber.StatusBadRequest, "paid_amount cannot exceed the registration amount")
	}
	return nil
}

// Blocking reports whether an existing registration prevents a new one for the same pair.
func Blocking(existing *model.CourseRegistrationModel) bool {
	return existing != nil &&
		existing.CourseRegistrationStatus != model.StatusRejected &&
		existing.CourseRegistrationStatus != model.StatusCancelled
}

// CheckCapacity fails when the class already has max_students seats taken.
func CheckCapacity(class *classModel.ClassRoomModel, enrolled int64) error {
	if enrolled >= int64(class.ClassRoomMaxStudents) {
		return fiber.NewError(fiber.StatusBadRequest, "class is full")
	}
	return nil
}

func enrolledCount(tx *gorm.DB, classRoomID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.CourseRegistrationModel{}).
		Scopes(model.EnrolledScope).
		Where("course_registration_class_room_id = ?", classRoomID).
		Count(&n).Error
	return n, err
}

// Create registers a student for a class at the course price. A finished
// (rejected or cancelled) registration for the same pair is retired first.
func (s *RegistrationService) Create(ctx context.Context, studentID, classRoomID uuid.UUID, note *string) (*model.CourseRegistrationModel, error) {
	var out model.CourseRegistrationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st studentModel.StudentModel
		if err := tx.First(&st, "student_id = ?", studentID).Error; err != nil {
			return notFound(err, "student")
		}
		if !st.StudentIsActive {
			return fiber.NewError(fiber.StatusBadRequest, "student is not active")
		}
		var class classModel.ClassRoomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&class, "class_room_id = ?", classRoomID).Error; err != nil {
			return notFound(err, "class room")
		}
		var course courseModel.CourseModel
		if err := tx.First(&course, "course_id = ?", class.ClassRoomCourseID).Error; err != nil {
			return notFound(err, "course")
		}

		var existing model.CourseRegistrationModel
		err := tx.Where("course_registration_student_id = ? AND course_registration_class_room_id = ?", studentID, classRoomID).
			First(&existing).Error
		switch {
		case err == nil:
			if Blocking(&existing) {
				return fiber.NewError(fiber.StatusConflict, "student has already registered for this class")
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		n, err := enrolledCount(tx, classRoomID)
		if err != nil {
			return err
		}
		if err := CheckCapacity(&class, n); err != nil {
			return err
		}

		out = model.CourseRegistrationModel{
			CourseRegistrationStudentID:   studentID,
			CourseRegistrationClassRoomID: classRoomID,
			CourseRegistrationStatus:      model.StatusPending,
			CourseRegistrationAmount:      course.CoursePrice,
			CourseRegistrationNote:        note,
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, helper.MapPGError(err, "student has already registered for this class")
	}
	return &out, nil
}

// Patch is a partial update; nil fields are left alone.
type Patch struct {
	Status        *string
	PaidAmount    *int64
	PaymentMethod *string
	Note          *string
}

// Update applies p under a row lock. Taking the last free seat is checked
// against the class capacity.
func (s *RegistrationService) Update(ctx context.Context, id uuid.UUID, p Patch) (*model.CourseRegistrationModel, error) {
	var out model.CourseRegistrationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "course_registration_id = ?", id).Error; err != nil {
			return notFound(err, "registration")
		}
		wasEnrolled := out.Enrolled()

		if p.Status != nil {
			if err := CheckTransition(out.CourseRegistrationStatus, *p.Status); err != nil {
				return err
			}
			out.CourseRegistrationStatus = *p.Status
		}
		if p.PaidAmount != nil {
			if err := CheckPaid(out.CourseRegistrationAmount, *p.PaidAmount); err != nil {
				return err
			}
			out.CourseRegistrationPaidAmount = *p.PaidAmount
		}
		if p.PaymentMethod != nil {
			out.CourseRegistrationPaymentMethod = p.PaymentMethod
		}
		if p.Note != nil {
			out.CourseRegistrationNote = p.Note
		}

		if out.Enrolled() && !wasEnrolled {
			var class classModel.ClassRoomModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&class, "class_room_id = ?", out.CourseRegistrationClassRoomID).Error; err != nil {
				return notFound(err, "class room")
			}
			n, err := enrolledCount(tx, class.ClassRoomID)
			if err != nil {
				return err
			}
			if err := CheckCapacity(&class, n); err != nil {
				return err
			}
			configs.Log.Info("student enrolled",
				zap.String("student_id", out.CourseRegistrationStudentID.String()),
				zap.String("class_room_id", class.ClassRoomID.String()))
		}
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return fmt.Errorf("load %s: %w", what, err)
}
