// file: internals/features/center/student_registrations/service/student_registration_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"steam_backend/internals/configs"
	"steam_backend/internals/features/center/student_registrations/model"
	studentModel "steam_backend/internals/features/center/students/model"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

type StudentRegistrationService struct {
	DB *gorm.DB
}

func NewStudentRegistrationService(db *gorm.DB) *StudentRegistrationService {
	return &StudentRegistrationService{DB: db}
}

// MatchStudent checks the details a parent gave against the student record.
func MatchStudent(req *model.StudentRegistrationModel, st *studentModel.StudentModel) error {
	if !st.StudentIsActive {
		return fiber.NewError(fiber.StatusBadRequest, "student is not active")
	}
	if !dbtime.CivilDate(req.StudentRegistrationDateOfBirth).Equal(dbtime.CivilDate(st.StudentDateOfBirth)) ||
		!strings.EqualFold(strings.TrimSpace(req.StudentRegistrationFirstName), st.StudentFirstName) {
		return fiber.NewError(fiber.StatusBadRequest, "request details do not match the student record")
	}
	return nil
}

// Request files a pending request for the app user.
func (s *StudentRegistrationService) Request(ctx context.Context, m *model.StudentRegistrationModel) error {
	m.StudentRegistrationStatus = model.StatusPending
	m.StudentRegistrationStudentID = nil
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return helper.MapPGError(err, "you already requested this student")
	}
	return nil
}

// Decide approves or rejects a pending request. Approval links the student
// whose identification number the request names.
func (s *StudentRegistrationService) Decide(ctx context.Context, id uuid.UUID, status string, note *string) (*model.StudentRegistrationModel, error) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return nil, fiber.NewError(fiber.StatusBadRequest, "status must be approved or rejected")
	}
	var out model.StudentRegistrationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "student_registration_id = ? AND student_registration_status = ?", id, model.StatusPending).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "registration request not found or already processed")
			}
			return err
		}
		updates := map[string]any{"student_registration_status": status}
		if note != nil {
			updates["student_registration_note"] = *note
		}
		if status == model.StatusApproved {
			var st studentModel.StudentModel
			if err := tx.First(&st, "student_identification_number = ?", out.StudentRegistrationIdentificationNumber).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "no student has this identification number")
				}
				return err
			}
			if err := MatchStudent(&out, &st); err != nil {
				return err
			}
			updates["student_registration_student_id"] = st.StudentID
		}
		if err := tx.Model(&out).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&out, "student_registration_id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	configs.Log.Info("student registration decided",
		zap.String("student_registration_id", id.String()), zap.String("status", status))
	return &out, nil
}
