// file: internals/features/center/student_registrations/model/student_registration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// StudentRegistrationModel is an app user's request to follow a student. The
// student is linked when a manager approves it.
type StudentRegistrationModel struct {
	StudentRegistrationID                   uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_registration_id" json:"student_registration_id"`
	StudentRegistrationAppUserID            uuid.UUID  `gorm:"type:uuid;not null;column:student_registration_app_user_id;uniqueIndex:uq_student_registrations_request,where:student_registration_deleted_at IS NULL" json:"student_registration_app_user_id"`
	StudentRegistrationIdentificationNumber string     `gorm:"type:varchar(20);not null;column:student_registration_identification_number;uniqueIndex:uq_student_registrations_request,where:student_registration_deleted_at IS NULL" json:"student_registration_identification_number"`
	StudentRegistrationFirstName            string     `gorm:"type:varchar(100);not null;column:student_registration_first_name" json:"student_registration_first_name"`
	StudentRegistrationLastName             string     `gorm:"type:varchar(100);not null;column:student_registration_last_name" json:"student_registration_last_name"`
	StudentRegistrationDateOfBirth          time.Time  `gorm:"type:date;not null;column:student_registration_date_of_birth" json:"student_registration_date_of_birth"`
	StudentRegistrationStudentID            *uuid.UUID `gorm:"type:uuid;column:student_registration_student_id;index:idx_student_registrations_student" json:"student_registration_student_id"`
	StudentRegistrationStatus               string     `gorm:"type:varchar(20);not null;default:'pending';column:student_registration_status;check:student_registration_status IN ('pending','approved','rejected')" json:"student_registration_status"`
	StudentRegistrationNote                 *string    `gorm:"type:text;column:student_registration_note" json:"student_registration_note"`

	StudentRegistrationCreatedAt time.Time      `gorm:"column:student_registration_created_at;autoCreateTime" json:"student_registration_created_at"`
	StudentRegistrationUpdatedAt time.Time      `gorm:"column:student_registration_updated_at;autoUpdateTime" json:"student_registration_updated_at"`
	StudentRegistrationDeletedAt gorm.DeletedAt `gorm:"column:student_registration_deleted_at;index" json:"student_registration_deleted_at,omitempty"`
}

func (StudentRegistrationModel) TableName() string { return "student_registrations" }

func (m StudentRegistrationModel) IsDeleted() bool { return m.StudentRegistrationDeletedAt.Valid }

// LinkedStudentIDs selects the students an app user may see.
func LinkedStudentIDs(db *gorm.DB, appUserID uuid.UUID) *gorm.DB {
	return db.Model(&StudentRegistrationModel{}).
		Select("student_registration_student_id").
		Where("student_registration_app_user_id = ? AND student_registration_status = ? AND student_registration_student_id IS NOT NULL",
			appUserID, StatusApproved)
}
