// file: internals/features/center/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type StudentModel struct {
	StudentID                   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentIdentificationNumber string    `gorm:"type:varchar(20);not null;column:student_identification_number;uniqueIndex:uq_students_identification,where:student_deleted_at IS NULL" json:"student_identification_number"`
	StudentFirstName            string    `gorm:"type:varchar(100);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName             string    `gorm:"type:varchar(100);not null;column:student_last_name" json:"student_last_name"`
	StudentDateOfBirth          time.Time `gorm:"type:date;not null;column:student_date_of_birth" json:"student_date_of_birth"`
	StudentGender               string    `gorm:"type:varchar(10);not null;column:student_gender;check:student_gender IN ('male','female','other')" json:"student_gender"`
	StudentAddress              *string   `gorm:"type:text;column:student_address" json:"student_address"`
	StudentPhoneNumber          *string   `gorm:"type:varchar(20);column:student_phone_number" json:"student_phone_number"`
	StudentEmail                *string   `gorm:"type:varchar(255);column:student_email" json:"student_email"`
	StudentParentName           string    `gorm:"type:varchar(150);not null;column:student_parent_name" json:"student_parent_name"`
	StudentParentPhone          string    `gorm:"type:varchar(20);not null;column:student_parent_phone" json:"student_parent_phone"`
	StudentParentEmail          *string   `gorm:"type:varchar(255);column:student_parent_email" json:"student_parent_email"`
	StudentNote                 *string   `gorm:"type:text;column:student_note" json:"student_note"`
	StudentAvatarURL            *string   `gorm:"type:text;column:student_avatar_url" json:"student_avatar_url"`
	StudentIsActive             bool      `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m StudentModel) IsDeleted() bool { return m.StudentDeletedAt.Valid }

func (m StudentModel) FullName() string { return m.StudentLastName + " " + m.StudentFirstName }
