// file: internals/features/center/course_registrations/model/course_registration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"

	PaymentUnpaid        = "unpaid"
	PaymentPartiallyPaid = "partially_paid"
	PaymentFullyPaid     = "fully_paid"
)

// CourseRegistrationModel books a student into a class. Only one alive row per pair.
type CourseRegistrationModel struct {
	CourseRegistrationID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_registration_id" json:"course_registration_id"`
	CourseRegistrationStudentID     uuid.UUID `gorm:"type:uuid;not null;column:course_registration_student_id;uniqueIndex:uq_course_registrations_pair,where:course_registration_deleted_at IS NULL" json:"course_registration_student_id"`
	CourseRegistrationClassRoomID   uuid.UUID `gorm:"type:uuid;not null;column:course_registration_class_room_id;uniqueIndex:uq_course_registrations_pair,where:course_registration_deleted_at IS NULL;index:idx_course_registrations_class" json:"course_registration_class_room_id"`
	CourseRegistrationStatus        string    `gorm:"type:varchar(20);not null;default:'pending';column:course_registration_status;check:course_registration_status IN ('pending','approved','rejected','cancelled')" json:"course_registration_status"`
	CourseRegistrationAmount        int64     `gorm:"not null;default:0;column:course_registration_amount" json:"course_registration_amount"`
	CourseRegistrationPaidAmount    int64     `gorm:"not null;default:0;column:course_registration_paid_amount" json:"course_registration_paid_amount"`
	CourseRegistrationPaymentMethod *string   `gorm:"type:varchar(50);column:course_registration_payment_method" json:"course_registration_payment_method"`
	CourseRegistrationPaymentStatus string    `gorm:"type:varchar(20);not null;default:'unpaid';column:course_registration_payment_status" json:"course_registration_payment_status"`
	CourseRegistrationNote          *string   `gorm:"type:text;column:course_registration_note" json:"course_registration_note"`

	CourseRegistrationCreatedAt time.Time      `gorm:"column:course_registration_created_at;autoCreateTime" json:"course_registration_created_at"`
	CourseRegistrationUpdatedAt time.Time      `gorm:"column:course_registration_updated_at;autoUpdateTime" json:"course_registration_updated_at"`
	CourseRegistrationDeletedAt gorm.DeletedAt `gorm:"column:course_registration_deleted_at;index" json:"course_registration_deleted_at,omitempty"`
}

func (CourseRegistrationModel) TableName() string { return "course_registrations" }

func (m CourseRegistrationModel) IsDeleted() bool { return m.CourseRegistrationDeletedAt.Valid }

// PaymentStatus derives the payment label from the amounts.
func PaymentStatus(amount, paid int64) string {
	switch {
	case paid >= amount:
		return PaymentFullyPaid
	case paid > 0:
		return PaymentPartiallyPaid
	default:
		return PaymentUnpaid
	}
}

// BeforeSave keeps the stored payment status in step with the amounts.
func (m *CourseRegistrationModel) BeforeSave(*gorm.DB) error {
	m.CourseRegistrationPaymentStatus = PaymentStatus(m.CourseRegistrationAmount, m.CourseRegistrationPaidAmount)
	return nil
}

// Enrolled is true once the registration is approved and paid in full.
func (m CourseRegistrationModel) Enrolled() bool {
	return m.CourseRegistrationStatus == StatusApproved &&
		PaymentStatus(m.CourseRegistrationAmount, m.CourseRegistrationPaidAmount) == PaymentFullyPaid
}

// EnrolledScope filters registrations to the ones that hold a seat.
func EnrolledScope(db *gorm.DB) *gorm.DB {
	return db.Where("course_registration_status = ? AND course_registration_paid_amount >= course_registration_amount", StatusApproved)
}
