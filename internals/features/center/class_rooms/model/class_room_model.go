// file: internals/features/center/class_rooms/model/class_room_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"steam_backend/internals/features/center/lessons/schedule"
	"steam_backend/internals/helpers/dbtime"
)

type ClassRoomModel struct {
	ClassRoomID                  uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_room_id" json:"class_room_id"`
	ClassRoomCourseID            uuid.UUID  `gorm:"type:uuid;not null;column:class_room_course_id;index:idx_class_rooms_course" json:"class_room_course_id"`
	ClassRoomName                string     `gorm:"type:varchar(150);not null;column:class_room_name" json:"class_room_name"`
	ClassRoomDescription         *string    `gorm:"type:text;column:class_room_description" json:"class_room_description"`
	ClassRoomThumbnailURL        *string    `gorm:"type:text;column:class_room_thumbnail_url" json:"class_room_thumbnail_url"`
	ClassRoomTeacherID           *uuid.UUID `gorm:"type:uuid;column:class_room_teacher_id;index:idx_class_rooms_teacher" json:"class_room_teacher_id"`
	ClassRoomTeachingAssistantID *uuid.UUID `gorm:"type:uuid;column:class_room_teaching_assistant_id" json:"class_room_teaching_assistant_id"`
	ClassRoomMaxStudents         int        `gorm:"not null;default:20;column:class_room_max_students" json:"class_room_max_students"`
	ClassRoomStartDate           time.Time  `gorm:"type:date;not null;column:class_room_start_date" json:"class_room_start_date"`
	ClassRoomEndDate             time.Time  `gorm:"type:date;not null;column:class_room_end_date" json:"class_room_end_date"`

	// weekday name → "HH:MM-HH:MM"; NULL means no recurrence yet
	ClassRoomSchedule datatypes.JSON `gorm:"type:jsonb;column:class_room_schedule" json:"class_room_schedule"`

	ClassRoomIsActive bool `gorm:"not null;default:true;column:class_room_is_active" json:"class_room_is_active"`

	ClassRoomCreatedAt time.Time      `gorm:"column:class_room_created_at;autoCreateTime" json:"class_room_created_at"`
	ClassRoomUpdatedAt time.Time      `gorm:"column:class_room_updated_at;autoUpdateTime" json:"class_room_updated_at"`
	ClassRoomDeletedAt gorm.DeletedAt `gorm:"column:class_room_deleted_at;index" json:"class_room_deleted_at,omitempty"`
}

func (ClassRoomModel) TableName() string { return "class_rooms" }

func (m ClassRoomModel) IsDeleted() bool { return m.ClassRoomDeletedAt.Valid }

// Weekly decodes the stored schedule. A NULL column yields a nil schedule.
func (m ClassRoomModel) Weekly() (schedule.WeeklySchedule, error) {
	if len(m.ClassRoomSchedule) == 0 {
		return nil, nil
	}
	var w schedule.WeeklySchedule
	if err := json.Unmarshal(m.ClassRoomSchedule, &w); err != nil {
		return nil, err
	}
	return w, nil
}

func (m *ClassRoomModel) SetWeekly(w schedule.WeeklySchedule) error {
	if w == nil {
		m.ClassRoomSchedule = nil
		return nil
	}
	b, err := json.Marshal(w.Normalize())
	if err != nil {
		return err
	}
	m.ClassRoomSchedule = datatypes.JSON(b)
	return nil
}

// HasStaff reports whether userID teaches or assists this class.
func (m ClassRoomModel) HasStaff(userID uuid.UUID) bool {
	return (m.ClassRoomTeacherID != nil && *m.ClassRoomTeacherID == userID) ||
		(m.ClassRoomTeachingAssistantID != nil && *m.ClassRoomTeachingAssistantID == userID)
}

// Ended reports whether the class's last day is before today.
func (m ClassRoomModel) Ended(clk dbtime.Clock) bool {
	return dbtime.Today(clk).After(dbtime.CivilDate(m.ClassRoomEndDate))
}
