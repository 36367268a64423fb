// file: internals/features/center/class_rooms/dto/class_room_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/features/center/lessons/schedule"
	helper "steam_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

func init() {
	helper.RegisterValidation("weekly_schedule", validWeekly,
		"{0} must map weekday names to HH:MM-HH:MM ranges with start before end")
}

func validWeekly(fl validator.FieldLevel) bool {
	switch w := fl.Field().Interface().(type) {
	case schedule.WeeklySchedule:
		return w.Validate() == nil
	case map[string]string:
		return schedule.WeeklySchedule(w).Validate() == nil
	default:
		return false
	}
}

/* =========================================================
   PatchField (tri-state): absent | null | value
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

/* =========================================================
   Requests
   ========================================================= */

type CreateClassRoomRequest struct {
	ClassRoomCourseID            uuid.UUID               `json:"class_room_course_id" validate:"required"`
	ClassRoomName                string                  `json:"class_room_name" validate:"required,max=150"`
	ClassRoomDescription         *string                 `json:"class_room_description"`
	ClassRoomThumbnailURL        *string                 `json:"class_room_thumbnail_url" validate:"omitempty,url"`
	ClassRoomTeacherID           *uuid.UUID              `json:"class_room_teacher_id"`
	ClassRoomTeachingAssistantID *uuid.UUID              `json:"class_room_teaching_assistant_id"`
	ClassRoomMaxStudents         *int                    `json:"class_room_max_students" validate:"omitempty,gte=1,lte=500"`
	ClassRoomStartDate           string                  `json:"class_room_start_date" validate:"required,datetime=2006-01-02"`
	ClassRoomEndDate             string                  `json:"class_room_end_date" validate:"required,datetime=2006-01-02"`
	ClassRoomSchedule            schedule.WeeklySchedule `json:"class_room_schedule" validate:"omitempty,weekly_schedule"`
	ClassRoomIsActive            *bool                   `json:"class_room_is_active"`
}

// ToModel runs the cross-field checks the validator cannot express.
func (r *CreateClassRoomRequest) ToModel() (*model.ClassRoomModel, error) {
	start, end, err := parseRange(r.ClassRoomStartDate, r.ClassRoomEndDate)
	if err != nil {
		return nil, err
	}
	m := &model.ClassRoomModel{
		ClassRoomCourseID:            r.ClassRoomCourseID,
		ClassRoomName:                strings.TrimSpace(r.ClassRoomName),
		ClassRoomDescription:         trimPtr(r.ClassRoomDescription),
		ClassRoomThumbnailURL:        trimPtr(r.ClassRoomThumbnailURL),
		ClassRoomTeacherID:           r.ClassRoomTeacherID,
		ClassRoomTeachingAssistantID: r.ClassRoomTeachingAssistantID,
		ClassRoomMaxStudents:         20,
		ClassRoomStartDate:           start,
		ClassRoomEndDate:             end,
		ClassRoomIsActive:            true,
	}
	if r.ClassRoomMaxStudents != nil {
		m.ClassRoomMaxStudents = *r.ClassRoomMaxStudents
	}
	if r.ClassRoomIsActive != nil {
		m.ClassRoomIsActive = *r.ClassRoomIsActive
	}
	if len(r.ClassRoomSchedule) > 0 {
		if err := setWeekly(m, r.ClassRoomSchedule); err != nil {
			return nil, err
		}
	}
	return m, nil
}

type UpdateClassRoomRequest struct {
	ClassRoomName                *string                             `json:"class_room_name" validate:"omitempty,min=1,max=150"`
	ClassRoomDescription         *string                             `json:"class_room_description"`
	ClassRoomThumbnailURL        *string                             `json:"class_room_thumbnail_url" validate:"omitempty,url"`
	ClassRoomTeacherID           *uuid.UUID                          `json:"class_room_teacher_id"`
	ClassRoomTeachingAssistantID *uuid.UUID                          `json:"class_room_teaching_assistant_id"`
	ClassRoomMaxStudents         *int                                `json:"class_room_max_students" validate:"omitempty,gte=1,lte=500"`
	ClassRoomStartDate           *string                             `json:"class_room_start_date" validate:"omitempty,datetime=2006-01-02"`
	ClassRoomEndDate             *string                             `json:"class_room_end_date" validate:"omitempty,datetime=2006-01-02"`
	ClassRoomSchedule            PatchField[schedule.WeeklySchedule] `json:"class_room_schedule"`
	ClassRoomIsActive            *bool                               `json:"class_room_is_active"`
}

// Apply patches m in place. A null schedule clears the recurrence.
func (r *UpdateClassRoomRequest) Apply(m *model.ClassRoomModel) error {
	if r.ClassRoomName != nil {
		m.ClassRoomName = strings.TrimSpace(*r.ClassRoomName)
	}
	if r.ClassRoomDescription != nil {
		m.ClassRoomDescription = trimPtr(r.ClassRoomDescription)
	}
	if r.ClassRoomThumbnailURL != nil {
		m.ClassRoomThumbnailURL = trimPtr(r.ClassRoomThumbnailURL)
	}
	if r.ClassRoomTeacherID != nil {
		m.ClassRoomTeacherID = r.ClassRoomTeacherID
	}
	if r.ClassRoomTeachingAssistantID != nil {
		m.ClassRoomTeachingAssistantID = r.ClassRoomTeachingAssistantID
	}
	if r.ClassRoomMaxStudents != nil {
		m.ClassRoomMaxStudents = *r.ClassRoomMaxStudents
	}
	if r.ClassRoomIsActive != nil {
		m.ClassRoomIsActive = *r.ClassRoomIsActive
	}

	startStr, endStr := m.ClassRoomStartDate.Format(dateLayout), m.ClassRoomEndDate.Format(dateLayout)
	if r.ClassRoomStartDate != nil {
		startStr = *r.ClassRoomStartDate
	}
	if r.ClassRoomEndDate != nil {
		endStr = *r.ClassRoomEndDate
	}
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return err
	}
	m.ClassRoomStartDate, m.ClassRoomEndDate = start, end

	if r.ClassRoomSchedule.Present {
		if r.ClassRoomSchedule.Value == nil || len(*r.ClassRoomSchedule.Value) == 0 {
			return m.SetWeekly(nil)
		}
		return setWeekly(m, *r.ClassRoomSchedule.Value)
	}
	return nil
}

func setWeekly(m *model.ClassRoomModel, w schedule.WeeklySchedule) error {
	if err := w.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_room_schedule: "+err.Error())
	}
	return m.SetWeekly(w)
}

// parseRange reads both dates as UTC midnight, the way DATE columns scan back.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(startStr))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "class_room_start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(endStr))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "class_room_end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "class_room_end_date must not be before class_room_start_date")
	}
	return start, end, nil
}

/* =========================================================
   Response
   ========================================================= */

type ClassRoomResponse struct {
	ClassRoomID                  uuid.UUID               `json:"class_room_id"`
	ClassRoomCourseID            uuid.UUID               `json:"class_room_course_id"`
	ClassRoomName                string                  `json:"class_room_name"`
	ClassRoomDescription         *string                 `json:"class_room_description,omitempty"`
	ClassRoomThumbnailURL        *string                 `json:"class_room_thumbnail_url,omitempty"`
	ClassRoomTeacherID           *uuid.UUID              `json:"class_room_teacher_id,omitempty"`
	ClassRoomTeachingAssistantID *uuid.UUID              `json:"class_room_teaching_assistant_id,omitempty"`
	ClassRoomMaxStudents         int                     `json:"class_room_max_students"`
	ClassRoomStartDate           string                  `json:"class_room_start_date"`
	ClassRoomEndDate             string                  `json:"class_room_end_date"`
	ClassRoomSchedule            schedule.WeeklySchedule `json:"class_room_schedule"`
	ClassRoomIsActive            bool                    `json:"class_room_is_active"`
	TotalSessions                int                     `json:"total_sessions"`
	ClassRoomCreatedAt           time.Time               `json:"class_room_created_at"`
	ClassRoomUpdatedAt           time.Time               `json:"class_room_updated_at"`
}

// FromModel renders a class; a stored schedule that no longer decodes is shown as null.
func FromModel(m model.ClassRoomModel, totalSessions int) ClassRoomResponse {
	weekly, _ := m.Weekly()
	return ClassRoomResponse{
		ClassRoomID:                  m.ClassRoomID,
		ClassRoomCourseID:            m.ClassRoomCourseID,
		ClassRoomName:                m.ClassRoomName,
		ClassRoomDescription:         m.ClassRoomDescription,
		ClassRoomThumbnailURL:        m.ClassRoomThumbnailURL,
		ClassRoomTeacherID:           m.ClassRoomTeacherID,
		ClassRoomTeachingAssistantID: m.ClassRoomTeachingAssistantID,
		ClassRoomMaxStudents:         m.ClassRoomMaxStudents,
		ClassRoomStartDate:           m.ClassRoomStartDate.Format(dateLayout),
		ClassRoomEndDate:             m.ClassRoomEndDate.Format(dateLayout),
		ClassRoomSchedule:            weekly,
		ClassRoomIsActive:            m.ClassRoomIsActive,
		TotalSessions:                totalSessions,
		ClassRoomCreatedAt:           m.ClassRoomCreatedAt,
		ClassRoomUpdatedAt:           m.ClassRoomUpdatedAt,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
