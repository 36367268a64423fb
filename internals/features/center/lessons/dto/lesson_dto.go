// file: internals/features/center/lessons/dto/lesson_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/schedule"
	"steam_backend/internals/features/center/lessons/service"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateLessonRequest struct {
	ModuleID       uuid.UUID `json:"module_id" validate:"required"`
	Name           string    `json:"name" validate:"omitempty,max=150"`
	SequenceNumber int       `json:"sequence_number"`
}

type RenameLessonRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

// ReplaceLessonRequest carries the new start; an offset-less value is read in the center zone.
type ReplaceLessonRequest struct {
	Schedule string `json:"schedule" validate:"required"`
}

/* =========================================================
   Responses
   ========================================================= */

type LessonResponse struct {
	LessonID             uuid.UUID `json:"lesson_id"`
	LessonModuleID       uuid.UUID `json:"lesson_module_id"`
	LessonName           string    `json:"lesson_name"`
	LessonSequenceNumber int       `json:"lesson_sequence_number"`
	LessonCreatedAt      time.Time `json:"lesson_created_at"`
	LessonUpdatedAt      time.Time `json:"lesson_updated_at"`
}

func FromModel(m model.LessonModel) LessonResponse {
	return LessonResponse{
		LessonID:             m.LessonID,
		LessonModuleID:       m.LessonModuleID,
		LessonName:           m.LessonName,
		LessonSequenceNumber: m.LessonSequenceNumber,
		LessonCreatedAt:      m.LessonCreatedAt,
		LessonUpdatedAt:      m.LessonUpdatedAt,
	}
}

// LessonTimingResponse is a lesson with its derived status and effective times.
type LessonTimingResponse struct {
	LessonResponse
	ModuleSequenceNumber int             `json:"module_sequence_number"`
	Position             int             `json:"position"`
	Status               schedule.Status `json:"status"`
	StartDateTime        *time.Time      `json:"start_datetime"`
	EndDateTime          *time.Time      `json:"end_datetime"`
	ReplacementSchedule  *time.Time      `json:"replacement_schedule,omitempty"`
}

func FromTiming(t service.LessonTiming) LessonTimingResponse {
	return LessonTimingResponse{
		LessonResponse:       FromModel(t.Lesson),
		ModuleSequenceNumber: t.ModuleSeq,
		Position:             t.Position,
		Status:               t.Status,
		StartDateTime:        t.Start,
		EndDateTime:          t.End,
		ReplacementSchedule:  t.Replacement,
	}
}

func FromTimings(rows []service.LessonTiming) []LessonTimingResponse {
	out := make([]LessonTimingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromTiming(r))
	}
	return out
}

type ReplacementResponse struct {
	LessonReplacementID        uuid.UUID `json:"lesson_replacement_id"`
	LessonReplacementLessonID  uuid.UUID `json:"lesson_replacement_lesson_id"`
	LessonReplacementSchedule  time.Time `json:"lesson_replacement_schedule"`
	LessonReplacementCreatedAt time.Time `json:"lesson_replacement_created_at"`
}

func FromReplacement(m model.LessonReplacementModel) ReplacementResponse {
	return ReplacementResponse{
		LessonReplacementID:        m.LessonReplacementID,
		LessonReplacementLessonID:  m.LessonReplacementLessonID,
		LessonReplacementSchedule:  m.LessonReplacementSchedule,
		LessonReplacementCreatedAt: m.LessonReplacementCreatedAt,
	}
}

func FromReplacements(rows []model.LessonReplacementModel) []ReplacementResponse {
	out := make([]ReplacementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromReplacement(r))
	}
	return out
}
