// file: internals/features/center/lesson_checkins/dto/lesson_checkin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"steam_backend/internals/features/center/lesson_checkins/model"
	"steam_backend/internals/helpers/dbtime"
)

type CreateLessonCheckinRequest struct {
	LessonID uuid.UUID `json:"lesson_id" validate:"required"`
}

type LessonCheckinResponse struct {
	LessonCheckinID       uuid.UUID `json:"lesson_checkin_id"`
	LessonCheckinLessonID uuid.UUID `json:"lesson_checkin_lesson_id"`
	LessonCheckinUserID   uuid.UUID `json:"lesson_checkin_user_id"`
	LessonCheckinType     string    `json:"lesson_checkin_type"`
	LessonCheckinAt       time.Time `json:"lesson_checkin_at"`
}

func FromModel(m model.LessonCheckinModel) LessonCheckinResponse {
	return LessonCheckinResponse{
		LessonCheckinID:       m.LessonCheckinID,
		LessonCheckinLessonID: m.LessonCheckinLessonID,
		LessonCheckinUserID:   m.LessonCheckinUserID,
		LessonCheckinType:     m.LessonCheckinType,
		LessonCheckinAt:       dbtime.ToLocal(m.LessonCheckinAt),
	}
}

func FromModels(rows []model.LessonCheckinModel) []LessonCheckinResponse {
	out := make([]LessonCheckinResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
