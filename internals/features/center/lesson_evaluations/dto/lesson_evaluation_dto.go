// file: internals/features/center/lesson_evaluations/dto/lesson_evaluation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"steam_backend/internals/features/center/lesson_evaluations/model"
	helper "steam_backend/internals/helpers"
)

func init() {
	helper.RegisterValidation("criterion", func(fl validator.FieldLevel) bool {
		return model.IsCriterion(fl.Field().String())
	}, "{0} must name a known evaluation criterion")
}

// Scores maps criterion codes (see GET /evaluation-criteria) to 1..5.
type Scores map[string]int

type CreateLessonEvaluationRequest struct {
	ModuleID     uuid.UUID `json:"module_id" validate:"required"`
	LessonNumber int       `json:"lesson_number" validate:"required,gte=1"`
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Scores       Scores    `json:"scores" validate:"required,dive,keys,criterion,endkeys,min=1,max=5"`
	Comment      *string   `json:"comment"`
}

// ToModel requires a score for every criterion.
func (r *CreateLessonEvaluationRequest) ToModel(evaluatorID *uuid.UUID) (*model.LessonEvaluationModel, error) {
	var missing []string
	for _, c := range model.Criteria {
		if _, ok := r.Scores[c.Code]; !ok {
			missing = append(missing, c.Code)
		}
	}
	if len(missing) > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "missing scores: "+strings.Join(missing, ", "))
	}
	m := &model.LessonEvaluationModel{
		LessonEvaluationModuleID:     r.ModuleID,
		LessonEvaluationLessonNumber: r.LessonNumber,
		LessonEvaluationStudentID:    r.StudentID,
		LessonEvaluationEvaluatorID:  evaluatorID,
		LessonEvaluationComment:      trimPtr(r.Comment),
	}
	r.Scores.applyTo(m)
	return m, nil
}

type UpdateLessonEvaluationRequest struct {
	Scores  Scores  `json:"scores" validate:"omitempty,dive,keys,criterion,endkeys,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (r *UpdateLessonEvaluationRequest) Apply(m *model.LessonEvaluationModel) {
	r.Scores.applyTo(m)
	if r.Comment != nil {
		m.LessonEvaluationComment = trimPtr(r.Comment)
	}
}

func (s Scores) applyTo(m *model.LessonEvaluationModel) {
	fields := m.ScoreFields()
	for code, v := range s {
		if p, ok := fields[code]; ok {
			*p = v
		}
	}
}

type LessonEvaluationResponse struct {
	LessonEvaluationID           uuid.UUID  `json:"lesson_evaluation_id"`
	LessonEvaluationModuleID     uuid.UUID  `json:"lesson_evaluation_module_id"`
	LessonEvaluationLessonNumber int        `json:"lesson_evaluation_lesson_number"`
	LessonEvaluationStudentID    uuid.UUID  `json:"lesson_evaluation_student_id"`
	LessonEvaluationEvaluatorID  *uuid.UUID `json:"lesson_evaluation_evaluator_id,omitempty"`
	Scores                       Scores     `json:"scores"`
	Average                      float64    `json:"average"`
	LessonEvaluationComment      *string    `json:"lesson_evaluation_comment,omitempty"`
	LessonEvaluationCreatedAt    time.Time  `json:"lesson_evaluation_created_at"`
	LessonEvaluationUpdatedAt    time.Time  `json:"lesson_evaluation_updated_at"`
}

func FromModel(m model.LessonEvaluationModel) LessonEvaluationResponse {
	fields := m.ScoreFields()
	scores := make(Scores, len(fields))
	sum := 0
	for code, p := range fields {
		scores[code] = *p
		sum += *p
	}
	return LessonEvaluationResponse{
		LessonEvaluationID:           m.LessonEvaluationID,
		LessonEvaluationModuleID:     m.LessonEvaluationModuleID,
		LessonEvaluationLessonNumber: m.LessonEvaluationLessonNumber,
		LessonEvaluationStudentID:    m.LessonEvaluationStudentID,
		LessonEvaluationEvaluatorID:  m.LessonEvaluationEvaluatorID,
		Scores:                       scores,
		Average:                      float64(sum) / float64(len(fields)),
		LessonEvaluationComment:      m.LessonEvaluationComment,
		LessonEvaluationCreatedAt:    m.LessonEvaluationCreatedAt,
		LessonEvaluationUpdatedAt:    m.LessonEvaluationUpdatedAt,
	}
}

func FromModels(rows []model.LessonEvaluationModel) []LessonEvaluationResponse {
	out := make([]LessonEvaluationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
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
