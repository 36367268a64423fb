// file: internals/features/center/lesson_evaluations/model/lesson_evaluation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonEvaluationModel scores one student for one lesson slot of a module.
// Like galleries it is keyed by lesson number and moves when lessons are renumbered.
type LessonEvaluationModel struct {
	LessonEvaluationID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_evaluation_id" json:"lesson_evaluation_id"`
	LessonEvaluationModuleID     uuid.UUID  `gorm:"type:uuid;not null;column:lesson_evaluation_module_id;uniqueIndex:uq_lesson_evaluations_slot,where:lesson_evaluation_deleted_at IS NULL" json:"lesson_evaluation_module_id"`
	LessonEvaluationLessonNumber int        `gorm:"not null;column:lesson_evaluation_lesson_number;uniqueIndex:uq_lesson_evaluations_slot,where:lesson_evaluation_deleted_at IS NULL" json:"lesson_evaluation_lesson_number"`
	LessonEvaluationStudentID    uuid.UUID  `gorm:"type:uuid;not null;column:lesson_evaluation_student_id;uniqueIndex:uq_lesson_evaluations_slot,where:lesson_evaluation_deleted_at IS NULL;index:idx_lesson_evaluations_student" json:"lesson_evaluation_student_id"`
	LessonEvaluationEvaluatorID  *uuid.UUID `gorm:"type:uuid;column:lesson_evaluation_evaluator_id" json:"lesson_evaluation_evaluator_id"`

	LessonEvaluationFocusScore            int `gorm:"not null;column:lesson_evaluation_focus_score;check:lesson_evaluation_focus_score BETWEEN 1 AND 5" json:"focus_score"`
	LessonEvaluationPunctualityScore      int `gorm:"not null;column:lesson_evaluation_punctuality_score;check:lesson_evaluation_punctuality_score BETWEEN 1 AND 5" json:"punctuality_score"`
	LessonEvaluationInteractionScore      int `gorm:"not null;column:lesson_evaluation_interaction_score;check:lesson_evaluation_interaction_score BETWEEN 1 AND 5" json:"interaction_score"`
	LessonEvaluationProjectIdeaScore      int `gorm:"not null;column:lesson_evaluation_project_idea_score;check:lesson_evaluation_project_idea_score BETWEEN 1 AND 5" json:"project_idea_score"`
	LessonEvaluationCriticalThinkingScore int `gorm:"not null;column:lesson_evaluation_critical_thinking_score;check:lesson_evaluation_critical_thinking_score BETWEEN 1 AND 5" json:"critical_thinking_score"`
	LessonEvaluationTeamworkScore         int `gorm:"not null;column:lesson_evaluation_teamwork_score;check:lesson_evaluation_teamwork_score BETWEEN 1 AND 5" json:"teamwork_score"`
	LessonEvaluationIdeaSharingScore      int `gorm:"not null;column:lesson_evaluation_idea_sharing_score;check:lesson_evaluation_idea_sharing_score BETWEEN 1 AND 5" json:"idea_sharing_score"`
	LessonEvaluationCreativityScore       int `gorm:"not null;column:lesson_evaluation_creativity_score;check:lesson_evaluation_creativity_score BETWEEN 1 AND 5" json:"creativity_score"`
	LessonEvaluationCommunicationScore    int `gorm:"not null;column:lesson_evaluation_communication_score;check:lesson_evaluation_communication_score BETWEEN 1 AND 5" json:"communication_score"`
	LessonEvaluationHomeworkScore         int `gorm:"not null;column:lesson_evaluation_homework_score;check:lesson_evaluation_homework_score BETWEEN 1 AND 5" json:"homework_score"`
	LessonEvaluationOldKnowledgeScore     int `gorm:"not null;column:lesson_evaluation_old_knowledge_score;check:lesson_evaluation_old_knowledge_score BETWEEN 1 AND 5" json:"old_knowledge_score"`
	LessonEvaluationNewKnowledgeScore     int `gorm:"not null;column:lesson_evaluation_new_knowledge_score;check:lesson_evaluation_new_knowledge_score BETWEEN 1 AND 5" json:"new_knowledge_score"`

	LessonEvaluationComment *string `gorm:"type:text;column:lesson_evaluation_comment" json:"lesson_evaluation_comment"`

	LessonEvaluationCreatedAt time.Time      `gorm:"column:lesson_evaluation_created_at;autoCreateTime" json:"lesson_evaluation_created_at"`
	LessonEvaluationUpdatedAt time.Time      `gorm:"column:lesson_evaluation_updated_at;autoUpdateTime" json:"lesson_evaluation_updated_at"`
	LessonEvaluationDeletedAt gorm.DeletedAt `gorm:"column:lesson_evaluation_deleted_at;index" json:"lesson_evaluation_deleted_at,omitempty"`
}

func (LessonEvaluationModel) TableName() string { return "lesson_evaluations" }

func (m LessonEvaluationModel) IsDeleted() bool { return m.LessonEvaluationDeletedAt.Valid }

// ScoreFields maps each criterion code to its score column.
func (m *LessonEvaluationModel) ScoreFields() map[string]*int {
	return map[string]*int{
		"focus_score":             &m.LessonEvaluationFocusScore,
		"punctuality_score":       &m.LessonEvaluationPunctualityScore,
		"interaction_score":       &m.LessonEvaluationInteractionScore,
		"project_idea_score":      &m.LessonEvaluationProjectIdeaScore,
		"critical_thinking_score": &m.LessonEvaluationCriticalThinkingScore,
		"teamwork_score":          &m.LessonEvaluationTeamworkScore,
		"idea_sharing_score":      &m.LessonEvaluationIdeaSharingScore,
		"creativity_score":        &m.LessonEvaluationCreativityScore,
		"communication_score":     &m.LessonEvaluationCommunicationScore,
		"homework_score":          &m.LessonEvaluationHomeworkScore,
		"old_knowledge_score":     &m.LessonEvaluationOldKnowledgeScore,
		"new_knowledge_score":     &m.LessonEvaluationNewKnowledgeScore,
	}
}
