// file: internals/features/center/lesson_checkins/service/checkin_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	classModel "steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/features/center/lesson_checkins/model"
	"steam_backend/internals/features/center/lessons/repository"
	lessonService "steam_backend/internals/features/center/lessons/service"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

// Window is how far from the lesson start a check-in is accepted, either side.
const Window = 15 * time.Minute

type CheckinService struct {
	DB    *gorm.DB
	Store repository.Store
	Clock dbtime.Clock
}

func NewCheckinService(db *gorm.DB, clock dbtime.Clock) *CheckinService {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	return &CheckinService{DB: db, Store: repository.NewGormStore(db), Clock: clock}
}

// CheckinType maps the user's role in the class to the check-in type.
func CheckinType(class *classModel.ClassRoomModel, userID uuid.UUID) (string, error) {
	switch {
	case class.ClassRoomTeacherID != nil && *class.ClassRoomTeacherID == userID:
		return model.TypeTeacher, nil
	case class.ClassRoomTeachingAssistantID != nil && *class.ClassRoomTeachingAssistantID == userID:
		return model.TypeTeachingAssistant, nil
	}
	return "", fiber.NewError(fiber.StatusForbidden, "you are not the teacher or teaching assistant of this class")
}

// CheckWindow accepts now within Window of the lesson start.
func CheckWindow(start *time.Time, now time.Time) error {
	if start == nil {
		return fiber.NewError(fiber.StatusBadRequest, "lesson has no scheduled start time")
	}
	d := now.Sub(*start)
	if d < -Window || d > Window {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("check-in is only allowed within %d minutes of the lesson start (%s)",
				int(Window.Minutes()), dbtime.ToLocal(*start).Format("2006-01-02 15:04")))
	}
	return nil
}

// Checkin records userID at the lesson, resolving the lesson start from the class schedule.
func (s *CheckinService) Checkin(ctx context.Context, userID, lessonID uuid.UUID) (*model.LessonCheckinModel, error) {
	timing, err := lessonService.NewTimingService(s.Store, s.Clock).Resolve(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	module, err := s.Store.GetModule(ctx, timing.Lesson.LessonModuleID)
	if err != nil {
		return nil, notFound(err, "module")
	}
	class, err := s.Store.GetClassRoom(ctx, module.CourseModuleClassRoomID)
	if err != nil {
		return nil, notFound(err, "class room")
	}
	typ, err := CheckinType(class, userID)
	if err != nil {
		return nil, err
	}
	now := s.Clock.Now()
	if err := CheckWindow(timing.Start, now); err != nil {
		return nil, err
	}

	m := &model.LessonCheckinModel{
		LessonCheckinLessonID: lessonID,
		LessonCheckinUserID:   userID,
		LessonCheckinType:     typ,
		LessonCheckinAt:       now,
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, helper.MapPGError(err, "you have already checked in for this lesson")
	}
	configs.Log.Info("lesson check-in",
		zap.String("lesson_id", lessonID.String()),
		zap.String("user_id", userID.String()),
		zap.String("type", typ))
	return m, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return fmt.Errorf("load %s: %w", what, err)
}
