// file: internals/features/center/lessons/service/timing_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/repository"
	"steam_backend/internals/features/center/lessons/schedule"
	"steam_backend/internals/helpers/dbtime"
)

type TimingService struct {
	Store repository.Store
	Clock dbtime.Clock
}

func NewTimingService(store repository.Store, clock dbtime.Clock) *TimingService {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	return &TimingService{Store: store, Clock: clock}
}

// LessonTiming is a lesson with everything derived from its class.
type LessonTiming struct {
	Lesson      lessonModel.LessonModel
	ModuleSeq   int
	Position    int
	Status      schedule.Status
	Start       *time.Time
	End         *time.Time
	Replacement *time.Time
}

// classContext carries what every lesson of a class needs for derivation.
type classContext struct {
	class   *classModel.ClassRoomModel
	weekly  schedule.WeeklySchedule
	modules []moduleModel.CourseModuleModel
	offsets map[uuid.UUID]int
	seqs    map[uuid.UUID]int
}

func loadClassContext(ctx context.Context, st repository.Store, classRoomID uuid.UUID) (*classContext, error) {
	class, err := st.GetClassRoom(ctx, classRoomID)
	if err != nil {
		return nil, notFound(err, "class room")
	}
	weekly, err := class.Weekly()
	if err != nil {
		return nil, fmt.Errorf("class room %s: decode schedule: %w", classRoomID, err)
	}
	modules, err := st.ListModules(ctx, classRoomID)
	if err != nil {
		return nil, fmt.Errorf("list modules of %s: %w", classRoomID, err)
	}

	cc := &classContext{
		class:   class,
		weekly:  weekly,
		modules: modules,
		offsets: make(map[uuid.UUID]int, len(modules)),
		seqs:    make(map[uuid.UUID]int, len(modules)),
	}
	sum := 0
	for _, m := range modules {
		cc.offsets[m.CourseModuleID] = sum
		cc.seqs[m.CourseModuleID] = m.CourseModuleSequenceNumber
		sum += m.CourseModuleTotalLessons
	}
	return cc, nil
}

// position is the lesson's 1-based index across the whole class.
func (cc *classContext) position(l lessonModel.LessonModel) int {
	return cc.offsets[l.LessonModuleID] + l.LessonSequenceNumber
}

func (cc *classContext) derive(l lessonModel.LessonModel, replacement *time.Time, now time.Time) (*LessonTiming, error) {
	pos := cc.position(l)

	nominal, err := schedule.NominalWindow(cc.class.ClassRoomStartDate, cc.weekly, pos)
	if err != nil {
		return nil, fmt.Errorf("lesson %s at position %d: %w", l.LessonID, pos, err)
	}
	start, end := schedule.Effective(nominal, replacement)

	status, err := schedule.LessonStatus(cc.class.ClassRoomStartDate, cc.class.ClassRoomEndDate, cc.weekly, pos, now)
	if err != nil {
		return nil, fmt.Errorf("lesson %s status: %w", l.LessonID, err)
	}

	return &LessonTiming{
		Lesson:      l,
		ModuleSeq:   cc.seqs[l.LessonModuleID],
		Position:    pos,
		Status:      status,
		Start:       dbtime.ToLocalPtr(start),
		End:         dbtime.ToLocalPtr(end),
		Replacement: dbtime.ToLocalPtr(replacement),
	}, nil
}

// Resolve derives one lesson.
func (s *TimingService) Resolve(ctx context.Context, lessonID uuid.UUID) (*LessonTiming, error) {
	return s.resolve(ctx, s.Store, lessonID)
}

func (s *TimingService) resolve(ctx context.Context, st repository.Store, lessonID uuid.UUID) (*LessonTiming, error) {
	lesson, err := st.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, notFound(err, "lesson")
	}
	return s.resolveLesson(ctx, st, *lesson)
}

func (s *TimingService) resolveLesson(ctx context.Context, st repository.Store, lesson lessonModel.LessonModel) (*LessonTiming, error) {
	module, err := st.GetModule(ctx, lesson.LessonModuleID)
	if err != nil {
		return nil, notFound(err, "module")
	}
	cc, err := loadClassContext(ctx, st, module.CourseModuleClassRoomID)
	if err != nil {
		return nil, err
	}
	reps, err := st.EarliestReplacements(ctx, []uuid.UUID{lesson.LessonID})
	if err != nil {
		return nil, fmt.Errorf("load replacements: %w", err)
	}
	var rep *time.Time
	if t, ok := reps[lesson.LessonID]; ok {
		rep = &t
	}
	return cc.derive(lesson, rep, s.Clock.Now())
}

// Timetable derives every alive lesson of a class, in module-then-lesson order.
func (s *TimingService) Timetable(ctx context.Context, classRoomID uuid.UUID) ([]LessonTiming, error) {
	cc, err := loadClassContext(ctx, s.Store, classRoomID)
	if err != nil {
		return nil, err
	}

	var lessons []lessonModel.LessonModel
	for _, m := range cc.modules {
		rows, err := s.Store.ListLessons(ctx, m.CourseModuleID)
		if err != nil {
			return nil, fmt.Errorf("list lessons of %s: %w", m.CourseModuleID, err)
		}
		lessons = append(lessons, rows...)
	}

	ids := make([]uuid.UUID, len(lessons))
	for i, l := range lessons {
		ids[i] = l.LessonID
	}
	reps, err := s.Store.EarliestReplacements(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load replacements: %w", err)
	}

	now := s.Clock.Now()
	out := make([]LessonTiming, 0, len(lessons))
	for _, l := range lessons {
		var rep *time.Time
		if t, ok := reps[l.LessonID]; ok {
			rep = &t
		}
		lt, err := cc.derive(l, rep, now)
		if err != nil {
			return nil, err
		}
		out = append(out, *lt)
	}
	return out, nil
}
