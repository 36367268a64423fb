// file: internals/features/center/lessons/repository/memory_store.go
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	evaluationModel "steam_backend/internals/features/center/lesson_evaluations/model"
	galleryModel "steam_backend/internals/features/center/lesson_galleries/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
)

// MemoryStore is an in-process Store for tests and local tooling. Transaction snapshots the
// whole state and restores it when fn fails.
type MemoryStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	classRooms   map[uuid.UUID]classModel.ClassRoomModel
	modules      map[uuid.UUID]moduleModel.CourseModuleModel
	lessons      map[uuid.UUID]lessonModel.LessonModel
	replacements map[uuid.UUID]lessonModel.LessonReplacementModel
	galleries    map[uuid.UUID]galleryModel.LessonGalleryModel
	evaluations  map[uuid.UUID]evaluationModel.LessonEvaluationModel

	faults map[string]error
	seq    int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		classRooms:   map[uuid.UUID]classModel.ClassRoomModel{},
		modules:      map[uuid.UUID]moduleModel.CourseModuleModel{},
		lessons:      map[uuid.UUID]lessonModel.LessonModel{},
		replacements: map[uuid.UUID]lessonModel.LessonReplacementModel{},
		galleries:    map[uuid.UUID]galleryModel.LessonGalleryModel{},
		evaluations:  map[uuid.UUID]evaluationModel.LessonEvaluationModel{},
		faults:       map[string]error{},
	}
}

// FailOn makes the next call of the named method return err.
func (s *MemoryStore) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[method] = err
}

func (s *MemoryStore) fault(method string) error {
	if err, ok := s.faults[method]; ok {
		delete(s.faults, method)
		return err
	}
	return nil
}

// tick keeps created_at strictly increasing so insertion order is observable.
func (s *MemoryStore) tick() time.Time {
	s.seq++
	return time.Unix(1_700_000_000+s.seq, 0).UTC()
}

func deletedNow() gorm.DeletedAt {
	return gorm.DeletedAt{Time: time.Now(), Valid: true}
}

type memSnapshot struct {
	classRooms   map[uuid.UUID]classModel.ClassRoomModel
	modules      map[uuid.UUID]moduleModel.CourseModuleModel
	lessons      map[uuid.UUID]lessonModel.LessonModel
	replacements map[uuid.UUID]lessonModel.LessonReplacementModel
	galleries    map[uuid.UUID]galleryModel.LessonGalleryModel
	evaluations  map[uuid.UUID]evaluationModel.LessonEvaluationModel
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{
		classRooms:   copyMap(s.classRooms),
		modules:      copyMap(s.modules),
		lessons:      copyMap(s.lessons),
		replacements: copyMap(s.replacements),
		galleries:    copyMap(s.galleries),
		evaluations:  copyMap(s.evaluations),
	}
}

func (s *MemoryStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classRooms = snap.classRooms
	s.modules = snap.modules
	s.lessons = snap.lessons
	s.replacements = snap.replacements
	s.galleries = snap.galleries
	s.evaluations = snap.evaluations
}

func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(memTx{s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// memTx flattens nested transactions into the outer one.
type memTx struct{ *MemoryStore }

func (t memTx) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return fn(t)
}

/* ====================== seeding & inspection ====================== */

func (s *MemoryStore) PutClassRoom(m classModel.ClassRoomModel) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ClassRoomID == uuid.Nil {
		m.ClassRoomID = uuid.New()
	}
	s.classRooms[m.ClassRoomID] = m
	return m.ClassRoomID
}

func (s *MemoryStore) PutGallery(moduleID uuid.UUID, lessonNumber int) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := galleryModel.LessonGalleryModel{
		LessonGalleryID:           uuid.New(),
		LessonGalleryModuleID:     moduleID,
		LessonGalleryLessonNumber: lessonNumber,
	}
	s.galleries[g.LessonGalleryID] = g
	return g.LessonGalleryID
}

// GalleryUnscoped returns the row even when soft-deleted.
func (s *MemoryStore) GalleryUnscoped(id uuid.UUID) (galleryModel.LessonGalleryModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.galleries[id]
	return g, ok
}

func (s *MemoryStore) PutEvaluation(moduleID uuid.UUID, lessonNumber int, studentID uuid.UUID) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := evaluationModel.LessonEvaluationModel{
		LessonEvaluationID:           uuid.New(),
		LessonEvaluationModuleID:     moduleID,
		LessonEvaluationLessonNumber: lessonNumber,
		LessonEvaluationStudentID:    studentID,
	}
	s.evaluations[e.LessonEvaluationID] = e
	return e.LessonEvaluationID
}

// EvaluationUnscoped returns the row even when soft-deleted.
func (s *MemoryStore) EvaluationUnscoped(id uuid.UUID) (evaluationModel.LessonEvaluationModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.evaluations[id]
	return e, ok
}

// AllReplacements includes soft-deleted rows, in insertion order.
func (s *MemoryStore) AllReplacements(lessonID uuid.UUID) []lessonModel.LessonReplacementModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []lessonModel.LessonReplacementModel
	for _, r := range s.replacements {
		if r.LessonReplacementLessonID == lessonID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LessonReplacementCreatedAt.Before(out[j].LessonReplacementCreatedAt)
	})
	return out
}

// LessonUnscoped returns the row even when soft-deleted.
func (s *MemoryStore) LessonUnscoped(id uuid.UUID) (lessonModel.LessonModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	return l, ok
}

/* ====================== CLASS ROOM ====================== */

func (s *MemoryStore) GetClassRoom(ctx context.Context, id uuid.UUID) (*classModel.ClassRoomModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("GetClassRoom"); err != nil {
		return nil, err
	}
	m, ok := s.classRooms[id]
	if !ok || m.IsDeleted() {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

/* ====================== MODULE ====================== */

func (s *MemoryStore) GetModule(ctx context.Context, id uuid.UUID) (*moduleModel.CourseModuleModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("GetModule"); err != nil {
		return nil, err
	}
	m, ok := s.modules[id]
	if !ok || m.IsDeleted() {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (s *MemoryStore) LockModule(ctx context.Context, id uuid.UUID) (*moduleModel.CourseModuleModel, error) {
	return s.GetModule(ctx, id)
}

func (s *MemoryStore) ListModules(ctx context.Context, classRoomID uuid.UUID) ([]moduleModel.CourseModuleModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("ListModules"); err != nil {
		return nil, err
	}
	var out []moduleModel.CourseModuleModel
	for _, m := range s.modules {
		if m.CourseModuleClassRoomID == classRoomID && !m.IsDeleted() {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CourseModuleSequenceNumber < out[j].CourseModuleSequenceNumber
	})
	return out, nil
}

func (s *MemoryStore) CreateModule(ctx context.Context, m *moduleModel.CourseModuleModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("CreateModule"); err != nil {
		return err
	}
	if m.CourseModuleID == uuid.Nil {
		m.CourseModuleID = uuid.New()
	}
	now := s.tick()
	m.CourseModuleCreatedAt, m.CourseModuleUpdatedAt = now, now
	s.modules[m.CourseModuleID] = *m
	return nil
}

func (s *MemoryStore) UpdateModule(ctx context.Context, m *moduleModel.CourseModuleModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("UpdateModule"); err != nil {
		return err
	}
	cur, ok := s.modules[m.CourseModuleID]
	if !ok || cur.IsDeleted() {
		return gorm.ErrRecordNotFound
	}
	cur.CourseModuleName = m.CourseModuleName
	cur.CourseModuleDescription = m.CourseModuleDescription
	cur.CourseModuleSequenceNumber = m.CourseModuleSequenceNumber
	cur.CourseModuleTotalLessons = m.CourseModuleTotalLessons
	cur.CourseModuleUpdatedAt = s.tick()
	s.modules[m.CourseModuleID] = cur
	return nil
}

func (s *MemoryStore) SetModuleTotal(ctx context.Context, moduleID uuid.UUID, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("SetModuleTotal"); err != nil {
		return err
	}
	cur, ok := s.modules[moduleID]
	if !ok || cur.IsDeleted() {
		return gorm.ErrRecordNotFound
	}
	cur.CourseModuleTotalLessons = total
	s.modules[moduleID] = cur
	return nil
}

func (s *MemoryStore) SoftDeleteModule(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("SoftDeleteModule"); err != nil {
		return err
	}
	cur, ok := s.modules[id]
	if !ok || cur.IsDeleted() {
		return nil
	}
	cur.CourseModuleDeletedAt = deletedNow()
	s.modules[id] = cur
	return nil
}

/* ====================== LESSON ====================== */

func (s *MemoryStore) GetLesson(ctx context.Context, id uuid.UUID) (*lessonModel.LessonModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("GetLesson"); err != nil {
		return nil, err
	}
	l, ok := s.lessons[id]
	if !ok || l.IsDeleted() {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (s *MemoryStore) LockLesson(ctx context.Context, id uuid.UUID) (*lessonModel.LessonModel, error) {
	return s.GetLesson(ctx, id)
}

func (s *MemoryStore) LessonAt(ctx context.Context, moduleID uuid.UUID, seq int) (*lessonModel.LessonModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lessons {
		if l.LessonModuleID == moduleID && l.LessonSequenceNumber == seq && !l.IsDeleted() {
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) ListLessons(ctx context.Context, moduleID uuid.UUID) ([]lessonModel.LessonModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("ListLessons"); err != nil {
		return nil, err
	}
	var out []lessonModel.LessonModel
	for _, l := range s.lessons {
		if l.LessonModuleID == moduleID && !l.IsDeleted() {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LessonSequenceNumber < out[j].LessonSequenceNumber
	})
	return out, nil
}

// checkSlotFree mirrors the partial unique index on (module, sequence) among alive rows.
func (s *MemoryStore) checkSlotFree(self uuid.UUID, moduleID uuid.UUID, seq int) error {
	for id, l := range s.lessons {
		if id != self && l.LessonModuleID == moduleID && l.LessonSequenceNumber == seq && !l.IsDeleted() {
			return ErrDuplicateSequence
		}
	}
	return nil
}

func (s *MemoryStore) CreateLessons(ctx context.Context, lessons []*lessonModel.LessonModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("CreateLessons"); err != nil {
		return err
	}
	for _, l := range lessons {
		if l.LessonID == uuid.Nil {
			l.LessonID = uuid.New()
		}
		if err := s.checkSlotFree(l.LessonID, l.LessonModuleID, l.LessonSequenceNumber); err != nil {
			return err
		}
		now := s.tick()
		l.LessonCreatedAt, l.LessonUpdatedAt = now, now
		s.lessons[l.LessonID] = *l
	}
	return nil
}

func (s *MemoryStore) SetLessonSequence(ctx context.Context, lessonID uuid.UUID, seq int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("SetLessonSequence"); err != nil {
		return err
	}
	l, ok := s.lessons[lessonID]
	if !ok || l.IsDeleted() {
		return gorm.ErrRecordNotFound
	}
	if err := s.checkSlotFree(lessonID, l.LessonModuleID, seq); err != nil {
		return err
	}
	l.LessonSequenceNumber = seq
	l.LessonUpdatedAt = s.tick()
	s.lessons[lessonID] = l
	return nil
}

func (s *MemoryStore) RenameLesson(ctx context.Context, lessonID uuid.UUID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[lessonID]
	if !ok || l.IsDeleted() {
		return gorm.ErrRecordNotFound
	}
	l.LessonName = name
	s.lessons[lessonID] = l
	return nil
}

func (s *MemoryStore) SoftDeleteLessons(ctx context.Context, ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("SoftDeleteLessons"); err != nil {
		return err
	}
	for _, id := range ids {
		l, ok := s.lessons[id]
		if !ok || l.IsDeleted() {
			continue
		}
		l.LessonDeletedAt = deletedNow()
		s.lessons[id] = l
	}
	return nil
}

/* ====================== LESSON SLOTS ====================== */

func inRange(n, from, to int) bool {
	return n >= from && (to <= 0 || n <= to)
}

func (s *MemoryStore) ShiftLessonSlots(ctx context.Context, moduleID uuid.UUID, from, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("ShiftLessonSlots"); err != nil {
		return err
	}
	for id, g := range s.galleries {
		if g.LessonGalleryModuleID == moduleID && g.LessonGalleryLessonNumber >= from && !g.IsDeleted() {
			g.LessonGalleryLessonNumber += delta
			s.galleries[id] = g
		}
	}
	for id, e := range s.evaluations {
		if e.LessonEvaluationModuleID == moduleID && e.LessonEvaluationLessonNumber >= from && !e.IsDeleted() {
			e.LessonEvaluationLessonNumber += delta
			s.evaluations[id] = e
		}
	}
	return nil
}

func (s *MemoryStore) SoftDeleteLessonSlots(ctx context.Context, moduleID uuid.UUID, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("SoftDeleteLessonSlots"); err != nil {
		return err
	}
	for id, g := range s.galleries {
		if g.LessonGalleryModuleID == moduleID && !g.IsDeleted() && inRange(g.LessonGalleryLessonNumber, from, to) {
			g.LessonGalleryDeletedAt = deletedNow()
			s.galleries[id] = g
		}
	}
	for id, e := range s.evaluations {
		if e.LessonEvaluationModuleID == moduleID && !e.IsDeleted() && inRange(e.LessonEvaluationLessonNumber, from, to) {
			e.LessonEvaluationDeletedAt = deletedNow()
			s.evaluations[id] = e
		}
	}
	return nil
}

/* ====================== REPLACEMENT ====================== */

func (s *MemoryStore) EarliestReplacements(ctx context.Context, lessonIDs []uuid.UUID) (map[uuid.UUID]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[uuid.UUID]struct{}, len(lessonIDs))
	for _, id := range lessonIDs {
		want[id] = struct{}{}
	}
	out := map[uuid.UUID]time.Time{}
	for _, r := range s.replacements {
		if r.IsDeleted() {
			continue
		}
		if _, ok := want[r.LessonReplacementLessonID]; !ok {
			continue
		}
		cur, seen := out[r.LessonReplacementLessonID]
		if !seen || r.LessonReplacementSchedule.Before(cur) {
			out[r.LessonReplacementLessonID] = r.LessonReplacementSchedule
		}
	}
	return out, nil
}

func (s *MemoryStore) ListReplacements(ctx context.Context, lessonID uuid.UUID) ([]lessonModel.LessonReplacementModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []lessonModel.LessonReplacementModel
	for _, r := range s.replacements {
		if r.LessonReplacementLessonID == lessonID && !r.IsDeleted() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.LessonReplacementSchedule.Equal(b.LessonReplacementSchedule) {
			return a.LessonReplacementSchedule.Before(b.LessonReplacementSchedule)
		}
		return a.LessonReplacementCreatedAt.Before(b.LessonReplacementCreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) SoftDeleteReplacements(ctx context.Context, lessonID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("SoftDeleteReplacements"); err != nil {
		return err
	}
	for id, r := range s.replacements {
		if r.LessonReplacementLessonID == lessonID && !r.IsDeleted() {
			r.LessonReplacementDeletedAt = deletedNow()
			s.replacements[id] = r
		}
	}
	return nil
}

func (s *MemoryStore) CreateReplacement(ctx context.Context, r *lessonModel.LessonReplacementModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("CreateReplacement"); err != nil {
		return err
	}
	if r.LessonReplacementID == uuid.Nil {
		r.LessonReplacementID = uuid.New()
	}
	r.LessonReplacementCreatedAt = s.tick()
	s.replacements[r.LessonReplacementID] = *r
	return nil
}
