package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeqFixture(t *testing.T) *fixture {
	return newFixture(t, nil, at(2025, time.January, 1, 0, 0), at(2025, time.June, 30, 0, 0))
}

func TestInsert_ShiftsLaterLessonsUp(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 3)
	svc := NewSequenceService(f.store)

	lesson, err := svc.Insert(bg, moduleID, "Gear trains", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, lesson.LessonSequenceNumber)

	seqs := f.sequences(t, moduleID)
	assert.Len(t, seqs, 4)
	assert.Equal(t, 1, seqs[ids[0]])
	assert.Equal(t, 2, seqs[lesson.LessonID])
	assert.Equal(t, 3, seqs[ids[1]])
	assert.Equal(t, 4, seqs[ids[2]])
	assert.Equal(t, 4, f.total(t, moduleID))
}

func TestInsert_AppendAndBlankName(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, _ := f.addModule(t, 1, 3)
	svc := NewSequenceService(f.store)

	lesson, err := svc.Insert(bg, moduleID, "  ", 4)
	require.NoError(t, err)
	assert.Equal(t, "Lesson 4", lesson.LessonName)
	assert.Equal(t, 4, f.total(t, moduleID))
}

func TestInsert_RejectsOutOfRange(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, _ := f.addModule(t, 1, 3)
	svc := NewSequenceService(f.store)

	for _, seq := range []int{0, -1, 5} {
		_, err := svc.Insert(bg, moduleID, "x", seq)
		requireCode(t, err, fiber.StatusBadRequest)
	}
	assert.Equal(t, 3, f.total(t, moduleID))
	assert.Len(t, f.sequences(t, moduleID), 3)
}

func TestInsert_UnknownModule(t *testing.T) {
	f := newSeqFixture(t)
	_, err := NewSequenceService(f.store).Insert(bg, uuid.New(), "x", 1)
	requireCode(t, err, fiber.StatusNotFound)
}

func TestInsert_IsAtomic(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 3)
	f.store.FailOn("SetModuleTotal", errors.New("connection reset"))

	_, err := NewSequenceService(f.store).Insert(bg, moduleID, "x", 1)
	require.Error(t, err)
	assert.False(t, isBusinessError(err))

	seqs := f.sequences(t, moduleID)
	assert.Len(t, seqs, 3)
	for i, id := range ids {
		assert.Equal(t, i+1, seqs[id])
	}
	assert.Equal(t, 3, f.total(t, moduleID))
}

func TestDelete_ShiftsLaterLessonsDown(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 4)
	svc := NewSequenceService(f.store)

	require.NoError(t, svc.Delete(bg, ids[1]))

	seqs := f.sequences(t, moduleID)
	assert.Len(t, seqs, 3)
	assert.Equal(t, 1, seqs[ids[0]])
	assert.Equal(t, 2, seqs[ids[2]])
	assert.Equal(t, 3, seqs[ids[3]])
	assert.Equal(t, 3, f.total(t, moduleID))

	_, err := f.store.GetLesson(bg, ids[1])
	assert.Error(t, err)
	gone, ok := f.store.LessonUnscoped(ids[1])
	require.True(t, ok)
	assert.True(t, gone.IsDeleted())

	requireCode(t, svc.Delete(bg, ids[1]), fiber.StatusNotFound)
}

func TestDelete_KeepsLastLesson(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 1)

	requireCode(t, NewSequenceService(f.store).Delete(bg, ids[0]), fiber.StatusBadRequest)
	assert.Equal(t, 1, f.total(t, moduleID))
}

func TestDelete_IsAtomic(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 4)
	f.store.FailOn("SetLessonSequence", errors.New("deadlock detected"))

	require.Error(t, NewSequenceService(f.store).Delete(bg, ids[0]))

	seqs := f.sequences(t, moduleID)
	assert.Len(t, seqs, 4)
	for i, id := range ids {
		assert.Equal(t, i+1, seqs[id])
	}
	assert.Equal(t, 4, f.total(t, moduleID))
}

func TestInsertThenDelete_RoundTrip(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 3)
	svc := NewSequenceService(f.store)

	added, err := svc.Insert(bg, moduleID, "extra", 1)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(bg, added.LessonID))

	seqs := f.sequences(t, moduleID)
	for i, id := range ids {
		assert.Equal(t, i+1, seqs[id])
	}
	assert.Equal(t, 3, f.total(t, moduleID))
}

func TestRename(t *testing.T) {
	f := newSeqFixture(t)
	_, ids := f.addModule(t, 1, 2)
	svc := NewSequenceService(f.store)

	l, err := svc.Rename(bg, ids[0], " Sensors ")
	require.NoError(t, err)
	assert.Equal(t, "Sensors", l.LessonName)

	_, err = svc.Rename(bg, ids[0], "")
	requireCode(t, err, fiber.StatusBadRequest)

	_, err = svc.Rename(bg, uuid.New(), "x")
	requireCode(t, err, fiber.StatusNotFound)
}

func galleryNumber(t *testing.T, f *fixture, id uuid.UUID) (int, bool) {
	t.Helper()
	g, ok := f.store.GalleryUnscoped(id)
	require.True(t, ok)
	return g.LessonGalleryLessonNumber, g.IsDeleted()
}

func TestInsert_MovesGalleriesWithLessons(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, _ := f.addModule(t, 1, 3)
	g1 := f.store.PutGallery(moduleID, 1)
	g2 := f.store.PutGallery(moduleID, 2)
	g3 := f.store.PutGallery(moduleID, 3)

	_, err := NewSequenceService(f.store).Insert(bg, moduleID, "Sensors", 2)
	require.NoError(t, err)

	for id, want := range map[uuid.UUID]int{g1: 1, g2: 3, g3: 4} {
		n, deleted := galleryNumber(t, f, id)
		assert.Equal(t, want, n)
		assert.False(t, deleted)
	}
}

func TestDelete_DropsGalleryAndMovesLaterOnes(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 3)
	g1 := f.store.PutGallery(moduleID, 1)
	g2 := f.store.PutGallery(moduleID, 2)
	g3 := f.store.PutGallery(moduleID, 3)

	require.NoError(t, NewSequenceService(f.store).Delete(bg, ids[1]))

	n, deleted := galleryNumber(t, f, g1)
	assert.Equal(t, 1, n)
	assert.False(t, deleted)

	_, deleted = galleryNumber(t, f, g2)
	assert.True(t, deleted)

	n, deleted = galleryNumber(t, f, g3)
	assert.Equal(t, 2, n)
	assert.False(t, deleted)
}

func TestInsert_GalleryShiftFailureRollsBack(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, ids := f.addModule(t, 1, 2)
	g2 := f.store.PutGallery(moduleID, 2)
	f.store.FailOn("ShiftLessonSlots", errors.New("connection reset"))

	_, err := NewSequenceService(f.store).Insert(bg, moduleID, "x", 1)
	require.Error(t, err)

	seqs := f.sequences(t, moduleID)
	assert.Equal(t, 1, seqs[ids[0]])
	assert.Equal(t, 2, seqs[ids[1]])
	n, _ := galleryNumber(t, f, g2)
	assert.Equal(t, 2, n)
}

func TestInsertAndDelete_MoveEvaluationsWithLessons(t *testing.T) {
	f := newSeqFixture(t)
	moduleID, _ := f.addModule(t, 1, 3)
	student := uuid.New()
	e1 := f.store.PutEvaluation(moduleID, 1, student)
	e3 := f.store.PutEvaluation(moduleID, 3, student)

	svc := NewSequenceService(f.store)
	inserted, err := svc.Insert(bg, moduleID, "Sensors", 1)
	require.NoError(t, err)

	ev, _ := f.store.EvaluationUnscoped(e1)
	assert.Equal(t, 2, ev.LessonEvaluationLessonNumber)
	ev, _ = f.store.EvaluationUnscoped(e3)
	assert.Equal(t, 4, ev.LessonEvaluationLessonNumber)

	// dropping the lesson that now sits at 2 takes its evaluation with it
	seqs := f.sequences(t, moduleID)
	var second uuid.UUID
	for id, n := range seqs {
		if n == 2 {
			second = id
		}
	}
	require.NotEqual(t, inserted.LessonID, second)
	require.NoError(t, svc.Delete(bg, second))

	ev, _ = f.store.EvaluationUnscoped(e1)
	assert.True(t, ev.IsDeleted())
	ev, _ = f.store.EvaluationUnscoped(e3)
	assert.False(t, ev.IsDeleted())
	assert.Equal(t, 3, ev.LessonEvaluationLessonNumber)
}
