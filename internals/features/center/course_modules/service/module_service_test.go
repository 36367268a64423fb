package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	"steam_backend/internals/features/center/lessons/repository"
)

var bg = context.Background()

func setup(t *testing.T) (*repository.MemoryStore, *ModuleService, uuid.UUID) {
	t.Helper()
	store := repository.NewMemoryStore()
	classID := store.PutClassRoom(classModel.ClassRoomModel{
		ClassRoomName:      "Coding Kids",
		ClassRoomStartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ClassRoomEndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	return store, NewModuleService(store), classID
}

func create(t *testing.T, svc *ModuleService, classID uuid.UUID, seq, total int) *moduleModel.CourseModuleModel {
	t.Helper()
	m, err := svc.Create(bg, &moduleModel.CourseModuleModel{
		CourseModuleClassRoomID:    classID,
		CourseModuleName:           "Scratch basics",
		CourseModuleSequenceNumber: seq,
		CourseModuleTotalLessons:   total,
	})
	require.NoError(t, err)
	return m
}

func names(t *testing.T, store *repository.MemoryStore, moduleID uuid.UUID) []string {
	t.Helper()
	rows, err := store.ListLessons(bg, moduleID)
	require.NoError(t, err)
	out := make([]string, len(rows))
	for i, l := range rows {
		out[i] = l.LessonName
	}
	return out
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, code, fe.Code, fe.Message)
}

func TestCreate_GeneratesLessons(t *testing.T) {
	store, svc, classID := setup(t)
	m := create(t, svc, classID, 1, 3)
	assert.Equal(t, []string{"Lesson 1", "Lesson 2", "Lesson 3"}, names(t, store, m.CourseModuleID))
}

func TestCreate_Rejections(t *testing.T) {
	_, svc, classID := setup(t)
	create(t, svc, classID, 1, 2)

	_, err := svc.Create(bg, &moduleModel.CourseModuleModel{CourseModuleClassRoomID: classID, CourseModuleSequenceNumber: 1, CourseModuleTotalLessons: 2})
	requireCode(t, err, fiber.StatusConflict)

	_, err = svc.Create(bg, &moduleModel.CourseModuleModel{CourseModuleClassRoomID: classID, CourseModuleSequenceNumber: 2, CourseModuleTotalLessons: 0})
	requireCode(t, err, fiber.StatusBadRequest)

	_, err = svc.Create(bg, &moduleModel.CourseModuleModel{CourseModuleClassRoomID: uuid.New(), CourseModuleSequenceNumber: 1, CourseModuleTotalLessons: 1})
	requireCode(t, err, fiber.StatusNotFound)
}

func TestCreate_IsAtomic(t *testing.T) {
	store, svc, classID := setup(t)
	store.FailOn("CreateLessons", errors.New("timeout"))

	_, err := svc.Create(bg, &moduleModel.CourseModuleModel{CourseModuleClassRoomID: classID, CourseModuleSequenceNumber: 1, CourseModuleTotalLessons: 3})
	require.Error(t, err)

	mods, err := store.ListModules(bg, classID)
	require.NoError(t, err)
	assert.Empty(t, mods)
}

func TestUpdate_GrowAndShrink(t *testing.T) {
	store, svc, classID := setup(t)
	m := create(t, svc, classID, 1, 2)

	five := 5
	got, err := svc.Update(bg, m.CourseModuleID, ModulePatch{TotalLessons: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, got.CourseModuleTotalLessons)
	assert.Equal(t, []string{"Lesson 1", "Lesson 2", "Lesson 3", "Lesson 4", "Lesson 5"}, names(t, store, m.CourseModuleID))

	three := 3
	got, err = svc.Update(bg, m.CourseModuleID, ModulePatch{TotalLessons: &three})
	require.NoError(t, err)
	assert.Equal(t, 3, got.CourseModuleTotalLessons)
	assert.Equal(t, []string{"Lesson 1", "Lesson 2", "Lesson 3"}, names(t, store, m.CourseModuleID))

	zero := 0
	_, err = svc.Update(bg, m.CourseModuleID, ModulePatch{TotalLessons: &zero})
	requireCode(t, err, fiber.StatusBadRequest)
}

func TestUpdate_SequenceConflict(t *testing.T) {
	_, svc, classID := setup(t)
	create(t, svc, classID, 1, 1)
	m2 := create(t, svc, classID, 2, 1)

	one := 1
	_, err := svc.Update(bg, m2.CourseModuleID, ModulePatch{SequenceNumber: &one})
	requireCode(t, err, fiber.StatusConflict)

	three := 3
	name := "Arduino"
	got, err := svc.Update(bg, m2.CourseModuleID, ModulePatch{SequenceNumber: &three, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 3, got.CourseModuleSequenceNumber)
	assert.Equal(t, "Arduino", got.CourseModuleName)
}

func TestDelete_CascadesToLessons(t *testing.T) {
	store, svc, classID := setup(t)
	m := create(t, svc, classID, 1, 3)
	lessons, err := store.ListLessons(bg, m.CourseModuleID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(bg, m.CourseModuleID))

	_, err = store.GetModule(bg, m.CourseModuleID)
	assert.Error(t, err)
	assert.Empty(t, names(t, store, m.CourseModuleID))
	for _, l := range lessons {
		row, ok := store.LessonUnscoped(l.LessonID)
		require.True(t, ok)
		assert.True(t, row.IsDeleted())
	}

	requireCode(t, svc.Delete(bg, m.CourseModuleID), fiber.StatusNotFound)
}

func TestShrinkAndDelete_DropGalleries(t *testing.T) {
	store, svc, classID := setup(t)
	m := create(t, svc, classID, 1, 3)
	kept := store.PutGallery(m.CourseModuleID, 1)
	trimmed := store.PutGallery(m.CourseModuleID, 3)

	one := 1
	_, err := svc.Update(bg, m.CourseModuleID, ModulePatch{TotalLessons: &one})
	require.NoError(t, err)

	g, ok := store.GalleryUnscoped(trimmed)
	require.True(t, ok)
	assert.True(t, g.IsDeleted())
	g, _ = store.GalleryUnscoped(kept)
	assert.False(t, g.IsDeleted())

	require.NoError(t, svc.Delete(bg, m.CourseModuleID))
	g, _ = store.GalleryUnscoped(kept)
	assert.True(t, g.IsDeleted())
}
