package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"steam_backend/internals/helpers/dbtime"
)

func TestHasStaff(t *testing.T) {
	teacher, assistant := uuid.New(), uuid.New()

	m := ClassRoomModel{ClassRoomTeacherID: &teacher, ClassRoomTeachingAssistantID: &assistant}
	assert.True(t, m.HasStaff(teacher))
	assert.True(t, m.HasStaff(assistant))
	assert.False(t, m.HasStaff(uuid.New()))

	var empty ClassRoomModel
	assert.False(t, empty.HasStaff(teacher))
}

func TestEnded(t *testing.T) {
	m := ClassRoomModel{ClassRoomEndDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)}
	at := func(d int) dbtime.Clock {
		return dbtime.FixedClock{T: time.Date(2024, 6, d, 12, 0, 0, 0, dbtime.Location())}
	}

	assert.False(t, m.Ended(at(29)))
	assert.False(t, m.Ended(at(30)))
	assert.True(t, m.Ended(dbtime.FixedClock{T: time.Date(2024, 7, 1, 8, 0, 0, 0, dbtime.Location())}))
}
