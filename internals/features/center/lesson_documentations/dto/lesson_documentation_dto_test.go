package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "steam_backend/internals/helpers"
)

func TestCreateRequest_RequiresURL(t *testing.T) {
	ok := CreateLessonDocumentationRequest{LessonID: uuid.New(), LinkURL: "https://drive.example.com/lesson-3"}
	assert.NoError(t, helper.Validate.Struct(&ok))

	bad := CreateLessonDocumentationRequest{LessonID: uuid.New(), LinkURL: "lesson 3 photos"}
	assert.Error(t, helper.Validate.Struct(&bad))

	missing := CreateLessonDocumentationRequest{LinkURL: "https://drive.example.com/x"}
	assert.Error(t, helper.Validate.Struct(&missing))
}

func TestToModelAndApply_TrimTitle(t *testing.T) {
	blank := "   "
	title := " Robot arm demo "
	req := CreateLessonDocumentationRequest{LessonID: uuid.New(), LinkURL: " https://a.example.com/v ", Title: &blank}

	m := req.ToModel()
	assert.Equal(t, "https://a.example.com/v", m.LessonDocumentationLinkURL)
	assert.Nil(t, m.LessonDocumentationTitle)

	upd := UpdateLessonDocumentationRequest{Title: &title}
	require.NoError(t, helper.Validate.Struct(&upd))
	upd.Apply(m)
	require.NotNil(t, m.LessonDocumentationTitle)
	assert.Equal(t, "Robot arm demo", *m.LessonDocumentationTitle)
	assert.Equal(t, "https://a.example.com/v", m.LessonDocumentationLinkURL)
}
