package service

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moduleModel "steam_backend/internals/features/center/course_modules/model"
	osshelper "steam_backend/internals/helpers/oss"
)

func files(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(names))
	for i, n := range names {
		out[i] = &multipart.FileHeader{Filename: n, Size: 1024}
	}
	return out
}

func TestUploadAll_StoresEveryFile(t *testing.T) {
	blob := &osshelper.MockBlobService{
		UploadImageFn: func(_ context.Context, dir string, fh *multipart.FileHeader) (string, error) {
			return "https://cdn.test/" + dir + "/" + fh.Filename, nil
		},
	}
	urls, err := UploadAll(context.Background(), blob, "g", files("a.png", "b.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.test/g/a.png", "https://cdn.test/g/b.jpg"}, urls)
}

func TestUploadAll_RollsBackOnFailure(t *testing.T) {
	var deleted []string
	blob := &osshelper.MockBlobService{
		UploadImageFn: func(_ context.Context, _ string, fh *multipart.FileHeader) (string, error) {
			if fh.Filename == "bad.png" {
				return "", errors.New("oss down")
			}
			return "u/" + fh.Filename, nil
		},
		DeleteByPublicURLFn: func(_ context.Context, u string) error {
			deleted = append(deleted, u)
			return nil
		},
	}
	_, err := UploadAll(context.Background(), blob, "g", files("a.png", "b.png", "bad.png", "c.png"))
	require.Error(t, err)
	assert.Equal(t, []string{"u/a.png", "u/b.png"}, deleted)
}

func TestUploadAll_Limits(t *testing.T) {
	blob := &osshelper.MockBlobService{}
	_, err := UploadAll(context.Background(), blob, "g", nil)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	many := make([]string, MaxImagesPerUpload+1)
	for i := range many {
		many[i] = "x.png"
	}
	_, err = UploadAll(context.Background(), blob, "g", files(many...))
	require.ErrorAs(t, err, &fe)
}

func TestCheckSlot(t *testing.T) {
	m := &moduleModel.CourseModuleModel{CourseModuleTotalLessons: 4}
	assert.NoError(t, CheckSlot(m, 1))
	assert.NoError(t, CheckSlot(m, 4))
	assert.Error(t, CheckSlot(m, 0))
	assert.Error(t, CheckSlot(m, 5))
}

func TestWithout(t *testing.T) {
	kept, found := without([]string{"a", "b", "a"}, "a")
	assert.True(t, found)
	assert.Equal(t, []string{"b"}, kept)

	_, found = without([]string{"b"}, "z")
	assert.False(t, found)
}
