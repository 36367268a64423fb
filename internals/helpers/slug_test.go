package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{" Robot Arm_2!", 0, "robot-arm-2"},
		{"Ảnh lớp học", 0, "anh-lop-hoc"},
		{"Đà Nẵng -- Buổi 1", 0, "da-nang-buoi-1"},
		{"Thực hành lập trình", 9, "thuc-hanh"},
		{"!!!", 0, "item"},
		{"", 0, "item"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, tc.max, "item"), tc.in)
	}
}
