package osshelper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "steam_backend/internals/helpers"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestConvertToWebP_FitsInsideBox(t *testing.T) {
	out, err := ConvertToWebP(pngOf(t, 400, 200), WebPOptions{MaxW: 100, MaxH: 100, Quality: 70})
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestConvertToWebP_SmallImageKeepsSize(t *testing.T) {
	out, err := ConvertToWebP(pngOf(t, 40, 30), WebPOptions{MaxW: 100, MaxH: 100})
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestConvertToWebP_RejectsNonImage(t *testing.T) {
	_, err := ConvertToWebP(bytes.NewBufferString("not an image"), WebPOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestExtractKey(t *testing.T) {
	k, err := ExtractKey("https://cdn.example.com", "https://cdn.example.com/galleries/a.webp")
	require.NoError(t, err)
	assert.Equal(t, "galleries/a.webp", k)

	k, err = ExtractKey("", "https://bucket.oss-ap-southeast-1.aliyuncs.com/galleries/b.webp")
	require.NoError(t, err)
	assert.Equal(t, "galleries/b.webp", k)

	_, err = ExtractKey("", "")
	assert.Error(t, err)
}

func TestPublicURLAndSlug(t *testing.T) {
	assert.Equal(t, "https://bkt.oss-ap-southeast-1.aliyuncs.com/x.webp",
		publicURL("", "bkt", "https://oss-ap-southeast-1.aliyuncs.com", "x.webp"))
	assert.Equal(t, "https://cdn.example.com/x.webp", publicURL("https://cdn.example.com", "bkt", "e", "x.webp"))
	assert.Equal(t, "anh", helper.Slugify("ảnh", 60, "file"))

	svc := &OSSService{Prefix: "steam"}
	key := svc.buildObjectKey("galleries/m1", "Ảnh lớp học", ".webp")
	assert.True(t, strings.HasPrefix(key, "steam/galleries/m1/anh-lop-hoc_"), key)
	assert.True(t, strings.HasSuffix(key, ".webp"), key)
}
