package constants

import (
	"path/filepath"
	"strings"
)

const MaxGalleryImageBytes = 10 << 20

// IsGalleryImage accepts the raster formats the gallery pipeline can decode.
func IsGalleryImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return true
	default:
		return false
	}
}
