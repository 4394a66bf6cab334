package util

import (
	"fmt"
	"math/rand"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

func formatTime(format string, t time.Time) string {
	return t.Format(format)
}

// UploadFileName builds a unique name for an uploaded file, keeping the
// original extension.
func UploadFileName(original string) string {
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
	return suffix + filepath.Ext(original)
}

// ContentTypeFromMime maps an upload's mimetype to a content type.
// Anything unrecognised counts as an image.
func ContentTypeFromMime(mimetype string) string {
	switch {
	case strings.HasPrefix(mimetype, "video/"):
		return "video"
	default:
		return "image"
	}
}

// AllowedUploadMime reports whether the mimetype is accepted for upload.
func AllowedUploadMime(mimetype string) bool {
	return strings.HasPrefix(mimetype, "image/") || strings.HasPrefix(mimetype, "video/")
}
