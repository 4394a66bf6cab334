package util

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/dopameter/dopameter_api/util/values"
)

func TestFormatTime(t *testing.T) {
	testTime := time.Date(2025, 4, 5, 14, 30, 45, 0, time.UTC)

	// Test cases with different formats
	testCases := []struct {
		name           string
		format         string
		expectedResult string
	}{
		{"RFC3339", time.RFC3339, "2025-04-05T14:30:45Z"},
		{"Simple Date", "2006-01-02", "2025-04-05"},
		{"Time Only", "15:04:05", "14:30:45"},
		{"Date and Time", "2006-01-02 15:04:05", "2025-04-05 14:30:45"},
		{"Short Date", "Jan 2", "Apr 5"},
		{"Day of Week", "Monday", "Saturday"},
		{"Kitchen Time", time.Kitchen, "2:30PM"},
		{"RFC1123", time.RFC1123, "Sat, 05 Apr 2025 14:30:45 UTC"},
		{"Empty Format", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := formatTime(tc.format, testTime)

			if result != tc.expectedResult {
				t.Errorf("formatTime(%q, %v) = %q; want %q",
					tc.format, testTime, result, tc.expectedResult)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.Error, http.StatusInternalServerError},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.Unprocessable, http.StatusUnprocessableEntity},
		{values.NotAllowed, http.StatusForbidden},
		{values.Conflict, http.StatusConflict},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{"made-up", http.StatusOK},
	}

	for _, tc := range testCases {
		if got := StatusCode(tc.status); got != tc.want {
			t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	testCases := []struct {
		value string
		want  bool
	}{
		{"https://example.com/a.jpg", true},
		{"http://example.com", true},
		{"example.com/a.jpg", false},
		{"/uploads/a.jpg", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsURL(tc.value); got != tc.want {
			t.Errorf("IsURL(%q) = %v; want %v", tc.value, got, tc.want)
		}
	}
}

func TestNotBlank(t *testing.T) {
	if NotBlank("   ") {
		t.Error("NotBlank accepted whitespace")
	}
	if !NotBlank("x") {
		t.Error("NotBlank rejected text")
	}
}

func TestUploadFileName(t *testing.T) {
	name := UploadFileName("holiday photo.JPG")
	if filepath.Ext(name) != ".JPG" {
		t.Errorf("extension not kept: %q", name)
	}

	other := UploadFileName("holiday photo.JPG")
	if name == other {
		t.Errorf("two uploads produced the same name %q", name)
	}
}

func TestContentTypeFromMime(t *testing.T) {
	testCases := []struct {
		mimetype string
		want     string
	}{
		{"image/png", "image"},
		{"image/gif", "image"},
		{"video/mp4", "video"},
		{"application/pdf", "image"},
	}

	for _, tc := range testCases {
		if got := ContentTypeFromMime(tc.mimetype); got != tc.want {
			t.Errorf("ContentTypeFromMime(%q) = %q; want %q", tc.mimetype, got, tc.want)
		}
	}
}

func TestAllowedUploadMime(t *testing.T) {
	if !AllowedUploadMime("image/jpeg") || !AllowedUploadMime("video/webm") {
		t.Error("image and video mimes should be allowed")
	}
	if AllowedUploadMime("application/octet-stream") {
		t.Error("binary blobs should not be allowed")
	}
}
