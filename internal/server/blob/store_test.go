package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no spaces", "selfie.png", "selfie.png"},
		{"spaces replaced", "my holiday photo.jpg", "my_holiday_photo.jpg"},
		{"only spaces touched", "weird%name&.png", "weird%name&.png"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeFilename(tc.in))
		})
	}
}

func TestProfileImageKey(t *testing.T) {
	key := ProfileImageKey("ann@example.com", "head shot.png")
	assert.Equal(t, "profile_images/ann@example.com_head_shot.png", key)
}

func TestPostImageKey(t *testing.T) {
	key := PostImageKey("u-42", "late night.jpg")
	assert.Equal(t, "uploads/u-42_late_night.jpg", key)
}

func TestObjectURL_AWS(t *testing.T) {
	s := &S3Store{region: "us-east-1"}
	assert.Equal(t,
		"https://news1-bucket.s3.us-east-1.amazonaws.com/profile_images/a_b.png",
		s.ObjectURL("news1-bucket", "profile_images/a_b.png"))
}

func TestObjectURL_CustomEndpoint(t *testing.T) {
	s := &S3Store{region: "us-east-1", baseEndpoint: "http://127.0.0.1:9000"}
	assert.Equal(t,
		"http://127.0.0.1:9000/vault/uploads/u1_x.png",
		s.ObjectURL("vault", "uploads/u1_x.png"))
}
