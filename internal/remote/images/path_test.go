package images

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	at := time.UnixMilli(1718000000123)

	tests := []struct {
		name, file, want string
	}{
		{"keeps extension", "photo.png", "entries/e1-1718000000123.png"},
		{"lower-cases extension", "PHOTO.JPEG", "entries/e1-1718000000123.jpeg"},
		{"defaults to jpg", "photo", "entries/e1-1718000000123.jpg"},
		{"last dot wins", "archive.tar.gz", "entries/e1-1718000000123.gz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectPath("e1", tt.file, at))
		})
	}
}
