package framebuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int32
		wantW, wantH int32
	}{
		{"unchanged", 1280, 720, 1280, 720},
		{"minimised", 0, 0, 1, 1},
		{"negative width", -5, 10, 1, 10},
		{"zero height", 640, 0, 640, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ClampSize(tt.w, tt.h)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
