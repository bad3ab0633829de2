package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 4, 4},
		{"Int64", int64(14), 14},
		{"Uint", uint(2), 2},
		{"Float Truncates", 3.9, 3},
		{"String", "12", 12},
		{"Padded String", " 7 ", 7},
		{"Bytes", []byte("16"), 16},
		{"Garbage", "many", 0},
		{"Empty", "", 0},
		{"Bool Fallback", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "A2", ToString("A2"))
	assert.Equal(t, "4", ToString(4))
	assert.Equal(t, "raw", ToString([]byte("raw")))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "1.5", ToString(1.5))
}
