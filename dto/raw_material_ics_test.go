package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawMaterialICsRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		encoded string
		want    []string
	}{
		{"nil", nil, "", nil},
		{"empty", []string{}, "", nil},
		{"single", []string{"RM-1"}, "RM-1", []string{"RM-1"}},
		{"several keep order", []string{"RM-3", "RM-1", "RM-2"}, "RM-3,RM-1,RM-2", []string{"RM-3", "RM-1", "RM-2"}},
		{"duplicates kept", []string{"A", "A"}, "A,A", []string{"A", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := EncodeRawMaterialICs(tt.in)
			assert.Equal(t, tt.encoded, enc)
			assert.Equal(t, tt.want, DecodeRawMaterialICs(enc))
		})
	}
}

func TestDecodeRawMaterialICsEmptyIsAbsent(t *testing.T) {
	assert.Nil(t, DecodeRawMaterialICs(""))
}
