package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToWeekday(t *testing.T) {
	tests := []struct {
		iso    int
		want   time.Weekday
		wantOK bool
	}{
		{iso: Monday, want: time.Monday, wantOK: true},
		{iso: Friday, want: time.Friday, wantOK: true},
		{iso: Saturday, want: time.Saturday, wantOK: true},
		{iso: Sunday, want: time.Sunday, wantOK: true},
		{iso: 0},
		{iso: 8},
	}

	for _, tt := range tests {
		got, ok := ToWeekday(tt.iso)
		assert.Equal(t, tt.wantOK, ok, "iso %d", tt.iso)
		assert.Equal(t, tt.want, got, "iso %d", tt.iso)
	}
}
