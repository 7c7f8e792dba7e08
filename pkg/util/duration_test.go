package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voicewarden/pkg/util"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m 00s"},
		{95, "1m 35s"},
		{3600, "1h 00m 00s"},
		{7329, "2h 02m 09s"},
		{-5, "0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, util.FormatDuration(tt.seconds))
	}
}
