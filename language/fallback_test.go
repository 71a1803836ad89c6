package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectFallback(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		preferred []string
		want      string
	}{
		{
			name:      "preferred exact match",
			available: []string{"en", "es", "zh-HK"},
			preferred: []string{"fr", "en", "es"},
			want:      "en",
		},
		{
			name:      "later preferred entry wins over earlier available order",
			available: []string{"es", "zh-HK"},
			preferred: []string{"fr", "en", "zh-HK"},
			want:      "zh-HK",
		},
		{
			name:      "zh prefix rule",
			available: []string{"zh-TW"},
			preferred: []string{"fr"},
			want:      "zh-TW",
		},
		{
			name:      "first available when nothing matches",
			available: []string{"de", "fr"},
			preferred: []string{"en"},
			want:      "de",
		},
		{
			name:      "empty available falls back to en",
			available: nil,
			preferred: []string{"fr", "en", "es"},
			want:      "en",
		},
		{
			name:      "empty preference list",
			available: []string{"es", "pt"},
			preferred: nil,
			want:      "es",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectFallback(tt.available, tt.preferred))
		})
	}
}
