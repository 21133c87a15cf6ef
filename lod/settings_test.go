package lod

import "testing"

func TestSettingsApplySaturates(t *testing.T) {
	tests := []struct {
		name  string
		level uint8
		bias  int8
		want  uint8
	}{
		{"zero bias", 7, 0, 7},
		{"positive bias", 2, 3, 5},
		{"negative bias", 5, -2, 3},
		{"negative bias floors at 0", 2, -4, 0},
		{"level 0 with min bias", 0, -128, 0},
		{"positive bias caps at 255", 250, 10, 255},
		{"max level with max bias", 255, 127, 255},
		{"max level with negative bias", 255, -1, 254},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settings{Bias: tt.bias}.Apply(tt.level)
			if got != tt.want {
				t.Errorf("Apply(%d) with bias %d = %d, want %d", tt.level, tt.bias, got, tt.want)
			}
		})
	}
}
