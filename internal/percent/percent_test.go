package percent

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		value int
		count int
		want  int
	}{
		{"zero count", 5, 0, 0},
		{"zero value", 0, 20, 0},
		{"negative value clamps to zero", -3, 20, 0},
		{"value above count clamps to full", 25, 20, 100},
		{"half", 10, 20, 50},
		{"full", 20, 20, 100},
		{"truncates toward zero", 2, 300, 0},
		{"one of three hundred", 1, 300, 0},
		{"rounds down not up", 5, 300, 1},
		{"two thirds", 2, 3, 66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Calculate(tt.value, tt.count); got != tt.want {
				t.Errorf("Calculate(%d, %d) = %d, want %d", tt.value, tt.count, got, tt.want)
			}
		})
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		pct  int
		want Level
	}{
		{0, LevelLow},
		{39, LevelLow},
		{40, LevelMedium},
		{79, LevelMedium},
		{80, LevelHigh},
		{100, LevelHigh},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.pct); got != tt.want {
			t.Errorf("LevelOf(%d) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestIsHigh(t *testing.T) {
	if IsHigh(79) {
		t.Error("79 should not be high")
	}
	if !IsHigh(80) {
		t.Error("80 should be high")
	}
}
