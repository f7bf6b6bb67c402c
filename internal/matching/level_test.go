package matching

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score, max int
		want       Level
	}{
		{0, 15, LevelLow},
		{5, 15, LevelLow},    // 33.3%
		{6, 15, LevelMedium}, // exactly 40%
		{8, 15, LevelMedium}, // 53.3%
		{9, 15, LevelHigh},   // exactly 60%
		{15, 15, LevelHigh},
		{39, 100, LevelLow},
		{40, 100, LevelMedium},
		{59, 100, LevelMedium},
		{60, 100, LevelHigh},
		{9, 25, LevelLow},     // 36%
		{10, 25, LevelMedium}, // 40%
		{14, 25, LevelMedium}, // 56%
		{15, 25, LevelHigh},   // 60%
		{2, 5, LevelMedium},   // 40% on a single question
		{3, 5, LevelHigh},     // 60% on a single question
	}

	for _, tt := range tests {
		got := Classify(tt.score, tt.max)
		if got != tt.want {
			t.Errorf("Classify(%d, %d) = %s, want %s", tt.score, tt.max, got, tt.want)
		}
	}
}

func TestClassify_ExactFortyPercentForManyMaxima(t *testing.T) {
	for max := 5; max <= 500; max += 5 {
		forty := max * 40 / 100
		sixty := max * 60 / 100
		if got := Classify(forty, max); got != LevelMedium {
			t.Errorf("Classify(%d, %d) = %s, want medium", forty, max, got)
		}
		if got := Classify(forty-1, max); got != LevelLow {
			t.Errorf("Classify(%d, %d) = %s, want low", forty-1, max, got)
		}
		if got := Classify(sixty, max); got != LevelHigh {
			t.Errorf("Classify(%d, %d) = %s, want high", sixty, max, got)
		}
		if got := Classify(sixty-1, max); got != LevelMedium {
			t.Errorf("Classify(%d, %d) = %s, want medium", sixty-1, max, got)
		}
	}
}

func TestClassify_NoClamping(t *testing.T) {
	if got := Classify(-3, 15); got != LevelLow {
		t.Errorf("negative score = %s, want low", got)
	}
	if got := Classify(40, 15); got != LevelHigh {
		t.Errorf("score above max = %s, want high", got)
	}
	if got := Classify(3, 0); got != LevelLow {
		t.Errorf("zero max = %s, want low", got)
	}
}

func TestConfig_CustomThresholds(t *testing.T) {
	cfg := Config{HighPercent: 70, LowPercent: 30, MaxPerQuestion: 5, DefaultQuestionCount: 5}
	tests := []struct {
		score int
		want  Level
	}{
		{29, LevelLow},
		{30, LevelMedium},
		{60, LevelMedium},
		{69, LevelMedium},
		{70, LevelHigh},
	}
	for _, tt := range tests {
		if got := cfg.Classify(tt.score, 100); got != tt.want {
			t.Errorf("Classify(%d, 100) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := []Config{
		{HighPercent: 40, LowPercent: 60, MaxPerQuestion: 5, DefaultQuestionCount: 5},
		{HighPercent: 60, LowPercent: 0, MaxPerQuestion: 5, DefaultQuestionCount: 5},
		{HighPercent: 120, LowPercent: 40, MaxPerQuestion: 5, DefaultQuestionCount: 5},
		{HighPercent: 60, LowPercent: 40, MaxPerQuestion: 0, DefaultQuestionCount: 5},
		{HighPercent: 60, LowPercent: 40, MaxPerQuestion: 5, DefaultQuestionCount: 0},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("config #%d: expected error, got nil", i)
		}
	}
}

func TestConfig_MaxScore(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.MaxScore(3); got != 15 {
		t.Errorf("MaxScore(3) = %d, want 15", got)
	}
	if got := cfg.MaxScore(0); got != 25 {
		t.Errorf("MaxScore(0) = %d, want 25 (default count)", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"low", LevelLow, false},
		{"medium", LevelMedium, false},
		{"high", LevelHigh, false},
		{" High ", LevelHigh, false},
		{"hihg", LevelUnknown, true},
		{"", LevelUnknown, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, l := range AllLevels() {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", l, err)
		}
		var back Level
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != l {
			t.Errorf("round trip %s -> %s", l, back)
		}
	}
	if _, err := LevelUnknown.MarshalText(); err == nil {
		t.Error("expected error marshaling LevelUnknown")
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(6, 15); got != 40 {
		t.Errorf("Percentage(6, 15) = %v, want 40", got)
	}
	if got := Percentage(1, 0); got != 0 {
		t.Errorf("Percentage(1, 0) = %v, want 0", got)
	}
}
