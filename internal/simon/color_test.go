package simon

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", Red, false},
		{"Blue", Blue, false},
		{" GREEN ", Green, false},
		{"yellow", Yellow, false},
		{"purple", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	for _, c := range Colors {
		back, err := ParseColor(c.String())
		if err != nil || back != c {
			t.Errorf("%v does not parse back: %v, %v", c, back, err)
		}
	}
	if got := Color(7).String(); got != "Color(7)" {
		t.Errorf("invalid color string = %q", got)
	}
	if Color(-1).Valid() || Color(4).Valid() {
		t.Error("out-of-range colors should be invalid")
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Status{Kind: StatusIdle}, "Press Start to Play"},
		{Status{Kind: StatusStarting}, "Game Starting..."},
		{Status{Kind: StatusPlaying, Level: 1}, "Level 1"},
		{Status{Kind: StatusPlaying, Level: 12}, "Level 12"},
		{Status{Kind: StatusLost, Level: 4}, "Wrong! Press Start to Play Again."},
	}

	for _, tt := range tests {
		if got := tt.status.Text(); got != tt.want {
			t.Errorf("%+v.Text() = %q, expected %q", tt.status, got, tt.want)
		}
	}
}

func TestMemoryKeeper(t *testing.T) {
	k := NewMemoryKeeper(-3)
	if k.HighScore() != 0 {
		t.Errorf("negative initial score should clamp to 0, got %d", k.HighScore())
	}

	k.SaveHighScore(5)
	k.SaveHighScore(2)
	if k.HighScore() != 5 {
		t.Errorf("HighScore = %d, expected 5", k.HighScore())
	}
}
