package extract

import "testing"

func TestTimer(t *testing.T) {
	tests := []struct {
		text        string
		wantSeconds int
		wantUnit    string
		wantOK      bool
	}{
		{"Cook for 10 minutes", 600, "minutes", true},
		{"Simmer about 5 min", 300, "min", true},
		{"Bake 1.5 hours", 5400, "hours", true},
		{"Roast for 1 hour", 3600, "hour", true},
		{"Microwave for 30 seconds", 30, "seconds", true},
		{"Wait 45 sec", 45, "sec", true},
		{"Soak 1 overnight", 28800, "overnight", true},
		// "overnight" 沒有伴隨數字時不觸發，維持既有行為
		{"Leave the dough overnight", 0, "", false},
		{"Stir continuously", 0, "", false},
		{"Cook for 0 minutes", 0, "", false},
		{"", 0, "", false},
	}

	for _, tt := range tests {
		spec, ok := Timer(tt.text)
		if ok != tt.wantOK {
			t.Errorf("Timer(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if spec.Seconds != tt.wantSeconds {
			t.Errorf("Timer(%q) seconds = %d, want %d", tt.text, spec.Seconds, tt.wantSeconds)
		}
		if spec.Unit != tt.wantUnit {
			t.Errorf("Timer(%q) unit = %q, want %q", tt.text, spec.Unit, tt.wantUnit)
		}
	}
}

func TestTimerPicksFirstExpression(t *testing.T) {
	spec, ok := Timer("Fry for 2 minutes then simmer for 20 minutes")
	if !ok {
		t.Fatal("expected a timer")
	}
	if spec.Seconds != 120 {
		t.Errorf("seconds = %d, want 120", spec.Seconds)
	}
}
