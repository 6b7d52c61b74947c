package extract

import "testing"

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		text   string
		wantID string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/shorts/aBcDeFgHiJk", "aBcDeFgHiJk", true},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"check this recipe https://youtu.be/dQw4w9WgXcQ looks great", "dQw4w9WgXcQ", true},
		{"no link here", "", false},
		{"https://example.com/watch?v=dQw4w9WgXcQ", "", false},
	}

	for _, tt := range tests {
		id, ok := YouTubeVideoID(tt.text)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("YouTubeVideoID(%q) = (%q, %v), want (%q, %v)",
				tt.text, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
