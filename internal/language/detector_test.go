package language

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{
			name: "english booking inquiry",
			text: "Hi, I'd like to book the main hall for Dec 15 2024, 2pm-10pm, ~150 guests.",
			want: English,
		},
		{
			name: "chinese booking inquiry",
			text: "你好，我想預約十二月十五日的大禮堂，大約一百五十位客人。",
			want: Chinese,
		},
		{
			name: "empty string defaults to english",
			text: "",
			want: English,
		},
		{
			name: "digits and punctuation only",
			text: "2024-12-15 14:00 !!!",
			want: English,
		},
		{
			name: "mixed without decisive majority",
			text: "預約大禮堂 main hall",
			want: English,
		},
		{
			name: "chinese with short english tail",
			text: "我們想預約場地舉辦婚宴，謝謝。ok",
			want: Chinese,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestOther(t *testing.T) {
	if Other(English) != Chinese {
		t.Errorf("Other(English) = %q, want zh", Other(English))
	}
	if Other(Chinese) != English {
		t.Errorf("Other(Chinese) = %q, want en", Other(Chinese))
	}
}
