package domain

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  padded\twith\nmixed   whitespace ", 3},
	}
	for _, tc := range tests {
		if got := CountWords(tc.text); got != tc.want {
			t.Errorf("CountWords(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestMoodAssignmentTags(t *testing.T) {
	a := MoodAssignment{
		PrimaryMood:    "reflective",
		SecondaryMoods: []string{"melancholic", "cozy", "introspective"},
	}

	tags := a.Tags(3)
	want := []string{"reflective", "melancholic", "cozy"}
	if len(tags) != len(want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, tags)
		}
	}

	// Primary always survives, even at max 1.
	if one := a.Tags(1); len(one) != 1 || one[0] != "reflective" {
		t.Errorf("expected just the primary, got %v", one)
	}
}
