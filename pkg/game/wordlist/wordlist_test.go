package wordlist

import (
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 8},
		{Hard, 7},
	}
	for _, tt := range tests {
		words := Words(tt.d)
		if len(words) != tt.want {
			t.Errorf("len(Words(%s)) = %d, want %d", tt.d, len(words), tt.want)
		}
		for _, w := range words {
			if w != strings.ToUpper(w) {
				t.Errorf("Words(%s) contains non-uppercase %q", tt.d, w)
			}
		}
	}
}

func TestWords_ReturnsCopy(t *testing.T) {
	w := Words(Easy)
	w[0] = "CHANGED"
	if Words(Easy)[0] == "CHANGED" {
		t.Error("Words shares its backing array with callers")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"", Easy, false},
		{"easy", Easy, false},
		{" HARD ", Hard, false},
		{"nightmare", Easy, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %s, %v, want %s, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
