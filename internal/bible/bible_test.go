package bible

import "testing"

func TestNormalizeReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "genesis", input: "창 1:1", want: "창세기 1:1"},
		{name: "exodus", input: "출 20:1", want: "출애굽기 20:1"},
		{name: "psalms", input: "시 23", want: "시편 23"},
		{name: "john", input: "요 3:16", want: "요한복음 3:16"},
		{name: "first john", input: "요일 4:7", want: "요한일서 4:7"},
		{name: "second john", input: "요이 1:3", want: "요한이서 1:3"},
		{name: "third john", input: "요삼 1:2", want: "요한삼서 1:2"},
		{name: "romans", input: "롬 8:28", want: "로마서 8:28"},
		{name: "first thessalonians", input: "살전 5:16", want: "데살로니가전서 5:16"},
		{name: "revelation", input: "계 21:4", want: "요한계시록 21:4"},
		{name: "trims whitespace", input: "  창 1:1  ", want: "창세기 1:1"},
		{name: "abbr only", input: "욥", want: "욥기"},
		{name: "canonical name untouched", input: "창세기 1:1", want: "창세기 1:1"},
		{name: "no recognized prefix", input: "처음 1:1", want: "처음 1:1"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeReference(tt.input); got != tt.want {
				t.Errorf("NormalizeReference(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Every abbreviation in the table must expand to its own book, which
// also pins the longer-before-shorter ordering (요삼 before 요).
func TestNormalizeReferenceAllBooks(t *testing.T) {
	for _, b := range Books() {
		input := b.Abbr + " 3:16"
		want := b.Name + " 3:16"
		if got := NormalizeReference(input); got != want {
			t.Errorf("NormalizeReference(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBookCount(t *testing.T) {
	if BookCount() != 66 {
		t.Errorf("BookCount() = %d, want 66", BookCount())
	}
}

func TestBooksReturnsCopy(t *testing.T) {
	books := Books()
	books[0].Name = "바뀐이름"
	if NormalizeReference("창 1:1") != "창세기 1:1" {
		t.Error("mutating the returned slice must not affect the table")
	}
}
