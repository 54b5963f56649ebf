// Package bible normalizes Korean Bible references before lookup.
package bible

import "strings"

// Book maps a common Korean abbreviation to the canonical book name of the
// 66-book canon. Order matters: the first abbreviation that prefixes the
// input wins, so longer forms that share a prefix with a shorter one
// (요일 vs 요) must come first within their group.
type Book struct {
	Abbr string
	Name string
}

var bookTable = []Book{
	// 구약
	{"창", "창세기"}, {"출", "출애굽기"}, {"레", "레위기"}, {"민", "민수기"}, {"신", "신명기"},
	{"수", "여호수아"}, {"삿", "사사기"}, {"룻", "룻기"},
	{"삼상", "사무엘상"}, {"삼하", "사무엘하"}, {"왕상", "열왕기상"}, {"왕하", "열왕기하"},
	{"대상", "역대상"}, {"대하", "역대하"}, {"스", "에스라"}, {"느", "느헤미야"}, {"에", "에스더"},
	{"욥", "욥기"}, {"시", "시편"}, {"잠", "잠언"}, {"전", "전도서"}, {"아", "아가"},
	{"사", "이사야"}, {"렘", "예레미야"}, {"애", "예레미야애가"}, {"겔", "에스겔"}, {"단", "다니엘"},
	{"호", "호세아"}, {"욜", "요엘"}, {"암", "아모스"}, {"옵", "오바댜"}, {"욘", "요나"},
	{"미", "미가"}, {"나", "나훔"}, {"합", "하박국"}, {"습", "스바냐"}, {"학", "학개"},
	{"슥", "스가랴"}, {"말", "말라기"},
	// 신약
	{"마", "마태복음"}, {"막", "마가복음"}, {"눅", "누가복음"},
	{"요일", "요한일서"}, {"요이", "요한이서"}, {"요삼", "요한삼서"}, {"요", "요한복음"},
	{"행", "사도행전"}, {"롬", "로마서"}, {"고전", "고린도전서"}, {"고후", "고린도후서"},
	{"갈", "갈라디아서"}, {"엡", "에베소서"}, {"빌", "빌립보서"}, {"골", "골로새서"},
	{"살전", "데살로니가전서"}, {"살후", "데살로니가후서"}, {"딤전", "디모데전서"}, {"딤후", "디모데후서"},
	{"딛", "디도서"}, {"몬", "빌레몬서"}, {"히", "히브리서"},
	{"약", "야고보서"}, {"벧전", "베드로전서"}, {"벧후", "베드로후서"},
	{"유", "유다서"}, {"계", "요한계시록"},
}

// NormalizeReference rewrites a leading book abbreviation to its canonical
// full name and trims surrounding whitespace. Matching is case-insensitive
// and anchored to the start of the string; input without a recognized
// prefix is returned unchanged apart from trimming. Input that already
// starts with a canonical book name short-circuits before abbreviation
// matching, so "창세기 1:1" stays as is. Never fails.
func NormalizeReference(reference string) string {
	trimmed := strings.TrimSpace(reference)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)

	// Already-canonical names pass through untouched, otherwise the
	// abbreviation pass would mangle them (창세기 → 창 + 세기).
	for _, entry := range bookTable {
		if strings.HasPrefix(trimmed, entry.Name) {
			return trimmed
		}
	}

	for _, entry := range bookTable {
		abbr := strings.ToLower(entry.Abbr)
		if !strings.HasPrefix(lower, abbr) {
			continue
		}
		rest := strings.TrimLeft(trimmed[len(entry.Abbr):], " \t")
		if rest == "" {
			return entry.Name
		}
		return entry.Name + " " + rest
	}

	return trimmed
}

// BookCount returns the number of abbreviation entries.
func BookCount() int {
	return len(bookTable)
}

// Books returns a copy of the abbreviation table in match order.
func Books() []Book {
	out := make([]Book, len(bookTable))
	copy(out, bookTable)
	return out
}
