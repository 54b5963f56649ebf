// Package prompt builds the instruction strings for every generation
// operation. All construction is deterministic: same inputs, same string.
//
// A single policy block governs tone, the fixed source translation,
// doctrinal constraints and the permitted punctuation set. It is defined
// once here and sent as the system instruction with every request, so the
// per-operation templates cannot drift apart.
package prompt

import (
	"fmt"
	"strings"

	"github.com/daehopark/malsum/internal/models"
)

// Operation identifies one of the six prompt templates.
type Operation string

const (
	OpPassageLookup  Operation = "passage_lookup"
	OpObservation    Operation = "observation"
	OpInterpretation Operation = "interpretation"
	OpApplication    Operation = "application"
	OpChat           Operation = "chat"
	OpShareSummary   Operation = "share_summary"
)

// ForCategory maps a meditation category to its operation.
func ForCategory(c models.Category) Operation {
	switch c {
	case models.CategoryInterpretation:
		return OpInterpretation
	case models.CategoryApplication:
		return OpApplication
	default:
		return OpObservation
	}
}

// PolicyBlock is the persistent system instruction for every operation.
const PolicyBlock = `당신은 신학적 이해가 깊고 따뜻한 마음을 가진 기독교 사역자(목사/전도사)입니다.
구역장(셀 리더)을 돕기 위해 성경을 설명하고, 묵상 질문을 생성하고, 신학적 질문에 답변합니다.
말투는 항상 정중하고, 격려하며, 은혜로운 "해요체"를 사용하세요. (예: ~했습니다, ~합니다, ~해보세요).

성경 본문 및 답변 기준:
- 모든 성경 본문과 성경 관련 답변은 반드시 대한성서공회 개역한글판을 기준으로 하세요.
- 개역개정, 새번역, 공동번역 등 다른 번역본을 절대 사용하지 마세요.
- 개역한글판의 어투와 표현, 신학적 정통성을 정확히 유지하세요.

신학적 정통성 및 안전장치:
- 정통 기독교 신학(삼위일체, 예수 그리스도의 신성과 인성, 성경의 권위, 구원의 은혜 등)을 엄격히 따르세요.
- 사이비 종교, 이단 교리, 영지주의적 해석을 절대 포함하지 마세요.
- 성경 구절을 문맥에서 분리하여 왜곡하거나 특정 부분만 발췌하는 방식을 절대 사용하지 마세요.
- 항상 성경 전체의 맥락과 정경(66권)의 조화로운 해석을 추구하세요.
- 의심스러운 교리나 비성경적 주장에 대해서는 명확히 경고하세요.

답변 스타일:
- 성경 본문 해석이나 묵상 질문: 개역한글판 성경을 기준으로 답변하세요.
- 기독교 교리, 역사, 신학 일반 질문: 포괄적이고 객관적인 팩트를 기반으로 답변하세요.
- 질문에 대해 간결하고 핵심적으로 답변하세요.
- 불필요한 서두 멘트("좋은 질문입니다", "질문해주셔서 감사합니다" 등)는 생략하세요.
- 질문을 다시 반복하지 마세요.
- 핵심 내용을 먼저 제시하고, 필요시 간단한 부연 설명을 추가하세요.

특수기호 사용 규칙 (절대 준수):
- 사용 가능한 특수기호: 작은따옴표('), 큰따옴표("), 괄호(()), 대괄호([]), 중괄호({}), 꺾쇠괄호(<>)
- 절대 금지: 마크다운 강조 문법(별표 1~3개, 언더스코어 1~3개)을 어떤 경우에도 사용하지 마세요.
- 강조가 필요한 경우 반드시 큰따옴표("")만 사용하세요.
- 번호 매기기는 1. 2. 3. 형식으로만 사용하세요.
- 항목 구분은 줄바꿈으로만 하세요.`

// Shared symbol rules, kept in one place so the three meditation templates
// cannot drift apart through copied wording.
const symbolRules = `특수기호는 ', ", (), [], {}, <> 만 사용하고 다른 특수기호는 절대 사용하지 마세요.
절대 금지: 별표나 언더스코어 등 강조 기호 일체 사용 금지. 강조가 필요하면 큰따옴표("")만 사용하세요.
항목 시작은 반드시 숫자로 번호를 매기세요 (예: 1. 2. 3.)`

// PassageLookup builds the lookup prompt for a normalized reference.
// The result of this operation is verbatim scripture and is never sanitized.
func PassageLookup(reference string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "다음 성경 구절의 본문을 \"대한성서공회 개역한글판\" 성경에서 정확하게 찾아서 출력해주세요: %s\n\n", reference)
	b.WriteString(`반드시 지켜야 할 규칙:
1. 절대적으로 "개역한글판"만 사용하세요 (1961년 번역본 기준)
2. "개역개정판", "새번역", "공동번역" 등 다른 번역본은 절대 사용 금지
3. 개역한글판의 고유한 표현과 어투를 정확히 그대로 사용하세요
4. 절 번호를 포함하여 본문만 출력하세요
5. 어떤 설명, 서론, 주석도 추가하지 마세요

예시 형식:
1 태초에 하나님이 천지를 창조하시니라
2 땅이 혼돈하고 공허하며...`)
	return b.String()
}

// Meditation builds the generation prompt for one category over the full
// passage text. Each demands exactly three numbered items with the
// category's structural requirement.
func Meditation(category models.Category, passageText string) string {
	var b strings.Builder
	switch category {
	case models.CategoryInterpretation:
		fmt.Fprintf(&b, "다음 성경 본문을 바탕으로 [성경주석 해석] 3가지를 작성해주세요.\n본문: %s\n\n", passageText)
		b.WriteString(`요구사항:
1. 성경 주석 관점에서 당시 시대적 배경이나 원어의 의미를 포함한 깊이 있는 해석.
2. 영적인 원리와 숨겨진 뜻을 발견하도록 돕는 내용.
3. 3개의 항목으로 나누어 번호를 매겨주세요.
`)
	case models.CategoryApplication:
		fmt.Fprintf(&b, "다음 성경 본문을 바탕으로 구역 모임에서 나눌 수 있는 [말씀적용 질문] 3가지를 작성해주세요.\n본문: %s\n\n", passageText)
		b.WriteString(`요구사항:
1. 오늘날 현대인의 삶, 구역원들의 삶에 구체적으로 적용할 수 있는 질문.
2. 너무 추상적이지 않고 구체적인 실천을 유도하세요.
3. 구역장이 구역원들에게 부드럽게 물어볼 수 있는 문체로 작성해주세요.
`)
	default:
		fmt.Fprintf(&b, "다음 성경 본문을 바탕으로 [말씀관찰 질문 및 해설] 3가지를 작성해주세요.\n본문: %s\n\n", passageText)
		b.WriteString(`요구사항:
1. "이 본문에서 하나님/예수님은 어떤 분이신가?"
2. 주요 인물, 장소, 사건에 대한 팩트 체크.
3. 3개의 항목으로 나누어 번호를 매기고, 각 항목은 질문과 짧은 해설로 구성해주세요.
`)
	}
	b.WriteString(symbolRules)
	return b.String()
}

// ChatQuestion wraps a user question with the active passage as context.
// Without a passage the question passes through unchanged.
func ChatQuestion(passage *models.Passage, question string) string {
	if passage == nil {
		return question
	}
	return fmt.Sprintf("[현재 묵상중인 본문: %s]\n질문: %s", passage.Reference, question)
}

// ShareSummary builds the prompt for a compact shareable narrative summary
// of the passage and whatever meditation content exists.
func ShareSummary(passage models.Passage, meditation models.MeditationContent) string {
	var b strings.Builder
	b.WriteString("다음 성경 묵상 내용을 카카오톡으로 공유하기 좋게 요약해주세요.\n\n")
	fmt.Fprintf(&b, "성경 본문: %s\n%s\n\n", passage.Reference, passage.Text)
	fmt.Fprintf(&b, "말씀관찰: %s\n\n", orNone(meditation.Observation))
	fmt.Fprintf(&b, "말씀해석: %s\n\n", orNone(meditation.Interpretation))
	fmt.Fprintf(&b, "말씀적용: %s\n\n", orNone(meditation.Application))
	b.WriteString(`요구사항:
1. 다음 형식으로 작성:

<QT 나눔>
성경구절 (예: 시편 35)

<말씀요약>
성경 본문을 2-3줄로 요약

그 후 와닿은 점, 느낀점, 말씀 적용내용을 자연스럽게 작성

2. 이모지는 절대 사용하지 말 것
3. 1, 2, 3 같은 번호 매기지 말 것
4. AI가 쓴 것처럼 형식적이지 않게, 자연스럽고 진솔하게 작성
5. 따뜻하고 격려하는 톤 유지
6. 특수기호는 ', ", (), [], {}, <> 만 사용
7. 전체 길이는 10-15줄 이내`)
	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "없음"
	}
	return s
}
