package domain

import "sort"

// LanguageEntry holds the model instruction texts for one supported
// language. Entries are static and loaded at process start.
type LanguageEntry struct {
	// Tag is the exact language identifier (no normalisation).
	Tag string

	// OCRInstruction is sent to the vision capability together with an
	// image to transcribe.
	OCRInstruction string

	// QASystem is the system instruction for answer generation.
	QASystem string

	// QAUser is the user-content template for answer generation.
	// It contains the literal {context} and {question} placeholders.
	QAUser string
}

// languages is the static prompt registry. Both the OCR and QA texts
// carry the answer-only-from-context directive so the model refuses
// questions the retrieved context cannot answer.
var languages = map[string]LanguageEntry{
	"English": {
		Tag: "English",
		OCRInstruction: `Extract ALL text from this image exactly as written. Do not modify or interpret.
Instructions:
- Only give an answer based on the provided context.
- If the user question is irrelevant to the context, just write: Information not available.`,
		QASystem: `Answer the query based ONLY on this context. Respond in English.
Instructions:
- Only give an answer based on the provided context.
- If the user question is irrelevant to the context, just write: Information not available.`,
		QAUser: "Context:\n{context}\n\nQuestion:\n{question}",
	},
	"Japanese": {
		Tag: "Japanese",
		OCRInstruction: `画像内のテキストをすべてそのまま抽出してください。修正や解釈は不要です。
指示：
- 提供されたコンテキストに基づいてのみ回答してください。
- ユーザーの質問がコンテキストに関連しない場合は、「情報がありません」とだけ記入してください。`,
		QASystem: `このコンテキストに基づいて質問に答えてください。日本語で回答してください。
指示：
- 提供されたコンテキストに基づいてのみ回答してください。
- ユーザーの質問がコンテキストに関連しない場合は、「情報がありません」とだけ記入してください。`,
		QAUser: "コンテキスト:\n{context}\n\n質問:\n{question}",
	},
	"Chinese": {
		Tag: "Chinese",
		OCRInstruction: `准确提取图片中的所有文字，不要修改或解释。
说明：
- 仅根据提供的上下文给出答案。
- 如果用户问题与上下文无关，请填写：信息不可用。`,
		QASystem: `仅根据以下内容回答问题。用中文回答。
说明：
- 仅根据提供的上下文给出答案。
- 如果用户问题与上下文无关，请填写：信息不可用。`,
		QAUser: "内容:\n{context}\n\n问题:\n{question}",
	},
}

// LookupLanguage resolves a language tag by exact match.
// An unknown tag is a hard error, never a silent fallback.
func LookupLanguage(tag string) (LanguageEntry, error) {
	entry, ok := languages[tag]
	if !ok {
		return LanguageEntry{}, ErrUnsupportedLanguage
	}
	return entry, nil
}

// Languages returns the supported language tags in sorted order.
func Languages() []string {
	tags := make([]string, 0, len(languages))
	for tag := range languages {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
