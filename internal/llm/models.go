package llm

// Типы повторяют формат generateContent API:
// запрос и ответ несут текст внутри contents/candidates -> parts.

type completionRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []Part `json:"parts"`
}

// CompletionResponse описывает ответ Gemini generateContent.
type CompletionResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate один вариант сгенерированного ответа.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type Part struct {
	Text string `json:"text"`
}

// FirstText возвращает текст первой части первого кандидата.
// Второе значение false, когда кандидатов нет или текст пустой —
// подстановку заглушки решает вызывающий.
func (r *CompletionResponse) FirstText() (string, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", false
	}
	return parts[0].Text, true
}

// upstreamErrorBody — конверт ошибки Google API.
type upstreamErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
