package models

// ResumeAnalysis is the structured result of a Gemini resume review.
type ResumeAnalysis struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	SuggestedRoles []string `json:"suggestedRoles"`
	Score          int      `json:"score"` // 0..100
	RawText        string   `json:"rawText,omitempty"`
}

// InterviewQuestion is one generated question with an optional model answer.
type InterviewQuestion struct {
	Question    string `json:"question"`
	Category    string `json:"category"` // technical, behavioral, hr
	ModelAnswer string `json:"modelAnswer,omitempty"`
}

// AnswerFeedback is the evaluation of a student's interview answer.
type AnswerFeedback struct {
	Score        int      `json:"score"` // 0..10
	Feedback     string   `json:"feedback"`
	Improvements []string `json:"improvements"`
	RawText      string   `json:"rawText,omitempty"`
}

// InterviewContext is the conversational state of an interview-prep session.
type InterviewContext struct {
	Role           string   `json:"role"`
	AskedQuestions []string `json:"askedQuestions"`
	Turn           int      `json:"turn"`
}
