package intelligence

import (
	"context"
	"fmt"

	studentRepo "campushire/database/repository/student"
	"campushire/models"
)

// IntelligenceService exposes the AI-assisted career tooling.
type IntelligenceService interface {
	AnalyzeResume(ctx context.Context, studentID string) (*models.ResumeAnalysis, error)
	NextInterviewQuestion(ctx context.Context, studentID, role string) (*models.InterviewQuestion, error)
	EvaluateAnswer(ctx context.Context, studentID, question, answer string) (*models.AnswerFeedback, error)
	EndInterview(ctx context.Context, studentID string) error
}

// GeminiIntelligenceService backs the career tooling with Gemini plus a Redis
// conversation store.
type GeminiIntelligenceService struct {
	LLM      ContentGenerator
	CtxStore *RedisContextStore
	Students studentRepo.StudentRepository
}

func NewGeminiIntelligenceService(llm ContentGenerator, ctxStore *RedisContextStore, students studentRepo.StudentRepository) *GeminiIntelligenceService {
	return &GeminiIntelligenceService{LLM: llm, CtxStore: ctxStore, Students: students}
}

// AnalyzeResume reviews the student's stored resume text.
func (s *GeminiIntelligenceService) AnalyzeResume(ctx context.Context, studentID string) (*models.ResumeAnalysis, error) {
	student, err := s.Students.GetByID(studentID)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}
	if student.ResumeText == "" {
		return nil, fmt.Errorf("no resume text on file, upload one first")
	}

	raw, err := s.LLM.GenerateContent(ctx, resumeAnalysisPrompt(student))
	if err != nil {
		return nil, err
	}

	var analysis models.ResumeAnalysis
	if err := unmarshalLLMJSON(raw, &analysis); err != nil {
		// Model output that won't parse is still worth returning verbatim.
		return &models.ResumeAnalysis{Summary: raw, RawText: raw}, nil
	}
	analysis.RawText = raw
	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}
	return &analysis, nil
}

// NextInterviewQuestion advances the student's mock interview by one turn.
func (s *GeminiIntelligenceService) NextInterviewQuestion(ctx context.Context, studentID, role string) (*models.InterviewQuestion, error) {
	ic, err := s.CtxStore.Get(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load interview context: %w", err)
	}
	if role != "" && role != ic.Role {
		// Switching roles restarts the session.
		ic = &models.InterviewContext{Role: role}
	}
	if ic.Role == "" {
		return nil, fmt.Errorf("interview role is required")
	}

	raw, err := s.LLM.GenerateContent(ctx, interviewQuestionPrompt(ic))
	if err != nil {
		return nil, err
	}

	var q models.InterviewQuestion
	if err := unmarshalLLMJSON(raw, &q); err != nil {
		q = models.InterviewQuestion{Question: raw}
	}
	if q.Question == "" {
		return nil, fmt.Errorf("model returned an empty question")
	}

	ic.AskedQuestions = append(ic.AskedQuestions, q.Question)
	ic.Turn++
	if err := s.CtxStore.Set(ctx, studentID, ic); err != nil {
		return nil, fmt.Errorf("save interview context: %w", err)
	}
	return &q, nil
}

// EvaluateAnswer scores a student's answer to an interview question.
func (s *GeminiIntelligenceService) EvaluateAnswer(ctx context.Context, studentID, question, answer string) (*models.AnswerFeedback, error) {
	if question == "" || answer == "" {
		return nil, fmt.Errorf("question and answer are required")
	}

	ic, err := s.CtxStore.Get(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load interview context: %w", err)
	}

	raw, err := s.LLM.GenerateContent(ctx, answerFeedbackPrompt(ic.Role, question, answer))
	if err != nil {
		return nil, err
	}

	var fb models.AnswerFeedback
	if err := unmarshalLLMJSON(raw, &fb); err != nil {
		return &models.AnswerFeedback{Feedback: raw, RawText: raw}, nil
	}
	fb.RawText = raw
	if fb.Score < 0 {
		fb.Score = 0
	}
	if fb.Score > 10 {
		fb.Score = 10
	}
	return &fb, nil
}

// EndInterview discards the student's mock interview state.
func (s *GeminiIntelligenceService) EndInterview(ctx context.Context, studentID string) error {
	return s.CtxStore.Clear(ctx, studentID)
}
