package intelligence

import (
	"fmt"
	"strings"

	"campushire/models"
)

func resumeAnalysisPrompt(student *models.Student) string {
	return fmt.Sprintf(`You are a career counselor reviewing a student resume.
Student degree: %s (%s), graduating %d, CGPA %.2f.
Listed skills: %s.

Resume text:
%s

Respond with ONLY a JSON object, no markdown fences, with keys:
"summary" (string), "strengths" (array of strings), "weaknesses" (array of strings),
"suggestedRoles" (array of strings), "score" (integer 0-100).`,
		student.Degree, student.Branch, student.GraduationYear, student.CGPA,
		strings.Join(student.Skills, ", "), student.ResumeText)
}

func interviewQuestionPrompt(ic *models.InterviewContext) string {
	asked := "none yet"
	if len(ic.AskedQuestions) > 0 {
		asked = "- " + strings.Join(ic.AskedQuestions, "\n- ")
	}
	return fmt.Sprintf(`You are conducting a mock interview for the role of %s.
This is turn %d. Questions already asked:
%s

Ask ONE new question that was not asked before. Respond with ONLY a JSON object
with keys: "question" (string), "category" (one of "technical", "behavioral", "hr"),
"modelAnswer" (string, a concise strong answer).`, ic.Role, ic.Turn+1, asked)
}

func answerFeedbackPrompt(role, question, answer string) string {
	if role == "" {
		role = "a graduate position"
	}
	return fmt.Sprintf(`You are evaluating a candidate's answer in a mock interview for %s.

Question: %s
Candidate answer: %s

Respond with ONLY a JSON object with keys: "score" (integer 0-10),
"feedback" (string), "improvements" (array of strings).`, role, question, answer)
}
