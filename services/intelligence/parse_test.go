package intelligence

import (
	"testing"

	"campushire/models"
)

func TestUnmarshalLLMJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		check   func(t *testing.T, fb models.AnswerFeedback)
	}{
		{
			name: "bare json",
			raw:  `{"score": 7, "feedback": "solid", "improvements": ["be specific"]}`,
			check: func(t *testing.T, fb models.AnswerFeedback) {
				if fb.Score != 7 || fb.Feedback != "solid" || len(fb.Improvements) != 1 {
					t.Errorf("unexpected result: %+v", fb)
				}
			},
		},
		{
			name: "markdown fenced",
			raw:  "```json\n{\"score\": 4, \"feedback\": \"thin\"}\n```",
			check: func(t *testing.T, fb models.AnswerFeedback) {
				if fb.Score != 4 || fb.Feedback != "thin" {
					t.Errorf("unexpected result: %+v", fb)
				}
			},
		},
		{
			name: "surrounded by prose",
			raw:  "Here is my evaluation:\n{\"score\": 9, \"feedback\": \"great\"}\nHope that helps!",
			check: func(t *testing.T, fb models.AnswerFeedback) {
				if fb.Score != 9 {
					t.Errorf("unexpected result: %+v", fb)
				}
			},
		},
		{
			name:    "no json at all",
			raw:     "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "malformed json",
			raw:     `{"score": }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fb models.AnswerFeedback
			err := unmarshalLLMJSON(tt.raw, &fb)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, fb)
		})
	}
}
