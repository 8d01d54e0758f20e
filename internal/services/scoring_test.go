package services

import (
	"testing"

	"exam-platform-backend/internal/models"
)

func answerKey(correct map[uint]int) map[uint]models.Question {
	questions := make(map[uint]models.Question, len(correct))
	for id, idx := range correct {
		questions[id] = models.Question{ID: id, CorrectIndex: idx}
	}
	return questions
}

func TestGradeAnswers(t *testing.T) {
	key := answerKey(map[uint]int{
		1: 0, 2: 1, 3: 2, 4: 3, 5: 0,
		6: 1, 7: 2, 8: 3, 9: 0, 10: 1,
	})

	tests := []struct {
		name      string
		answers   []SubmittedAnswer
		wantScore int
		wantTotal int
	}{
		{
			name:      "empty submission",
			answers:   nil,
			wantScore: 0,
			wantTotal: 0,
		},
		{
			name: "seven of ten correct",
			answers: []SubmittedAnswer{
				{QuestionID: 1, SelectedAnswer: 0},
				{QuestionID: 2, SelectedAnswer: 1},
				{QuestionID: 3, SelectedAnswer: 2},
				{QuestionID: 4, SelectedAnswer: 3},
				{QuestionID: 5, SelectedAnswer: 0},
				{QuestionID: 6, SelectedAnswer: 1},
				{QuestionID: 7, SelectedAnswer: 2},
				{QuestionID: 8, SelectedAnswer: 0},
				{QuestionID: 9, SelectedAnswer: 1},
				{QuestionID: 10, SelectedAnswer: 2},
			},
			wantScore: 7,
			wantTotal: 10,
		},
		{
			name: "unknown question skipped entirely",
			answers: []SubmittedAnswer{
				{QuestionID: 1, SelectedAnswer: 0},
				{QuestionID: 999, SelectedAnswer: 0},
			},
			wantScore: 1,
			wantTotal: 1,
		},
		{
			name: "out of range index is incorrect, not fatal",
			answers: []SubmittedAnswer{
				{QuestionID: 1, SelectedAnswer: 17},
				{QuestionID: 2, SelectedAnswer: -1},
			},
			wantScore: 0,
			wantTotal: 2,
		},
		{
			name: "partial submission counts only what was answered",
			answers: []SubmittedAnswer{
				{QuestionID: 1, SelectedAnswer: 0},
				{QuestionID: 2, SelectedAnswer: 1},
				{QuestionID: 3, SelectedAnswer: 0},
				{QuestionID: 4, SelectedAnswer: 3},
			},
			wantScore: 3,
			wantTotal: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			graded, score := gradeAnswers(tc.answers, key)
			if score != tc.wantScore {
				t.Errorf("score = %d, want %d", score, tc.wantScore)
			}
			if len(graded) != tc.wantTotal {
				t.Errorf("total = %d, want %d", len(graded), tc.wantTotal)
			}
			if score < 0 || score > len(graded) {
				t.Errorf("invariant violated: score %d outside [0, %d]", score, len(graded))
			}
			for i, g := range graded {
				if g.OrderNum != i {
					t.Errorf("graded[%d].OrderNum = %d, want %d", i, g.OrderNum, i)
				}
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  int
	}{
		{"zero of zero", 0, 0, 0},
		{"seven of ten", 7, 10, 70},
		{"all correct", 10, 10, 100},
		{"none correct", 0, 10, 0},
		{"two thirds rounds up", 2, 3, 67},
		{"one third rounds down", 1, 3, 33},
		{"half rounds to fifty", 1, 2, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := percentage(tc.score, tc.total)
			if got != tc.want {
				t.Errorf("percentage(%d, %d) = %d, want %d", tc.score, tc.total, got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("invariant violated: percentage %d outside [0, 100]", got)
			}
		})
	}
}
