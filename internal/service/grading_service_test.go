package service

import (
	"testing"

	"github.com/SaideLeon/nativespeak-api/internal/model"
)

func fillBlankQuestion(id uint, points int, key *model.FillBlankAnswer) model.Question {
	q := model.Question{Points: points, FillBlank: key}
	q.ID = id
	return q
}

func choiceQuestion(id uint, points int, answers ...model.Answer) model.Question {
	q := model.Question{Points: points, Answers: answers}
	q.ID = id
	return q
}

func option(id uint, text string, correct bool) model.Answer {
	a := model.Answer{AnswerText: text, IsCorrect: correct}
	a.ID = id
	return a
}

func TestCheckFillBlank(t *testing.T) {
	tests := []struct {
		name   string
		key    *model.FillBlankAnswer
		answer string
		want   bool
	}{
		{
			name:   "exact match",
			key:    &model.FillBlankAnswer{CorrectAnswer: "went"},
			answer: "went",
			want:   true,
		},
		{
			name:   "case insensitive by default",
			key:    &model.FillBlankAnswer{CorrectAnswer: "Went"},
			answer: "WENT",
			want:   true,
		},
		{
			name:   "case sensitive rejects wrong case",
			key:    &model.FillBlankAnswer{CorrectAnswer: "Went", CaseSensitive: true},
			answer: "went",
			want:   false,
		},
		{
			name:   "case sensitive accepts exact case",
			key:    &model.FillBlankAnswer{CorrectAnswer: "Went", CaseSensitive: true},
			answer: "Went",
			want:   true,
		},
		{
			name:   "surrounding whitespace trimmed",
			key:    &model.FillBlankAnswer{CorrectAnswer: "went"},
			answer: "  went  ",
			want:   true,
		},
		{
			name:   "alternative accepted",
			key:    &model.FillBlankAnswer{CorrectAnswer: "go", AlternativeAnswers: "goes, went"},
			answer: "went",
			want:   true,
		},
		{
			name:   "alternative trimmed and case folded",
			key:    &model.FillBlankAnswer{CorrectAnswer: "go", AlternativeAnswers: " Goes ,WENT"},
			answer: "goes",
			want:   true,
		},
		{
			name:   "empty alternative segment never matches empty answer against key",
			key:    &model.FillBlankAnswer{CorrectAnswer: "go", AlternativeAnswers: ",,"},
			answer: "",
			want:   false,
		},
		{
			name:   "wrong answer",
			key:    &model.FillBlankAnswer{CorrectAnswer: "went", AlternativeAnswers: "goes"},
			answer: "gone",
			want:   false,
		},
		{
			name:   "missing key is ungradable",
			key:    nil,
			answer: "went",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := fillBlankQuestion(1, 1, tt.key)
			if got := checkFillBlank(&q, tt.answer); got != tt.want {
				t.Errorf("checkFillBlank(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestCheckMultipleChoice(t *testing.T) {
	q := choiceQuestion(7, 2,
		option(31, "a cat", false),
		option(32, "a dog", true),
		option(33, "a bird", false),
	)

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"correct option id", "32", true},
		{"wrong option id", "31", false},
		{"id not on this question", "99", false},
		{"non numeric answer", "a dog", false},
		{"empty answer", "", false},
		{"whitespace around id", " 32 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkMultipleChoice(&q, tt.answer); got != tt.want {
				t.Errorf("checkMultipleChoice(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestCheckTrueFalse(t *testing.T) {
	q := choiceQuestion(9, 1,
		option(41, "True", true),
		option(42, "False", false),
	)

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact text", "True", true},
		{"case folded", "true", true},
		{"upper case", "TRUE", true},
		{"wrong option text", "False", false},
		{"free text", "yes", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkTrueFalse(&q, tt.answer); got != tt.want {
				t.Errorf("checkTrueFalse(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}

	t.Run("no flagged option is ungradable", func(t *testing.T) {
		broken := choiceQuestion(10, 1, option(51, "True", false), option(52, "False", false))
		if checkTrueFalse(&broken, "True") {
			t.Error("question without a flagged-correct option must grade incorrect")
		}
	})
}

func TestCorrectOptionTieBreak(t *testing.T) {
	// Two flagged-correct options: the lowest id wins, whatever the slice order.
	q := choiceQuestion(11, 1,
		option(72, "second", true),
		option(71, "first", true),
		option(73, "third", false),
	)
	correct := correctOption(&q)
	if correct == nil || correct.ID != 71 {
		t.Fatalf("correctOption picked %+v, want id 71", correct)
	}
	if !checkTrueFalse(&q, "first") {
		t.Error("answer matching the lowest-id flagged option must grade correct")
	}
	if checkTrueFalse(&q, "second") {
		t.Error("answer matching a higher-id flagged option must grade incorrect")
	}
}

func TestGradeQuestions(t *testing.T) {
	exercise := &model.Exercise{
		ExerciseType: model.FillBlank,
		Questions: []model.Question{
			fillBlankQuestion(1, 2, &model.FillBlankAnswer{CorrectAnswer: "went"}),
			fillBlankQuestion(2, 3, &model.FillBlankAnswer{CorrectAnswer: "gone"}),
			fillBlankQuestion(3, 5, &model.FillBlankAnswer{CorrectAnswer: "going"}),
		},
	}

	answers := map[string]string{
		"1": "went",
		"3": "wrong",
		// question 2 unanswered
	}

	score, maxScore, responses, results := gradeQuestions(exercise, answers)

	if maxScore != 10 {
		t.Errorf("maxScore = %d, want 10", maxScore)
	}
	if score != 2 {
		t.Errorf("score = %d, want 2", score)
	}
	if len(responses) != 3 || len(results) != 3 {
		t.Fatalf("got %d responses and %d results, want one per question", len(responses), len(results))
	}

	// Unanswered question records an empty answer, not a gap.
	if responses[1].QuestionID != 2 || responses[1].StudentAnswer != "" || responses[1].IsCorrect {
		t.Errorf("unanswered question response = %+v, want empty incorrect", responses[1])
	}
	if responses[0].PointsEarned != 2 {
		t.Errorf("correct answer earned %d points, want 2", responses[0].PointsEarned)
	}
	if responses[2].PointsEarned != 0 {
		t.Errorf("wrong answer earned %d points, want 0", responses[2].PointsEarned)
	}

	for i, r := range results {
		if r.CorrectAnswer == nil {
			t.Errorf("results[%d].CorrectAnswer is nil, want the key", i)
		}
	}
}

func TestGradeQuestionsEmptyExercise(t *testing.T) {
	exercise := &model.Exercise{ExerciseType: model.TrueFalse}
	score, maxScore, responses, results := gradeQuestions(exercise, map[string]string{"1": "True"})
	if score != 0 || maxScore != 0 {
		t.Errorf("empty exercise graded %d/%d, want 0/0", score, maxScore)
	}
	if len(responses) != 0 || len(results) != 0 {
		t.Errorf("empty exercise produced %d responses", len(responses))
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, max int
		want       float64
	}{
		{10, 10, 100},
		{0, 10, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{5, 8, 62.5},
		{0, 0, 0}, // no questions, not a division error
	}
	for _, tt := range tests {
		if got := percentage(tt.score, tt.max); got != tt.want {
			t.Errorf("percentage(%d, %d) = %v, want %v", tt.score, tt.max, got, tt.want)
		}
	}
}

func TestCorrectAnswerFor(t *testing.T) {
	t.Run("fill blank without key", func(t *testing.T) {
		q := fillBlankQuestion(1, 1, nil)
		if got := correctAnswerFor(&q, model.FillBlank); got != nil {
			t.Errorf("got %q, want nil for keyless question", *got)
		}
	})
	t.Run("fill blank with key", func(t *testing.T) {
		q := fillBlankQuestion(1, 1, &model.FillBlankAnswer{CorrectAnswer: "went"})
		got := correctAnswerFor(&q, model.FillBlank)
		if got == nil || *got != "went" {
			t.Errorf("got %v, want went", got)
		}
	})
	t.Run("multiple choice", func(t *testing.T) {
		q := choiceQuestion(1, 1, option(5, "a dog", true), option(6, "a cat", false))
		got := correctAnswerFor(&q, model.MultipleChoice)
		if got == nil || *got != "a dog" {
			t.Errorf("got %v, want a dog", got)
		}
	})
}
