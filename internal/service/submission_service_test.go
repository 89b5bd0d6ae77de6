package service_test

import (
	"testing"

	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/model"
	"github.com/lshigami/Sables/internal/repository"
	"github.com/lshigami/Sables/internal/service"
	"gorm.io/gorm"
)

// seedCatalog creates quiz 1 with question A (correct "B") and question B
// (correct "C"), and quiz 2 with one question. Returns the question IDs of
// quiz 1 and the quiz-2 question ID.
func seedCatalog(t *testing.T, db *gorm.DB) (qa, qb, foreign uint) {
	t.Helper()
	quiz1 := model.Quiz{
		Title: "Quiz One",
		Questions: []model.Question{
			{
				Text:          "Question A",
				CorrectOption: "B",
				Options:       []model.Option{{Text: "A"}, {Text: "B"}, {Text: "X"}},
			},
			{
				Text:          "Question B",
				CorrectOption: "C",
				Options:       []model.Option{{Text: "C"}, {Text: "D"}},
			},
		},
	}
	if err := db.Create(&quiz1).Error; err != nil {
		t.Fatalf("failed to seed quiz 1: %v", err)
	}
	quiz2 := model.Quiz{
		Title: "Quiz Two",
		Questions: []model.Question{
			{
				Text:          "Foreign question",
				CorrectOption: "Z",
				Options:       []model.Option{{Text: "Z"}, {Text: "Y"}},
			},
		},
	}
	if err := db.Create(&quiz2).Error; err != nil {
		t.Fatalf("failed to seed quiz 2: %v", err)
	}
	return quiz1.Questions[0].ID, quiz1.Questions[1].ID, quiz2.Questions[0].ID
}

func newSubmissionStack(t *testing.T) (service.SubmissionService, *gorm.DB, *model.User, uint, uint, uint) {
	t.Helper()
	db := newTestDB(t)
	qa, qb, foreign := seedCatalog(t, db)

	user := model.User{Username: "grader", PasswordHash: "irrelevant"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	svc := service.NewSubmissionService(
		repository.NewQuestionRepository(db),
		repository.NewProgressRepository(db),
	)
	return svc, db, &user, qa, qb, foreign
}

func TestSubmitQuizScoring(t *testing.T) {
	svc, db, user, qa, qb, foreign := newSubmissionStack(t)

	tests := []struct {
		name      string
		quizID    uint
		answers   []dto.AnswerSubmitDTO
		wantScore int
	}{
		{
			name:   "one correct one wrong",
			quizID: 1,
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: qa, SelectedOption: "B"},
				{QuestionID: qb, SelectedOption: "X"},
			},
			wantScore: 1,
		},
		{
			name:   "duplicate answers each counted",
			quizID: 1,
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: qa, SelectedOption: "B"},
				{QuestionID: qa, SelectedOption: "B"},
			},
			wantScore: 2,
		},
		{
			name:   "answer from another quiz ignored",
			quizID: 1,
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: qa, SelectedOption: "B"},
				{QuestionID: foreign, SelectedOption: "Z"},
			},
			wantScore: 1,
		},
		{
			name:   "unknown quiz scores zero",
			quizID: 999,
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: qa, SelectedOption: "B"},
			},
			wantScore: 0,
		},
		{
			name:      "empty submission scores zero",
			quizID:    1,
			answers:   nil,
			wantScore: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var countBefore int64
			if err := db.Model(&model.UserProgress{}).Count(&countBefore).Error; err != nil {
				t.Fatalf("failed to count progress: %v", err)
			}

			result, err := svc.SubmitQuiz(user, tt.quizID, tt.answers)
			if err != nil {
				t.Fatalf("submit failed: %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tt.wantScore)
			}

			// A progress record is written unconditionally, zero score included.
			var latest model.UserProgress
			if err := db.Order("id DESC").First(&latest).Error; err != nil {
				t.Fatalf("failed to load progress record: %v", err)
			}
			if latest.Score != tt.wantScore || !latest.Completed || latest.UserID != user.ID || latest.QuizID != tt.quizID {
				t.Errorf("progress record = %+v, want score %d completed for user %d quiz %d", latest, tt.wantScore, user.ID, tt.quizID)
			}
			var countAfter int64
			if err := db.Model(&model.UserProgress{}).Count(&countAfter).Error; err != nil {
				t.Fatalf("failed to count progress: %v", err)
			}
			if countAfter != countBefore+1 {
				t.Errorf("progress rows = %d, want %d", countAfter, countBefore+1)
			}
		})
	}
}

func TestSubmitQuizIsDeterministicAndAppendOnly(t *testing.T) {
	svc, db, user, qa, qb, _ := newSubmissionStack(t)

	answers := []dto.AnswerSubmitDTO{
		{QuestionID: qa, SelectedOption: "B"},
		{QuestionID: qb, SelectedOption: "C"},
	}

	first, err := svc.SubmitQuiz(user, 1, answers)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := svc.SubmitQuiz(user, 1, answers)
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if first.Score != second.Score {
		t.Fatalf("same submission graded differently: %d vs %d", first.Score, second.Score)
	}

	// Two submissions are two independent rows, never one updated record.
	var count int64
	if err := db.Model(&model.UserProgress{}).Where("user_id = ? AND quiz_id = ?", user.ID, 1).Count(&count).Error; err != nil {
		t.Fatalf("failed to count progress: %v", err)
	}
	if count != 2 {
		t.Fatalf("progress rows = %d, want 2", count)
	}
}

func TestGetUserProgress(t *testing.T) {
	svc, _, user, qa, _, _ := newSubmissionStack(t)

	if _, err := svc.SubmitQuiz(user, 1, []dto.AnswerSubmitDTO{{QuestionID: qa, SelectedOption: "B"}}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.SubmitQuiz(user, 2, nil); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	records, err := svc.GetUserProgress(user.ID)
	if err != nil {
		t.Fatalf("get progress failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("progress entries = %d, want 2", len(records))
	}
	for _, r := range records {
		if !r.Completed {
			t.Errorf("entry %+v not marked completed", r)
		}
	}
}
