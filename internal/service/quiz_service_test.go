package service_test

import (
	"reflect"
	"testing"

	"github.com/lshigami/Sables/internal/repository"
	"github.com/lshigami/Sables/internal/service"
)

func TestGetAllQuizzes(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := service.NewQuizService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db))

	quizzes, err := svc.GetAllQuizzes()
	if err != nil {
		t.Fatalf("get quizzes failed: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("quiz count = %d, want 2", len(quizzes))
	}
	if quizzes[0].Title != "Quiz One" || quizzes[1].Title != "Quiz Two" {
		t.Fatalf("unexpected quiz titles: %+v", quizzes)
	}
}

func TestGetQuizQuestionsHidesCorrectOption(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := service.NewQuizService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db))

	questions, err := svc.GetQuizQuestions(1)
	if err != nil {
		t.Fatalf("get questions failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("question count = %d, want 2", len(questions))
	}
	if questions[0].Text != "Question A" {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}
	if want := []string{"A", "B", "X"}; !reflect.DeepEqual(questions[0].Options, want) {
		t.Fatalf("options = %v, want %v", questions[0].Options, want)
	}
}

func TestGetQuizQuestionsUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := service.NewQuizService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db))

	questions, err := svc.GetQuizQuestions(999)
	if err != nil {
		t.Fatalf("get questions failed: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions for unknown quiz, got %d", len(questions))
	}
}

func TestReadPathsDoNotMutate(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := service.NewQuizService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db))

	first, err := svc.GetQuizQuestions(1)
	if err != nil {
		t.Fatalf("get questions failed: %v", err)
	}
	if _, err := svc.GetAllQuizzes(); err != nil {
		t.Fatalf("get quizzes failed: %v", err)
	}
	second, err := svc.GetQuizQuestions(1)
	if err != nil {
		t.Fatalf("get questions failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated reads returned different results")
	}
}
