package dto

import "time"

// QuizSummaryDTO is used for listing quizzes available to users.
type QuizSummaryDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// QuestionDTO is used for displaying question details to users. The correct
// option is deliberately absent.
type QuestionDTO struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// AnswerSubmitDTO represents a user's answer to a single question within a
// quiz submission.
type AnswerSubmitDTO struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option" binding:"required"`
}

// SubmitResultDTO is the grading outcome of one submission.
type SubmitResultDTO struct {
	Score int `json:"score"`
}

// ProgressDTO is one persisted quiz attempt outcome.
type ProgressDTO struct {
	ID        uint      `json:"id"`
	QuizID    uint      `json:"quiz_id"`
	Score     int       `json:"score"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizDetailDTO is the admin-facing view of a created quiz.
type QuizDetailDTO struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Questions []QuestionDTO `json:"questions,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
