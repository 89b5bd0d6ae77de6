package dto

// OptionCreateDTO is a display-only candidate answer within a question.
type OptionCreateDTO struct {
	Text string `json:"text" binding:"required"`
}

// QuestionCreateDTO is used within QuizCreateDTO for admin quiz creation.
type QuestionCreateDTO struct {
	Text          string            `json:"text" binding:"required"`
	CorrectOption string            `json:"correct_option" binding:"required"`
	Options       []OptionCreateDTO `json:"options" binding:"required,min=2,dive"`
}

// QuizCreateDTO is for admin to create a new quiz with all its questions.
type QuizCreateDTO struct {
	Title     string              `json:"title" binding:"required"`
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
