package dto

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
type QuestionCreateDTO struct {
	Topic         string   `json:"topic" binding:"required"`
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Marks         float64  `json:"marks" binding:"required,gt=0"`
	OrderInTest   int      `json:"order_in_test" binding:"required,min=1"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
type TestCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description,omitempty"`
	Category        string              `json:"category" binding:"required"`
	Kind            string              `json:"kind" binding:"required,oneof=mock company_specific adaptive_practice"`
	DurationMinutes int                 `json:"duration_minutes" binding:"required,min=1"`
	NegativeMarking bool                `json:"negative_marking"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
