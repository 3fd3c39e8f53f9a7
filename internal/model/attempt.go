package model

// AttemptStatus is the state machine position of an attempt
type AttemptStatus string

const (
	AttemptAnswering AttemptStatus = "answering"
	AttemptFinished  AttemptStatus = "finished"
)

// OptionView is an option as displayed, indexed in shuffled order
type OptionView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// QuestionView is the current question of an attempt
type QuestionView struct {
	Number  int          `json:"number"` // 1-based
	Total   int          `json:"total"`
	Prompt  string       `json:"prompt"`
	Options []OptionView `json:"options"`
}

// ShareView is what the share widget receives
type ShareView struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ResultView is the finished state of an attempt
type ResultView struct {
	Category Category         `json:"category"`
	Heading  string           `json:"heading"`
	Image    string           `json:"image"`
	Tally    map[Category]int `json:"tally"`
	Share    ShareView        `json:"share"`
}

// AttemptView is rendered by REST and WebSocket clients
type AttemptView struct {
	AttemptID string        `json:"attemptId"`
	Status    AttemptStatus `json:"status"`
	Question  *QuestionView `json:"question,omitempty"`
	Result    *ResultView   `json:"result,omitempty"`
}

// StartAttemptResponse is returned when an attempt is created
type StartAttemptResponse struct {
	AttemptID string       `json:"attemptId"`
	Token     string       `json:"token"`
	View      *AttemptView `json:"view"`
}

// AnswerRequest selects an option by its displayed index
type AnswerRequest struct {
	OptionIndex *int `json:"optionIndex"`
}

// CategoryInfo describes a category for clients
type CategoryInfo struct {
	Category Category `json:"category"`
	Image    string   `json:"image"`
}

// QuizInfo describes the loaded bank
type QuizInfo struct {
	Title      string         `json:"title"`
	Questions  int            `json:"questions"`
	Categories []CategoryInfo `json:"categories"`
}
