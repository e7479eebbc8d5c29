package response_models

import "tripnation/pkg/quiz"

type QuizSessionResponse struct {
	SessionID  string         `json:"session_id"`
	Stage      quiz.Stage     `json:"stage"`
	Step       int            `json:"step"`
	TotalSteps int            `json:"total_steps"`
	Question   *quiz.Question `json:"question,omitempty"`
	Selected   string         `json:"selected,omitempty"`
	CanAdvance bool           `json:"can_advance"`
	CanGoBack  bool           `json:"can_go_back"`
	Answers    quiz.Answers   `json:"answers"`
}

type QuizResultResponse struct {
	SessionID   string          `json:"session_id,omitempty"`
	Profile     quiz.ProfileKey `json:"profile"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CTAs        []quiz.CTA      `json:"ctas"`
	Scores      quiz.Scores     `json:"scores"`
}
