package request_models

import "tripnation/pkg/quiz"

// ClassifyRequest may omit answers; no answers resolves the default profile.
type ClassifyRequest struct {
	Answers quiz.Answers `json:"answers"`
}

type QuizAnswerRequest struct {
	Value string `json:"value" binding:"required"`
	// Advance moves to the next step right after recording the answer.
	Advance bool `json:"advance"`
}
