package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripnation/internal/catalog"
	"tripnation/internal/models/response_models"
	"tripnation/internal/repositories"
	"tripnation/pkg/quiz"
	"tripnation/pkg/utils"
)

type QuizServiceInterface interface {
	Questions() []quiz.Question
	Classify(answers quiz.Answers) response_models.QuizResultResponse

	StartSession(ctx context.Context) (*response_models.QuizSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Answer(ctx context.Context, sessionID, value string, advance bool) (*response_models.QuizSessionResponse, error)
	Next(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Back(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Redo(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Close(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Result(ctx context.Context, sessionID string) (*response_models.QuizResultResponse, error)
}

type QuizService struct {
	catalog  *catalog.Catalog
	sessions repositories.QuizSessionRepository
	logger   *zap.Logger
}

func NewQuizService(cat *catalog.Catalog, sessions repositories.QuizSessionRepository, logger *zap.Logger) QuizServiceInterface {
	return &QuizService{catalog: cat, sessions: sessions, logger: logger}
}

func (s *QuizService) Questions() []quiz.Question {
	return s.catalog.Questions()
}

// Classify scores a complete or partial answer set without a session.
func (s *QuizService) Classify(answers quiz.Answers) response_models.QuizResultResponse {
	return s.result("", quiz.Tally(answers, s.catalog.Questions()))
}

// StartSession opens a session already past the intro.
func (s *QuizService) StartSession(ctx context.Context) (*response_models.QuizSessionResponse, error) {
	id := uuid.New().String()
	flow := quiz.NewFlow(s.catalog.Questions())
	if err := flow.Start(); err != nil {
		return nil, err
	}
	if err := s.save(ctx, id, flow); err != nil {
		return nil, err
	}
	quizSessionsStarted.Inc()
	s.logger.Info("quiz session started", zap.String("session_id", id))
	return s.view(id, flow), nil
}

func (s *QuizService) GetSession(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	flow, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sessionID, flow), nil
}

func (s *QuizService) Answer(ctx context.Context, sessionID, value string, advance bool) (*response_models.QuizSessionResponse, error) {
	return s.apply(ctx, sessionID, func(f *quiz.Flow) error {
		if err := f.Answer(value); err != nil {
			return err
		}
		if advance {
			return f.Next()
		}
		return nil
	})
}

func (s *QuizService) Next(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	return s.apply(ctx, sessionID, (*quiz.Flow).Next)
}

func (s *QuizService) Back(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	return s.apply(ctx, sessionID, (*quiz.Flow).Back)
}

func (s *QuizService) Redo(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	return s.apply(ctx, sessionID, (*quiz.Flow).Redo)
}

// Close keeps the session so it can be reopened from the intro.
func (s *QuizService) Close(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	return s.apply(ctx, sessionID, func(f *quiz.Flow) error {
		f.Close()
		return nil
	})
}

func (s *QuizService) Result(ctx context.Context, sessionID string) (*response_models.QuizResultResponse, error) {
	flow, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := flow.Result(); err != nil {
		return nil, err
	}
	res := s.result(sessionID, flow.Scores())
	return &res, nil
}

// apply runs op on the stored flow and persists it only when op succeeds.
func (s *QuizService) apply(ctx context.Context, sessionID string, op func(*quiz.Flow) error) (*response_models.QuizSessionResponse, error) {
	flow, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(flow); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sessionID, flow); err != nil {
		return nil, err
	}
	return s.view(sessionID, flow), nil
}

func (s *QuizService) load(ctx context.Context, sessionID string) (*quiz.Flow, error) {
	state, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("load quiz session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if state == nil {
		return nil, utils.ErrQuizSessionNotFound
	}

	flow, err := quiz.RestoreFlow(s.catalog.Questions(), *state)
	if errors.Is(err, quiz.ErrInvalidState) {
		// The bank shrank since the session was saved; treat it as gone.
		return nil, utils.ErrQuizSessionNotFound
	}
	return flow, err
}

func (s *QuizService) save(ctx context.Context, sessionID string, flow *quiz.Flow) error {
	if err := s.sessions.SaveSession(ctx, sessionID, flow.State()); err != nil {
		s.logger.Error("save quiz session", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *QuizService) view(sessionID string, flow *quiz.Flow) *response_models.QuizSessionResponse {
	resp := &response_models.QuizSessionResponse{
		SessionID:  sessionID,
		Stage:      flow.Stage(),
		Step:       flow.Step(),
		TotalSteps: flow.TotalSteps(),
		CanAdvance: flow.CanAdvance(),
		CanGoBack:  flow.Stage() == quiz.StageQuestion && flow.Step() > 1,
		Answers:    flow.Answers(),
	}
	if q, ok := flow.Current(); ok {
		resp.Question = &q
		resp.Selected = resp.Answers[q.ID]
	}
	return resp
}

func (s *QuizService) result(sessionID string, scores quiz.Scores) response_models.QuizResultResponse {
	key := scores.Winner()
	quizProfilesResolved.WithLabelValues(string(key)).Inc()

	res := response_models.QuizResultResponse{
		SessionID: sessionID,
		Profile:   key,
		Scores:    scores,
	}
	if p, ok := s.catalog.Profile(key); ok {
		res.Title = p.Title
		res.Description = p.Description
		res.CTAs = p.CTAs
	}
	return res
}
