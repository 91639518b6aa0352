package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/llm"
)

var ErrQuizNotFound = errors.New("quiz not found")

type GenerateRequest struct {
	Topic        string     `json:"topic"`
	Difficulty   Difficulty `json:"difficulty"`
	NumQuestions int        `json:"num_questions"`
	SessionID    string     `json:"session_id"`
}

type SubmitRequest struct {
	QuizID    string            `json:"quiz_id"`
	Answers   map[string]string `json:"answers"`
	SessionID string            `json:"session_id"`
}

type QuizService interface {
	Generate(ctx context.Context, req GenerateRequest) (*Quiz, error)
	Submit(ctx context.Context, req SubmitRequest) (*ScoreResult, error)
	Get(ctx context.Context, quizID string) (*Quiz, error)
}

type quizService struct {
	repo     QuizRepository
	provider llm.Provider
}

func NewService(repo QuizRepository, provider llm.Provider) QuizService {
	return &quizService{repo: repo, provider: provider}
}

// Generate always succeeds from the caller's point of view unless the
// store rejects the write: any collaborator or parse failure is masked
// with a deterministic placeholder quiz.
func (s *quizService) Generate(ctx context.Context, req GenerateRequest) (*Quiz, error) {
	log := config.WithContext(ctx)

	title, questions := s.generateQuestions(ctx, req)

	q := &Quiz{
		ID:         fmt.Sprintf("quiz-%s", strings.ReplaceAll(uuid.NewString(), "-", "")),
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Title:      title,
		SessionID:  req.SessionID,
	}
	if err := q.SetQuestions(questions); err != nil {
		return nil, fmt.Errorf("failed to encode questions: %w", err)
	}

	if err := s.repo.CreateWithTopic(q); err != nil {
		log.WithError(err).Error("failed to persist quiz")
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	log.WithField("quiz_id", q.ID).Infof("generated quiz with %d questions", len(questions))
	return q, nil
}

func (s *quizService) generateQuestions(ctx context.Context, req GenerateRequest) (string, []Question) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		log.Warn("llm provider unavailable, using fallback quiz")
		return fallbackQuiz(req.Topic)
	}

	raw, err := s.provider.Invoke(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: generationSystemPrompt},
		{Role: llm.RoleUser, Content: buildGenerationPrompt(req.Topic, req.Difficulty, req.NumQuestions)},
	})
	if err != nil {
		log.WithError(err).Warn("quiz generation call failed, using fallback quiz")
		return fallbackQuiz(req.Topic)
	}

	title, questions, err := parseGeneration(raw)
	if err != nil {
		log.WithError(err).Warn("quiz generation response unusable, using fallback quiz")
		return fallbackQuiz(req.Topic)
	}
	return title, questions
}

func (s *quizService) Submit(ctx context.Context, req SubmitRequest) (*ScoreResult, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.GetByID(req.QuizID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	questions, err := q.DecodeQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored questions: %w", err)
	}

	result := scoreSubmission(questions, req.Answers)

	score := &QuizScore{
		QuizID:         q.ID,
		SessionID:      req.SessionID,
		Score:          result.Score,
		CorrectCount:   result.Correct,
		TotalQuestions: result.Total,
	}
	if err := score.SetDetails(result.Results); err != nil {
		return nil, fmt.Errorf("failed to encode score details: %w", err)
	}

	if err := s.repo.SaveScoreWithTopic(score, q.Topic); err != nil {
		log.WithError(err).Error("failed to persist quiz score")
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	log.WithField("quiz_id", q.ID).Infof("scored submission: %.1f (%d/%d)",
		result.Score, result.Correct, result.Total)
	return &result, nil
}

func (s *quizService) Get(ctx context.Context, quizID string) (*Quiz, error) {
	q, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	return q, nil
}
