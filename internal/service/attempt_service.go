package service

import (
	"animalquiz/internal/cache"
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidOption is returned when an answer names no displayed option
var ErrInvalidOption = errors.New("no such option on the current question")

// MsgState is the broadcast type carrying an updated AttemptView
const MsgState = "state"

const (
	lockStripes = 64
	idAttempts  = 10
)

// AttemptService runs quiz attempts whose state lives in an AttemptCache
type AttemptService struct {
	bank        *model.Bank
	attempts    cache.AttemptCache
	authSvc     *AuthService
	siteURL     string
	logger      *zap.Logger
	broadcaster Broadcaster
	newRand     func() *rand.Rand
	newID       func() string

	// load-modify-save of one attempt runs under its stripe
	locks [lockStripes]sync.Mutex
}

// NewAttemptService creates an attempt service over bank
func NewAttemptService(
	bank *model.Bank,
	attempts cache.AttemptCache,
	authSvc *AuthService,
	siteURL string,
	logger *zap.Logger,
) *AttemptService {
	return &AttemptService{
		bank:     bank,
		attempts: attempts,
		authSvc:  authSvc,
		siteURL:  siteURL,
		logger:   logger,
		newID:    newAttemptID,
	}
}

func newAttemptID() string {
	return "a_" + uuid.NewString()
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AttemptService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetRandSource makes shuffles reproducible
func (s *AttemptService) SetRandSource(newRand func() *rand.Rand) {
	s.newRand = newRand
}

// Info describes the loaded bank
func (s *AttemptService) Info() *model.QuizInfo {
	info := &model.QuizInfo{
		Title:     s.bank.Title,
		Questions: len(s.bank.Questions),
	}
	for _, c := range s.bank.Categories {
		info.Categories = append(info.Categories, model.CategoryInfo{
			Category: c,
			Image:    quiz.ImagePath(c),
		})
	}
	return info
}

// Start creates an attempt at question 1 and a token for it
func (s *AttemptService) Start(ctx context.Context) (*model.StartAttemptResponse, error) {
	engine := quiz.New(s.bank, s.rng())
	attemptID, err := s.create(ctx, engine.Snapshot())
	if err != nil {
		return nil, err
	}

	token, err := s.authSvc.IssueAttemptToken(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("attempt started", zap.String("attempt", attemptID), zap.String("bank", s.bank.Name))

	return &model.StartAttemptResponse{
		AttemptID: attemptID,
		Token:     token,
		View:      s.view(attemptID, engine),
	}, nil
}

// create stores snapshot under a fresh id, never over an existing attempt
func (s *AttemptService) create(ctx context.Context, snapshot *quiz.Snapshot) (string, error) {
	for i := 0; i < idAttempts; i++ {
		attemptID := s.newID()
		created, err := s.attempts.Create(ctx, attemptID, snapshot)
		if err != nil {
			return "", fmt.Errorf("failed to save attempt: %w", err)
		}
		if created {
			return attemptID, nil
		}
		s.logger.Warn("attempt id taken", zap.String("attempt", attemptID))
	}
	return "", fmt.Errorf("failed to generate unique attempt id")
}

// Current returns the attempt as it should be displayed
func (s *AttemptService) Current(ctx context.Context, attemptID string) (*model.AttemptView, error) {
	engine, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return s.view(attemptID, engine), nil
}

// Watch hands the current view to fn while no update of the attempt can
// run, so fn can queue it ahead of any later broadcast.
func (s *AttemptService) Watch(ctx context.Context, attemptID string, fn func(*model.AttemptView)) error {
	lock := s.lockFor(attemptID)
	lock.Lock()
	defer lock.Unlock()

	engine, err := s.load(ctx, attemptID)
	if err != nil {
		return err
	}
	fn(s.view(attemptID, engine))
	return nil
}

// Answer selects the option at optionIndex in the displayed order of the
// current question.
func (s *AttemptService) Answer(ctx context.Context, attemptID string, optionIndex int) (*model.AttemptView, error) {
	return s.mutate(ctx, attemptID, func(engine *quiz.Engine) error {
		q, ok := engine.CurrentQuestion()
		if !ok {
			return quiz.ErrFinished
		}
		if optionIndex < 0 || optionIndex >= len(q.Options) {
			return fmt.Errorf("%w: %d", ErrInvalidOption, optionIndex)
		}
		return engine.Answer(q.Options[optionIndex].Category)
	})
}

// Reset restarts the attempt with fresh shuffles
func (s *AttemptService) Reset(ctx context.Context, attemptID string) (*model.AttemptView, error) {
	return s.mutate(ctx, attemptID, func(engine *quiz.Engine) error {
		engine.Reset()
		return nil
	})
}

func (s *AttemptService) mutate(ctx context.Context, attemptID string, fn func(*quiz.Engine) error) (*model.AttemptView, error) {
	lock := s.lockFor(attemptID)
	lock.Lock()
	defer lock.Unlock()

	engine, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if err := fn(engine); err != nil {
		return nil, err
	}
	if err := s.attempts.Set(ctx, attemptID, engine.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	view := s.view(attemptID, engine)
	if view.Result != nil {
		s.logger.Info("attempt finished", zap.String("attempt", attemptID), zap.String("result", string(view.Result.Category)))
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAttempt(attemptID, MsgState, view)
	}
	return view, nil
}

func (s *AttemptService) load(ctx context.Context, attemptID string) (*quiz.Engine, error) {
	snapshot, err := s.attempts.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	engine, err := quiz.Restore(s.bank, snapshot, s.rng())
	if err != nil {
		s.logger.Warn("discarding stale attempt", zap.String("attempt", attemptID), zap.Error(err))
		return nil, err
	}
	return engine, nil
}

func (s *AttemptService) rng() *rand.Rand {
	if s.newRand == nil {
		return nil
	}
	return s.newRand()
}

func (s *AttemptService) lockFor(attemptID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(attemptID))
	return &s.locks[h.Sum32()%lockStripes]
}

func (s *AttemptService) view(attemptID string, engine *quiz.Engine) *model.AttemptView {
	view := &model.AttemptView{
		AttemptID: attemptID,
		Status:    model.AttemptAnswering,
	}

	if result, ok := engine.Result(); ok {
		share := quiz.NewShare(result, s.siteURL)
		view.Status = model.AttemptFinished
		view.Result = &model.ResultView{
			Category: result,
			Heading:  share.Heading,
			Image:    share.Image,
			Tally:    engine.Tally(),
			Share:    model.ShareView{Text: share.Message, URL: share.URL},
		}
		return view
	}

	q, _ := engine.CurrentQuestion()
	options := make([]model.OptionView, len(q.Options))
	for i, opt := range q.Options {
		options[i] = model.OptionView{Index: i, Text: opt.Text}
	}
	view.Question = &model.QuestionView{
		Number:  engine.Index() + 1,
		Total:   engine.Total(),
		Prompt:  q.Prompt,
		Options: options,
	}
	return view
}
