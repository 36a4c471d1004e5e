// Package enhance asks a generative text model to polish listing
// descriptions and to write short study notes about a book. Every failure
// degrades to a fallback value; callers never see an error.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookswap/internal/errs"
	"bookswap/pkg/circuitbreaker"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Config bounds how the service talks to its Generator. A call, including
// its wait on the rate limiter, never takes longer than Timeout*(Retries+1).
type Config struct {
	Timeout       time.Duration // per attempt
	RatePerSecond float64
	Retries       int
}

// Service wraps a Generator with timeouts, retry, rate limiting and a circuit breaker.
type Service struct {
	gen     Generator
	cfg     Config
	limiter *rate.Limiter
	breaker circuitbreaker.Breaker
	group   singleflight.Group
	log     *zap.Logger
}

// NewService creates a Service. A nil gen disables generation and every call returns its fallback.
func NewService(gen Generator, cfg Config, log *zap.Logger) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	return &Service{
		gen:     gen,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, 1),
		breaker: circuitbreaker.New(10, 30*time.Second, 0.5, 2),
		log:     log,
	}
}

// Enabled reports whether a generator is configured.
func (s *Service) Enabled() bool {
	return s.gen != nil
}

// EnhanceDescription rewrites draft into a concise marketplace description.
// On any failure it returns draft unchanged.
func (s *Service) EnhanceDescription(ctx context.Context, title, author, draft string) string {
	prompt := fmt.Sprintf(`Enhance this book selling description for a marketplace.
Title: %s
Author: %s
Draft Description: %s

Keep it concise, professional, and highlight its value for a student. Only return the enhanced text.`,
		title, author, draft)

	text, err := s.generate(ctx, "enhance description", prompt)
	if err != nil {
		return draft
	}
	return text
}

// Insights returns a few short bullet points about the book, or "" on any failure.
// Identical concurrent requests share one upstream call.
func (s *Service) Insights(ctx context.Context, title, author string) string {
	key := title + "\x00" + author
	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		prompt := fmt.Sprintf(`Provide 3 quick interesting facts or why someone should read/study "%s" by %s. Keep it very short, bullet points.`,
			title, author)
		text, err := s.generate(ctx, "book insights", prompt)
		if err != nil {
			return "", nil
		}
		return text, nil
	})
	return v.(string)
}

func (s *Service) generate(ctx context.Context, op, prompt string) (string, error) {
	if s.gen == nil {
		return "", &errs.ExternalServiceError{Op: op, Err: errors.New("generator disabled")}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout*time.Duration(s.cfg.Retries+1))
	defer cancel()

	// A rate-limited call falls back without counting against the breaker.
	if err := s.limiter.Wait(ctx); err != nil {
		err = &errs.ExternalServiceError{Op: op, Err: fmt.Errorf("rate limited: %w", err)}
		s.log.Warn("generation skipped, using fallback", zap.String("op", op), zap.Error(err))
		return "", err
	}

	var text string
	err := s.breaker.Call(func() error {
		var callErr error
		text, callErr = s.attempt(ctx, prompt)
		return callErr
	})
	if err != nil {
		err = &errs.ExternalServiceError{Op: op, Err: err}
		s.log.Warn("generation failed, using fallback", zap.String("op", op), zap.Error(err))
		return "", err
	}
	return text, nil
}

func (s *Service) attempt(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for i := 0; i <= s.cfg.Retries; i++ {
		if i > 0 {
			if err := s.limiter.Wait(ctx); err != nil {
				break
			}
		}
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		text, err := s.gen.Generate(callCtx, prompt)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil || !retryable(err) {
			break
		}
	}
	return "", lastErr
}

func retryable(err error) bool {
	if code, ok := apiErrorCode(err); ok {
		return temporaryCode(code)
	}
	return !errors.Is(err, ErrEmptyResponse)
}
