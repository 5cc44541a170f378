package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"selftalk/internal/domain"
	"selftalk/internal/plandata"
)

const planFetchTimeout = 10 * time.Second

type planService struct {
	client   *resty.Client
	observer UseCaseObserver

	mu      sync.Mutex
	meta    *domain.HabitMetadata
	scripts map[string]*domain.PlanDocument
}

// NewPlanService creates a plan source that fetches habits.json and
// scripts/<id>.json from baseURL, caching each document after the
// first success. Fetch failures fall back to the bundled copies; an
// empty baseURL serves bundled data only.
func NewPlanService(baseURL string, observers ...UseCaseObserver) PlanService {
	var client *resty.Client
	if baseURL != "" {
		client = resty.New().
			SetBaseURL(baseURL).
			SetTimeout(planFetchTimeout)
	}
	return &planService{
		client:   client,
		observer: useCaseObserverOrNoop(observers),
		scripts:  make(map[string]*domain.PlanDocument),
	}
}

func (s *planService) Metadata(ctx context.Context) *domain.HabitMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.meta != nil {
		return s.meta
	}

	var meta domain.HabitMetadata
	if err := s.fetch(ctx, "habits.json", &meta); err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "plan.metadata", Err: err, StartedAt: time.Now().UTC(),
		})
		bundled, bErr := plandata.Metadata()
		if bErr != nil {
			return nil
		}
		s.meta = bundled
		return s.meta
	}
	s.meta = &meta
	return s.meta
}

func (s *planService) Script(ctx context.Context, scriptID string) *domain.PlanDocument {
	if scriptID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.scripts[scriptID]; ok {
		return doc
	}

	var doc domain.PlanDocument
	if err := s.fetch(ctx, "scripts/"+scriptID+".json", &doc); err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "plan.script", Err: err,
			Fields:    map[string]any{"script_id": scriptID},
			StartedAt: time.Now().UTC(),
		})
		// Bundled fallback, only when a copy is registered for this id.
		bundled, ok := plandata.Script(scriptID)
		if !ok {
			return nil
		}
		s.scripts[scriptID] = bundled
		return bundled
	}

	s.scripts[scriptID] = &doc
	return &doc
}

// fetch GETs a relative path and decodes the JSON body. Network
// errors, non-2xx statuses, and malformed JSON are equivalent.
func (s *planService) fetch(ctx context.Context, path string, out any) error {
	if s.client == nil {
		return fmt.Errorf("no remote data source configured")
	}
	resp, err := s.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("fetching %s: status %d", path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
