package effect

//go:generate mockgen -destination=mock/mock_service.go -package=mockeffect -source=service.go

import (
	"context"

	"github.com/mothlight/delve/internal/dice"
	"github.com/mothlight/delve/internal/effects"
	dlverr "github.com/mothlight/delve/internal/errors"
	"github.com/mothlight/delve/internal/repositories/holders"
	"github.com/mothlight/delve/internal/uuid"
)

// ApplyResult reports what became of one candidate description.
type ApplyResult struct {
	// Outcome is the constraint check. When invalid, nothing was applied
	// and Violations says why; the caller decides retry or discard.
	Outcome effects.ValidationResult

	// Applied is the materialized instance, nil when the candidate was
	// rejected or discarded (a valid outcome with a nil Applied means the
	// description had no name and was silently dropped).
	Applied *effects.Effect

	// Narrative is the stacking resolver's description of what happened.
	Narrative string
}

// Service owns per-holder active-effect collections and runs candidates
// through the validate -> materialize -> stack pipeline.
type Service interface {
	// ApplyDescription gates a candidate against its source category's
	// constraint profile and, if it passes, materializes and stacks it.
	ApplyDescription(ctx context.Context, holderID string, desc *effects.Description, source effects.SourceCategory) (*ApplyResult, error)

	// ProcessTrigger runs one game trigger over the holder's collection,
	// persists the survivors plus anything spawned, and returns the tick.
	ProcessTrigger(ctx context.Context, holderID string, trigger effects.Trigger) (*effects.TickResult, error)

	// ActiveEffects returns the holder's current collection.
	ActiveEffects(ctx context.Context, holderID string) ([]*effects.Effect, error)

	// Modifiers folds the holder's collection into a net stat record.
	Modifiers(ctx context.Context, holderID string) (*effects.NetModifiers, error)

	// Cleanse removes cleansable effects whose cleanse resistance does not
	// exceed power, returning what was removed.
	Cleanse(ctx context.Context, holderID string, power int) ([]*effects.Effect, error)

	// RemoveBySource removes everything a particular source caused and
	// reports how many instances went.
	RemoveBySource(ctx context.Context, holderID string, sourceType effects.SourceType, sourceID string) (int, error)

	// ExpireConditional removes conditional-duration effects the supplied
	// predicate marks as ended. Condition semantics live entirely with the
	// caller.
	ExpireConditional(ctx context.Context, holderID string, ended func(*effects.Effect) bool) ([]*effects.Effect, error)
}

// ServiceConfig holds the service's dependencies.
type ServiceConfig struct {
	Repository holders.Repository
	Roller     dice.Roller
	IDs        uuid.Generator
}

type service struct {
	repo      holders.Repository
	factory   *effects.Factory
	processor *effects.Processor
}

// NewService creates an effect service.
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil || cfg.Roller == nil || cfg.IDs == nil {
		panic("ServiceConfig with Repository, Roller and IDs is required")
	}

	factory := effects.NewFactory(&effects.FactoryConfig{IDs: cfg.IDs})
	return &service{
		repo:    cfg.Repository,
		factory: factory,
		processor: effects.NewProcessor(&effects.ProcessorConfig{
			Roller:  cfg.Roller,
			Factory: factory,
		}),
	}
}

func (s *service) ApplyDescription(ctx context.Context, holderID string, desc *effects.Description, source effects.SourceCategory) (*ApplyResult, error) {
	if holderID == "" {
		return nil, dlverr.InvalidArgument("holder id is required")
	}
	if desc == nil {
		return nil, dlverr.InvalidArgument("effect description is required")
	}

	outcome := effects.Validate(desc, source)
	if !outcome.Valid {
		return &ApplyResult{Outcome: outcome}, nil
	}

	applied := s.factory.CompleteFromPartial(desc, fallbackSource(source))
	if applied == nil {
		// nameless candidate: discard, never apply
		return &ApplyResult{Outcome: outcome}, nil
	}

	active, err := s.repo.Get(ctx, holderID)
	if err != nil {
		return nil, dlverr.Wrapf(err, "failed to load effects for holder %s", holderID)
	}

	updated, narrative := effects.ApplyEffect(active, applied)
	if err := s.repo.Set(ctx, holderID, updated); err != nil {
		return nil, dlverr.Wrapf(err, "failed to store effects for holder %s", holderID)
	}

	return &ApplyResult{
		Outcome:   outcome,
		Applied:   applied,
		Narrative: narrative,
	}, nil
}

func (s *service) ProcessTrigger(ctx context.Context, holderID string, trigger effects.Trigger) (*effects.TickResult, error) {
	if holderID == "" {
		return nil, dlverr.InvalidArgument("holder id is required")
	}

	active, err := s.repo.Get(ctx, holderID)
	if err != nil {
		return nil, dlverr.Wrapf(err, "failed to load effects for holder %s", holderID)
	}

	result := s.processor.Process(active, trigger)

	// Spawned effects join the live collection now and take part in the
	// next trigger pass.
	updated := result.Active
	for _, spawned := range result.Spawned {
		var narrative string
		updated, narrative = effects.ApplyEffect(updated, spawned)
		if narrative != "" {
			result.Narratives = append(result.Narratives, narrative)
		}
	}
	result.Active = updated

	if err := s.repo.Set(ctx, holderID, result.Active); err != nil {
		return nil, dlverr.Wrapf(err, "failed to store effects for holder %s", holderID)
	}
	return result, nil
}

func (s *service) ActiveEffects(ctx context.Context, holderID string) ([]*effects.Effect, error) {
	active, err := s.repo.Get(ctx, holderID)
	if err != nil {
		return nil, dlverr.Wrapf(err, "failed to load effects for holder %s", holderID)
	}
	return active, nil
}

func (s *service) Modifiers(ctx context.Context, holderID string) (*effects.NetModifiers, error) {
	active, err := s.repo.Get(ctx, holderID)
	if err != nil {
		return nil, dlverr.Wrapf(err, "failed to load effects for holder %s", holderID)
	}
	return effects.Aggregate(active), nil
}

func (s *service) Cleanse(ctx context.Context, holderID string, power int) ([]*effects.Effect, error) {
	return s.removeWhere(ctx, holderID, func(e *effects.Effect) bool {
		return e.Cleansable && e.CleanseResistance <= power
	})
}

func (s *service) RemoveBySource(ctx context.Context, holderID string, sourceType effects.SourceType, sourceID string) (int, error) {
	removed, err := s.removeWhere(ctx, holderID, func(e *effects.Effect) bool {
		return e.SourceType == sourceType && e.SourceID == sourceID
	})
	if err != nil {
		return 0, err
	}
	return len(removed), nil
}

func (s *service) ExpireConditional(ctx context.Context, holderID string, ended func(*effects.Effect) bool) ([]*effects.Effect, error) {
	if ended == nil {
		return nil, dlverr.InvalidArgument("condition predicate is required")
	}
	return s.removeWhere(ctx, holderID, func(e *effects.Effect) bool {
		return e.DurationType == effects.DurationConditional && ended(e)
	})
}

func (s *service) removeWhere(ctx context.Context, holderID string, drop func(*effects.Effect) bool) ([]*effects.Effect, error) {
	active, err := s.repo.Get(ctx, holderID)
	if err != nil {
		return nil, dlverr.Wrapf(err, "failed to load effects for holder %s", holderID)
	}

	kept := make([]*effects.Effect, 0, len(active))
	var removed []*effects.Effect
	for _, e := range active {
		if drop(e) {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}

	if len(removed) == 0 {
		return nil, nil
	}

	if err := s.repo.Set(ctx, holderID, kept); err != nil {
		return nil, dlverr.Wrapf(err, "failed to store effects for holder %s", holderID)
	}
	return removed, nil
}

// fallbackSource maps a constraint source category to the provenance recorded
// on instances whose description carries none.
func fallbackSource(source effects.SourceCategory) effects.SourceType {
	switch source {
	case effects.SourceCategoryCommon, effects.SourceCategoryUncommon,
		effects.SourceCategoryRare, effects.SourceCategoryLegendary:
		return effects.SourceItem
	case effects.SourceCategoryEnemy:
		return effects.SourceEnemy
	case effects.SourceCategoryShrine:
		return effects.SourceShrine
	case effects.SourceCategoryCurse:
		return effects.SourceCurse
	case effects.SourceCategoryEnvironmental:
		return effects.SourceEnvironment
	case effects.SourceCategoryCrafted:
		return effects.SourceCrafted
	}
	return effects.SourceItem
}
