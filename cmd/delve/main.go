package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mothlight/delve/internal/config"
	"github.com/mothlight/delve/internal/content"
	"github.com/mothlight/delve/internal/dice"
	"github.com/mothlight/delve/internal/effects"
	"github.com/mothlight/delve/internal/repositories/holders"
	"github.com/mothlight/delve/internal/services/effect"
	"github.com/mothlight/delve/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	var repo holders.Repository
	if cfg.Redis.Addr != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			log.Printf("Failed to connect to Redis: %v", pingErr)
			log.Println("Falling back to in-memory repository")
			redisClient = nil
		} else {
			log.Println("Connected to Redis")
			repo = holders.NewRedisRepository(&holders.RedisRepoConfig{Client: redisClient})
		}
		cancel()
	}
	if repo == nil {
		log.Println("Using in-memory repository")
		repo = holders.NewInMemoryRepository()
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Failed to close Redis client: %v", closeErr)
			}
		}()
	}

	var roller dice.Roller
	if cfg.Game.Seed != 0 {
		log.Printf("Using fixed seed %d", cfg.Game.Seed)
		roller = dice.NewSeededRoller(cfg.Game.Seed)
	} else {
		roller = dice.NewRandomRoller()
	}

	svc := effect.NewService(&effect.ServiceConfig{
		Repository: repo,
		Roller:     roller,
		IDs:        uuid.NewGoogleUUIDGenerator(),
	})

	templates := effects.Templates()
	if cfg.Game.TemplatePath != "" {
		file, loadErr := content.LoadFile(cfg.Game.TemplatePath)
		if loadErr != nil {
			log.Fatalf("Failed to load templates: %v", loadErr)
		}
		accepted, rejections := file.Validated()
		for _, line := range rejections {
			log.Printf("Rejected template: %s", line)
		}
		for _, desc := range accepted {
			templates[desc.Name] = desc
		}
		log.Printf("Loaded template set %q (%d accepted)", file.Set, len(accepted))
	}

	if err := runDemo(context.Background(), svc, roller, templates); err != nil {
		log.Fatalf("Demo run failed: %v", err)
	}
}

// runDemo walks one holder through a short scripted crawl so the whole
// pipeline can be watched end to end.
func runDemo(ctx context.Context, svc effect.Service, roller dice.Roller, templates map[string]*effects.Description) error {
	const holderID = "demo-hero"

	script := []struct {
		template string
		source   effects.SourceCategory
	}{
		{"Lucky Charm", effects.SourceCategoryRare},
		{"Burning", effects.SourceCategoryEnemy},
		{"Burning", effects.SourceCategoryEnemy},
		{"Burning", effects.SourceCategoryEnemy},
		{"Regeneration", effects.SourceCategoryShrine},
	}

	for _, step := range script {
		desc, ok := templates[step.template]
		if !ok {
			log.Printf("No template named %q", step.template)
			continue
		}
		result, err := svc.ApplyDescription(ctx, holderID, desc, step.source)
		if err != nil {
			return err
		}
		if !result.Outcome.Valid {
			log.Printf("Rejected %q: %v", step.template, result.Outcome.Violations)
			continue
		}
		log.Printf("> %s", result.Narrative)
	}

	for turn := 1; turn <= 4; turn++ {
		log.Printf("--- turn %d ---", turn)
		if err := processTrigger(ctx, svc, holderID, effects.TriggerTurnStart); err != nil {
			return err
		}

		// the hero swings once per turn: 1d8+2, scaled by active modifiers
		attack, err := roller.Roll(1, 8, 2)
		if err != nil {
			return err
		}
		net, err := svc.Modifiers(ctx, holderID)
		if err != nil {
			return err
		}
		dealt := int(float64(attack.Total) * net.DamageMultiplier)
		log.Printf("You strike for %d (rolled %v +%d)", dealt, attack.Rolls, attack.Bonus)
		for _, trigger := range []effects.Trigger{effects.TriggerOnAttack, effects.TriggerOnDamageDealt} {
			if err := processTrigger(ctx, svc, holderID, trigger); err != nil {
				return err
			}
		}

		if err := processTrigger(ctx, svc, holderID, effects.TriggerTurnEnd); err != nil {
			return err
		}
	}

	final, err := svc.Modifiers(ctx, holderID)
	if err != nil {
		return err
	}
	log.Printf("Net modifiers: attack %+.0f, defense %+.0f, gold x%.2f, damage taken x%.2f",
		final.Attack, final.Defense, final.GoldMultiplier, final.DamageTakenMultiplier)

	active, err := svc.ActiveEffects(ctx, holderID)
	if err != nil {
		return err
	}
	log.Printf("%d effects still active", len(active))
	return nil
}

func processTrigger(ctx context.Context, svc effect.Service, holderID string, trigger effects.Trigger) error {
	tick, err := svc.ProcessTrigger(ctx, holderID, trigger)
	if err != nil {
		return err
	}
	for _, line := range tick.Narratives {
		log.Printf("> %s", line)
	}
	if tick.Damage > 0 || tick.Healing > 0 {
		log.Printf("  %d damage, %d healing", tick.Damage, tick.Healing)
	}
	return nil
}
