package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/xaca/triviaboard-go/internal/dependencies/clock"
	"github.com/xaca/triviaboard-go/internal/dependencies/random"
	"github.com/xaca/triviaboard-go/internal/services/board"
	"github.com/xaca/triviaboard-go/internal/services/question"
	"github.com/xaca/triviaboard-go/internal/services/session"
	"github.com/xaca/triviaboard-go/internal/services/team"
	"github.com/xaca/triviaboard-go/internal/storage"
	"github.com/xaca/triviaboard-go/internal/storage/memory"
	redisstorage "github.com/xaca/triviaboard-go/internal/storage/redis"
	"github.com/xaca/triviaboard-go/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SessionService  *session.Service
	TeamService     *team.Service
	BoardService    *board.Service
	QuestionService *question.Service

	// Mapper translates between question identity and board coordinates
	Mapper *board.Mapper

	// Event fan-out
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
	Relay       *sse.Relay
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	// Create services
	questionService, err := question.New(logger)
	if err != nil {
		return nil, fmt.Errorf("loading question catalog: %w", err)
	}
	mapper, err := board.NewMapper(questionService.Categories(), questionService.PointValues())
	if err != nil {
		return nil, fmt.Errorf("building board mapper: %w", err)
	}
	sessionService := session.New(store, clk, logger)
	teamService := team.New(store, rnd, logger)
	boardService := board.New(store, logger)

	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	relay := sse.NewRelay(teamService, broadcaster, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		SessionService:  sessionService,
		TeamService:     teamService,
		BoardService:    boardService,
		QuestionService: questionService,
		Mapper:          mapper,
		HubManager:      hubManager,
		Broadcaster:     broadcaster,
		Relay:           relay,
	}, nil
}
