package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quixie-quiz-service/internal/analysis"
	"quixie-quiz-service/internal/app"
	"quixie-quiz-service/internal/config"
	"quixie-quiz-service/internal/domain"
	"quixie-quiz-service/internal/infra/memory"
	pgstore "quixie-quiz-service/internal/infra/postgres"
	redisstore "quixie-quiz-service/internal/infra/redis"
	transport "quixie-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.QuizLoader = memory.NewStaticQuizLoader(sampleQuizzes())
	if pool != nil {
		loader = pgstore.NewQuizLoader(pool)
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var quizRepo app.QuizRepository
	if redisClient != nil {
		quizRepo = redisstore.NewQuizRepository(redisClient, loader, quizTTL)
	} else {
		quizRepo = memory.NewQuizRepository(loader, quizTTL)
	}

	var resultRepo app.ResultRepository
	switch {
	case pool != nil:
		resultRepo = pgstore.NewResultRepository(pool)
	case redisClient != nil:
		resultRepo = redisstore.NewResultRepository(redisClient)
	default:
		resultRepo = memory.NewResultRepository()
	}

	var sessions app.SessionStore
	if redisClient != nil {
		sessions = redisstore.NewSessionStore(redisClient, redisTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	service := app.NewSessionService(quizRepo, resultRepo, memory.NewCommentRepository(), sessions, analysis.NewRandomComposer())
	if cfg.Session.QuestionSeconds > 0 {
		service.WithTiming(cfg.Session.QuestionSeconds, time.Second)
	}

	wsHandler := transport.NewWSHandler(service)
	apiHandler := transport.NewAPIHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	apiHandler.Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleQuizzes provides demo quiz data for running without Postgres.
func sampleQuizzes() map[string]domain.Quiz {
	return map[string]domain.Quiz{
		"quiz-1": {
			ID:          "quiz-1",
			Title:       "Which Dragon Rider Are You",
			Description: "Find out which dragon rider matches your warrior spirit.",
			Category:    domain.CategoryPersonality,
			Questions: []domain.Question{
				{
					ID:   "q1",
					Text: "A rival rider challenges you before the trials. What do you do?",
					Options: []domain.Option{
						{Text: "Face them head-on"},
						{Text: "Study their weaknesses first"},
						{Text: "Rally your friends"},
					},
					CorrectAnswer: "Face them head-on",
				},
				{
					ID:   "q2",
					Text: "Your dragon refuses a command mid-flight. How do you react?",
					Options: []domain.Option{
						{Text: "Trust its instincts"},
						{Text: "Repeat the command firmly"},
					},
					CorrectAnswer: "Trust its instincts",
					Explanation:   "A bonded rider listens before commanding.",
				},
			},
		},
		"quiz-2": {
			ID:          "quiz-2",
			Title:       "World Capitals Challenge",
			Description: "How well do you know the world's capitals?",
			Category:    domain.CategoryGeneralKnowledge,
			Questions: []domain.Question{
				{
					ID:   "q1",
					Text: "What is the capital of Australia?",
					Options: []domain.Option{
						{Text: "Sydney"},
						{Text: "Canberra"},
						{Text: "Melbourne"},
					},
					CorrectAnswer: "Canberra",
					Explanation:   "Canberra was purpose-built as the capital in 1913.",
				},
			},
		},
	}
}
