package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/verba-en/backend/internal/assistant"
	"github.com/verba-en/backend/internal/auth"
	"github.com/verba-en/backend/internal/book"
	"github.com/verba-en/backend/internal/bot"
	"github.com/verba-en/backend/internal/config"
	"github.com/verba-en/backend/internal/content"
	"github.com/verba-en/backend/internal/database"
	"github.com/verba-en/backend/internal/middleware"
	"github.com/verba-en/backend/internal/progress"
	"github.com/verba-en/backend/internal/quiz"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Book reader content
	bookService := book.NewService()
	if err := bookService.LoadFromDir(cfg.BooksDir); err != nil {
		log.Printf("Failed to load book: %v", err)
	}

	// Quiz core
	progressService := progress.NewService(progress.NewStore(db))
	catalog := content.Catalog()
	quizService := quiz.NewService(content.NewSource(cfg.ContentDir), progressService)

	// AI assistant proxy
	llm, model := assistant.NewClient(cfg.MockAssistant, cfg.AnthropicModel)
	assistantService := assistant.NewService(llm, model)

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	bookHandler := book.NewHandler(bookService)
	progressHandler := progress.NewHandler(progressService, catalog)
	quizHandler := quiz.NewHandler(quizService)
	assistantHandler := assistant.NewHandler(assistantService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/assistant", assistantHandler.Assist).Methods("POST")

	// Book endpoints keep the paths the Mini App front-end already calls
	r.HandleFunc("/api/book-info", bookHandler.GetInfo).Methods("GET")
	r.HandleFunc("/api/book-content", bookHandler.GetContent).Methods("GET")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentLearner).Methods("GET")
	protected.HandleFunc("/progress", progressHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/progress/levels", progressHandler.ListLevels).Methods("GET")
	protected.HandleFunc("/progress/reset", progressHandler.Reset).Methods("POST")
	protected.HandleFunc("/levels/{id}/session", quizHandler.StartSession).Methods("POST")
	protected.HandleFunc("/sessions/{id}", quizHandler.GetSession).Methods("GET")
	protected.HandleFunc("/sessions/{id}/answer", quizHandler.Answer).Methods("POST")
	protected.HandleFunc("/sessions/{id}/advance", quizHandler.Advance).Methods("POST")
	protected.HandleFunc("/sessions/{id}/retreat", quizHandler.Retreat).Methods("POST")
	protected.HandleFunc("/sessions/{id}/submit", quizHandler.Submit).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Static Mini App assets
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir)))

	// Telegram bot
	if cfg.BotToken != "" {
		tgBot, err := bot.New(cfg.BotToken, cfg.WebAppURL, bookService)
		if err != nil {
			log.Printf("Bot initialization skipped: %v", err)
		} else {
			go tgBot.Run()
		}
	} else {
		log.Println("Bot initialization skipped (token not configured)")
	}

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
