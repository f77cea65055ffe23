package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ironlady/leadbot/internal/infra/database"
	"github.com/ironlady/leadbot/internal/infra/http/handlers"
	"github.com/ironlady/leadbot/internal/infra/http/middleware"
	"github.com/ironlady/leadbot/internal/infra/llm"
	"github.com/ironlady/leadbot/internal/infra/mail"
	"github.com/ironlady/leadbot/internal/infra/notify"
	"github.com/ironlady/leadbot/internal/infra/queue"
	"github.com/ironlady/leadbot/internal/usecase"
)

func main() {
	godotenv.Load()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOG_PRETTY") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Postgres")
	}
	defer db.Close()

	// 1. Repositories
	conversationRepo := database.NewConversationRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// 2. LLM collaborator
	groq, err := llm.NewGroqClient()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure Groq client")
	}

	// 3. Queue + notification worker. The API degrades gracefully when
	// RabbitMQ is absent: leads still persist, alerts are skipped.
	var (
		rabbitConn *amqp.Connection
		producer   usecase.LeadEventProducer
	)
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("SALES_ALERT_EMAIL"),
		)

		var whatsApp queue.LeadNotifier
		if wa := notify.NewWhatsAppClient(); wa.Configured() {
			whatsApp = wa
		}

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender, whatsApp)
		go worker.Start(queue.QueueName)
	} else {
		log.Warn().Msg("RABBITMQ_HOST not set; lead alerts disabled")
	}

	// 4. Usecases
	chatService := usecase.NewChatService(conversationRepo, groq, llm.Greeting())
	leadService := usecase.NewLeadService(leadRepo, conversationRepo, producer)

	// 5. Handlers
	chatHandler := handlers.NewChatHandler(chatService)
	leadHandler := handlers.NewLeadHandler(leadService)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL(), "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Handle)

		r.Route("/chat", func(r chi.Router) {
			r.Post("/init", chatHandler.HandleInit)
			r.Post("/message", chatHandler.HandleMessage)
			r.Get("/conversation/{sessionId}", chatHandler.HandleGetConversation)
			r.Post("/delete/{sessionId}", chatHandler.HandleDelete)
			r.Put("/profile/{sessionId}", chatHandler.HandleUpdateProfile)
			r.Get("/recommendations/{sessionId}", chatHandler.HandleRecommendations)
		})

		r.Route("/leads", func(r chi.Router) {
			r.Post("/", leadHandler.HandleCreate)
			r.Get("/", leadHandler.HandleList)
			r.Get("/stats", leadHandler.HandleStats)
			r.Get("/{id}", leadHandler.HandleGet)
			r.Put("/{id}", leadHandler.HandleUpdate)
			r.Delete("/{id}", leadHandler.HandleDelete)
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Info().Str("port", port).Msg("Iron Lady chatbot API running")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}
