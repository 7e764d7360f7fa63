package main

import (
	"log"
	"os"
	"strconv"
	"time"

	assistantHandler "second-brain-api/internal/apps/assistant/handler"
	assistantRepository "second-brain-api/internal/apps/assistant/repository"
	assistantService "second-brain-api/internal/apps/assistant/service"
	authHandler "second-brain-api/internal/apps/auth/handler"
	authRepository "second-brain-api/internal/apps/auth/repository"
	authService "second-brain-api/internal/apps/auth/service"
	callHandler "second-brain-api/internal/apps/call/handler"
	callRepository "second-brain-api/internal/apps/call/repository"
	callService "second-brain-api/internal/apps/call/service"
	reminderHandler "second-brain-api/internal/apps/reminder/handler"
	reminderRepository "second-brain-api/internal/apps/reminder/repository"
	reminderService "second-brain-api/internal/apps/reminder/service"
	userRepository "second-brain-api/internal/apps/user/repository"
	userService "second-brain-api/internal/apps/user/service"
	"second-brain-api/internal/common/database"
	"second-brain-api/internal/common/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := getEnv("GO_ENV", "local")

	// Database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "secondbrain"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Connect to database and create schema
	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// JWT configuration
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not configured")
	}
	accessTTL := time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour

	appURL := getEnv("APP_URL", "http://localhost:"+getEnv("PORT", "8080"))

	// Providers
	verifyProvider := newVerifyProvider(env)
	voiceProvider := newVoiceProvider(env)
	llmProvider := newLLMProvider(env)

	// Repositories
	userRepo := userRepository.NewUserRepository(db)
	authRepo := authRepository.NewAuthRepository(db)
	callRepo := callRepository.NewCallRepository(db)
	messageRepo := assistantRepository.NewMessageRepository(db)
	reminderRepo := reminderRepository.NewReminderRepository(db)

	// Services
	tokens := authService.NewTokenService(jwtSecret, accessTTL)
	authSvc := authService.NewAuthService(userRepo, authRepo, tokens, verifyProvider)
	userSvc := userService.NewUserService(userRepo)
	callSvc := callService.NewCallService(callRepo, userRepo, voiceProvider, appURL)
	reminderSvc := reminderService.NewReminderService(reminderRepo)
	assistantSvc := assistantService.NewAssistantService(messageRepo, reminderRepo, llmProvider)

	// Handlers
	authHdl := authHandler.NewAuthHandler(authSvc, userSvc)
	callHdl := callHandler.NewCallHandler(callSvc)
	reminderHdl := reminderHandler.NewReminderHandler(reminderSvc)
	assistantHdl := assistantHandler.NewAssistantHandler(assistantSvc)

	// Setup Gin router
	gin.SetMode(getEnv("GIN_MODE", "release"))

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.SetupCORS(env))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Server is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokens)

	// API routes
	api := router.Group("/api")
	{
		authHandler.RegisterAuthRoutes(api, authHdl, requireAuth)
		callHandler.RegisterCallRoutes(api, callHdl, requireAuth)
		reminderHandler.RegisterReminderRoutes(api, reminderHdl, requireAuth)
		assistantHandler.RegisterAssistantRoutes(api, assistantHdl, requireAuth)
	}

	// Start server
	port := getEnv("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newVerifyProvider wires Twilio Verify, falling back to the no-op provider
// outside production when credentials are absent
func newVerifyProvider(env string) authService.VerifyProvider {
	accountSID := getEnv("TWILIO_ACCOUNT_SID", "")
	authToken := getEnv("TWILIO_AUTH_TOKEN", "")
	verifySID := getEnv("TWILIO_VERIFY_SERVICE_SID", "")

	if accountSID == "" || authToken == "" || verifySID == "" {
		if env == "prod" {
			log.Fatal("Twilio Verify credentials not configured")
		}
		log.Println("Twilio Verify credentials not configured, using no-op provider")
		return authService.NewNoOpVerifyProvider()
	}
	return authService.NewTwilioVerifyProvider(accountSID, authToken, verifySID)
}

func newVoiceProvider(env string) callService.VoiceProvider {
	config := callService.TwilioVoiceConfig{
		AccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		AuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		PhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		APIKey:      getEnv("TWILIO_API_KEY", ""),
		APISecret:   getEnv("TWILIO_API_SECRET", ""),
		TTSVoice:    getEnv("TWILIO_TTS_VOICE", "Polly.Joanna-Neural"),
	}

	if config.AccountSID == "" || config.AuthToken == "" || config.PhoneNumber == "" {
		if env == "prod" {
			log.Fatal("Twilio Voice credentials not configured")
		}
		log.Println("Twilio Voice credentials not configured, using no-op provider")
		return callService.NewNoOpVoiceProvider()
	}
	return callService.NewTwilioVoiceProvider(config)
}

func newLLMProvider(env string) assistantService.LLMProvider {
	apiKey := getEnv("OPENAI_API_KEY", "")
	if apiKey == "" {
		if env == "prod" {
			log.Fatal("OpenAI API key not configured")
		}
		log.Println("OpenAI API key not configured, using no-op provider")
		return assistantService.NewNoOpLLMProvider()
	}
	return assistantService.NewOpenAIProvider(apiKey, getEnv("OPENAI_MODEL", "gpt-4"))
}

// getEnv retrieves environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
