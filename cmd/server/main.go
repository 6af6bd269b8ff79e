package main

import (
	"context"
	"log"
	"os"

	"facevoice-api/config"
	"facevoice-api/internal/auth"
	"facevoice-api/internal/contact"
	"facevoice-api/internal/face"
	"facevoice-api/internal/health"
	"facevoice-api/internal/history"
	"facevoice-api/internal/models"
	"facevoice-api/internal/speech"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&auth.Auth{}, &history.ServiceRequest{}, &contact.ContactMessage{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Each model loads independently. A failed load degrades the matching
	// endpoints instead of killing the server.
	faceService, synth, availability := loadModels(&cfg)

	log.Printf("Model availability: face_detector=%s face_recognizer=%s tts=%s",
		availability.FaceDetector, availability.FaceRecognizer, availability.TTS)

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService)

	historyService := &history.HistoryService{DB: db}
	history.RegisterRoutes(r, historyService)

	face.RegisterRoutes(r, faceService, historyService)
	speech.RegisterRoutes(r, synth, historyService)

	contactService := &contact.ContactService{DB: db, CFG: &cfg}
	contact.RegisterRoutes(r, contactService)

	health.RegisterRoutes(r, availability)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	err = r.Run("0.0.0.0:" + port)
	faceService.Close()
	log.Fatal(err)
}

// loadModels constructs the face and speech stacks and records per-model
// availability for /api/health. Failures are logged, never fatal.
func loadModels(cfg *config.Config) (*face.FaceService, *speech.Synthesizer, *models.Availability) {
	ctx := context.Background()
	availability := &models.Availability{
		FaceDetector:   models.FailedToLoad,
		FaceRecognizer: models.FailedToLoad,
		TTS:            models.FailedToLoad,
	}

	faceService := &face.FaceService{}

	if asset, ok := models.Lookup("yunet"); ok {
		if _, err := models.EnsureAsset(ctx, cfg.ModelDir, asset); err != nil {
			log.Printf("Failed to fetch face detection model: %v", err)
		}
	}
	if detector, err := face.NewDetector(cfg.FaceDetectionModel); err != nil {
		log.Printf("Failed to load face detection model: %v", err)
	} else {
		faceService.Detector = detector
		availability.FaceDetector = models.Loaded
	}

	if asset, ok := models.Lookup("sface"); ok {
		if _, err := models.EnsureAsset(ctx, cfg.ModelDir, asset); err != nil {
			log.Printf("Failed to fetch face recognition model: %v", err)
		}
	}
	if recognizer, err := face.NewRecognizer(cfg.FaceRecognitionModel); err != nil {
		log.Printf("Failed to load face recognition model: %v", err)
	} else {
		faceService.Recognizer = recognizer
		availability.FaceRecognizer = models.Loaded
	}

	synth := loadTTS(ctx, cfg)
	if synth.Available() {
		availability.TTS = models.Loaded
	}

	return faceService, synth, availability
}

func loadTTS(ctx context.Context, cfg *config.Config) *speech.Synthesizer {
	paths, err := models.EnsureKokoro(ctx, cfg.ModelDir)
	if err != nil {
		log.Printf("Failed to fetch TTS model package: %v", err)
		return speech.NewSynthesizer(nil)
	}

	pipeline, err := speech.NewKokoroPipeline(speech.KokoroConfig{
		ModelPath:  paths.Model,
		VoicesPath: paths.Voices,
		TokensPath: paths.Tokens,
		DataDir:    paths.DataDir,
	})
	if err != nil {
		log.Printf("Failed to load TTS model: %v", err)
		return speech.NewSynthesizer(nil)
	}

	synth := speech.NewSynthesizer(pipeline)
	// Run a full synthesis once so a model that loads but cannot
	// generate is reported as unavailable from the start.
	synth.Verify()
	return synth
}
