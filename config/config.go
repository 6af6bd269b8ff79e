package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	GmailUser  string
	GmailPass  string

	// Model assets. The two face models live at fixed relative paths; the
	// TTS package is fetched into ModelDir on first use.
	ModelDir             string
	FaceDetectionModel   string
	FaceRecognitionModel string
}

func LoadConfig() Config {
	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		GmailUser:  os.Getenv("GMAIL_USER"),
		GmailPass:  os.Getenv("GMAIL_APP_PASSWORD"),

		ModelDir:             getenvDefault("MODEL_DIR", "models"),
		FaceDetectionModel:   getenvDefault("FACE_DETECTION_MODEL", "models/face_detection_yunet_2023mar.onnx"),
		FaceRecognitionModel: getenvDefault("FACE_RECOGNITION_MODEL", "models/face_recognition_sface_2021dec.onnx"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
