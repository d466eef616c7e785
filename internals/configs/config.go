package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI    string
	MongoDBName string
	Port        string
	StaticDir   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file tidak ditemukan, pakai ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	MongoURI = GetEnv("MONGO_URI", "mongodb://localhost:27017")
	MongoDBName = GetEnv("MONGO_DB", "sertifikatku")
	Port = GetEnv("PORT", "3000")
	StaticDir = GetEnv("STATIC_DIR", "./public")

	log.Printf("✅ Config loaded (db=%s port=%s)", MongoDBName, Port)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
