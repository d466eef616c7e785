package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"sertifikatku_backend/internals/databases/mongodb"
	certRoute "sertifikatku_backend/internals/features/certificates/route"
	"sertifikatku_backend/internals/features/certificates/repository"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, store *mongodb.Manager) {
	startTime = time.Now()

	api := app.Group("/api")

	// ❤️ Health check: server selalu jawab walau Mongo belum konek
	api.Get("/health", func(c *fiber.Ctx) error {
		mongoStatus := "disconnected"
		if store.IsConnected() {
			mongoStatus = "connected"
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"mongo":  mongoStatus,
			"uptime": int(time.Since(startTime).Seconds()),
		})
	})

	log.Println("[INFO] Mounting Certificate routes...")
	repo := repository.NewCertificateRepository(store)
	certRoute.CertificateRoutes(api, repo)
}
