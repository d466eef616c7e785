package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"sertifikatku_backend/internals/configs"
	"sertifikatku_backend/internals/databases/mongodb"
	middlewares "sertifikatku_backend/internals/middlewares"
	routes "sertifikatku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		// Body sertifikat bisa bawa gambar base64 besar
		BodyLimit:             50 * 1024 * 1024,
		DisableStartupMessage: true,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// 🔌 Mongo connect di background; HTTP tetap jalan walau DB belum siap
	store := mongodb.NewManager(configs.MongoURI, configs.MongoDBName)
	store.Start()

	// ✅ Routes
	routes.SetupRoutes(app, store)

	// 📁 Static fallback untuk path non-API
	app.Static("/", configs.StaticDir)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup koneksi Mongo
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	_ = store.Shutdown(ctx)
}
