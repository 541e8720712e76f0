package api

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/projetprice/formation-svc/config"
	"github.com/projetprice/formation-svc/infra/queue"
	"github.com/projetprice/formation-svc/internal/api/rest/handlers"
	"github.com/projetprice/formation-svc/internal/helper"
	"github.com/projetprice/formation-svc/internal/repository"
	"github.com/projetprice/formation-svc/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func StartServer(cfg config.Config) {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("database ping error: %v", err)
	}
	log.Println("database connected")

	db := client.Database(cfg.MongoDB)
	ensureIndexes(ctx, db)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	authHelper := helper.SetupAuth(cfg.JwtSecret, cfg.JwtValidFor)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	formationRepo := repository.NewFormationRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, authHelper, kafkaProducer, cfg.BaseURL)
	userSvc := services.NewUserService(userRepo, kafkaProducer)
	formationSvc := services.NewFormationService(formationRepo)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(authSvc).SetupRoutes(app)
	handlers.NewUserHandler(userSvc, authHelper, userRepo).SetupRoutes(app)
	handlers.NewFormationHandler(formationSvc).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

func ensureIndexes(ctx context.Context, db *mongo.Database) {
	// email is the login key
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("index creation error: %v", err)
	}
	log.Println("indexes ensured")
}
