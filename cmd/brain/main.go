package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pran-droid/brain/internal/brain"
	"github.com/pran-droid/brain/internal/catalog"
	"github.com/pran-droid/brain/internal/chatfeed"
	"github.com/pran-droid/brain/internal/config"
	"github.com/pran-droid/brain/internal/notify"
	"github.com/pran-droid/brain/internal/phonemiser"
	"github.com/pran-droid/brain/internal/reaction"
	"github.com/pran-droid/brain/internal/stimulus"
	"github.com/pran-droid/brain/internal/transport"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found")
	}

	cfg := config.Load()

	definitions, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("failed to load reaction catalog: %v", err)
	}
	log.Printf("loaded %d reaction definitions", len(definitions))

	notifier := newNotifier(cfg)
	if closer, ok := notifier.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	hub := transport.NewHub()
	go hub.Run()

	b := brain.New(definitions, phonemiser.ByCharacter{}, notifier)

	stimuli := make(chan stimulus.Stimulus)
	demoSource := chatfeed.NewDemoSource(os.Stdin)
	go demoSource.Run(stimuli)

	loopCtx, cancelLoop := context.WithCancel(context.Background())
	go brain.RunLoop(loopCtx, b, stimuli, hub)

	app := fiber.New(fiber.Config{AppName: "brain"})
	app.Use("/ws", transport.UpgradeMiddleware)
	app.Get("/ws", transport.WebSocketHandler(hub))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("shutting down")
		cancelLoop()
		hub.Close()
		if err := app.Shutdown(); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadCatalog picks the Postgres-backed repository when a database DSN is
// configured, falling back to the bundled demo catalog otherwise.
func loadCatalog(cfg config.Config) ([]reaction.Definition, error) {
	if cfg.DatabaseDSN == "" {
		log.Println("no BRAIN_DATABASE_DSN configured, using demo catalog")
		definitions, err := catalog.DemoCatalog()
		if err != nil {
			return nil, err
		}
		return catalog.NewStaticDefinitionRepository(definitions).LoadCatalog(context.Background())
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	repo := catalog.NewPostgresDefinitionRepository(db)
	return repo.LoadCatalog(context.Background())
}

// newNotifier picks the Kafka-backed notifier when brokers are configured,
// falling back to a logging notifier for local/demo runs.
func newNotifier(cfg config.Config) brain.Notifier {
	if len(cfg.KafkaBrokers) == 0 {
		return notify.LoggingNotifier{}
	}
	return notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
}
