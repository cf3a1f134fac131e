package main

import (
	bloodhandler "swasthya/internal/blood/handler"
	bloodservice "swasthya/internal/blood/service"
	bookinghandler "swasthya/internal/bookings/handler"
	bookingservice "swasthya/internal/bookings/service"
	"swasthya/internal/bookings/validator"
	directoryhandler "swasthya/internal/directory/handler"
	directoryservice "swasthya/internal/directory/service"
	familyhandler "swasthya/internal/family/handler"
	familyservice "swasthya/internal/family/service"
	noticehandler "swasthya/internal/notices/handler"
	noticeservice "swasthya/internal/notices/service"
	orderhandler "swasthya/internal/orders/handler"
	orderservice "swasthya/internal/orders/service"
	"swasthya/internal/schema"
	soshandler "swasthya/internal/sos/handler"
	sosservice "swasthya/internal/sos/service"
	"swasthya/internal/store"
	tokenhandler "swasthya/internal/tokens/handler"
	tokenrepository "swasthya/internal/tokens/repository"
	tokenservice "swasthya/internal/tokens/service"
	userhandler "swasthya/internal/users/handler"
	userservice "swasthya/internal/users/service"
	"swasthya/pkg/app"
	"swasthya/pkg/config"
	"swasthya/pkg/contracts"
	"swasthya/pkg/kafka"
)

const ServiceName = "api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher := initPublisher(cfg)
	handlers := initHandlers(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handlers...)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}

func initPublisher(cfg *config.Config) kafka.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, events disabled")
		return kafka.NopPublisher{}
	}
	cfg.Log.Info("Event producer initialized", "topic", cfg.KafkaEventTopic)
	return kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaEventTopic)
}

func initHandlers(cfg *config.Config, publisher kafka.Publisher) []contracts.Handler {
	gateway := store.NewMongoGateway(cfg)

	feedRepo := tokenrepository.NewMongoFeedRepository(cfg)
	tokens := tokenservice.NewTokenService(feedRepo, cfg)

	bookings := bookingservice.NewBookingService(
		gateway,
		tokens,
		validator.NewBookingValidator(),
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		userhandler.NewUserHandler(userservice.NewUserService(gateway, cfg), cfg.Log),
		soshandler.NewSOSHandler(sosservice.NewSOSService(gateway, publisher, cfg), cfg.Log),
		familyhandler.NewFamilyHandler(familyservice.NewFamilyService(gateway, cfg), cfg.Log),
		bloodhandler.NewBloodHandler(bloodservice.NewBloodService(gateway, publisher, cfg), cfg.Log),
		noticehandler.NewNoticeHandler(noticeservice.NewNoticeService(gateway, cfg), cfg.Log),
		orderhandler.NewOrderHandler(orderservice.NewOrderService(gateway, cfg), cfg.Log),
		directoryhandler.NewDirectoryHandler(directoryservice.NewDirectoryService(gateway, cfg), cfg.Log),
		bookinghandler.NewBookingHandler(bookings, cfg.Log),
		tokenhandler.NewTokenHandler(tokens, cfg.Log),
		schema.NewHandler(cfg.Log),
	}
}
