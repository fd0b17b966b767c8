package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/paymentrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventTopic: goDotEnvVariable("KAFKA_ORDER_EVENT_TOPIC"),
		RedisHost:            goDotEnvVariable("REDIS_HOST"),
		RedisPassword:        goDotEnvVariable("REDIS_PASSWORD"),
		JWTSecret:            goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&catalogrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.AddressDTO{},
		&catalogrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateAssignCourierCommandHandler(),
		root.CreateAcceptDeliveryCommandHandler(),
		root.CreateRejectDeliveryCommandHandler(),
		root.CreateRateOrderCommandHandler(),
		root.CreateProcessPaymentCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetPaymentQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e, httpadapter.NewAuthMiddleware([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
