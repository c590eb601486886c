package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい
	_ = godotenv.Load()

	cfg := config.Load()

	log := logrus.New()
	if cfg.GoEnv == "prod" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.FoodItem{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Invoice{},
	); err != nil {
		log.WithError(err).Fatal("migrate failed")
	}

	//Repository（GORM実装）生成
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	foodItemRepo := infraRepo.NewFoodItemGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(categoryRepo, foodItemRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, foodItemRepo, categoryRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, idGen, clock)
	orderUC := usecase.NewOrderUsecase(txManager)
	invoiceUC := usecase.NewInvoiceUsecase(txManager)

	//Handler生成
	h := server.Handlers{
		Category: handler.NewCategoryHandler(catalogUC),
		FoodItem: handler.NewFoodItemHandler(catalogUC),
		Cart:     handler.NewCartHandler(cartUC, checkoutUC),
		Order:    handler.NewOrderHandler(orderUC),
		Invoice:  handler.NewInvoiceHandler(invoiceUC),
	}

	//Server起動
	e := server.New(cfg, log, h)

	addr := ":" + cfg.Port
	if cfg.Port != "" && cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	log.WithField("addr", addr).Info("starting server")
	if err := server.Start(e, addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
