package main

import (
	"time"

	"marketplace/internal/config"
	"marketplace/internal/domain/model"
	"marketplace/internal/handler"
	"marketplace/internal/infra/db"
	"marketplace/internal/infra/mq"
	"marketplace/internal/infra/redis"
	infraRepo "marketplace/internal/infra/repository"
	"marketplace/internal/logging"
	"marketplace/internal/mailer"
	"marketplace/internal/server"
	"marketplace/internal/usecase"
	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role auth.Role, jti string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"jti":  jti,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くても起動できる
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.InitLogger()
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Seller{},
		&model.Customer{},
		&model.Shop{},
		&model.Category{},
		&model.Product{},
		&model.Review{},
		&model.Order{},
		&model.ActivationToken{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	sellerRepo := infraRepo.NewSellerGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	tokenRepo := infraRepo.NewActivationTokenGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//失効トークン（redis未設定ならチェックなし）
	var revoker *redis.RevokedTokenStore
	if cfg.RedisAddr != "" {
		revoker = redis.NewRevokedTokenStore(redis.Init(cfg.RedisAddr))
	} else {
		revoker = redis.NewRevokedTokenStore(nil)
		zap.L().Warn("REDIS_ADDR not set, token revocation disabled")
	}

	//注文イベント（rabbitmq未設定なら発行しない）
	var publisher usecase.OrderEventPublisher
	if cfg.RabbitMQURL != "" {
		publisher = mq.NewOrderEventPublisher(mq.Init(cfg.RabbitMQURL))
	}

	//確認メール（SMTP未設定ならログ出力のみ）
	var m mailer.Mailer
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	} else {
		m = mailer.NewLogMailer()
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 24 * time.Hour,
	}

	//Usecase生成
	registerUC := auth.NewRegisterUsecase(userRepo, sellerRepo, customerRepo, tokenRepo, hasher, m, clock, cfg.APIBaseURL)
	activateUC := auth.NewActivateUsecase(userRepo, tokenRepo, clock)
	loginUC := auth.NewLoginUsecase(userRepo, sellerRepo, verifier, issuer, idGen, clock)
	logoutUC := auth.NewLogoutUsecase(revoker, clock)

	userUC := usecase.NewUserUsecase(userRepo, sellerRepo, customerRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	shopUC := usecase.NewShopUsecase(sellerRepo, shopRepo)
	dashboardUC := usecase.NewDashboardUsecase(sellerRepo, shopRepo, productRepo, reviewRepo, orderRepo)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, sellerRepo, shopRepo, auditRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo, customerRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, productRepo, customerRepo, sellerRepo, shopRepo, publisher)

	//Handler生成
	h := server.Handlers{
		Auth:     handler.NewAuthHandler(registerUC, activateUC, loginUC, logoutUC),
		User:     handler.NewUserHandler(userUC),
		Shop:     handler.NewShopHandler(shopUC, dashboardUC),
		Product:  handler.NewProductHandler(productUC),
		Category: handler.NewCategoryHandler(categoryUC),
		Review:   handler.NewReviewHandler(reviewUC),
		Order:    handler.NewOrderHandler(orderUC),
	}

	//Server起動
	if err := server.Start(cfg, revoker, h); err != nil {
		panic(err)
	}
}
