package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	httpadp "ideafund-backend/internal/adapter/http"
	"ideafund-backend/internal/adapter/middleware"
	"ideafund-backend/internal/adapter/repository/mysql"
	"ideafund-backend/internal/config"
	"ideafund-backend/internal/infrastructure/cache"
	"ideafund-backend/internal/infrastructure/db"
	ucAggregation "ideafund-backend/internal/usecase/aggregation"
	ucBookmark "ideafund-backend/internal/usecase/bookmark"
	ucIdea "ideafund-backend/internal/usecase/idea"
	ucInvestment "ideafund-backend/internal/usecase/investment"
	ucNotification "ideafund-backend/internal/usecase/notification"
	ucProfile "ideafund-backend/internal/usecase/profile"
	ucVote "ideafund-backend/internal/usecase/vote"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("open redis: %v", err)
	}

	ideaRepo := mysql.NewIdeaRepository(gdb)
	investmentRepo := mysql.NewInvestmentRepository(gdb)
	voteRepo := mysql.NewVoteRepository(gdb)
	bookmarkRepo := mysql.NewBookmarkRepository(gdb)
	notificationRepo := mysql.NewNotificationRepository(gdb)
	profileRepo := mysql.NewProfileRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	engine := ucAggregation.NewEngine(ideaRepo, investmentRepo, voteRepo, profileRepo)

	h := httpadp.NewHandler()
	ideaH := httpadp.NewIdeaHandler(ucIdea.NewUsecase(ideaRepo, investmentRepo, voteRepo, profileRepo, uow))
	investmentH := httpadp.NewInvestmentHandler(ucInvestment.NewUsecase(profileRepo, uow))
	voteH := httpadp.NewVoteHandler(ucVote.NewUsecase(uow))
	bookmarkH := httpadp.NewBookmarkHandler(ucBookmark.NewUsecase(ideaRepo, bookmarkRepo))
	notificationH := httpadp.NewNotificationHandler(ucNotification.NewUsecase(notificationRepo))
	portfolioH := httpadp.NewPortfolioHandler(engine)
	profileH := httpadp.NewProfileHandler(ucProfile.NewUsecase(profileRepo))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("", middleware.RequireUser(),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api.POST("/profiles", profileH.RegisterProfile)
	api.GET("/profiles/me", profileH.GetMyProfile)

	api.POST("/ideas", ideaH.CreateIdea)
	api.GET("/ideas", ideaH.ListIdeas)
	api.GET("/ideas/:idea_id", ideaH.GetIdea)
	api.GET("/ideas/:idea_id/stats", portfolioH.GetIdeaStats)
	api.POST("/ideas/:idea_id/publish", ideaH.PublishIdea)
	api.POST("/ideas/:idea_id/close", ideaH.CloseIdea)

	api.POST("/ideas/:idea_id/investments", investmentH.CreateInvestment)
	api.POST("/investments/:investment_id/withdraw", investmentH.WithdrawInvestment)

	api.POST("/ideas/:idea_id/votes", voteH.CastVote)

	api.PUT("/ideas/:idea_id/bookmark", bookmarkH.AddBookmark)
	api.DELETE("/ideas/:idea_id/bookmark", bookmarkH.RemoveBookmark)
	api.GET("/bookmarks", bookmarkH.ListBookmarks)

	api.GET("/portfolio", portfolioH.GetPortfolio)

	api.GET("/notifications", notificationH.ListNotifications)
	api.POST("/notifications/read", notificationH.MarkNotificationsRead)

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
