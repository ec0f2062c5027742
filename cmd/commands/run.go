package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"photovault"
	"photovault/config"
	"photovault/internal/application/usecase"
	"photovault/internal/infrastructure/database"
	"photovault/internal/infrastructure/identity"
	"photovault/internal/infrastructure/minio"
	"photovault/internal/infrastructure/notifier"
	"photovault/internal/infrastructure/recognition"
	"photovault/internal/presentation/handler"
	"photovault/internal/presentation/middleware"
	"photovault/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running photovault", "version", photovault.StringVersion())

	provider, err := identity.New(context.Background(), cfg.Identity)
	if err != nil {
		ExitOnError(err)
	}

	notifierClient, err := notifier.NewClient(cfg.Notifier)
	if err != nil {
		ExitOnError(err)
	}

	publisher := notifier.NewPublisher(notifierClient, cfg.Notifier)
	subscriber := notifier.NewSubscriber(notifierClient)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	imageWriter := database.NewImageWriter(db)
	imageRetriever := database.NewImageRetriever(db)
	imageLister := database.NewImageLister(db)
	imageRemover := database.NewImageRemover(db)
	albumStore := database.NewAlbumStore(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	uploader := minio.NewUploader(minIOClient, &cfg.MinIOUploader)
	blobRemover := minio.NewRemover(minIOClient, &cfg.MinIORemover)

	recognizer := recognition.New(cfg.Recognition)

	ingestor := usecase.NewIngestor(uploader, imageWriter, recognizer, publisher)
	albums := usecase.NewAlbums(albumStore, imageLister, imageRetriever, imageRemover,
		blobRemover, recognizer, publisher)
	feed := usecase.NewFeed(imageLister, subscriber, 0)
	share := usecase.NewShare(albumStore, imageLister)
	people := usecase.NewPeople(recognizer)

	uploadHandler := handler.NewUploadHandler(ingestor)
	feedHandler := handler.NewFeedHandler(feed)
	deleteHandler := handler.NewDeleteHandler(albums)
	albumHandler := handler.NewAlbumHandler(albums)
	shareHandler := handler.NewShareHandler(share)
	peopleHandler := handler.NewPeopleHandler(people)
	authHandler := handler.NewAuthHandler(provider)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/auth/login", authHandler.HandleLogin)
	e.GET("/auth/callback", authHandler.HandleCallback)

	e.GET("/share/:albumId", shareHandler.Handle)

	auth := middleware.AuthMiddleware(provider)

	e.POST("/images", uploadHandler.Handle, auth)
	e.GET("/images", feedHandler.Handle, auth)
	e.GET("/images/watch", feedHandler.HandleWatch, auth)
	e.DELETE("/images/:id", deleteHandler.Handle, auth)

	e.GET("/albums", albumHandler.HandleList, auth)
	e.POST("/albums", albumHandler.HandleCreate, auth)
	e.POST("/albums/auto", albumHandler.HandleAutoCreate, auth)
	e.GET("/albums/:id", albumHandler.HandleGet, auth)
	e.PUT("/albums/:id/images/:imageId", albumHandler.HandleAddImage, auth)
	e.DELETE("/albums/:id/images/:imageId", albumHandler.HandleRemoveImage, auth)
	e.DELETE("/albums/:id", albumHandler.HandleDelete, auth)

	e.GET("/people", peopleHandler.HandleSearch, auth)
	e.GET("/faces", peopleHandler.HandleFaces, auth)
	e.GET("/faces/:faceId/crop", peopleHandler.HandleFaceCrop, auth)
	e.POST("/faces/:faceId/name", peopleHandler.HandleNameFace, auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Warn("database shutdown failed", "err", err)
	}
	if err := notifierClient.Close(); err != nil {
		logger.Warn("notifier shutdown failed", "err", err)
	}
}
