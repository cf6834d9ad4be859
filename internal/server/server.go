package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moldovancsaba/fancamera-sub002/internal/config"
	"github.com/moldovancsaba/fancamera-sub002/internal/handler"
	"github.com/moldovancsaba/fancamera-sub002/internal/repository"
	"github.com/moldovancsaba/fancamera-sub002/internal/service"
)

type Server struct {
	httpServer *http.Server
	db         *sql.DB
	cfg        *config.Config
	log        *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	subRepo, err := repository.NewSubmissionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission repository: %w", err)
	}

	mediaStore, err := repository.NewS3MediaStore(&cfg.S3, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create media store: %w", err)
	}

	slideshowService := service.NewSlideshowService(subRepo, mediaStore, cfg, log)

	h := handler.NewHandler(slideshowService, cfg, log)

	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/events/:event/submissions", h.UploadSubmission)
		api.GET("/events/:event/submissions", h.ListSubmissions)
		api.GET("/events/:event/slideshow", h.GetSlideshow)
		api.POST("/submissions/:id/hide", h.HideSubmission)
		api.GET("/images/*key", h.GetImage)
	}

	server := &Server{
		httpServer: &http.Server{
			Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:        router,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		db:  db,
		cfg: cfg,
		log: log,
	}

	log.Info("Server created successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port))

	return server, nil
}

func (s *Server) Run() error {
	s.log.Info("Server is running",
		zap.String("host", s.cfg.Server.Host),
		zap.String("port", s.cfg.Server.Port),
		zap.String("address", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	return s.db.Close()
}
