package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashasviudayan/portfolio/internal/config"
	"github.com/yashasviudayan/portfolio/internal/contact"
	"github.com/yashasviudayan/portfolio/internal/content"
	"github.com/yashasviudayan/portfolio/internal/logging"
	"github.com/yashasviudayan/portfolio/internal/section"
	"github.com/yashasviudayan/portfolio/internal/store"
	"github.com/yashasviudayan/portfolio/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	r, site, err := newRouter(cfg, db, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go cleanupLoop(ctx, db, logger)

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Int("live_sessions", site.Hub().Len()))
	site.Hub().Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter wires every route. It is separate from run so tests can build
// the full engine without listening.
func newRouter(cfg config.Config, db *store.DB, logger *zap.Logger) (*gin.Engine, *web.Site, error) {
	siteContent, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, nil, err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, nil, err
	}
	site, err := web.New(siteContent, tmpl, section.Links(), cfg.SiteURL, logger)
	if err != nil {
		return nil, nil, err
	}

	adm := newAdmin(cfg, db, site.Hub(), logger.Named("admin"))

	r := gin.New()
	r.Use(logging.Gin(logger.Named("http")), gin.Recovery())
	r.Use(adm.visitorTracking())

	site.Register(r)
	r.StaticFile("/resume.pdf", cfg.ResumePath)

	relay := contact.NewRelay(cfg.FormRelayURL, nil)
	r.POST("/contact", contactHandler(db, relay, logger.Named("contact")))

	adm.routes(r)
	return r, site, nil
}

// contactHandler logs the submission, relays it, and answers with a fragment
// the page swaps into the form's result slot.
func contactHandler(db *store.DB, relay *contact.Relay, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg := contact.Message{
			Name:    c.PostForm("name"),
			Email:   c.PostForm("email"),
			Message: c.PostForm("message"),
		}
		if err := msg.Validate(); err != nil {
			c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{"error": ContactInvalid})
			return
		}

		ctx := c.Request.Context()
		id, err := db.RecordContact(ctx, store.ContactMessage{Name: msg.Name, Email: msg.Email, Message: msg.Message})
		if err != nil {
			logger.Error("record contact", zap.Error(err))
		}

		if err := relay.Send(ctx, msg); err != nil {
			logger.Warn("relay contact", zap.Error(err), zap.Bool("configured", !errors.Is(err, contact.ErrNotConfigured)))
			c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": ContactError})
			return
		}
		if id > 0 {
			if err := db.MarkRelayed(ctx, id); err != nil {
				logger.Warn("mark relayed", zap.Int64("id", id), zap.Error(err))
			}
		}

		logger.Info("contact relayed", zap.String("name", msg.Name))
		c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": ContactSuccess})
	}
}

// cleanupLoop drops visitor rows older than a year, once a day.
func cleanupLoop(ctx context.Context, db *store.DB, logger *zap.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		n, err := db.CleanupVisits(ctx, time.Now().AddDate(-1, 0, 0))
		switch {
		case err != nil:
			logger.Warn("privacy cleanup", zap.Error(err))
		case n > 0:
			logger.Info("privacy cleanup", zap.Int64("removed", n))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
