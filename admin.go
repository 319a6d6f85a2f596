// admin.go - privacy-conscious visitor tracking and the admin stats endpoints
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashasviudayan/portfolio/internal/config"
	"github.com/yashasviudayan/portfolio/internal/live"
	"github.com/yashasviudayan/portfolio/internal/store"
)

const adminCookie = "admin_token"

type admin struct {
	token    string
	salt     string
	username string
	password string

	db     *store.DB
	hub    *live.Hub
	logger *zap.Logger
}

func newAdmin(cfg config.Config, db *store.DB, hub *live.Hub, logger *zap.Logger) *admin {
	a := &admin{
		token:    generateToken(),
		salt:     generateToken(),
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		db:       db,
		hub:      hub,
		logger:   logger,
	}
	if a.password == "" {
		logger.Warn("ADMIN_PASSWORD not set, admin login disabled")
	}
	if gin.Mode() == gin.DebugMode {
		logger.Debug("admin token (dev only)", zap.String("token", a.token))
	}
	logger.Info("visitor tracking enabled with hashed IP addresses")
	return a
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generate admin token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP is stable per IP for the life of the process and never stores the
// raw address.
func (a *admin) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + a.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (a *admin) authenticated(c *gin.Context) bool {
	token, err := c.Cookie(adminCookie)
	return err == nil && subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

func (a *admin) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticated(c) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorTracking records page views. Assets, the live socket and admin pages
// are skipped, and Do Not Track is honoured.
func (a *admin) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/admin") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/ws" || path == "/healthz" || path == "/resume.pdf" {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  a.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := a.db.RecordVisit(ctx, visit); err != nil {
				a.logger.Warn("record visit", zap.Error(err))
			}
		}()
		c.Next()
	}
}

func (a *admin) routes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		ok := a.password != "" &&
			subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1 &&
			subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
		if !ok {
			a.logger.Warn("failed admin login", zap.String("from", a.hashIP(c.ClientIP())))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": AdminInvalidCredentials})
			return
		}

		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		a.logger.Info("admin login", zap.String("from", a.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/api/stats")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.requireAuth())

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.db.Stats(c.Request.Context(), time.Now())
		if err != nil {
			a.logger.Error("load admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		stats.LiveSessions = a.hub.Len()
		c.JSON(http.StatusOK, stats)
	})

	group.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := a.db.CleanupVisits(c.Request.Context(), time.Now().AddDate(-1, 0, 0))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
