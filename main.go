package main

import (
	"fmt"
	"time"

	"alaayoubi/content-api/app"
	"alaayoubi/content-api/config"
	"alaayoubi/content-api/db"
	"alaayoubi/content-api/internal"
	"alaayoubi/content-api/internal/mailer"
	"alaayoubi/content-api/internal/repository"
	"alaayoubi/content-api/internal/service"
	"alaayoubi/content-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	makeLogger(cfg.LogLevel)

	conn, err := db.New(cfg)
	if err != nil {
		panic(err)
	}

	users := repository.NewUserRepository(conn)
	posts := repository.NewPostRepository(conn)

	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.VerificationTTL)
	argon := security.NewArgon(cfg.Argon.Memory, cfg.Argon.Iterations, cfg.Argon.Parallelism)
	mail := mailer.NewSMTP(cfg)

	d := &internal.Deps{
		Cfg:    cfg,
		Tokens: tokens,
		Auth:   service.NewAuthService(users, argon, tokens, mail, cfg.Reset.TTL),
		Posts:  service.NewPostService(posts),
	}

	// Expired reset tokens only block their user's next forgot-password
	// overwrite, so a daily sweep is plenty
	service.ResetTokenCleanup(time.Hour*24, users)

	router := app.NewRouter(d)

	zap.L().Info("Server starting", zap.Int("port", cfg.Host.Port))

	err = router.Run(fmt.Sprintf(":%d", cfg.Host.Port))
	if err != nil {
		panic(err)
	}
}

func makeLogger(level string) {
	cfg := zap.NewDevelopmentConfig()

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
