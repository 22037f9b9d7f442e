package main

import (
	"context"
	"time"

	"github.com/Abraxas-365/campus/internal/database"
	"github.com/Abraxas-365/campus/pkg/config"
	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/Abraxas-365/campus/recruitment/actor"
	"github.com/Abraxas-365/campus/recruitment/actor/actorinfra"
	"github.com/Abraxas-365/campus/recruitment/application"
	"github.com/Abraxas-365/campus/recruitment/application/applicationapi"
	"github.com/Abraxas-365/campus/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/campus/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/campus/recruitment/posting/postinginfra"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Repositories
	UserRepo        *authinfra.PostgresUserRepository
	PostingRepo     *postinginfra.PostgresPostingRepository
	ApplicationRepo *applicationinfra.PostgresApplicationRepository

	// Auth
	TokenService     auth.TokenService
	IdentityProvider *auth.IdentityProvider
	ActorResolver    *actor.Resolver

	// Services
	ApplicationService *applicationsrv.ApplicationService

	// API Handlers
	ApplicationHandlers *applicationapi.Handlers
}

// NewContainer wires everything serve needs
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	return c, nil
}

// openDatabase is shared with the maintenance commands
func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	return database.Open(ctx, database.PostgresConfig{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	// 1. Database Connection
	db, err := openDatabase(ctx, c.Config)
	if err != nil {
		return err
	}
	c.DB = db

	// 2. Redis Connection
	if c.Config.Redis.Enabled {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := c.Redis.Ping(pingCtx).Err(); err != nil {
			logx.Warnf("Failed to connect to Redis, directory lookups will not be cached until it recovers: %v", err)
		}
	}

	// 3. Auth Config
	if c.Config.UsesUnsafeSecret() {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
	}
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = authinfra.NewPostgresUserRepository(c.DB)
	c.PostingRepo = postinginfra.NewPostgresPostingRepository(c.DB)
	c.ApplicationRepo = applicationinfra.NewPostgresApplicationRepository(c.DB)
}

func (c *Container) initServices() {
	c.TokenService = auth.NewJWTService(c.Config.Auth.JWTSecret, c.Config.Auth.Issuer, c.Config.Auth.AccessTokenTTL)
	c.IdentityProvider = auth.NewIdentityProvider(c.TokenService, c.UserRepo)

	var directory actor.Directory = actorinfra.NewPostgresDirectory(c.DB)
	if c.Redis != nil {
		directory = actorinfra.NewCachedDirectory(directory, actorinfra.NewRedisCache(c.Redis), c.Config.Redis.CacheTTL)
	}
	c.ActorResolver = actor.NewResolver(directory)

	var opts []applicationsrv.Option
	if c.Config.Applications.StrictTransitions {
		opts = append(opts, applicationsrv.WithTransitionPolicy(application.DefaultTransitionTable))
	}
	c.ApplicationService = applicationsrv.NewApplicationService(c.ApplicationRepo, c.PostingRepo, opts...)

	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
}

// Close releases connections in reverse order of acquisition
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Warnf("closing redis: %v", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Warnf("closing database: %v", err)
		}
	}
}
