//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"venue-desk/cmd/bootstrap"
	"venue-desk/cmd/bootstrap/components"
	"venue-desk/internal/infra/cache"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/config"
	"venue-desk/internal/pkg/password"
	"venue-desk/tests/common/authtest"
	"venue-desk/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

var nextRedisDB atomic.Int32

// SharedSuite gives every e2e package its own database and redis db on
// shared containers, plus the fully wired router.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Cache  *goredis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, startPostgres(t))
	cfg.Redis.Addr = startRedis(t).Addr()
	cfg.Redis.DB = 1 + int(nextRedisDB.Add(1)-1)%(redisDatabases-1)
	cfg.Export.TimeZone = "UTC"
	hash, err := password.HashPasswordWithCost(authtest.OperatorPassword, bcrypt.MinCost)
	require.NoError(t, err)
	cfg.Operator.PasswordHash = hash

	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	require.NoError(t, applyMigrations(pool), "migrations failed")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seeding reference data failed")

	s.DB = pool
	s.Config = cfg
	s.Cache = cache.NewClient(cfg.Redis)
	t.Cleanup(func() { _ = s.Cache.Close() })
	s.Router = startApp(t, cfg)
}

// SetupSubTest gives every s.Run a clean database and cold cache.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
	require.NoError(s.T(), s.Cache.FlushDB(context.Background()).Err(), "failed to flush cache")
}

func createDatabase(t *testing.T, pg Endpoint) config.DBConfig {
	t.Helper()
	name := "venue_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgx.Connect(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close(context.Background())

	// concurrent CREATE DATABASE calls contend on the template database
	for attempt := 0; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize())
		if err == nil || attempt == 4 {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if conn, err := pgx.Connect(ctx, adminDSN); err == nil {
			_, _ = conn.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{name}.Sanitize()+" WITH (FORCE)")
			_ = conn.Close(ctx)
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// applyMigrations runs migrations/*.sql in name order, the same files the
// atlas runner applies in deployments.
func applyMigrations(pool *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	dir := os.DirFS(filepath.Join(root, "migrations"))
	files, err := fs.Glob(dir, "*.sql")
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, name := range files {
		sql, err := fs.ReadFile(dir, name)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above working directory")
		}
		dir = parent
	}
}

// startApp builds the production graph with the test config in place of
// the environment and stops it when the suite ends.
func startApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			bootstrap.NewVenueLocation,
		),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.MetricsModule,
		bootstrap.CacheModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start app")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})

	require.NotNil(t, router)
	return router
}
