//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"

	// one logical redis database per suite; 0 stays unused
	redisDatabases = 16
)

// Endpoint is a host-mapped container port.
type Endpoint struct {
	Host string
	Port nat.Port
}

func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port.Port()
}

type sharedContainer struct {
	once     sync.Once
	endpoint Endpoint
	err      error
}

var (
	postgres sharedContainer
	redis    sharedContainer
)

// start runs req once per test binary. Ryuk reaps the container when the
// process exits.
func (s *sharedContainer) start(t *testing.T, req testcontainers.ContainerRequest, port string) Endpoint {
	t.Helper()
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			s.err = fmt.Errorf("start %s: %w", req.Image, err)
			return
		}
		s.endpoint, s.err = endpointOf(ctx, c, port)
		slog.Info("container ready", "image", req.Image, "addr", s.endpoint.Addr())
	})
	require.NoError(t, s.err)
	return s.endpoint
}

func endpointOf(ctx context.Context, c testcontainers.Container, port string) (Endpoint, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return Endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{Host: host, Port: mapped}, nil
}

func startPostgres(t *testing.T) Endpoint {
	return postgres.start(t, testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "venue-desk-e2e"},
	}, "5432/tcp")
}

func startRedis(t *testing.T) Endpoint {
	return redis.start(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no", "--databases", fmt.Sprint(redisDatabases)},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		Labels:       map[string]string{"purpose": "venue-desk-e2e"},
	}, "6379/tcp")
}
