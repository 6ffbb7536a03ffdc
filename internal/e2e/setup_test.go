//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"staybook/cmd/bootstrap"
	"staybook/cmd/bootstrap/components"
	mongostore "staybook/internal/infra/mongo"
	"staybook/internal/infra/postgres"
	"staybook/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container
	mongoTestURI       string

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

func startPostgresOnce(t *testing.T) containerInfo {
	postgresContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "max_connections=200"},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
						testUser, testPassword, host, port.Port())
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})
	require.NotNil(t, postgresTestContainer, "postgres container not running")

	ctx := context.Background()
	port, err := postgresTestContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	host, err := postgresTestContainer.Host(ctx)
	require.NoError(t, err)
	return containerInfo{Host: host, Port: port}
}

// prepareDatabase creates a fresh database per suite and applies the migrations.
func prepareDatabase(t *testing.T, info containerInfo) config.DBConfig {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer adminPool.Close()
	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbCfg := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
	require.NoError(t, applyMigrations(ctx, dbCfg))
	return dbCfg
}

func applyMigrations(ctx context.Context, dbCfg config.DBConfig) error {
	pool, err := postgres.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	files, err := filepath.Glob(filepath.Join("..", "..", "migrations", "*.sql"))
	if err != nil || len(files) == 0 {
		return fmt.Errorf("no migration files found: %v", err)
	}
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", f, err)
		}
	}
	return nil
}

// startMongoOnce runs a single node replica set; transactions need one. The member
// advertises localhost, so clients connect directly instead of discovering the set.
func startMongoOnce(t *testing.T) string {
	mongoContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		mongoTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:7",
				ExposedPorts: []string{"27017/tcp"},
				Cmd:          []string{"--replSet", "rs0", "--bind_ip_all"},
				Tmpfs:        map[string]string{"/data/db": "rw,size=512m"},
				WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
				Labels:       map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		require.NoError(t, err, "failed to start mongo container")

		code, _, err := mongoTestContainer.Exec(ctx, []string{"mongosh", "--quiet", "--eval",
			`rs.initiate({_id: "rs0", members: [{_id: 0, host: "localhost:27017"}]})`})
		require.NoError(t, err)
		require.Zero(t, code, "rs.initiate failed")

		port, err := mongoTestContainer.MappedPort(ctx, "27017/tcp")
		require.NoError(t, err)
		host, err := mongoTestContainer.Host(ctx)
		require.NoError(t, err)
		mongoTestURI = fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port())
		waitForPrimary(t, mongoTestURI)
	})
	require.NotNil(t, mongoTestContainer, "mongo container not running")
	return mongoTestURI
}

func waitForPrimary(t *testing.T, uri string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(context.Background()) }()

	require.Eventually(t, func() bool {
		var hello struct {
			IsWritablePrimary bool `bson:"isWritablePrimary"`
		}
		err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
		return err == nil && hello.IsWritablePrimary
	}, 45*time.Second, 250*time.Millisecond, "replica set never elected a primary")
}

// prepareMongoDatabase names a fresh database per suite; EnsureIndexes creates its
// collections when the app starts.
func prepareMongoDatabase(t *testing.T, uri string) config.MongoConfig {
	cfg := config.MongoConfig{
		URI:      uri,
		Database: "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, db, err := mongostore.Connect(ctx, cfg)
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", cfg.Database, "error", err.Error())
			return
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		if err := db.Drop(ctx); err != nil {
			slog.Warn("failed to drop test database", "database", cfg.Database, "error", err.Error())
		}
	})
	return cfg
}

// buildApp runs the production fx graph against the test config.
func buildApp(t *testing.T, cfg config.Config) *gin.Engine {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.IntegrationModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router
}

// SharedSuite runs against postgres unless Driver is set to config.DriverMongo
// before the suite starts. Exactly one of DB and Mongo is set.
type SharedSuite struct {
	suite.Suite
	Driver string
	Router *gin.Engine
	DB     *pgxpool.Pool
	Mongo  *mongo.Database
	Redis  *miniredis.Miniredis
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.Redis = miniredis.RunT(t)
	cfg := config.NewTestConfig()
	cfg.Redis.Addr = s.Redis.Addr()

	switch s.Driver {
	case config.DriverMongo:
		cfg.Storage.Driver = config.DriverMongo
		cfg.Mongo = prepareMongoDatabase(t, startMongoOnce(t))
		client, db, err := mongostore.Connect(ctx, cfg.Mongo)
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
		s.Mongo = db
	default:
		s.Driver = config.DriverPostgres
		cfg.Storage.Driver = config.DriverPostgres
		cfg.DB = prepareDatabase(t, startPostgresOnce(t))
		pool, err := postgres.Connect(ctx, cfg.DB)
		require.NoError(t, err)
		t.Cleanup(pool.Close)
		s.DB = pool
	}
	s.Config = cfg

	s.Router = buildApp(t, cfg)
}

// SetupSubTest gives every subtest empty tables and an empty cache.
func (s *SharedSuite) SetupSubTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.Mongo != nil {
		// documents only; the indexes stay
		for _, name := range []string{"reviews", "bookings", "listings", "users"} {
			_, err := s.Mongo.Collection(name).DeleteMany(ctx, bson.D{})
			require.NoError(s.T(), err)
		}
	} else {
		_, err := s.DB.Exec(ctx, "TRUNCATE reviews, bookings, listings, users CASCADE")
		require.NoError(s.T(), err)
	}
	s.Redis.FlushAll()
}

// insertAdmin stores an admin directly; the API never creates one.
func (s *SharedSuite) insertAdmin(email, passwordHash string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	id := uuid.New()
	if s.Mongo != nil {
		_, err := s.Mongo.Collection("users").InsertOne(ctx, bson.M{
			"_id":           id.String(),
			"email":         email,
			"password_hash": passwordHash,
			"role":          "admin",
			"created_at":    time.Now().UnixMilli(),
		})
		s.Require().NoError(err)
		return
	}
	_, err := s.DB.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, 'admin')",
		id, email, passwordHash)
	s.Require().NoError(err)
}
