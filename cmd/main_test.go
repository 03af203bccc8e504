package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/invest-ledger/internal/config"
	"github.com/sbilibin2017/invest-ledger/internal/handlers"
	"github.com/sbilibin2017/invest-ledger/internal/jwt"
	"github.com/sbilibin2017/invest-ledger/internal/middlewares"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default", []string{"cmd"}, "config.env"},
		{"custom", []string{"cmd", "-c", "myconfig.env"}, "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.expected, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "version v1.0.0")
	assert.Contains(t, output, "commit abcd1234")
	assert.Contains(t, output, "build 2025-09-26")
}

func testConfig() *config.Config {
	return &config.Config{
		AppHost:        "127.0.0.1",
		AppPort:        "8086",
		LogLevel:       "debug",
		AllowedOrigins: []string{"*"},
		AgentNumbers:   map[string]string{"bkash": "01701884859"},
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := middlewares.NewMockTokener(ctrl)
	accounts := handlers.NewMockAccountReader(ctrl)

	router := newRouter(testConfig(), routerDeps{
		accounts: accounts,
		tokener:  tokener,
	})

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("public payment methods", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/wallet/methods", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "01701884859")
	})

	t.Run("protected route without token", func(t *testing.T) {
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrInvalidToken)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("protected route with token", func(t *testing.T) {
		claims := &jwt.Claims{UserID: uuid.MustParse("0d4c8f5e-2b1a-4c3d-9e8f-7a6b5c4d3e2f"), Email: "user@example.com"}
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
		accounts.EXPECT().Account(gomock.Any(), claims.Identity()).Return(&models.Account{Balance: 750}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"balance":750`)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/wallet/deposit", nil)
		req.Header.Set("Origin", "https://dash.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := testConfig()
	cfg.PostgresHost = pgHost
	cfg.PostgresPort = pgPort.Int()
	cfg.PostgresUser = "user"
	cfg.PostgresPassword = "password"
	cfg.PostgresDB = "testdb"
	cfg.PostgresMaxOpenConns = 5
	cfg.PostgresMaxIdleConns = 2
	cfg.RedisHost = redisHost
	cfg.RedisPort = redisPort.Int()
	cfg.RedisPoolSize = 10
	cfg.RedisMinIdleConns = 2
	cfg.KafkaBrokers = []string{"127.0.0.1:9092"}
	cfg.KafkaTopic = "ledger-events"
	cfg.JWTSecretKey = "testsecret"
	cfg.JWTExp = time.Minute
	cfg.LedgerMaxAttempts = 5
	cfg.LedgerTimezone = "Asia/Dhaka"
	cfg.DepositHold = 40 * time.Second

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
