//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"citas-unidades/cmd/bootstrap"
	"citas-unidades/cmd/bootstrap/components"
	"citas-unidades/internal/infra/memory"
	"citas-unidades/internal/infra/store"
	"citas-unidades/internal/pkg/config"
	"citas-unidades/internal/usecase/commands"
	"citas-unidades/internal/usecase/shared"
	"citas-unidades/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Application assembly for end-to-end tests
// ------------------------------------------------------------
//
// The real deployment runs against Google Sheets; tests run the same fx
// graph on the in-memory store so the whole HTTP surface can be driven
// without credentials or network. The raw store is kept reachable for
// resets between cases.
func buildE2EApp(t *testing.T) (*gin.Engine, *memory.Store, config.Config) {
	t.Helper()

	var (
		router *gin.Engine
		mem    *memory.Store
		cfg    config.Config
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	// Mirrors bootstrap.StoreModule minus the sheets driver branch.
	testStoreModule := fx.Module("teststore",
		fx.Provide(
			memory.New,
			bootstrap.NewCodec,
			fx.Annotate(
				func(m *memory.Store, cfg config.Config, logger *slog.Logger) *store.Retrying {
					return store.NewRetrying(m, cfg.Retry, logger)
				},
				fx.As(new(store.RecordStore)),
				fx.As(new(commands.BookingStore)),
				fx.As(new(commands.StatusStore)),
				fx.As(new(shared.RecordSource)),
			),
		),
	)

	app := fx.New(
		testConfigModule,
		testStoreModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &mem, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not populated")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, mem, cfg
}

// ------------------------------------------------------------
// Shared suite setup
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  *memory.Store
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	router, mem, cfg := buildE2EApp(s.T())
	s.Router = router
	s.Store = mem
	s.Config = cfg
}

func (s *SharedSuite) SetupSubTest() {
	// Every subtest starts from an empty record set.
	s.Store.Reset()
}

// LoginAdmin exchanges the configured admin secret for a bearer token.
func (s *SharedSuite) LoginAdmin(t *testing.T) string {
	t.Helper()

	body := map[string]any{"secret": s.Config.Admin.Secret}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, "admin login failed: %s", w.Body.String())

	var res struct {
		AccessToken string `json:"access_token"`
	}
	err := httptest.DecodeResponseBody(t, w.Body, &res)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}
