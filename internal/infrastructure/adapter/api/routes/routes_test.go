package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qr-tavoli/loyalty-core/internal/domain/entity"
	"github.com/qr-tavoli/loyalty-core/internal/domain/port/usecase"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/handler"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/middleware"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/logger"
	timeadapter "github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/time"
)

const testSecret = "routes-test-secret"

// stubTableUseCase satisfies the table port with a single canned table,
// enough to exercise routing and role gating without real storage.
type stubTableUseCase struct{ table *entity.Table }

func (s *stubTableUseCase) CreateTable(ctx context.Context, number uint, name string) (*entity.Table, error) {
	return s.table, nil
}

func (s *stubTableUseCase) ResolveByToken(ctx context.Context, token string) (*entity.Table, error) {
	return s.table, nil
}

func (s *stubTableUseCase) ResolveByID(ctx context.Context, id uint64, includeInactive bool) (*entity.Table, error) {
	return s.table, nil
}

func (s *stubTableUseCase) ListTables(ctx context.Context, includeInactive bool) ([]*entity.Table, error) {
	return []*entity.Table{s.table}, nil
}

func (s *stubTableUseCase) Rename(ctx context.Context, id uint64, newName string) (*entity.Table, error) {
	return s.table, nil
}

func (s *stubTableUseCase) Deactivate(ctx context.Context, id uint64) error {
	return nil
}

func (s *stubTableUseCase) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	return entity.RankTables([]*entity.Table{s.table}), nil
}

func (s *stubTableUseCase) PositionOf(ctx context.Context, table *entity.Table) (int, error) {
	return 1, nil
}

type stubPointsUseCase struct{}

func (s *stubPointsUseCase) Award(ctx context.Context, req usecase.AwardRequest) (*usecase.AwardResult, error) {
	return nil, nil
}

func (s *stubPointsUseCase) Reset(ctx context.Context, tableID, actorID uint64, reason string) (*usecase.AwardResult, error) {
	return nil, nil
}

func (s *stubPointsUseCase) HistoryForTable(ctx context.Context, tableID uint64, limit int) ([]*entity.LedgerEntry, error) {
	return []*entity.LedgerEntry{}, nil
}

func (s *stubPointsUseCase) Transactions(ctx context.Context, limit int) ([]*entity.LedgerEntry, error) {
	return []*entity.LedgerEntry{}, nil
}

func (s *stubPointsUseCase) ActivityForActor(ctx context.Context, actorID uint64, limit int) ([]*entity.LedgerEntry, error) {
	return []*entity.LedgerEntry{}, nil
}

func (s *stubPointsUseCase) DailyStats(ctx context.Context, date string) (*entity.DailyStats, error) {
	return &entity.DailyStats{}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	table, err := entity.NewTable(7, "", timeadapter.NewRealTimeProvider())
	require.NoError(t, err)
	table.ID = 7

	noop := logger.NewNoopLogger()
	router := gin.New()
	SetupRoutes(
		router,
		handler.NewTableHandler(&stubTableUseCase{table: table}, noop),
		handler.NewPointsHandler(&stubPointsUseCase{}, noop),
		testSecret,
		noop,
	)
	return router
}

func staffToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(3),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("leaderboard needs no token", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/tables/leaderboard", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("QR resolution needs no token", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/tables/qr/TABLE_7", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestStaffRoutes(t *testing.T) {
	router := newTestRouter(t)
	cashier := staffToken(t, middleware.RoleCashier)

	t.Run("table list requires a token", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/tables", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cashier lists tables", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/tables", cashier, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"qrToken":"TABLE_7"`)
	})

	t.Run("cashier reads the transaction feed", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/points/transactions", cashier, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cashier renames a table", func(t *testing.T) {
		w := doRequest(router, http.MethodPatch, "/api/tables/7/name", cashier, `{"name":"Finestra"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminOnlyRoutes(t *testing.T) {
	router := newTestRouter(t)
	cashier := staffToken(t, middleware.RoleCashier)
	admin := staffToken(t, middleware.RoleAdmin)

	adminOnly := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/tables", `{"number":9}`},
		{http.MethodDelete, "/api/tables/7", ""},
		{http.MethodPost, "/api/points/reset/7", ""},
	}

	for _, route := range adminOnly {
		t.Run("cashier forbidden on "+route.method+" "+route.path, func(t *testing.T) {
			w := doRequest(router, route.method, route.path, cashier, route.body)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}

	t.Run("admin creates a table", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/tables", admin, `{"number":9}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("admin deactivates a table", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/tables/7", admin, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
