package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"service-orders/internal/config"
	"service-orders/internal/http/middleware/ratelimit"
	"service-orders/internal/logx"
	"service-orders/internal/metrics"
	"service-orders/internal/store"
)

type httpServersIn struct {
	dig.In

	Main  *http.Server
	Pprof *http.Server `name:"pprof_server" optional:"true"`
}

func setupHTTPContainerWithCfg(t *testing.T, cfg *config.Config) *dig.Container {
	t.Helper()

	c := dig.New()

	require.NoError(t, c.Provide(func() *config.Config { return cfg }))
	require.NoError(t, c.Provide(logx.Nop))
	require.NoError(t, c.Provide(func() prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total_unit",
			Help: "stub",
		})
	}, dig.Name("rate_limit_exceeded_total")))

	require.NoError(t, registerDomainServices(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func TestRegisterHTTP_PprofDisabled_ReturnsNilPprofServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Pprof = config.PprofConfig{Enabled: false, Addr: "0.0.0.0:6060"}

	c := setupHTTPContainerWithCfg(t, cfg)
	err := c.Invoke(func(in httpServersIn) {
		require.NotNil(t, in.Main)
		require.Equal(t, ":8080", in.Main.Addr)
		require.Nil(t, in.Pprof)
	})
	require.NoError(t, err)
}

func TestRegisterHTTP_PprofEnabled_ProvidesPprofServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Pprof = config.PprofConfig{Enabled: true, Addr: "127.0.0.1:6060", User: "u", Pass: "p"}

	c := setupHTTPContainerWithCfg(t, cfg)
	err := c.Invoke(func(in httpServersIn) {
		require.NotNil(t, in.Main)
		require.NotNil(t, in.Pprof)
		require.Equal(t, "127.0.0.1:6060", in.Pprof.Addr)
		require.NotNil(t, in.Pprof.Handler)
	})
	require.NoError(t, err)
}

func TestRegisterHTTP_RateLimiterFollowsConfig(t *testing.T) {
	t.Parallel()

	disabled := testConfig()
	disabled.RateLimit.Enabled = false
	require.IsType(t, ratelimit.NopLimiter{}, newRateLimiter(disabled, newRateLimitClock()))

	enabled := testConfig()
	require.IsType(t, &ratelimit.TokenBucketLimiter{}, newRateLimiter(enabled, newRateLimitClock()))
}

func TestRegisterHTTP_ServesOrders(t *testing.T) {
	t.Parallel()

	c := setupHTTPContainerWithCfg(t, testConfig())
	err := c.Invoke(func(srv *http.Server) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders/add-order",
			strings.NewReader(`{"id":"o1","deliveryTime":"09:15"}`))
		srv.Handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/get-order-by-id/o1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"id":"o1","deliveryTime":"09:15"}`, rec.Body.String())
	})
	require.NoError(t, err)
}

func TestBuild_MetricsEndpointExposesStoreGauges(t *testing.T) {
	useTestRegistry(t)

	c, err := NewContainerBuilder().
		WithConfigLoader(staticConfig(testConfig())).
		build(context.Background())
	require.NoError(t, err)

	err = c.Invoke(func(srv *http.Server) {
		ts := httptest.NewServer(srv.Handler)
		defer ts.Close()

		resp, err := ts.Client().Post(ts.URL+"/orders/add-partner/p1", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, err = ts.Client().Get(ts.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "\npartners 1\n")
		require.Contains(t, string(body), "\norders 0\n")
	})
	require.NoError(t, err)
}

func TestRegisterStoreCollector_ReplacesStaleCollector(t *testing.T) {
	reg := useTestRegistry(t)

	_, err := NewContainerBuilder().WithConfigLoader(staticConfig(testConfig())).build(context.Background())
	require.NoError(t, err)
	live, err := NewContainerBuilder().WithConfigLoader(staticConfig(testConfig())).build(context.Background())
	require.NoError(t, err)

	require.NoError(t, live.Invoke(func(s *store.Store) {
		_, err := s.AddPartner("p1")
		require.NoError(t, err)
	}))

	expected := `
# HELP partners Number of registered delivery partners.
# TYPE partners gauge
partners 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "partners"))
}

func TestProvideMetrics_Success_RegistersAndReturnsCounters(t *testing.T) {
	useTestRegistry(t)

	out, err := provideMetrics()
	require.NoError(t, err)
	require.NotNil(t, out.RateLimitExceededTotal)
}

func TestProvideMetrics_AlreadyRegistered_ReturnsExistingCounters(t *testing.T) {
	reg := useTestRegistry(t)

	existing := metrics.NewRateLimitExceededTotal()
	require.NoError(t, reg.Register(existing))

	out, err := provideMetrics()
	require.NoError(t, err)
	require.Same(t, existing, out.RateLimitExceededTotal)
}

type errRegisterer struct{ err error }

func (e errRegisterer) Register(prometheus.Collector) error  { return e.err }
func (e errRegisterer) MustRegister(...prometheus.Collector) {}
func (e errRegisterer) Unregister(prometheus.Collector) bool { return false }

func TestProvideMetrics_RegisterError_NotAlreadyRegistered(t *testing.T) {
	useTestRegistry(t)
	prometheus.DefaultRegisterer = errRegisterer{err: errors.New("boom")}

	_, err := provideMetrics()
	require.Error(t, err)
	require.Contains(t, err.Error(), "register rate_limit_exceeded_total")
}
