package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/config"
	testhelpers "github.com/dzinstall/storefront/internal/test"
	"github.com/dzinstall/storefront/internal/usecase"
)

type bootstrapperStub struct {
	opts  usecase.BootstrapOptions
	calls int
	err   error
}

func (b *bootstrapperStub) Bootstrap(_ context.Context, opts usecase.BootstrapOptions) error {
	b.calls++
	b.opts = opts
	return b.err
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestBootstrapOptions(t *testing.T) {
	cfg := &config.Config{AdminPhone: "0550999999", AdminPassword: "admin", SeedPassword: "seed"}
	opts := bootstrapOptions(cfg)
	if opts.AdminPhone != "0550999999" || opts.AdminPassword != "admin" || opts.SeedPassword != "seed" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	accounts := &bootstrapperStub{}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond, AdminPhone: "0550999999", AdminPassword: "pw"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testhelpers.DiscardLogger(),
		Server:     server,
		Accounts:   accounts,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	if err := recorder.StartAll(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	if accounts.calls != 1 || accounts.opts.AdminPhone != "0550999999" {
		t.Fatalf("expected bootstrap with configured admin, got %d calls %+v", accounts.calls, accounts.opts)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = recorder.StopAll(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}

	select {
	case <-shutdowner.Called:
		t.Fatal("graceful stop must not request shutdown")
	default:
	}
}

func TestRegisterLifecycleBootstrapFailure(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	accounts := &bootstrapperStub{err: errors.New("store offline")}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     testhelpers.DiscardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Accounts:   accounts,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	err := recorder.Hooks[0].OnStart(context.Background())
	if !errors.Is(err, accounts.err) {
		t.Fatalf("expected bootstrap error, got %v", err)
	}
}

func TestRegisterLifecycleListenFailure(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testhelpers.DiscardLogger(),
		Server:     &http.Server{Addr: "bad addr"},
		Accounts:   &bootstrapperStub{},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.StartAll(context.Background()); err == nil {
		t.Fatal("expected start to fail for an unusable address")
	}
	select {
	case <-shutdowner.Called:
		t.Fatal("a failed start is reported by fx, not via shutdown")
	default:
	}
}

func TestLifecycleRecorderStopsInReverse(t *testing.T) {
	var order []string
	recorder := &testhelpers.LifecycleRecorder{}
	recorder.Append(fx.Hook{OnStop: func(context.Context) error { order = append(order, "first"); return nil }})
	recorder.Append(fx.Hook{OnStart: func(context.Context) error { return nil }})
	recorder.Append(fx.Hook{OnStop: func(context.Context) error { order = append(order, "third"); return errors.New("boom") }})

	if err := recorder.StartAll(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := recorder.StopAll(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected first stop error, got %v", err)
	}
	if len(order) != 2 || order[0] != "third" || order[1] != "first" {
		t.Fatalf("unexpected stop order %v", order)
	}
}
