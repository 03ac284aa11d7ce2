package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/labelplot/labelplot/pkg/cache"
	"github.com/labelplot/labelplot/pkg/errors"
	"github.com/labelplot/labelplot/pkg/pipeline"
)

// Environment variables for server cache configuration.
const (
	envCacheBackend  = "LABELPLOT_CACHE"       // file, redis, mongo, none
	envRedisAddr     = "LABELPLOT_REDIS_ADDR"  // host:port
	envRedisPassword = "LABELPLOT_REDIS_PASSWORD"
	envMongoURI      = "LABELPLOT_MONGO_URI"
)

// serveCommand creates the serve command, a small HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP server that plots posted datasets",
		Long: `Run an HTTP server that plots posted datasets.

Endpoints:
  POST /v1/plot    JSON body with the raw data plus pipeline options,
                   responds with the rendered artifact (SVG by default)
  GET  /healthz    liveness check

The cache backend is picked from LABELPLOT_CACHE (file, redis, mongo,
none); redis and mongo read LABELPLOT_REDIS_ADDR and LABELPLOT_MONGO_URI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	if err := errors.ValidateListenAddr(addr); err != nil {
		return err
	}

	backend, err := serveCache(ctx)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName)
	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.serveRouter(runner),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// serveCache builds the cache backend selected by the environment.
// The server defaults to the same file cache the CLI uses.
func serveCache(ctx context.Context) (cache.Cache, error) {
	switch os.Getenv(envCacheBackend) {
	case "", "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     os.Getenv(envRedisAddr),
			Password: os.Getenv(envRedisPassword),
		})
	case "mongo":
		return cache.NewMongoCache(ctx, cache.MongoConfig{
			URI: os.Getenv(envMongoURI),
		})
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"invalid %s: %q (must be one of: file, redis, mongo, none)",
			envCacheBackend, os.Getenv(envCacheBackend))
	}
}

// serveRouter builds the chi router with request-ID logging middleware.
func (c *CLI) serveRouter(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", handleHealth)
	r.Post("/v1/plot", handlePlot(runner))

	return r
}

// requestLogger tags each request with a UUID and logs it on completion.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		logger := c.Logger.With("request_id", id)
		w.Header().Set("X-Request-ID", id)

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req.WithContext(withLogger(req.Context(), logger)))

		logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// plotRequest is the POST /v1/plot body: raw tabular data plus the same
// options the CLI accepts. One artifact per request; the first entry of
// formats wins, defaulting to SVG.
type plotRequest struct {
	Data string `json:"data"`
	pipeline.Options
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func handlePlot(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body plotRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput,
				"invalid request body: %v", err))
			return
		}
		if body.Data == "" {
			writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput,
				"data is required"))
			return
		}

		opts := body.Options
		opts.Source = []byte(body.Data)
		opts.Input = ""
		opts.Logger = loggerFromContext(req.Context())

		format := pipeline.FormatSVG
		if len(opts.Formats) > 0 {
			format = opts.Formats[0]
		}
		opts.Formats = []string{format}

		res, err := runner.Execute(req.Context(), opts)
		if err != nil {
			writeError(w, httpStatus(err), err)
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("X-Cache", cacheHeader(res.CacheInfo.RenderHit))
		_, _ = w.Write(res.Artifacts[format])
	}
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// httpStatus maps pipeline error codes to HTTP status codes.
func httpStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidColumn, errors.ErrCodeInvalidPath, errors.ErrCodeEmptyDataset:
		return http.StatusBadRequest
	case errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}
