package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/distrograph/distrograph/pkg/distro"
	"github.com/distrograph/distrograph/pkg/tree"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var (
		src  sourceFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve records and exports over HTTP",
		Long: `Serve records and exports over HTTP.

Endpoints:
  GET /healthz          liveness check
  GET /api/distros      the record collection as JSON
  GET /api/distros/{name}  a single record by name
  GET /api/tree         the family tree as plain text
  GET /exports/*        files from the output directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			records, err := src.records(ctx, cfg)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(records, cfg.OutputDir),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			logger.Info("serving", "addr", addr, "distros", len(records))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// newRouter builds the HTTP routes over a fixed record collection.
func newRouter(records []distro.Record, exportDir string) http.Handler {
	byName := make(map[string]distro.Record, len(records))
	for _, rec := range records {
		byName[distro.NormalizeName(rec.Name)] = rec
	}
	rendered := tree.Render(tree.Build(records))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api/distros", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, records)
	})

	r.Get("/api/distros/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := distro.NormalizeName(chi.URLParam(req, "name"))
		rec, ok := byName[name]
		if !ok {
			http.Error(w, "distribution not found", http.StatusNotFound)
			return
		}
		writeJSON(w, rec)
	})

	r.Get("/api/tree", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(rendered))
	})

	r.Handle("/exports/*", http.StripPrefix("/exports/", http.FileServer(http.Dir(exportDir))))

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
