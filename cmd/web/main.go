package main

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"github.com/xhit/go-str2duration/v2"

	"shopping.xdoubleu.com/cmd/web/internal/jobs"
	"shopping.xdoubleu.com/cmd/web/internal/services"
	"shopping.xdoubleu.com/internal/config"
	"shopping.xdoubleu.com/internal/session"
	"shopping.xdoubleu.com/pkg/shoppinglist"
)

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type Application struct {
	logger   *slog.Logger
	config   config.Config
	services *services.Services
	tpl      *template.Template
	jobQueue *threading.JobQueue
}

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))

	client := shoppinglist.New(cfg.APIURL)
	store := session.NewCookieStore(
		cfg.SessionExpiry,
		cfg.Env == configtools.ProdEnv,
	)

	app := NewApplication(logger, cfg, client, store)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err := httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(
	logger *slog.Logger,
	cfg config.Config,
	client shoppinglist.Client,
	store session.Store,
) *Application {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 1, 100)

	app := &Application{
		logger:   logger,
		config:   cfg,
		services: services.New(logger, cfg, jobQueue, client, store),
		tpl:      tpl,
		jobQueue: jobQueue,
	}

	app.setJobs()

	return app
}

func (app *Application) setJobs() {
	interval, err := str2duration.ParseDuration(app.config.RefreshInterval)
	if err != nil {
		panic(err)
	}

	err = app.jobQueue.AddJob(
		jobs.NewResyncJob(app.services.Lists, interval),
		app.services.WebSocket.UpdateState,
	)
	if err != nil {
		panic(err)
	}

	app.services.WebSocket.RegisterTopics(app.jobQueue.FetchJobIDs())
}
