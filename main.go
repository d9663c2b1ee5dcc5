package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-scoring/api"
	"github.com/a-bouts/nav-scoring/settings"
	"github.com/a-bouts/nav-scoring/xmpp"

	_ "net/http/pprof"
)

func main() {

	fs := flag.NewFlagSet("nav-scoring", flag.ExitOnError)
	var (
		listen         = fs.String("listen", ":8888", "HTTP listen address")
		scoringConfig  = fs.String("scoring-config", "", "scoring config JSON file (defaults when empty)")
		reloadInterval = fs.Uint64("reload-interval", 15, "seconds between scoring config reloads, 0 to disable")
		xmppHost       = fs.String("xmpp-host", "", "")
		xmppJid        = fs.String("xmpp-jid", "", "")
		xmppPassword   = fs.String("xmpp-password", "", "")
		xmppTo         = fs.String("xmpp-to", "", "")
		logFile        = fs.String("log-file", "", "log file, rotated (stdout when empty)")
		logLevel       = fs.String("log-level", "info", "")
		logJSON        = fs.Bool("log-json", false, "")
		cpuprofile     = fs.Bool("cpuprofile", false, "profile every scoring request")
		_              = fs.String("config", "", "config file")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser)); err != nil {
		log.Fatal(err)
	}

	accessLog, err := Logger{File: *logFile, Level: *logLevel, JSON: *logJSON}.Setup()
	if err != nil {
		log.Fatal(err)
	}

	st, err := settings.Load(*scoringConfig)
	if err != nil {
		log.WithError(err).Fatal("Could not load scoring config")
	}
	st.Watch(*reloadInterval)
	defer st.Stop()

	x := &xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}
	if !x.Configured() {
		log.Info("Score notifications disabled")
	}

	router := api.InitServer(*cpuprofile, st, x)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:    *listen,
		Handler: handlers.CombinedLoggingHandler(accessLog, handlers.ProxyHeaders(router)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Start server on %s", *listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Shutdown")
	}
}
