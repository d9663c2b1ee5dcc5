package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	File  string
	Level string
	JSON  bool
}

// Setup configures the standard logrus logger and returns the writer access
// logs should go to.
func (l Logger) Setup() (io.Writer, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if l.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if l.File != "" {
		out = &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
	}
	log.SetOutput(out)

	return out, nil
}
