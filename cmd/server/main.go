package main

import (
	"github.com/sirupsen/logrus"

	"github.com/ragunandhant/photo-overlay/config"
	"github.com/ragunandhant/photo-overlay/internal/appServer"
)

func main() {
	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err.Error())
	}

	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("error parsing config: %s", err.Error())
	}

	appServer.NewServer(cfg)
}
