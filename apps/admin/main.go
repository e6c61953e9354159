package main

import (
	"log"
	"os"

	"github.com/trezcool/synapse/core"
	logsvc "github.com/trezcool/synapse/services/logger"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags), conf)

	cli, err := newCommandLine(conf, logger, os.Stdout)
	if err != nil {
		logger.Fatal("setting up", err)
	}
	if err := cli.run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
