package main

import (
	"flag"
	"log"

	"ptd/internal/di"
	"ptd/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "duplicate logs to the console")
	flag.Parse()

	_, err := di.InitApp(flags)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
}
