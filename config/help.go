package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
  ezan-uygulamasi backend

  Usage:
    ezan -mode=<mode> [-config-path=config.yaml]

  Modes:
    api-service      REST backend (prayer times, qibla, settings, devices)
    compass-service  WebSocket compass gateway

  Configuration is read from the YAML file, then overridden by environment
  variables (see config.Config struct tags).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective non-secret configuration at startup.
func PrintConfig(cfg *Config) {
	fmt.Printf("mode: %s\n", cfg.Mode)
	fmt.Printf("database: %s:%s/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	fmt.Printf("rabbitmq: %s:%s\n", cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	fmt.Printf("aladhan: %s (method %d)\n", cfg.Aladhan.BaseURL, cfg.Aladhan.DefaultMethod)
	fmt.Printf("api port: %s, compass port: %s\n", cfg.Services.ApiService, cfg.Services.CompassService)
}
