package main

import (
	"flag"
	"log"

	"github.com/danmuck/vbanctl/internal/config"
)

func main() {
	kind := flag.String("kind", "stream", "config kind: stream|server")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to per-kind cmd path)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			switch *kind {
			case "stream", "server":
				path = "cmd/vbanctl/config.toml"
			default:
				log.Fatalf("unknown kind: %s", *kind)
			}
		}

		switch *kind {
		case "stream":
			cfg, err := config.LoadStreamConfig(path)
			if err != nil {
				log.Fatal(err)
			}
			if _, err := config.StreamBuilder(cfg); err != nil {
				log.Fatal(err)
			}
		case "server":
			if _, err := config.LoadServerConfig(path); err != nil {
				log.Fatal(err)
			}
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
		log.Printf("Validated %s config at %s", *kind, path)
		return
	}

	target := *output
	if target == "" {
		target = "cmd/vbanctl/config.toml"
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}
