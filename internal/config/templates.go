package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "stream":
		return streamTemplate, nil
	case "server":
		return serverTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const streamTemplate = `protocol = "audio"
sample_rate = 48000
samples = 256
channels = 2
format = "int16"
codec = "pcm"
stream_name = "Stream1"
`

const serverTemplate = `name = "vban-inspect"
addr = ":9040"
cors_origins = ["http://localhost:3000"]
`
