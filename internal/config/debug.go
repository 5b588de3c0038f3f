package config

import "os"

func IsDebug() bool {
	return os.Getenv("VOCAB_DEBUG") == "1"
}
