package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Error("consolectl failed")
		os.Exit(1)
	}
}
