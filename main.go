package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/yorkei04/portfolio/internal/cli"
)

var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
