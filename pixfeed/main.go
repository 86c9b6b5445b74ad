package main

import (
	"os"

	"github.com/CMSgov/pixfeed-app/log"
	"github.com/CMSgov/pixfeed-app/pixfeed/pixfeedcli"
)

func main() {
	app := pixfeedcli.GetApp()
	if err := app.Run(os.Args); err != nil {
		log.CLI.Fatal(err)
	}
}
