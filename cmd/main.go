package main

import (
	"log"
	"os"

	"github.com/uts/vosk-transcriber/internal/app"
)

func main() {
	app := app.New()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
