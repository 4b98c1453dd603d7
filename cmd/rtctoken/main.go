package main

import (
	"flag"
	"log"

	"github.com/MSSkowron/RTCTokenClient/internal/app"
)

func main() {
	configPath := flag.String("config", "./config.env", "path to the configuration file")
	flag.Parse()

	if err := app.Run(*configPath); err != nil {
		log.Fatalln(err)
	}
}
