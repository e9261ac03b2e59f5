package main

import (
	"log"

	"webhook-guard/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
