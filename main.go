package main

import (
	"log"

	"github.com/aerialops/skyops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
