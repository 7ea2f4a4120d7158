package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env may provide defaults such as INVOCLEAR_CONTEXT.
	_ = godotenv.Load()

	if err := root().cmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
