package main

import (
	"github.com/joho/godotenv"

	"github.com/hongminglow/all-in-forms/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
