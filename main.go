package main

import (
	"github.com/charmbracelet/log"

	"github.com/juancwu/quiz-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
