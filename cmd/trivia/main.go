package main

import (
	"github.com/xaca/triviaboard-go/internal/cli"
)

func main() {
	cli.Execute()
}
