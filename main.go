package main

import (
	"github.com/zocchihedron/dicetrack/cmd"
)

func main() {
	cmd.Execute()
}
