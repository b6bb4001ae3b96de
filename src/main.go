package main

import (
	"audio-joiner/src/cmd"
)

func main() {
	cmd.Execute()
}
