package main

import (
	"bankdesk/cmd"
)

func main() {
	cmd.Execute()
}
