package main

import "github.com/vfg2006/growth-insights-api/cmd/dbctl/commands"

func main() {
	commands.Execute()
}
