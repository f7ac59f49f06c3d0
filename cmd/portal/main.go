package main

import "github.com/vfg2006/growth-insights-api/cmd/portal/commands"

func main() {
	commands.Execute()
}
