package main

import "mlb-insights-service/cmd/mli/cmd"

func main() {
	cmd.Execute()
}
