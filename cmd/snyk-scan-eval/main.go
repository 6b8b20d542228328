package main

import "snyk-scan-eval/internal/cli"

func main() {
	cli.Execute()
}
