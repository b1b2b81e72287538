package main

import "hcm-analyzer/cmd"

func main() {
	cmd.Execute()
}
