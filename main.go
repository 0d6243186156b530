package main

import cmd "github.com/rohmanhakim/safeurl/internal/cli"

func main() {
	cmd.Execute()
}
