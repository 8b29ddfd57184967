package main

import "github.com/bgraf/trackpic/cmd"

func main() {
	cmd.Execute()
}
