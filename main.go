package main

import "github.com/hassantayyab/cursor-mobile-chat/cmd"

func main() {
	cmd.Execute()
}
