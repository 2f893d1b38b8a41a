package main

import "ornasync/cmd"

func main() {
	cmd.Execute()
}
