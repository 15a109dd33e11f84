package main

import "bloom/cmd/bloom/root"

func main() {
	root.Execute()
}
