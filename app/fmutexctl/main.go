package main

import "github.com/hydraide/fmutex/app/fmutexctl/cmd"

func main() {
	cmd.Execute()
}
