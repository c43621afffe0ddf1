package main

import (
	// import image formats to register them
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"runtime"

	"github.com/matjam/dvdlogo/internal/cli"
)

func init() {
	// glfw, SDL and OpenGL must all be driven from the main thread
	runtime.LockOSThread()
}

func main() {
	cli.Execute()
}
