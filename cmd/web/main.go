package main

import "epicevents/internal/app"

func main() {
	app.Run()
}
