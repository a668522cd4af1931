package main

import "paydesk/internal/app/server"

func main() {
	server.Run()
}
