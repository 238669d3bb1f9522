package main

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/handler/openapi"
	"app/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	//.envがあれば読む（なくてもよい）
	_ = godotenv.Load()

	cfg := config.Load("8080")

	greetH := handler.NewGreetingHandler()
	docsH := handler.NewDocsHandler("Greeting API", openapi.Greeting)

	//Server起動
	if err := server.Start(cfg.Addr(), greetH, docsH); err != nil {
		panic(err)
	}
}
