package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/handler/openapi"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envがあれば読む（なくてもよい）
	_ = godotenv.Load()

	cfg := config.Load("8081")

	//インメモリのDB代わり（シード2件）
	productRepo := infraRepo.NewProductMemoryRepository([]model.Product{
		{ID: 1, Name: "Laptop", Price: 25000, Stock: 5},
		{ID: 2, Name: "Mouse", Price: 500, Stock: 20},
	})

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	docsH := handler.NewDocsHandler("Product CRUD API", openapi.CRUD)

	//Server起動
	if err := server.Start(cfg.Addr(), productH, docsH); err != nil {
		panic(err)
	}
}
