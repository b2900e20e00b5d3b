// Command createuser registers a user in the JSON user store.
//
// Usage: createuser <username> <password>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/scribemd/scribemd-go/internal/config"
	"github.com/scribemd/scribemd-go/internal/repository"
	"github.com/scribemd/scribemd-go/internal/service"
)

func main() {
	godotenv.Load()

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: createuser <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	cfg := config.Load()
	repo := repository.NewUserRepository(cfg.UsersFile)
	authService := service.NewAuthService(repo, cfg.JWTSecret, cfg.JWTExpiry)

	if err := authService.CreateUser(context.Background(), username, password); err != nil {
		fmt.Fprintf(os.Stderr, "erro: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("usuário %q criado com sucesso\n", username)
}
