// Command checkmodels lists the Gemini models available to the configured
// API key that support generateContent. Useful to diagnose a wrong or
// expired GOOGLE_API_KEY.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/scribemd/scribemd-go/internal/config"
	"github.com/scribemd/scribemd-go/internal/gemini"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	client := gemini.NewClient(cfg.GoogleAPIKey, cfg.GeminiModel)

	models, err := client.ListModels(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao listar modelos: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== MODELOS DISPONÍVEIS ===")
	for _, m := range models {
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				fmt.Println(strings.TrimPrefix(m.Name, "models/"))
				break
			}
		}
	}
}
