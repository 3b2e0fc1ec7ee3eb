package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/openshop/storefront/scripts/internal"
)

// Command represents a script that can be run
type Command struct {
	Name        string
	Description string
	Run         func() error
}

var commands = []Command{
	{
		Name:        "price-basket",
		Description: "Price a basket JSON file with the checkout calculator",
		Run:         internal.PriceBasket,
	},
	{
		Name:        "fetch-discounts",
		Description: "List the discounts the storefront offers for a product",
		Run:         internal.FetchDiscounts,
	},
}

func main() {
	var (
		listCommands bool
		cmdName      string
		basketFile   string
		productID    string
	)

	flag.BoolVar(&listCommands, "list", false, "List all available commands")
	flag.StringVar(&cmdName, "cmd", "", "Command to run")
	flag.StringVar(&basketFile, "basket-file", "", "Path to a basket JSON file")
	flag.StringVar(&productID, "product-id", "", "Product ID for discount lookups")

	flag.Parse()

	if listCommands {
		fmt.Println("Available commands:")
		for _, cmd := range commands {
			fmt.Printf("  %-20s %s\n", cmd.Name, cmd.Description)
		}
		return
	}

	if cmdName == "" {
		log.Fatal("Please specify a command to run using -cmd flag. Use -list to see available commands.")
	}

	if basketFile != "" {
		os.Setenv("BASKET_FILE", basketFile)
	}
	if productID != "" {
		os.Setenv("PRODUCT_ID", productID)
	}

	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Run(); err != nil {
				log.Fatalf("Error running command %s: %v", cmdName, err)
			}
			return
		}
	}

	log.Fatalf("Unknown command: %s. Use -list to see available commands.", cmdName)
}
