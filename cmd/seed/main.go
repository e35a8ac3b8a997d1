// Command seed populates the tables with demo data through the repositories,
// so seeded records go through the same id generation as API writes.
package main

import (
	"context"
	"log/slog"
	"os"

	"properlyapi/internal/config"
	"properlyapi/internal/entity"
	"properlyapi/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := store.NewClient(ctx, cfg.AWSRegion, cfg.DynamoEndpoint)
	if err != nil {
		slog.Error("create dynamodb client", "error", err)
		os.Exit(1)
	}

	repos := store.NewRepositories(client, store.Tables{
		Homes:            cfg.HomesTable,
		Authors:          cfg.AuthorsTable,
		Books:            cfg.BooksTable,
		BooksAuthorIndex: cfg.BooksAuthorIndex,
	})
	homes, authors, books := repos.Homes, repos.Authors, repos.Books

	homeInputs := []entity.HomeInput{
		{StreetAddress: "56 Bathurst St.", City: "Toronto", Province: "ON", Country: "Canada", PostalCode: "M5V 2P7"},
		{StreetAddress: "100 County Court Blvd", UnitNumber: "1107", City: "Brampton", Province: "ON", Country: "Canada", PostalCode: "L6W 3X1"},
		{StreetAddress: "800 Robson St", City: "Vancouver", Province: "BC", Country: "Canada", PostalCode: "V6Z 2E7"},
	}
	for _, in := range homeInputs {
		home, err := homes.Create(ctx, in)
		if err != nil {
			slog.Error("seed home", "error", err)
			os.Exit(1)
		}
		slog.Info("seeded home", "id", home.ID, "city", home.City)
	}

	authorBooks := map[entity.AuthorInput][]entity.BookInput{
		{FullName: "Margaret Atwood", Country: "Canada", BirthDate: "11/18/1939"}: {
			{FullName: "The Handmaid's Tale", ReleaseDate: "08/17/1985"},
			{FullName: "Oryx and Crake", ReleaseDate: "05/06/2003"},
		},
		{FullName: "Michael Ondaatje", Country: "Canada", BirthDate: "09/12/1943"}: {
			{FullName: "The English Patient", ReleaseDate: "09/01/1992"},
		},
	}
	for authorInput, bookInputs := range authorBooks {
		author, err := authors.Create(ctx, authorInput)
		if err != nil {
			slog.Error("seed author", "error", err)
			os.Exit(1)
		}
		slog.Info("seeded author", "id", author.ID, "name", author.FullName)

		for _, bookInput := range bookInputs {
			bookInput.AuthorID = author.ID
			book, err := books.Create(ctx, bookInput)
			if err != nil {
				slog.Error("seed book", "error", err)
				os.Exit(1)
			}
			slog.Info("seeded book", "id", book.ID, "title", book.FullName)
		}
	}
}
