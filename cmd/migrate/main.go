// Command migrate provisions the DynamoDB tables: one table per entity keyed
// by id, plus the authorId index that serves books-by-author queries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"properlyapi/internal/config"
	"properlyapi/internal/store"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, status")
	flag.Parse()

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

	switch *command {
	case "up":
		err = up(ctx, client, cfg)
	case "status":
		err = status(ctx, client, cfg)
	default:
		err = fmt.Errorf("unknown command %q, use: up, status", *command)
	}
	if err != nil {
		slog.Error("migrate", "command", *command, "error", err)
		os.Exit(1)
	}
}

func up(ctx context.Context, client *dynamodb.Client, cfg config.Config) error {
	if err := createTable(ctx, client, cfg.HomesTable, ""); err != nil {
		return err
	}
	if err := createTable(ctx, client, cfg.AuthorsTable, ""); err != nil {
		return err
	}
	return createTable(ctx, client, cfg.BooksTable, cfg.BooksAuthorIndex)
}

func status(ctx context.Context, client *dynamodb.Client, cfg config.Config) error {
	for _, table := range []string{cfg.HomesTable, cfg.AuthorsTable, cfg.BooksTable} {
		out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(table),
		})
		if err != nil {
			var missing *types.ResourceNotFoundException
			if errors.As(err, &missing) {
				fmt.Printf("%s\tmissing\n", table)
				continue
			}
			return fmt.Errorf("describe table %s: %w", table, err)
		}
		fmt.Printf("%s\t%s\titems=%d\n", table, out.Table.TableStatus, aws.ToInt64(out.Table.ItemCount))
	}
	return nil
}

// createTable provisions an on-demand table with the id hash key. A non-empty
// authorIndex adds a global secondary index on the authorId attribute.
// Existing tables are left untouched.
func createTable(ctx context.Context, client *dynamodb.Client, name, authorIndex string) error {
	input := &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
	if authorIndex != "" {
		input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String("authorId"),
			AttributeType: types.ScalarAttributeTypeS,
		})
		input.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(authorIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("authorId"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		}
	}

	if _, err := client.CreateTable(ctx, input); err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			slog.Info("table already exists", "table", name)
			return nil
		}
		return fmt.Errorf("create table %s: %w", name, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 2*time.Minute)
	if err != nil {
		return fmt.Errorf("wait for table %s: %w", name, err)
	}
	slog.Info("table created", "table", name)
	return nil
}
