package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"properlyapi/internal/entity"
	"properlyapi/internal/usecase"
)

var bookProjection = expression.NamesList(
	expression.Name("id"),
	expression.Name("fullName"),
	expression.Name("releaseDate"),
	expression.Name("authorId"),
)

// BookDynamo persists books in a DynamoDB table keyed by id. Books by author
// are served from a global secondary index on the authorId attribute.
type BookDynamo struct {
	db          DynamoAPI
	table       string
	authorIndex string
}

var _ usecase.BookRepository = (*BookDynamo)(nil)

func NewBookDynamo(db DynamoAPI, table, authorIndex string) *BookDynamo {
	return &BookDynamo{db: db, table: table, authorIndex: authorIndex}
}

func (r *BookDynamo) FindAll(ctx context.Context) ([]entity.Book, error) {
	expr, err := expression.NewBuilder().WithProjection(bookProjection).Build()
	if err != nil {
		return nil, fmt.Errorf("build book projection: %w", err)
	}
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("scan books: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return unmarshalBooks(out.Items)
}

// FindAllByAuthorID queries the authorId index, so cost is proportional to
// the number of matching books rather than the table size. An unknown author
// simply yields an empty slice.
func (r *BookDynamo) FindAllByAuthorID(ctx context.Context, authorID string) ([]entity.Book, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("authorId").Equal(expression.Value(authorID))).
		WithProjection(bookProjection).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build author books query: %w", err)
	}
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.authorIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("query books by author: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return unmarshalBooks(out.Items)
}

func (r *BookDynamo) FindOne(ctx context.Context, id string) (entity.Book, error) {
	expr, err := expression.NewBuilder().WithProjection(bookProjection).Build()
	if err != nil {
		return entity.Book{}, fmt.Errorf("build book projection: %w", err)
	}
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.table),
		Key:                      idKey(id),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return entity.Book{}, fmt.Errorf("get book: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return entity.Book{}, usecase.ErrNotFound
	}
	var b entity.Book
	if err := attributevalue.UnmarshalMap(out.Item, &b); err != nil {
		return entity.Book{}, fmt.Errorf("unmarshal book: %w", err)
	}
	return b, nil
}

// Create writes the book without checking that the referenced author exists;
// the relation is not enforced anywhere.
func (r *BookDynamo) Create(ctx context.Context, in entity.BookInput) (entity.Book, error) {
	b := entity.Book{
		ID:          uuid.NewString(),
		FullName:    in.FullName,
		ReleaseDate: in.ReleaseDate,
		AuthorID:    in.AuthorID,
	}
	item, err := attributevalue.MarshalMap(b)
	if err != nil {
		return entity.Book{}, fmt.Errorf("marshal book: %w", err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:    aws.String(r.table),
		Item:         item,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entity.Book{}, fmt.Errorf("put book: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return b, nil
}

func (r *BookDynamo) Update(ctx context.Context, id string, in entity.BookUpdateInput) (entity.Book, error) {
	patch := NewPatch().
		SetString("fullName", in.FullName).
		SetString("releaseDate", in.ReleaseDate)
	if patch.IsEmpty() {
		return r.FindOne(ctx, id)
	}

	names := patch.Names()
	names["#id"] = "id"
	out, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       idKey(id),
		UpdateExpression:          aws.String(patch.Expression()),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: patch.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var check *types.ConditionalCheckFailedException
		if errors.As(err, &check) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("update book: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	var b entity.Book
	if err := attributevalue.UnmarshalMap(out.Attributes, &b); err != nil {
		return entity.Book{}, fmt.Errorf("unmarshal book: %w", err)
	}
	return b, nil
}

func (r *BookDynamo) Delete(ctx context.Context, id string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       idKey(id),
	})
	if err != nil {
		return fmt.Errorf("delete book: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return nil
}

func unmarshalBooks(items []map[string]types.AttributeValue) ([]entity.Book, error) {
	books := make([]entity.Book, 0, len(items))
	for _, item := range items {
		var b entity.Book
		if err := attributevalue.UnmarshalMap(item, &b); err != nil {
			return nil, fmt.Errorf("unmarshal book: %w", err)
		}
		books = append(books, b)
	}
	return books, nil
}
