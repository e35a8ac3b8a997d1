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

var authorProjection = expression.NamesList(
	expression.Name("id"),
	expression.Name("fullName"),
	expression.Name("country"),
	expression.Name("birthDate"),
)

// AuthorDynamo persists authors in a DynamoDB table keyed by id. Deleting an
// author does not cascade to its books.
type AuthorDynamo struct {
	db    DynamoAPI
	table string
}

var _ usecase.AuthorRepository = (*AuthorDynamo)(nil)

func NewAuthorDynamo(db DynamoAPI, table string) *AuthorDynamo {
	return &AuthorDynamo{db: db, table: table}
}

func (r *AuthorDynamo) FindAll(ctx context.Context) ([]entity.Author, error) {
	expr, err := expression.NewBuilder().WithProjection(authorProjection).Build()
	if err != nil {
		return nil, fmt.Errorf("build author projection: %w", err)
	}
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	authors := make([]entity.Author, 0, len(out.Items))
	for _, item := range out.Items {
		var a entity.Author
		if err := attributevalue.UnmarshalMap(item, &a); err != nil {
			return nil, fmt.Errorf("unmarshal author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, nil
}

func (r *AuthorDynamo) FindOne(ctx context.Context, id string) (entity.Author, error) {
	expr, err := expression.NewBuilder().WithProjection(authorProjection).Build()
	if err != nil {
		return entity.Author{}, fmt.Errorf("build author projection: %w", err)
	}
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.table),
		Key:                      idKey(id),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return entity.Author{}, fmt.Errorf("get author: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return entity.Author{}, usecase.ErrNotFound
	}
	var a entity.Author
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return entity.Author{}, fmt.Errorf("unmarshal author: %w", err)
	}
	return a, nil
}

func (r *AuthorDynamo) Create(ctx context.Context, in entity.AuthorInput) (entity.Author, error) {
	a := entity.Author{
		ID:        uuid.NewString(),
		FullName:  in.FullName,
		Country:   in.Country,
		BirthDate: in.BirthDate,
	}
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return entity.Author{}, fmt.Errorf("marshal author: %w", err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:    aws.String(r.table),
		Item:         item,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entity.Author{}, fmt.Errorf("put author: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return a, nil
}

func (r *AuthorDynamo) Update(ctx context.Context, id string, in entity.AuthorUpdateInput) (entity.Author, error) {
	patch := NewPatch().
		SetString("fullName", in.FullName).
		SetString("country", in.Country).
		SetString("birthDate", in.BirthDate)
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
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, fmt.Errorf("update author: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	var a entity.Author
	if err := attributevalue.UnmarshalMap(out.Attributes, &a); err != nil {
		return entity.Author{}, fmt.Errorf("unmarshal author: %w", err)
	}
	return a, nil
}

func (r *AuthorDynamo) Delete(ctx context.Context, id string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       idKey(id),
	})
	if err != nil {
		return fmt.Errorf("delete author: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return nil
}
