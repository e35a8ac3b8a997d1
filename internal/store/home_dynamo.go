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

var homeProjection = expression.NamesList(
	expression.Name("id"),
	expression.Name("streetAddress"),
	expression.Name("unitNumber"),
	expression.Name("city"),
	expression.Name("province"),
	expression.Name("country"),
	expression.Name("postalCode"),
)

// HomeDynamo persists homes in a DynamoDB table keyed by id.
type HomeDynamo struct {
	db    DynamoAPI
	table string
}

var _ usecase.HomeRepository = (*HomeDynamo)(nil)

func NewHomeDynamo(db DynamoAPI, table string) *HomeDynamo {
	return &HomeDynamo{db: db, table: table}
}

// FindAll scans the whole table under the home projection. Cost grows with
// table size; the result order is whatever the store returns.
func (r *HomeDynamo) FindAll(ctx context.Context) ([]entity.Home, error) {
	expr, err := expression.NewBuilder().WithProjection(homeProjection).Build()
	if err != nil {
		return nil, fmt.Errorf("build home projection: %w", err)
	}
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("scan homes: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	homes := make([]entity.Home, 0, len(out.Items))
	for _, item := range out.Items {
		var h entity.Home
		if err := attributevalue.UnmarshalMap(item, &h); err != nil {
			return nil, fmt.Errorf("unmarshal home: %w", err)
		}
		homes = append(homes, h)
	}
	return homes, nil
}

func (r *HomeDynamo) FindOne(ctx context.Context, id string) (entity.Home, error) {
	expr, err := expression.NewBuilder().WithProjection(homeProjection).Build()
	if err != nil {
		return entity.Home{}, fmt.Errorf("build home projection: %w", err)
	}
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.table),
		Key:                      idKey(id),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return entity.Home{}, fmt.Errorf("get home: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return entity.Home{}, usecase.ErrNotFound
	}
	var h entity.Home
	if err := attributevalue.UnmarshalMap(out.Item, &h); err != nil {
		return entity.Home{}, fmt.Errorf("unmarshal home: %w", err)
	}
	return h, nil
}

// Create assigns a fresh id and writes the record unconditionally. The write
// reports the displaced item; with random ids there never is one, so the
// output is ignored and the constructed record is returned.
func (r *HomeDynamo) Create(ctx context.Context, in entity.HomeInput) (entity.Home, error) {
	h := entity.Home{
		ID:            uuid.NewString(),
		StreetAddress: in.StreetAddress,
		UnitNumber:    in.UnitNumber,
		City:          in.City,
		Province:      in.Province,
		Country:       in.Country,
		PostalCode:    in.PostalCode,
	}
	item, err := attributevalue.MarshalMap(h)
	if err != nil {
		return entity.Home{}, fmt.Errorf("marshal home: %w", err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:    aws.String(r.table),
		Item:         item,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entity.Home{}, fmt.Errorf("put home: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return h, nil
}

// Update applies a sparse patch and returns the post-update record. An empty
// patch is a no-op read-back, so it still reports not-found for unknown ids
// without ever sending a malformed mutation to the store.
func (r *HomeDynamo) Update(ctx context.Context, id string, in entity.HomeUpdateInput) (entity.Home, error) {
	patch := NewPatch().
		SetString("streetAddress", in.StreetAddress).
		SetString("unitNumber", in.UnitNumber).
		SetString("city", in.City).
		SetString("province", in.Province).
		SetString("country", in.Country).
		SetString("postalCode", in.PostalCode)
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
			return entity.Home{}, usecase.ErrNotFound
		}
		return entity.Home{}, fmt.Errorf("update home: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	var h entity.Home
	if err := attributevalue.UnmarshalMap(out.Attributes, &h); err != nil {
		return entity.Home{}, fmt.Errorf("unmarshal home: %w", err)
	}
	return h, nil
}

// Delete removes the record unconditionally; deleting an id that never
// existed succeeds.
func (r *HomeDynamo) Delete(ctx context.Context, id string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       idKey(id),
	})
	if err != nil {
		return fmt.Errorf("delete home: %w: %w", usecase.ErrStoreUnavailable, err)
	}
	return nil
}
