package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vittasaathi/internal/domain/interfaces/repository"
)

type MongoRepository[T any] struct {
	mongo *mongo.Database
}

func NewMongoRepository[T any](mongo *mongo.Database) *MongoRepository[T] {
	return &MongoRepository[T]{mongo: mongo}
}

func (r *MongoRepository[T]) Create(ctx context.Context, collectionName string, entity T) (T, error) {
	collection := r.mongo.Collection(collectionName)
	_, err := collection.InsertOne(ctx, entity)
	return entity, err
}

// Update upserts by conversation_id so a missing document is created rather
// than failing the turn.
func (r *MongoRepository[T]) Update(ctx context.Context, collectionName string, conversationID string, entity T) (T, error) {
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"conversation_id": conversationID}
	update := bson.M{"$set": entity}

	_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return entity, err
}

func (r *MongoRepository[T]) Delete(ctx context.Context, collectionName string, conversationID string) error {
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"conversation_id": conversationID}
	_, err := collection.DeleteOne(ctx, filter)
	return err
}

func (r *MongoRepository[T]) FindByConversationID(ctx context.Context, collectionName string, conversationID string) (T, error) {
	var entity T
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"conversation_id": conversationID}
	err := collection.FindOne(ctx, filter).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, repository.ErrNotFound
	}
	return entity, err
}
