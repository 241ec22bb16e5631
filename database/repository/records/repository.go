package recordsRepo

import (
	"context"

	"meetsync/database"
	"meetsync/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository is the persistence contract for the booking log.
type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingRecord, error)
	GetRecent(ctx context.Context, limit int64) ([]models.BookingRecord, error)
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a BookingRecordRepository backed by MongoDB.
func NewMongoRecordRepo() BookingRecordRepository {
	coll := database.MongoClient.Database("meetsync").Collection("booking_records")
	return &mongoRecordRepo{coll: coll}
}
