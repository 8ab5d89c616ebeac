package workers

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkerMongoRepository struct {
	Collection *mongo.Collection
}

func NewWorkerMongoRepository(db *mongo.Client, dbName string) WorkerRepository {
	return &WorkerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAshaWorkers),
	}
}

// CreateWorker upserts atomically on mobile, so two concurrent registrations
// with the same number cannot both insert.
func (r *WorkerMongoRepository) CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, bool, error) {
	filter := bson.M{"mobile": worker.Mobile}
	update := bson.M{
		"$setOnInsert": bson.M{
			"name":      worker.Name,
			"asha_id":   worker.AshaID,
			"mobile":    worker.Mobile,
			"education": worker.Education,
			"years":     worker.Years,
			"village":   worker.Village,
			"password":  worker.Password,
			"photo":     worker.Photo,
			"created":   worker.Created,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var existing models.Worker
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return worker, true, nil
		}
		return nil, false, exceptions.ErrMongoDBInsertDocument(err)
	}
	return &existing, false, nil
}

func (r *WorkerMongoRepository) FindByMobile(ctx context.Context, mobile string) (*models.Worker, error) {
	var worker models.Worker
	err := r.Collection.FindOne(ctx, bson.M{"mobile": mobile}).Decode(&worker)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &worker, nil
}

func (r *WorkerMongoRepository) FindByAshaID(ctx context.Context, ashaID string) (*models.Worker, error) {
	var worker models.Worker
	err := r.Collection.FindOne(ctx, bson.M{"asha_id": ashaID}).Decode(&worker)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &worker, nil
}

func (r *WorkerMongoRepository) UpdateByMobile(ctx context.Context, mobile string, changes map[string]interface{}) (int64, int64, error) {
	filter := bson.M{"mobile": mobile}
	update := bson.M{"$set": changes}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}
