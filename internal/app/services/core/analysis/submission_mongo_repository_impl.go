package analysis

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubmissionMongoRepository(db *mongo.Client, dbName string) SubmissionRepository {
	return &SubmissionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubmissions),
	}
}

func (r *SubmissionMongoRepository) InsertSubmission(ctx context.Context, submission *models.Submission) error {
	_, err := r.Collection.InsertOne(ctx, submission)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *SubmissionMongoRepository) FindAllSubmissions(ctx context.Context) ([]*models.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	submissions := make([]*models.Submission, 0)
	for cursor.Next(ctx) {
		var submission models.Submission
		if err := cursor.Decode(&submission); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		submissions = append(submissions, &submission)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return submissions, nil
}

func (r *SubmissionMongoRepository) FindBySubmissionID(ctx context.Context, submissionID string) (*models.Submission, error) {
	var submission models.Submission
	err := r.Collection.FindOne(ctx, bson.M{"submission_id": submissionID}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &submission, nil
}
