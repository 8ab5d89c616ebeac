package patients

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

// CreatePatient is a single atomic upsert keyed on username. There is no
// separate existence check, so two concurrent creates for the same username
// cannot both insert; the loser gets the winner's document back.
func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, bool, error) {
	filter := bson.M{"username": patient.Username}
	update := bson.M{
		"$setOnInsert": bson.M{
			"username": patient.Username,
			"phone":    patient.Phone,
			"diseases": patient.Diseases,
			"created":  patient.Created,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var existing models.Patient
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&existing)
	if err != nil {
		// No prior document means the upsert inserted ours.
		if err == mongo.ErrNoDocuments {
			return patient, true, nil
		}
		return nil, false, exceptions.ErrMongoDBInsertDocument(err)
	}
	return &existing, false, nil
}

func (r *PatientMongoRepository) FindByUsername(ctx context.Context, username string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) SearchPatients(ctx context.Context, username, phone string) ([]*models.Patient, error) {
	var conditions []bson.M
	if username != "" {
		conditions = append(conditions, bson.M{"username": username})
	}
	if phone != "" {
		conditions = append(conditions, bson.M{"phone": phone})
	}

	filter := bson.M{}
	if len(conditions) == 1 {
		filter = conditions[0]
	} else if len(conditions) > 1 {
		filter = bson.M{"$and": conditions}
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]*models.Patient, 0)
	for cursor.Next(ctx) {
		var patient models.Patient
		if err := cursor.Decode(&patient); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		patients = append(patients, &patient)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (r *PatientMongoRepository) AddDiseaseEvent(ctx context.Context, username string, event *models.DiseaseEvent) (int64, int64, error) {
	filter := bson.M{"username": username}
	update := bson.M{
		"$addToSet": bson.M{"diseases": event},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}
