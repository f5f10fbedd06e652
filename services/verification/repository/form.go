package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/constants"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// formDocument is the stored shape of a form. Ids are ObjectIDs.
type formDocument struct {
	ID          primitive.ObjectID  `bson:"_id"`
	Title       string              `bson:"title"`
	Admin       primitive.ObjectID  `bson:"admin"`
	MsgSrvcName string              `bson:"msgSrvcName,omitempty"`
	FormFields  []formFieldDocument `bson:"form_fields"`
}

type formFieldDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	FieldType    models.FieldType   `bson:"fieldType"`
	Title        string             `bson:"title"`
	IsVerifiable bool               `bson:"isVerifiable"`
}

func (d *formDocument) toModel() *models.Form {
	fields := make([]models.FormField, 0, len(d.FormFields))
	for _, f := range d.FormFields {
		fields = append(fields, models.FormField{
			ID:           f.ID.Hex(),
			FieldType:    f.FieldType,
			Title:        f.Title,
			IsVerifiable: f.IsVerifiable,
		})
	}
	return &models.Form{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		AdminID:     d.Admin.Hex(),
		MsgSrvcName: d.MsgSrvcName,
		FormFields:  fields,
	}
}

// FormRepo reads form definitions from the forms collection
type FormRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewFormRepo creates a form repository on db
func NewFormRepo(cfg *models.Config, db *mongo.Database) *FormRepo {
	timeout := cfg.Mongo.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FormRepo{
		coll:    db.Collection(constants.CollectionForms),
		timeout: timeout,
	}
}

// GetFormByID loads the fields of a form needed for verification. formID
// is the hex form of the form's ObjectID; anything else is not found.
func (r *FormRepo) GetFormByID(ctx context.Context, formID string) (*models.Form, error) {
	oid, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return nil, verification.ErrFormNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{
		"title":       1,
		"admin":       1,
		"msgSrvcName": 1,
		"form_fields": 1,
	})

	var doc formDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, verification.ErrFormNotFound
		}
		return nil, verification.WrapDatabase(fmt.Errorf("failed to get form: %w", err))
	}
	return doc.toModel(), nil
}
