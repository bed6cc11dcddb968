package recipientModel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sunthewhat/cert-studio-api/common"
)

// Recipient custom attributes are free-form named values, so they live as
// schemaless documents beside the relational rows.
const attributeCollection = "recipient-attrs"

// MirrorAttributes upserts the recipient's custom attribute document. Callers
// treat failures as best-effort; the in-memory store stays authoritative.
func MirrorAttributes(recipientID string, name string, attributes map[string]string) error {
	collection := common.Mongo.Collection(attributeCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc := bson.M{
		"recipient_id": recipientID,
		"name":         name,
		"attributes":   attributes,
		"updated_at":   time.Now(),
	}

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": recipientID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true))
	if err != nil {
		slog.Error("RecipientModel MirrorAttributes failed", "error", err, "recipient_id", recipientID)
		return err
	}

	slog.Debug("RecipientModel mirrored attributes", "recipient_id", recipientID, "count", len(attributes))
	return nil
}

func GetAttributes(recipientID string) (map[string]any, error) {
	collection := common.Mongo.Collection(attributeCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc map[string]any
	err := collection.FindOne(ctx, bson.M{"_id": recipientID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		slog.Error("RecipientModel GetAttributes failed", "error", err, "recipient_id", recipientID)
		return nil, err
	}

	return doc, nil
}

func DeleteAttributes(recipientID string) error {
	collection := common.Mongo.Collection(attributeCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": recipientID})
	if err != nil {
		slog.Error("RecipientModel DeleteAttributes failed", "error", err, "recipient_id", recipientID)
		return err
	}
	return nil
}
