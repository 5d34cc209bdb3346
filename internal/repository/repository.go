// Package repository provides data access operations for the application.
// Repositories are the only layer that touches persistent state: they insert
// the validated payload as-is (plus timestamps), run the batched existence
// counts the reference resolver asks for, and classify store-level write
// failures for the handlers.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "meal-mosaic/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// newDocument copies a validated payload into a fresh document and stamps
// it. The caller's payload is never touched.
func newDocument(payload map[string]interface{}, now time.Time) bson.M {
	doc := make(bson.M, len(payload)+2)
	for k, v := range payload {
		doc[k] = v
	}
	doc["createdAt"] = now
	doc["updatedAt"] = now
	return doc
}

// replaceDocument copies a validated payload for a whole-document replace.
// createdAt is left alone so repeated replaces do not drift the document.
func replaceDocument(payload map[string]interface{}, now time.Time) bson.M {
	doc := make(bson.M, len(payload)+1)
	for k, v := range payload {
		doc[k] = v
	}
	delete(doc, "id")
	delete(doc, "_id")
	doc["updatedAt"] = now
	return doc
}

// classifyWriteError maps store-level failures into the error taxonomy:
// duplicate unique keys become the kind's conflict sentinel (409), documents
// the store itself refuses become ErrSchemaRejected (400), and everything
// else passes through for the handler to report as a generic 500.
func classifyWriteError(err error, conflict error) error {
	if err == nil {
		return nil
	}
	if conflict != nil && mongo.IsDuplicateKeyError(err) {
		return conflict
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			// 121 = DocumentValidationFailure
			if we.Code == 121 {
				return apperrors.ErrSchemaRejected
			}
		}
	}
	return err
}

// isValidHexID reports whether id is a syntactically valid store identifier.
func isValidHexID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// hexToObjectIDs converts already-validated hex identifiers. Invalid ids are
// skipped so a count over them can never spuriously match.
func hexToObjectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

// countByHexIDs is the shared batched existence check behind every
// repository's CountByIDs.
func countByHexIDs(ctx context.Context, collection *mongo.Collection, ids []string) (int64, error) {
	return collection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": hexToObjectIDs(ids)}})
}
