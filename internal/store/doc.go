package store

import (
	"context"
	"fmt"

	"github.com/stepwiselabs/stepwise/ent"
	"github.com/stepwiselabs/stepwise/ent/studentdoc"
)

// docRepo implements DocRepo backed by the student_docs table.
type docRepo struct {
	client *ent.Client
}

func (r *docRepo) GetDoc(ctx context.Context, studentID, kind string) ([]byte, bool, error) {
	doc, err := r.client.StudentDoc.Query().
		Where(studentdoc.StudentID(studentID), studentdoc.Kind(kind)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query student doc: %w", err)
	}
	return doc.Payload, true, nil
}

func (r *docRepo) PutDoc(ctx context.Context, studentID, kind string, schemaVersion int, payload []byte) error {
	existing, err := r.client.StudentDoc.Query().
		Where(studentdoc.StudentID(studentID), studentdoc.Kind(kind)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetSchemaVersion(schemaVersion).
			SetPayload(payload).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update student doc: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.StudentDoc.Create().
			SetStudentID(studentID).
			SetKind(kind).
			SetSchemaVersion(schemaVersion).
			SetPayload(payload).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create student doc: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query student doc: %w", err)
	}
}

func (r *docRepo) DeleteDocs(ctx context.Context, studentID string) error {
	_, err := r.client.StudentDoc.Delete().
		Where(studentdoc.StudentID(studentID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete student docs: %w", err)
	}
	return nil
}
