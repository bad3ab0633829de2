package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"room-furnisher/core/storage"

	"github.com/minio/minio-go/v7"
)

// Object names used when the configuration leaves them empty.
const (
	DefaultTypesObject = "tables/furniture_types.csv"
	DefaultSetsObject  = "tables/furniture_sets.csv"
)

// Storage reads both tables as CSV objects from a bucket.
type Storage struct {
	client      storage.Client
	bucket      string
	typesObject string
	setsObject  string
}

// NewStorage creates a source reading typesObject and setsObject from bucket.
// Empty object names fall back to the defaults.
func NewStorage(client storage.Client, bucket, typesObject, setsObject string) *Storage {
	if typesObject == "" {
		typesObject = DefaultTypesObject
	}
	if setsObject == "" {
		setsObject = DefaultSetsObject
	}
	return &Storage{client: client, bucket: bucket, typesObject: typesObject, setsObject: setsObject}
}

func (s *Storage) Name() string { return KindStorage + ":" + s.bucket }

func (s *Storage) FurnitureTypes(ctx context.Context) ([][]string, error) {
	return s.readCSV(ctx, s.typesObject)
}

func (s *Storage) FurnitureSets(ctx context.Context) ([][]string, error) {
	return s.readCSV(ctx, s.setsObject)
}

func (s *Storage) readCSV(ctx context.Context, object string) ([][]string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", object, err)
	}
	defer obj.Close()

	r := csv.NewReader(obj)
	// Field counts are validated when the tables are built
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", object, err)
	}
	return rows, nil
}

// Publish writes both tables of src to the bucket as CSV objects.
func (s *Storage) Publish(ctx context.Context, src Source) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}

	types, err := src.FurnitureTypes(ctx)
	if err != nil {
		return err
	}
	if err := s.writeCSV(ctx, s.typesObject, types); err != nil {
		return err
	}

	sets, err := src.FurnitureSets(ctx)
	if err != nil {
		return err
	}
	return s.writeCSV(ctx, s.setsObject, sets)
}

func (s *Storage) writeCSV(ctx context.Context, object string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode %s: %w", object, err)
	}

	_, err := s.client.PutObject(ctx, s.bucket, object, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", object, err)
	}
	return nil
}
