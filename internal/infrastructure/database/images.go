package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photovault/internal/domain/errs"
	"photovault/internal/domain/model"
	repo "photovault/internal/domain/repository/database"
	"photovault/pkg/logger"
)

type ImageWriter struct {
	db *Database
}

func NewImageWriter(db *Database) *ImageWriter {
	return &ImageWriter{db: db}
}

func (w *ImageWriter) Write(ctx context.Context, image *model.Image) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(ImageCollection)

	_, err := coll.InsertOne(ctx, image)

	return err
}

type ImageRetriever struct {
	db *Database
}

func NewImageRetriever(db *Database) *ImageRetriever {
	return &ImageRetriever{db: db}
}

func (r *ImageRetriever) GetByID(ctx context.Context, owner, id string) (*model.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ImageCollection)

	var image model.Image
	err := coll.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}

		return nil, err
	}

	return &image, nil
}

type ImageLister struct {
	db *Database
}

func NewImageLister(db *Database) *ImageLister {
	return &ImageLister{db: db}
}

func (l *ImageLister) ListByOwner(ctx context.Context, owner string, cursor *repo.FeedCursor,
	limit int,
) ([]model.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(ImageCollection)

	filter := bson.M{"owner": owner}
	if cursor != nil {
		// Strictly after the cursor position in the (uploaded_at desc, _id
		// desc) total order, so concurrent inserts above the cursor never
		// cause duplicates or skips on later pages.
		filter["$or"] = bson.A{
			bson.M{"uploaded_at": bson.M{"$lt": cursor.UploadedAt}},
			bson.M{"uploaded_at": cursor.UploadedAt, "_id": bson.M{"$lt": cursor.ID}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	return l.findImages(ctx, coll, filter, opts)
}

func (l *ImageLister) ListByIDs(ctx context.Context, owner string, ids []string) ([]model.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(ImageCollection)
	filter := bson.M{"owner": owner, "_id": bson.M{"$in": ids}}

	return l.findImages(ctx, coll, filter, options.Find())
}

func (l *ImageLister) ListByVectorIDs(ctx context.Context, owner string, vectorIDs []string) ([]model.Image, error) {
	if len(vectorIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(ImageCollection)
	filter := bson.M{"owner": owner, "vector_id": bson.M{"$in": vectorIDs}}

	return l.findImages(ctx, coll, filter, options.Find())
}

func (l *ImageLister) findImages(ctx context.Context, coll *mongo.Collection, filter bson.M,
	opts *options.FindOptions,
) ([]model.Image, error) {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Error("image query failed", "err", err)

		return nil, err
	}
	defer cur.Close(ctx)

	var images []model.Image
	if err := cur.All(ctx, &images); err != nil {
		logger.Error("failed to decode images", "err", err)

		return nil, err
	}

	return images, nil
}

type ImageRemover struct {
	db *Database
}

func NewImageRemover(db *Database) *ImageRemover {
	return &ImageRemover{db: db}
}

func (r *ImageRemover) Remove(ctx context.Context, owner, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ImageCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
