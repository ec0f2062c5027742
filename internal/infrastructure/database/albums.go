package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"photovault/internal/domain/errs"
	"photovault/internal/domain/model"
	"photovault/pkg/logger"
)

// AlbumStore implements the album metadata surface. Membership mutations that
// touch both the private record and the public mirror run inside one MongoDB
// transaction, so no reader observes a partially-applied change.
type AlbumStore struct {
	db *Database
}

func NewAlbumStore(db *Database) *AlbumStore {
	return &AlbumStore{db: db}
}

func (s *AlbumStore) albums() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(AlbumCollection)
}

func (s *AlbumStore) publicAlbums() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(PublicAlbumCollection)
}

func (s *AlbumStore) inTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	session, err := s.db.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})

	return err
}

func (s *AlbumStore) Create(ctx context.Context, album *model.Album, mirror *model.PublicAlbum) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	if mirror == nil {
		_, err := s.albums().InsertOne(ctx, album)

		return err
	}

	return s.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := s.albums().InsertOne(sc, album); err != nil {
			return err
		}
		_, err := s.publicAlbums().InsertOne(sc, mirror)

		return err
	})
}

func (s *AlbumStore) AddImage(ctx context.Context, owner, albumID, imageID string, public bool) error {
	return s.mutateMembership(ctx, owner, albumID, public, bson.M{"$addToSet": bson.M{"image_ids": imageID}})
}

func (s *AlbumStore) RemoveImage(ctx context.Context, owner, albumID, imageID string, public bool) error {
	return s.mutateMembership(ctx, owner, albumID, public, bson.M{"$pull": bson.M{"image_ids": imageID}})
}

func (s *AlbumStore) mutateMembership(ctx context.Context, owner, albumID string, public bool, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	if !public {
		res, err := s.albums().UpdateOne(ctx, bson.M{"_id": albumID, "owner": owner}, update)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return errs.ErrNotFound
		}

		return nil
	}

	return s.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := s.albums().UpdateOne(sc, bson.M{"_id": albumID, "owner": owner}, update)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return errs.ErrNotFound
		}

		if _, err := s.publicAlbums().UpdateOne(sc, bson.M{"_id": albumID}, update); err != nil {
			return err
		}

		return nil
	})
}

// Delete removes the private record first and the mirror second as two
// independent deletes. A mirror left behind by a failed second delete is a
// documented gap, not a retried condition.
func (s *AlbumStore) Delete(ctx context.Context, owner, albumID string, public bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.albums().DeleteOne(ctx, bson.M{"_id": albumID, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	if !public {
		return nil
	}

	if _, err := s.publicAlbums().DeleteOne(ctx, bson.M{"_id": albumID}); err != nil {
		logger.Error("public mirror delete failed, mirror orphaned", "album", albumID, "err", err)

		return err
	}

	return nil
}

func (s *AlbumStore) ScrubImage(ctx context.Context, owner, imageID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	pull := bson.M{"$pull": bson.M{"image_ids": imageID}}

	return s.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := s.albums().UpdateMany(sc,
			bson.M{"owner": owner, "image_ids": imageID}, pull); err != nil {
			return err
		}
		if _, err := s.publicAlbums().UpdateMany(sc,
			bson.M{"owner_id": owner, "image_ids": imageID}, pull); err != nil {
			return err
		}

		return nil
	})
}

func (s *AlbumStore) GetByID(ctx context.Context, owner, albumID string) (*model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var album model.Album
	err := s.albums().FindOne(ctx, bson.M{"_id": albumID, "owner": owner}).Decode(&album)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}

		return nil, err
	}

	return &album, nil
}

func (s *AlbumStore) GetPublic(ctx context.Context, albumID string) (*model.PublicAlbum, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var album model.PublicAlbum
	err := s.publicAlbums().FindOne(ctx, bson.M{"_id": albumID}).Decode(&album)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}

		return nil, err
	}

	return &album, nil
}

func (s *AlbumStore) ListByOwner(ctx context.Context, owner string) ([]model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cur, err := s.albums().Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var albums []model.Album
	if err := cur.All(ctx, &albums); err != nil {
		return nil, err
	}

	return albums, nil
}

func (s *AlbumStore) ListPublicByOwner(ctx context.Context, owner string) ([]model.PublicAlbum, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cur, err := s.publicAlbums().Find(ctx, bson.M{"owner_id": owner})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var albums []model.PublicAlbum
	if err := cur.All(ctx, &albums); err != nil {
		return nil, err
	}

	return albums, nil
}
