package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soumajit03/StackUp-PlaylistManager/internal/domain"
)

const collectionName = "playlists"

// Store implements ports.PlaylistStore on a MongoDB collection. Documents are
// keyed by the (userId, playlistId) compound index.
type Store struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewStore wraps the playlists collection of the given database and ensures
// the unique compound index exists.
func NewStore(ctx context.Context, db *mongo.Database) (*Store, error) {
	coll := db.Collection(collectionName)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "playlistId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create playlist index: %v", domain.ErrStore, err)
	}

	return &Store{coll: coll, now: time.Now}, nil
}

func (s *Store) Upsert(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	filter := keyFilter(p.UserID, p.PlaylistID)

	doc := *p
	doc.UpdatedAt = s.now().UTC()
	if doc.CreatedAt.IsZero() {
		if prev, err := s.Get(ctx, p.UserID, p.PlaylistID); err == nil {
			doc.CreatedAt = prev.CreatedAt
		} else {
			doc.CreatedAt = doc.UpdatedAt
		}
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, filter, &doc, opts); err != nil {
		return nil, fmt.Errorf("%w: failed to upsert playlist: %v", domain.ErrStore, err)
	}

	return &doc, nil
}

func (s *Store) Get(ctx context.Context, userID, playlistID string) (*domain.Playlist, error) {
	var p domain.Playlist
	err := s.coll.FindOne(ctx, keyFilter(userID, playlistID)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrPlaylistNotFound, userID, playlistID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load playlist: %v", domain.ErrStore, err)
	}
	return &p, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list playlists: %v", domain.ErrStore, err)
	}
	defer cur.Close(ctx)

	playlists := []domain.Playlist{}
	if err := cur.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("%w: failed to decode playlists: %v", domain.ErrStore, err)
	}
	return playlists, nil
}

// UpdateVideoStatus writes the status of one video entry with a single
// positional $set conditioned on the video id, so concurrent mutations on
// other videos of the same playlist are never overwritten.
func (s *Store) UpdateVideoStatus(ctx context.Context, userID, playlistID, videoID string, status domain.StatusSet) error {
	filter := bson.M{
		"userId":     userID,
		"playlistId": playlistID,
		"videos.id":  videoID,
	}
	update := bson.M{
		"$set": bson.M{
			"videos.$.status": status,
			"updatedAt":       s.now().UTC(),
		},
	}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: failed to update video status: %v", domain.ErrStore, err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing playlist from a missing video.
		if _, err := s.Get(ctx, userID, playlistID); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", domain.ErrVideoNotFound, videoID)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID, playlistID string) error {
	res, err := s.coll.DeleteOne(ctx, keyFilter(userID, playlistID))
	if err != nil {
		return fmt.Errorf("%w: failed to delete playlist: %v", domain.ErrStore, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrPlaylistNotFound, userID, playlistID)
	}
	return nil
}

func keyFilter(userID, playlistID string) bson.M {
	return bson.M{"userId": userID, "playlistId": playlistID}
}
