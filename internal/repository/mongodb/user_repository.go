package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type userRepository struct {
	c *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{c: db.Collection(usersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Matches == nil {
		user.Matches = []domain.MatchRecord{}
	}

	if _, err := r.c.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": domain.NormalizeEmail(email)})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var u domain.User
	if err := r.c.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	if len(userIDs) == 0 {
		return []*domain.User{}, nil
	}
	return r.findMany(ctx, bson.M{"user_id": bson.M{"$in": userIDs}}, nil)
}

func (r *userRepository) FindByGender(ctx context.Context, genderIdentity string) ([]*domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return r.findMany(ctx, bson.M{"gender_identity": genderIdentity}, opts)
}

func (r *userRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.User, error) {
	var findOpts []*options.FindOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}
	cur, err := r.c.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []*domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (domain.UpdateResult, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		count, err := r.c.CountDocuments(ctx, bson.M{"user_id": userID})
		if err != nil {
			return domain.UpdateResult{}, err
		}
		return domain.UpdateResult{MatchedCount: count}, nil
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for field, value := range fields {
		set[field] = value
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *userRepository) AppendMatch(ctx context.Context, ownerID, targetID string) (domain.UpdateResult, error) {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"user_id": ownerID},
		bson.M{
			"$push": bson.M{"matches": domain.MatchRecord{UserID: targetID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *userRepository) Ping(ctx context.Context) error {
	return r.c.Database().Client().Ping(ctx, readpref.Primary())
}
