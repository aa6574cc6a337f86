package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

const candidateCollection = "candidates"

type MongoCandidateRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewCandidateRepository(db *mongo.Database) *MongoCandidateRepository {
	return &MongoCandidateRepository{coll: db.Collection(candidateCollection), now: time.Now}
}

// mongoCandidate adds the insertion timestamp List orders by.
type mongoCandidate struct {
	ID              string   `bson:"_id"`
	Filename        string   `bson:"filename,omitempty"`
	OriginalName    string   `bson:"original_name,omitempty"`
	UploadDate      int64    `bson:"upload_date"`
	Category        string   `bson:"category"`
	Summary         string   `bson:"summary"`
	Skills          []string `bson:"skills"`
	ExperienceYears int      `bson:"experience_years"`
	EducationLevel  string   `bson:"education_level"`
	InsertedAt      int64    `bson:"inserted_at"`
}

// EnsureIndexes creates the index backing List's ordering.
func (r *MongoCandidateRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "inserted_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create candidate indexes: %w", err)
	}
	return nil
}

func (r *MongoCandidateRepository) List(ctx context.Context) ([]*domain.CandidateRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "inserted_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoCandidate
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}

	out := make([]*domain.CandidateRecord, 0, len(docs))
	for i := range docs {
		out = append(out, toDomain(&docs[i]))
	}
	return out, nil
}

func (r *MongoCandidateRepository) Add(ctx context.Context, c *domain.CandidateRecord) (*domain.CandidateRecord, error) {
	doc := fromDomain(c)
	doc.InsertedAt = r.now().UnixNano()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: candidate %s already exists", domain.ErrValidation, c.ID)
		}
		return nil, fmt.Errorf("insert candidate: %w", err)
	}
	return c, nil
}

func (r *MongoCandidateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

// Count reports the number of stored candidates; used to decide on seeding.
func (r *MongoCandidateRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	return n, nil
}

func fromDomain(c *domain.CandidateRecord) mongoCandidate {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	return mongoCandidate{
		ID:              c.ID,
		Filename:        c.Filename,
		OriginalName:    c.OriginalName,
		UploadDate:      timeToUnixNano(c.UploadDate),
		Category:        c.Category,
		Summary:         c.Summary,
		Skills:          skills,
		ExperienceYears: c.ExperienceYears,
		EducationLevel:  c.EducationLevel,
	}
}

func toDomain(d *mongoCandidate) *domain.CandidateRecord {
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}
	return &domain.CandidateRecord{
		ID:              d.ID,
		Filename:        d.Filename,
		OriginalName:    d.OriginalName,
		UploadDate:      unixNanoToTime(d.UploadDate),
		Category:        d.Category,
		Summary:         d.Summary,
		Skills:          skills,
		ExperienceYears: d.ExperienceYears,
		EducationLevel:  d.EducationLevel,
	}
}

// upload_date is stored in Unix nanoseconds so a listed record carries the
// same timestamp the upload returned.
func timeToUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func unixNanoToTime(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}
