package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/projetprice/formation-svc/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FormationRepository interface {
	// FindPaged runs the filter with sort and paging and also returns the
	// total match count, computed against the same filter without paging.
	FindPaged(ctx context.Context, filter *SearchFilter, sort SortSpec, page, size int) ([]domain.Formation, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Formation, error)
	SearchTopByName(ctx context.Context, query string, limit int) ([]domain.Formation, error)
	DistinctFieldValues(ctx context.Context, field string) ([]string, error)
	Save(ctx context.Context, formation *domain.Formation) (*domain.Formation, error)
	SaveAll(ctx context.Context, formations []domain.Formation) error
}

type formationRepository struct {
	col *mongo.Collection
}

func NewFormationRepository(db *mongo.Database) FormationRepository {
	return &formationRepository{col: db.Collection("formations")}
}

func (r *formationRepository) FindPaged(ctx context.Context, filter *SearchFilter, sort SortSpec, page, size int) ([]domain.Formation, int64, error) {
	if filter == nil {
		filter = &SearchFilter{}
	}
	query := filter.ToBSON()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count formations: %w", err)
	}

	opts := options.Find().
		SetSort(sort.ToBSON()).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find formations: %w", err)
	}

	formations := []domain.Formation{}
	if err := cur.All(ctx, &formations); err != nil {
		return nil, 0, fmt.Errorf("decode formations: %w", err)
	}
	return formations, total, nil
}

func (r *formationRepository) FindByID(ctx context.Context, id string) (*domain.Formation, error) {
	formation := &domain.Formation{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(formation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find formation by id: %w", err)
	}
	return formation, nil
}

func (r *formationRepository) SearchTopByName(ctx context.Context, query string, limit int) ([]domain.Formation, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	opts := options.Find().SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"establishmentName": pattern}, opts)
	if err != nil {
		return nil, fmt.Errorf("search formations by name: %w", err)
	}

	formations := []domain.Formation{}
	if err := cur.All(ctx, &formations); err != nil {
		return nil, fmt.Errorf("decode formations: %w", err)
	}
	return formations, nil
}

// DistinctFieldValues returns the distinct string values of any field, in
// store order. The field name is not validated; unknown fields simply yield
// an empty result.
func (r *formationRepository) DistinctFieldValues(ctx context.Context, field string) ([]string, error) {
	raw, err := r.col.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct %q: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values, nil
}

func (r *formationRepository) Save(ctx context.Context, formation *domain.Formation) (*domain.Formation, error) {
	if formation == nil {
		return nil, errors.New("nil formation")
	}
	if formation.ID == "" {
		formation.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": formation.ID}, formation, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("save formation: %w", err)
	}
	return formation, nil
}

func (r *formationRepository) SaveAll(ctx context.Context, formations []domain.Formation) error {
	if len(formations) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(formations))
	for i := range formations {
		if formations[i].ID == "" {
			formations[i].ID = primitive.NewObjectID().Hex()
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": formations[i].ID}).
			SetReplacement(formations[i]).
			SetUpsert(true))
	}

	if _, err := r.col.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("bulk save formations: %w", err)
	}
	return nil
}
