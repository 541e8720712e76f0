package repository

import "go.mongodb.org/mongo-driver/bson"

type Op string

const (
	OpEq Op = "eq"
	OpGt Op = "gt"
)

// Predicate is one filter clause. Predicates stay store-agnostic until
// ToBSON translates the whole set in one place.
type Predicate struct {
	Field string
	Op    Op
	Value interface{}
}

// SearchFilter is an ordered conjunction of predicates. The zero value
// matches everything.
type SearchFilter struct {
	predicates []Predicate
}

func (f *SearchFilter) Eq(field string, value interface{}) *SearchFilter {
	f.predicates = append(f.predicates, Predicate{Field: field, Op: OpEq, Value: value})
	return f
}

func (f *SearchFilter) Gt(field string, value interface{}) *SearchFilter {
	f.predicates = append(f.predicates, Predicate{Field: field, Op: OpGt, Value: value})
	return f
}

func (f *SearchFilter) Predicates() []Predicate {
	return f.predicates
}

// ToBSON translates the predicate list into the mongo filter document. All
// predicates are ANDed; there is no OR/NOT composition.
func (f *SearchFilter) ToBSON() bson.M {
	query := bson.M{}
	for _, p := range f.predicates {
		switch p.Op {
		case OpGt:
			query[p.Field] = bson.M{"$gt": p.Value}
		default:
			query[p.Field] = p.Value
		}
	}
	return query
}

// SortSpec is a single-field sort. An empty field sorts by _id ascending.
type SortSpec struct {
	Field string
	Desc  bool
}

func (s SortSpec) ToBSON() bson.D {
	field := s.Field
	if field == "" {
		field = "_id"
	}
	order := 1
	if s.Desc {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}
