package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilter_ZeroValueMatchesEverything(t *testing.T) {
	f := &SearchFilter{}
	require.Empty(t, f.Predicates())
	require.Equal(t, bson.M{}, f.ToBSON())
}

func TestSearchFilter_PredicateOrder(t *testing.T) {
	f := &SearchFilter{}
	f.Eq("region", "Bretagne").Eq("program", "BUT").Gt("admittedBacPro", 0)

	preds := f.Predicates()
	require.Len(t, preds, 3)
	require.Equal(t, Predicate{Field: "region", Op: OpEq, Value: "Bretagne"}, preds[0])
	require.Equal(t, Predicate{Field: "program", Op: OpEq, Value: "BUT"}, preds[1])
	require.Equal(t, Predicate{Field: "admittedBacPro", Op: OpGt, Value: 0}, preds[2])
}

func TestSearchFilter_ToBSON(t *testing.T) {
	f := &SearchFilter{}
	f.Eq("region", "Île-de-France")
	f.Gt("admittedBacGeneral", 0)
	f.Eq("hasDetailedInfo", true)

	require.Equal(t, bson.M{
		"region":             "Île-de-France",
		"admittedBacGeneral": bson.M{"$gt": 0},
		"hasDetailedInfo":    true,
	}, f.ToBSON())
}

func TestSortSpec_Defaults(t *testing.T) {
	require.Equal(t, bson.D{{Key: "_id", Value: 1}}, SortSpec{}.ToBSON())
	require.Equal(t, bson.D{{Key: "candidateCount", Value: -1}}, SortSpec{Field: "candidateCount", Desc: true}.ToBSON())
	require.Equal(t, bson.D{{Key: "region", Value: 1}}, SortSpec{Field: "region"}.ToBSON())
}
