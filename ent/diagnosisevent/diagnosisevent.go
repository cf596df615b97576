// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagnosisevent type in the database.
	Label = "diagnosis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCondition holds the string denoting the condition field in the database.
	FieldCondition = "condition"
	// FieldSimilarity holds the string denoting the similarity field in the database.
	FieldSimilarity = "similarity"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldRecommendationCount holds the string denoting the recommendation_count field in the database.
	FieldRecommendationCount = "recommendation_count"
	// Table holds the table name of the diagnosisevent in the database.
	Table = "diagnosis_events"
)

// Columns holds all SQL columns for diagnosisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldCondition,
	FieldSimilarity,
	FieldConfidence,
	FieldRank,
	FieldRecommendationCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ConditionValidator is a validator for the "condition" field. It is called by the builders before save.
	ConditionValidator func(string) error
	// DefaultRecommendationCount holds the default value on creation for the "recommendation_count" field.
	DefaultRecommendationCount int
)

// OrderOption defines the ordering options for the DiagnosisEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCondition orders the results by the condition field.
func ByCondition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCondition, opts...).ToFunc()
}

// BySimilarity orders the results by the similarity field.
func BySimilarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarity, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// ByRecommendationCount orders the results by the recommendation_count field.
func ByRecommendationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationCount, opts...).ToFunc()
}
