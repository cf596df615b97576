// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Wachary/BioPlus-AI-1.1/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// Condition applies equality check predicate on the "condition" field. It's identical to ConditionEQ.
func Condition(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldCondition, v))
}

// Similarity applies equality check predicate on the "similarity" field. It's identical to SimilarityEQ.
func Similarity(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSimilarity, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConfidence, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldRank, v))
}

// RecommendationCount applies equality check predicate on the "recommendation_count" field. It's identical to RecommendationCountEQ.
func RecommendationCount(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldRecommendationCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ConditionEQ applies the EQ predicate on the "condition" field.
func ConditionEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldCondition, v))
}

// ConditionNEQ applies the NEQ predicate on the "condition" field.
func ConditionNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldCondition, v))
}

// ConditionIn applies the In predicate on the "condition" field.
func ConditionIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldCondition, vs...))
}

// ConditionNotIn applies the NotIn predicate on the "condition" field.
func ConditionNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldCondition, vs...))
}

// ConditionGT applies the GT predicate on the "condition" field.
func ConditionGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldCondition, v))
}

// ConditionGTE applies the GTE predicate on the "condition" field.
func ConditionGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldCondition, v))
}

// ConditionLT applies the LT predicate on the "condition" field.
func ConditionLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldCondition, v))
}

// ConditionLTE applies the LTE predicate on the "condition" field.
func ConditionLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldCondition, v))
}

// ConditionContains applies the Contains predicate on the "condition" field.
func ConditionContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldCondition, v))
}

// ConditionHasPrefix applies the HasPrefix predicate on the "condition" field.
func ConditionHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldCondition, v))
}

// ConditionHasSuffix applies the HasSuffix predicate on the "condition" field.
func ConditionHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldCondition, v))
}

// ConditionEqualFold applies the EqualFold predicate on the "condition" field.
func ConditionEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldCondition, v))
}

// ConditionContainsFold applies the ContainsFold predicate on the "condition" field.
func ConditionContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldCondition, v))
}

// SimilarityEQ applies the EQ predicate on the "similarity" field.
func SimilarityEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSimilarity, v))
}

// SimilarityNEQ applies the NEQ predicate on the "similarity" field.
func SimilarityNEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSimilarity, v))
}

// SimilarityIn applies the In predicate on the "similarity" field.
func SimilarityIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSimilarity, vs...))
}

// SimilarityNotIn applies the NotIn predicate on the "similarity" field.
func SimilarityNotIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSimilarity, vs...))
}

// SimilarityGT applies the GT predicate on the "similarity" field.
func SimilarityGT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSimilarity, v))
}

// SimilarityGTE applies the GTE predicate on the "similarity" field.
func SimilarityGTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSimilarity, v))
}

// SimilarityLT applies the LT predicate on the "similarity" field.
func SimilarityLT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSimilarity, v))
}

// SimilarityLTE applies the LTE predicate on the "similarity" field.
func SimilarityLTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSimilarity, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldConfidence, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldRank, v))
}

// RecommendationCountEQ applies the EQ predicate on the "recommendation_count" field.
func RecommendationCountEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldRecommendationCount, v))
}

// RecommendationCountNEQ applies the NEQ predicate on the "recommendation_count" field.
func RecommendationCountNEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldRecommendationCount, v))
}

// RecommendationCountIn applies the In predicate on the "recommendation_count" field.
func RecommendationCountIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldRecommendationCount, vs...))
}

// RecommendationCountNotIn applies the NotIn predicate on the "recommendation_count" field.
func RecommendationCountNotIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldRecommendationCount, vs...))
}

// RecommendationCountGT applies the GT predicate on the "recommendation_count" field.
func RecommendationCountGT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldRecommendationCount, v))
}

// RecommendationCountGTE applies the GTE predicate on the "recommendation_count" field.
func RecommendationCountGTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldRecommendationCount, v))
}

// RecommendationCountLT applies the LT predicate on the "recommendation_count" field.
func RecommendationCountLT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldRecommendationCount, v))
}

// RecommendationCountLTE applies the LTE predicate on the "recommendation_count" field.
func RecommendationCountLTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldRecommendationCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.NotPredicates(p))
}
