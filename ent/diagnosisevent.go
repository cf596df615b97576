// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Wachary/BioPlus-AI-1.1/ent/diagnosisevent"
)

// DiagnosisEvent is the model entity for the DiagnosisEvent schema.
type DiagnosisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Condition holds the value of the "condition" field.
	Condition string `json:"condition,omitempty"`
	// Cosine similarity against the reference profile, 0.0-1.0
	Similarity float64 `json:"similarity,omitempty"`
	// Bounded confidence percentage, 0-100
	Confidence int `json:"confidence,omitempty"`
	// Position in the ranked result, 1-based
	Rank int `json:"rank,omitempty"`
	// RecommendationCount holds the value of the "recommendation_count" field.
	RecommendationCount int `json:"recommendation_count,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldSimilarity:
			values[i] = new(sql.NullFloat64)
		case diagnosisevent.FieldID, diagnosisevent.FieldSequence, diagnosisevent.FieldConfidence, diagnosisevent.FieldRank, diagnosisevent.FieldRecommendationCount:
			values[i] = new(sql.NullInt64)
		case diagnosisevent.FieldSessionID, diagnosisevent.FieldCondition:
			values[i] = new(sql.NullString)
		case diagnosisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosisEvent fields.
func (_m *DiagnosisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagnosisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case diagnosisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case diagnosisevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case diagnosisevent.FieldCondition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition", values[i])
			} else if value.Valid {
				_m.Condition = value.String
			}
		case diagnosisevent.FieldSimilarity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity", values[i])
			} else if value.Valid {
				_m.Similarity = value.Float64
			}
		case diagnosisevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = int(value.Int64)
			}
		case diagnosisevent.FieldRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = int(value.Int64)
			}
		case diagnosisevent.FieldRecommendationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_count", values[i])
			} else if value.Valid {
				_m.RecommendationCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosisEvent.
// Note that you need to call DiagnosisEvent.Unwrap() before calling this method if this DiagnosisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosisEvent) Update() *DiagnosisEventUpdateOne {
	return NewDiagnosisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosisEvent) Unwrap() *DiagnosisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosisEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("condition=")
	builder.WriteString(_m.Condition)
	builder.WriteString(", ")
	builder.WriteString("similarity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Similarity))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rank))
	builder.WriteString(", ")
	builder.WriteString("recommendation_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendationCount))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosisEvents is a parsable slice of DiagnosisEvent.
type DiagnosisEvents []*DiagnosisEvent
