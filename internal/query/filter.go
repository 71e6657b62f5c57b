// Package query maps order filter inputs onto MongoDB predicates.
package query

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterInput mirrors the FilterInput GraphQL input type. All fields are
// optional; fields that are set are ANDed together.
type FilterInput struct {
	ClientName     string
	Status         []string
	CreatedAtStart string
	CreatedAtEnd   string
	ClosedAtStart  string
	ClosedAtEnd    string
	ItemName       string
}

// InvalidFilterError reports a filter bound that could not be parsed.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: cannot parse %q as a date for %s", e.Value, e.Field)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &InvalidFilterError{Field: field, Value: value}
}

// substring builds a case-insensitive substring matcher. The input is quoted
// so regex metacharacters in user data match literally.
func substring(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// dateRange accumulates both bounds of a timestamp field and emits the field
// once. Setting only the upper bound still yields a valid constraint.
func dateRange(q bson.M, field, start, end string) error {
	rng := bson.M{}
	if start != "" {
		t, err := parseDate(field, start)
		if err != nil {
			return err
		}
		rng["$gte"] = t
	}
	if end != "" {
		t, err := parseDate(field, end)
		if err != nil {
			return err
		}
		rng["$lte"] = t
	}
	if len(rng) > 0 {
		q[field] = rng
	}
	return nil
}

// ToQuery translates the filter into a store predicate. A zero FilterInput
// yields an empty predicate that matches every order.
func (f FilterInput) ToQuery() (bson.M, error) {
	q := bson.M{}

	if f.ClientName != "" {
		q["client_name"] = substring(f.ClientName)
	}
	if len(f.Status) > 0 {
		q["status"] = bson.M{"$in": f.Status}
	}
	if f.ItemName != "" {
		q["items"] = bson.M{"$elemMatch": bson.M{"name": substring(f.ItemName)}}
	}
	if err := dateRange(q, "created_at", f.CreatedAtStart, f.CreatedAtEnd); err != nil {
		return nil, err
	}
	if err := dateRange(q, "closed_at", f.ClosedAtStart, f.ClosedAtEnd); err != nil {
		return nil, err
	}

	return q, nil
}

// FromArgs builds a FilterInput from a decoded GraphQL argument map.
func FromArgs(args map[string]interface{}) FilterInput {
	f := FilterInput{
		ClientName:     stringArg(args, "client_name"),
		CreatedAtStart: stringArg(args, "created_at_start"),
		CreatedAtEnd:   stringArg(args, "created_at_end"),
		ClosedAtStart:  stringArg(args, "closed_at_start"),
		ClosedAtEnd:    stringArg(args, "closed_at_end"),
		ItemName:       stringArg(args, "item_name"),
	}

	if raw, ok := args["status"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				f.Status = append(f.Status, s)
			}
		}
	}

	return f
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}
