package recipes

import (
	"net/url"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	scoreMin = 1
	scoreMax = 5
)

// ScoreRange is an inclusive [Min,Max] window over a 1–5 score.
type ScoreRange struct {
	Min int
	Max int
}

func fullRange() ScoreRange { return ScoreRange{Min: scoreMin, Max: scoreMax} }

func (r ScoreRange) full() bool { return r.Min <= scoreMin && r.Max >= scoreMax }

// Criteria is built once at the request boundary from query parameters.
// Every field is optional; provided predicates combine with AND.
type Criteria struct {
	Text           string
	VeganOnly      bool
	VegetarianOnly bool
	Types          []string
	Health         ScoreRange
	Ease           ScoreRange
	Cost           ScoreRange
	Eco            ScoreRange
}

// ParseCriteria reads the search parameters of GET /.
func ParseCriteria(values url.Values) Criteria {
	c := Criteria{
		Text:           values.Get("q"),
		VeganOnly:      flagSet(values.Get("vegan")),
		VegetarianOnly: flagSet(values.Get("vegetarian")),
		Health:         parseRange(values, "health_score"),
		Ease:           parseRange(values, "ease_score"),
		Cost:           parseRange(values, "cost_score"),
		Eco:            parseRange(values, "eco_score"),
	}
	for _, t := range values["type"] {
		if t != "" {
			c.Types = append(c.Types, t)
		}
	}
	return c
}

func flagSet(v string) bool {
	return v == "true" || v == "on" || v == "1"
}

func parseRange(values url.Values, field string) ScoreRange {
	r := fullRange()
	if min, err := strconv.Atoi(values.Get(field + "_min")); err == nil {
		r.Min = clamp(min)
	}
	if max, err := strconv.Atoi(values.Get(field + "_max")); err == nil {
		r.Max = clamp(max)
	}
	return r
}

func clamp(v int) int {
	if v < scoreMin {
		return scoreMin
	}
	if v > scoreMax {
		return scoreMax
	}
	return v
}

// BuildQuery translates the criteria into one filter document. Absent
// predicates add nothing, so an empty Criteria matches every recipe.
func (c Criteria) BuildQuery() bson.M {
	query := bson.M{}

	if c.Text != "" {
		pattern := regexp.QuoteMeta(c.Text)
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"ingredients": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if c.VeganOnly {
		query["isVegan"] = true
	}
	if c.VegetarianOnly {
		query["isVegetarian"] = true
	}
	if len(c.Types) > 0 {
		query["type"] = bson.M{"$in": c.Types}
	}

	addScore(query, "healthScore", c.Health)
	addScore(query, "easeScore", c.Ease)
	addScore(query, "costScore", c.Cost)
	addScore(query, "ecoScore", c.Eco)

	return query
}

func addScore(query bson.M, field string, r ScoreRange) {
	if r.full() {
		return
	}
	query[field] = bson.M{"$gte": r.Min, "$lte": r.Max}
}
