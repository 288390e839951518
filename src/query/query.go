// Package query translates a list endpoint's query string into a MongoDB find.
//
//	?name=Ada&age>=21&skills=go,sql&!deletedAt&fields=name,age&sort=-createdAt&offset=10&limit=5
//
// becomes the criteria, projection, sort, skip and limit of a single find, plus the
// pagination metadata returned next to the page of results.
package query

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reserved keys
const (
	keyFields = "fields"
	keyOmit   = "omit"
	keySort   = "sort"
	keyOffset = "offset"
	keyLimit  = "limit"
)

var operators = []string{">=", "<=", "!=", "=", ">", "<"}

var regexValue = regexp.MustCompile(`^/(.*)/([imxs]*)$`)

type Options struct {
	DefaultLimit int64
	MaxLimit     int64
	// ObjectIDFields are compared as ObjectIDs instead of strings; _id always is.
	ObjectIDFields []string
}

type Query struct {
	Criteria   bson.M
	Projection bson.M
	Sort       bson.D
	Skip       int64
	Limit      int64

	// excluding is set once the projection has a field: fields includes, omit excludes
	excluding *bool
	// ranged marks fields built from comparison operators
	ranged map[string]bool
	// rest keeps the non-paging terms so links only rewrite offset and limit
	rest []string
}

// Parse reads a raw query string (as sent, still escaped).
func Parse(rawQuery string, opts Options) (*Query, error) {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 10
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 100
	}

	q := &Query{Criteria: bson.M{}, Limit: opts.DefaultLimit, ranged: map[string]bool{}}
	idFields := map[string]bool{"_id": true}
	for _, f := range opts.ObjectIDFields {
		idFields[f] = true
	}

	for _, rawTerm := range strings.Split(rawQuery, "&") {
		if rawTerm == "" {
			continue
		}
		term, err := url.QueryUnescape(rawTerm)
		if err != nil {
			return nil, apperr.Validation("Invalid query string", err.Error())
		}

		key, op, value := splitTerm(term)
		field := strings.TrimPrefix(key, "!")
		if field == "" || strings.HasPrefix(field, "$") {
			return nil, apperr.Validation("Invalid query string", "unsupported query key "+strconv.Quote(key))
		}

		if op == "=" {
			handled, err := q.reserved(key, value, opts)
			if err != nil {
				return nil, err
			}
			if handled {
				if key != keyOffset && key != keyLimit {
					q.rest = append(q.rest, rawTerm)
				}
				continue
			}
		}

		if strings.HasPrefix(key, "!") && op != "" {
			return nil, apperr.Validation("Invalid query string", "negated key "+strconv.Quote(key)+" takes no value")
		}

		if err := q.addCriterion(key, op, value, idFields[field]); err != nil {
			return nil, err
		}
		q.rest = append(q.rest, rawTerm)
	}

	return q, nil
}

func splitTerm(term string) (key, op, value string) {
	start := 0
	if strings.HasPrefix(term, "!") {
		start = 1
	}
	idx := strings.IndexAny(term[start:], "=<>!")
	if idx < 0 {
		return term, "", ""
	}
	idx += start
	rest := term[idx:]
	for _, o := range operators {
		if strings.HasPrefix(rest, o) {
			return term[:idx], o, rest[len(o):]
		}
	}
	return term, "", ""
}

func (q *Query) reserved(key, value string, opts Options) (bool, error) {
	switch key {
	case keyFields, keyOmit:
		excluding := key == keyOmit
		if q.excluding != nil && *q.excluding != excluding {
			return true, apperr.Validation("Invalid query string", "fields and omit cannot be combined")
		}
		q.excluding = &excluding

		include := 1
		if excluding {
			include = 0
		}
		if q.Projection == nil {
			q.Projection = bson.M{}
		}
		for _, f := range splitList(value) {
			q.Projection[f] = include
		}
	case keySort:
		for _, f := range splitList(value) {
			dir := 1
			switch f[0] {
			case '-':
				dir, f = -1, f[1:]
			case '+':
				f = f[1:]
			}
			if f != "" {
				q.Sort = append(q.Sort, bson.E{Key: f, Value: dir})
			}
		}
	case keyOffset:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return true, apperr.Validation("Invalid query string", "offset must be a non-negative integer")
		}
		q.Skip = n
	case keyLimit:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return true, apperr.Validation("Invalid query string", "limit must be a non-negative integer")
		}
		switch {
		case n == 0:
			n = opts.DefaultLimit
		case n > opts.MaxLimit:
			n = opts.MaxLimit
		}
		q.Limit = n
	default:
		return false, nil
	}
	return true, nil
}

// addCriterion rejects a second term on a field unless both are comparisons
// that share one operator document (age>=21&age<65).
func (q *Query) addCriterion(key, op, value string, objectID bool) error {
	field := strings.TrimPrefix(key, "!")
	mongoOp, comparison := comparisonOperators[op]
	if op == "!=" && (strings.Contains(value, ",") || regexValue.MatchString(value)) {
		comparison = false
	}
	if existing, taken := q.Criteria[field]; taken {
		ops, _ := existing.(bson.M)
		if _, repeated := ops[mongoOp]; !comparison || !q.ranged[field] || repeated {
			return apperr.Validation("Invalid query string", "conflicting terms for "+strconv.Quote(field))
		}
	}

	if op == "" {
		if strings.HasPrefix(key, "!") {
			q.Criteria[key[1:]] = bson.M{"$exists": false}
		} else {
			q.Criteria[key] = bson.M{"$exists": true}
		}
		return nil
	}

	if m := regexValue.FindStringSubmatch(value); m != nil && (op == "=" || op == "!=") {
		re := primitive.Regex{Pattern: m[1], Options: m[2]}
		if op == "=" {
			q.Criteria[key] = re
		} else {
			q.Criteria[key] = bson.M{"$not": re}
		}
		return nil
	}

	if (op == "=" || op == "!=") && strings.Contains(value, ",") {
		list := bson.A{}
		for _, v := range splitList(value) {
			typed, err := typedValue(key, v, objectID)
			if err != nil {
				return err
			}
			list = append(list, typed)
		}
		if op == "=" {
			q.Criteria[key] = bson.M{"$in": list}
		} else {
			q.Criteria[key] = bson.M{"$nin": list}
		}
		return nil
	}

	typed, err := typedValue(key, value, objectID)
	if err != nil {
		return err
	}
	if op == "=" {
		q.Criteria[key] = typed
		return nil
	}

	ops, ok := q.Criteria[key].(bson.M)
	if !ok {
		ops = bson.M{}
		q.Criteria[key] = ops
	}
	ops[mongoOp] = typed
	q.ranged[key] = true
	return nil
}

var comparisonOperators = map[string]string{">": "$gt", ">=": "$gte", "<": "$lt", "<=": "$lte", "!=": "$ne"}

func typedValue(key, value string, objectID bool) (any, error) {
	if objectID {
		id, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return nil, apperr.Validation("Invalid query string", key+" must be a valid id")
		}
		return id, nil
	}
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f, nil
	}
	return value, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FindOptions puts sort, skip and limit on one find; the server always applies
// them in that order.
func (q *Query) FindOptions() *options.FindOptions {
	opts := options.Find().SetSkip(q.Skip).SetLimit(q.Limit)
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if len(q.Projection) > 0 {
		opts.SetProjection(q.Projection)
	}
	return opts
}
