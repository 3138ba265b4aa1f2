// Package query turns list-endpoint query strings into MongoDB find arguments.
//
// A Features value is built in stages (Filter, Sort, LimitFields, Paginate) that
// each return the receiver, so callers chain them. Nothing touches the store:
// Build yields a Query the repository executes.
package query

import (
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	domainerrors "tourbook/internal/domain/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// reserved parameters drive the other stages and are never filters.
var reserved = []string{"page", "sort", "limit", "fields"}

var operators = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
}

// Query is the executable result of a Features pipeline.
type Query struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.M
	Skip       int64
	Limit      int64
}

// FindOptions converts the query into driver options. Limit 0 means unbounded.
func (q *Query) FindOptions() *options.FindOptions {
	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if len(q.Projection) > 0 {
		opts.SetProjection(q.Projection)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	return opts
}

// Features accumulates the stages of a list query.
// The first stage to fail records Err; later stages become no-ops.
type Features struct {
	schema *Schema
	values url.Values

	scope      bson.M
	filter     bson.M
	sort       bson.D
	projection bson.M

	page          int
	limit         int
	pageRequested bool
	paginated     bool

	Err error
}

// New starts a pipeline over the raw query-string values.
func New(schema *Schema, values url.Values) *Features {
	if values == nil {
		values = url.Values{}
	}

	return &Features{
		schema: schema,
		values: values,
		page:   DefaultPage,
		limit:  DefaultLimit,
	}
}

// WithScope adds a filter the client cannot override, such as a parent id.
func (f *Features) WithScope(scope bson.M) *Features {
	if len(scope) == 0 {
		return f
	}
	if f.scope == nil {
		f.scope = bson.M{}
	}
	for k, v := range scope {
		f.scope[k] = v
	}

	return f
}

// Filter converts field=value, field=a&field=b and field[op]=value pairs into
// equality, $in and comparison clauses.
func (f *Features) Filter() *Features {
	if f.Err != nil {
		return f
	}

	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	filter := bson.M{}
	for _, key := range keys {
		field, op, err := splitKey(key)
		if err != nil {
			f.Err = err

			return f
		}
		if slices.Contains(reserved, field) {
			continue
		}

		kind, ok := f.schema.kind(field)
		if !ok || kind == Opaque {
			f.Err = domainerrors.NewInvalidValueError("filter field", field)

			return f
		}

		raw := f.values[key]
		if op == "" {
			clause, err := equality(kind, field, raw)
			if err != nil {
				f.Err = err

				return f
			}
			mergeClause(filter, field, "$eq", clause)

			continue
		}

		mongoOp, ok := operators[op]
		if !ok {
			f.Err = domainerrors.NewInvalidValueError("filter operator", op)

			return f
		}
		v, err := kind.cast(field, raw[len(raw)-1])
		if err != nil {
			f.Err = err

			return f
		}
		mergeClause(filter, field, mongoOp, v)
	}

	f.filter = filter

	return f
}

// Sort parses sort=-a,b into descending a then ascending b, falling back to the
// schema default. _id is appended so pages are stable under ties.
func (f *Features) Sort() *Features {
	if f.Err != nil {
		return f
	}

	raw := strings.TrimSpace(f.values.Get("sort"))
	if raw == "" {
		raw = f.schema.defaultSort()
	}

	sort := bson.D{}
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dir := 1
		if strings.HasPrefix(part, "-") {
			dir = -1
			part = part[1:]
		}
		if part == "_id" {
			if !seen[part] {
				sort = append(sort, bson.E{Key: "_id", Value: dir})
				seen[part] = true
			}

			continue
		}
		kind, ok := f.schema.kind(part)
		if !ok || kind == Opaque {
			f.Err = domainerrors.NewInvalidValueError("sort field", part)

			return f
		}
		if seen[part] {
			continue
		}
		seen[part] = true
		sort = append(sort, bson.E{Key: part, Value: dir})
	}
	if !seen["_id"] {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}

	f.sort = sort

	return f
}

// LimitFields selects fields=a,b (inclusion) or fields=-a,-b (exclusion).
// Hidden fields cannot be selected and are always excluded.
func (f *Features) LimitFields() *Features {
	if f.Err != nil {
		return f
	}

	raw := strings.TrimSpace(f.values.Get("fields"))
	if raw == "" {
		f.projection = f.defaultProjection()

		return f
	}

	include := bson.M{}
	exclude := f.defaultProjection()
	if exclude == nil {
		exclude = bson.M{}
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		excluded := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if _, ok := f.schema.kind(name); !ok || f.schema.isHidden(name) {
			f.Err = domainerrors.NewInvalidValueError("field", name)

			return f
		}
		if excluded {
			exclude[name] = 0
		} else {
			include[name] = 1
		}
	}

	switch {
	case len(include) > 0 && len(exclude) > len(f.schema.Hidden):
		f.Err = domainerrors.NewValidationError("Cannot mix field inclusion and exclusion.")
	case len(include) > 0:
		f.projection = include
	default:
		f.projection = exclude
	}

	return f
}

// Paginate reads page and limit. Missing, non-numeric or non-positive values
// fall back to page 1 and the default limit.
func (f *Features) Paginate() *Features {
	if f.Err != nil {
		return f
	}

	f.pageRequested = f.values.Has("page")
	f.page = positiveOr(f.values.Get("page"), DefaultPage)
	f.limit = positiveOr(f.values.Get("limit"), DefaultLimit)
	f.paginated = true

	return f
}

// Skip is the number of documents before the requested page. It saturates at
// math.MaxInt64, so a page too large to address is past the end of any collection.
func (f *Features) Skip() int64 {
	before, size := int64(f.page-1), int64(f.limit)
	if before > 0 && before > math.MaxInt64/size {
		return math.MaxInt64
	}

	return before * size
}

// Limit is the page size.
func (f *Features) Limit() int64 {
	return int64(f.limit)
}

// PageRequested reports whether the client asked for an explicit page.
func (f *Features) PageRequested() bool {
	return f.pageRequested
}

// Build merges the scope into the filter and returns the executable query.
func (f *Features) Build() (*Query, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	q := &Query{
		Filter:     mergeScope(f.scope, f.filter),
		Sort:       f.sort,
		Projection: f.projection,
	}
	if q.Projection == nil {
		q.Projection = f.defaultProjection()
	}
	if f.paginated {
		q.Skip = f.Skip()
		q.Limit = f.Limit()
	}

	return q, nil
}

func (f *Features) defaultProjection() bson.M {
	if len(f.schema.Hidden) == 0 {
		return nil
	}
	p := bson.M{}
	for _, h := range f.schema.Hidden {
		p[h] = 0
	}

	return p
}

// splitKey separates "price[gte]" into "price" and "gte".
func splitKey(key string) (field, op string, err error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, "", nil
	}
	if !strings.HasSuffix(key, "]") || open == 0 {
		return "", "", domainerrors.NewInvalidValueError("filter", key)
	}

	return key[:open], key[open+1 : len(key)-1], nil
}

// equality casts one value into a plain match, or several into an $in list.
func equality(kind Kind, field string, raw []string) (any, error) {
	if len(raw) == 1 {
		return kind.cast(field, raw[0])
	}

	in := make(bson.A, 0, len(raw))
	for _, r := range raw {
		v, err := kind.cast(field, r)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	return bson.M{"$in": in}, nil
}

// mergeClause combines several conditions on the same field into one operator document.
func mergeClause(filter bson.M, field, op string, value any) {
	existing, ok := filter[field]
	if !ok {
		if op == "$eq" {
			filter[field] = value
		} else {
			filter[field] = bson.M{op: value}
		}

		return
	}

	ops, isOps := existing.(bson.M)
	if !isOps || hasNonOperatorKeys(ops) {
		ops = bson.M{"$eq": existing}
	}
	if in, isIn := value.(bson.M); isIn && op == "$eq" {
		for k, v := range in {
			ops[k] = v
		}
	} else {
		ops[op] = value
	}
	filter[field] = ops
}

func hasNonOperatorKeys(m bson.M) bool {
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return true
		}
	}

	return false
}

func mergeScope(scope, filter bson.M) bson.M {
	switch {
	case len(scope) == 0 && len(filter) == 0:
		return bson.M{}
	case len(scope) == 0:
		return filter
	case len(filter) == 0:
		return scope
	default:
		return bson.M{"$and": bson.A{scope, filter}}
	}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
