package impl

import "tourbook/internal/query"

// Query schemas exposed to list endpoints. Fields missing here cannot be
// filtered, sorted or selected by clients.
var (
	tourSchema = &query.Schema{
		Fields: map[string]query.Kind{
			"name":            query.String,
			"slug":            query.String,
			"duration":        query.Number,
			"maxGroupSize":    query.Number,
			"difficulty":      query.String,
			"ratingsAverage":  query.Number,
			"ratingsQuantity": query.Number,
			"price":           query.Number,
			"priceDiscount":   query.Number,
			"startDates":      query.Date,
			"guides":          query.ObjectID,
			"createdAt":       query.Date,
			"summary":         query.Opaque,
			"description":     query.Opaque,
			"imageCover":      query.Opaque,
			"images":          query.Opaque,
			"startLocation":   query.Opaque,
			"locations":       query.Opaque,
		},
		Hidden: []string{"secretTour"},
	}

	reviewSchema = &query.Schema{
		Fields: map[string]query.Kind{
			"review":    query.String,
			"rating":    query.Number,
			"tour":      query.ObjectID,
			"user":      query.ObjectID,
			"createdAt": query.Date,
		},
	}

	userSchema = &query.Schema{
		Fields: map[string]query.Kind{
			"name":          query.String,
			"email":         query.String,
			"roles":         query.String,
			"emailVerified": query.Bool,
			"createdAt":     query.Date,
			"photo":         query.Opaque,
		},
		Hidden: []string{
			"password",
			"passwordChangedAt",
			"passwordResetToken",
			"passwordResetExpires",
			"emailVerificationToken",
			"emailVerificationExpires",
			"active",
		},
	}
)
