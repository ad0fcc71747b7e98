// Package metrics declares the KPI definitions evaluated by the engine.
//
// A definition is data, not code: an aggregation kind, a grouping and a
// source collection with a filter. The engine interprets it.
package metrics

import (
	"errors"
	"fmt"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
)

// Aggregation is the fold applied to every group.
type Aggregation int

const (
	AggregationCount Aggregation = iota + 1
	AggregationSum
	AggregationAverage
	// AggregationRatio divides the source count by the denominator count.
	AggregationRatio
	// AggregationAverageDaysToSell averages the days between a listing's
	// creation and its first sold status change.
	AggregationAverageDaysToSell
)

var aggregationNames = map[Aggregation]string{
	AggregationCount:             "count",
	AggregationSum:               "sum",
	AggregationAverage:           "average",
	AggregationRatio:             "ratio",
	AggregationAverageDaysToSell: "average_days_to_sell",
}

func (a Aggregation) String() string {
	if name, ok := aggregationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("aggregation(%d)", int(a))
}

// Grouping is the time granularity of the group key.
type Grouping int

const (
	GroupNone Grouping = iota
	GroupDay
	GroupMonth
)

func (g Grouping) String() string {
	switch g {
	case GroupNone:
		return "none"
	case GroupDay:
		return "day"
	case GroupMonth:
		return "month"
	}
	return fmt.Sprintf("grouping(%d)", int(g))
}

// Dimension is a categorical field added to the group key.
type Dimension string

const (
	DimensionNone            Dimension = ""
	DimensionEmirate         Dimension = "emirate"
	DimensionCategory        Dimension = "category"
	DimensionStatus          Dimension = "status"
	DimensionUserType        Dimension = "user_type"
	DimensionTransactionType Dimension = "transaction_type"
)

// Measure is the numeric field summed or averaged.
type Measure string

const (
	MeasureNone   Measure = ""
	MeasurePrice  Measure = "price"
	MeasureAmount Measure = "amount"
)

// Source is a filtered entity collection.
type Source struct {
	Entity models.Entity
	Filter models.Filter
}

// Definition describes one KPI.
type Definition struct {
	Name        string
	Description string
	Aggregation Aggregation
	Source      Source
	// Denominator is required for AggregationRatio and ignored otherwise.
	// Its records are grouped with the same grouping and dimension.
	Denominator *Source
	Grouping    Grouping
	Dimension   Dimension
	Measure     Measure
}

var (
	errEmptyName = errors.New("metric name cannot be empty")
)

// entityDimensions lists the dimensions each entity can be grouped by.
var entityDimensions = map[models.Entity][]Dimension{
	models.EntityUsers:        {DimensionEmirate, DimensionUserType},
	models.EntityListings:     {DimensionEmirate, DimensionCategory, DimensionStatus},
	models.EntityLeads:        {DimensionEmirate},
	models.EntityTransactions: {DimensionTransactionType},
}

var entityMeasures = map[models.Entity]Measure{
	models.EntityListings:     MeasurePrice,
	models.EntityTransactions: MeasureAmount,
}

// Validate checks that the definition can be interpreted.
func (d Definition) Validate() error {
	if d.Name == "" {
		return errEmptyName
	}
	if _, ok := aggregationNames[d.Aggregation]; !ok {
		return fmt.Errorf("metric %q: unsupported aggregation %d", d.Name, int(d.Aggregation))
	}
	if d.Grouping < GroupNone || d.Grouping > GroupMonth {
		return fmt.Errorf("metric %q: unsupported grouping %d", d.Name, int(d.Grouping))
	}
	if err := validateSource(d.Source, d.Dimension); err != nil {
		return fmt.Errorf("metric %q: %w", d.Name, err)
	}

	switch d.Aggregation {
	case AggregationSum, AggregationAverage:
		if d.Measure == MeasureNone || entityMeasures[d.Source.Entity] != d.Measure {
			return fmt.Errorf("metric %q: measure %q is not available on %s", d.Name, d.Measure, d.Source.Entity)
		}
	case AggregationRatio:
		if d.Denominator == nil {
			return fmt.Errorf("metric %q: ratio requires a denominator", d.Name)
		}
		if err := validateSource(*d.Denominator, d.Dimension); err != nil {
			return fmt.Errorf("metric %q denominator: %w", d.Name, err)
		}
	case AggregationAverageDaysToSell:
		if d.Source.Entity != models.EntityListings {
			return fmt.Errorf("metric %q: days to sell is computed over listings", d.Name)
		}
	}
	return nil
}

func validateSource(s Source, dim Dimension) error {
	dims, ok := entityDimensions[s.Entity]
	if !ok {
		return fmt.Errorf("unknown entity %q", s.Entity)
	}
	if dim == DimensionNone {
		return nil
	}
	for _, d := range dims {
		if d == dim {
			return nil
		}
	}
	return fmt.Errorf("dimension %q is not available on %s", dim, s.Entity)
}
