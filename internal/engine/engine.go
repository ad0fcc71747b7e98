// Package engine evaluates metric definitions against the entity store.
package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
)

// EntityScanner streams entity records from the store.
type EntityScanner interface {
	ScanUsers(ctx context.Context, f models.Filter, fn func(models.User) error) error
	ScanListings(ctx context.Context, f models.Filter, fn func(models.Listing) error) error
	ScanLeads(ctx context.Context, f models.Filter, fn func(models.Lead) error) error
	ScanTransactions(ctx context.Context, f models.Filter, fn func(models.Transaction) error) error
	ScanSales(ctx context.Context, fn func(models.ListingSale) error) error
}

// UnknownEmirate groups leads whose listing is missing from the store.
const UnknownEmirate = "unknown"

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	keySep      = "|"
)

// Engine interprets metric definitions. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	store EntityScanner
	now   func() time.Time
}

// NewEngine creates an Engine reading from store.
func NewEngine(store EntityScanner) *Engine {
	return &Engine{store: store, now: time.Now}
}

// record is an entity row reduced to what the aggregation needs.
type record struct {
	date      time.Time
	dimension string
	measure   float64
	warnings  []string
}

// Evaluate computes the result set of def. Rows are ordered ascending by key
// and only groups with at least one contributing record are emitted.
func (e *Engine) Evaluate(ctx context.Context, def metrics.Definition) (models.ResultSet, error) {
	if err := def.Validate(); err != nil {
		return models.ResultSet{}, err
	}

	start := time.Now()
	acc := newAccumulator(def)

	var err error
	switch def.Aggregation {
	case metrics.AggregationCount, metrics.AggregationSum, metrics.AggregationAverage:
		err = e.scan(ctx, def.Source, def.Dimension, def.Measure, acc.add)
	case metrics.AggregationRatio:
		err = e.scan(ctx, def.Source, def.Dimension, metrics.MeasureNone, acc.add)
		if err == nil {
			err = e.scan(ctx, *def.Denominator, def.Dimension, metrics.MeasureNone, acc.addDenominator)
		}
	case metrics.AggregationAverageDaysToSell:
		err = e.daysToSell(ctx, def, acc)
	default:
		err = fmt.Errorf("unsupported aggregation %s", def.Aggregation)
	}
	if err != nil {
		logger.Log.Errorw("metric evaluation failed", "metric", def.Name, "error", err)
		return models.ResultSet{}, fmt.Errorf("evaluate %s: %w", def.Name, err)
	}

	rs := models.ResultSet{
		Metric:     def.Name,
		Rows:       acc.rows(),
		ComputedAt: e.now().UTC(),
	}

	logger.Log.Debugw("metric evaluated",
		"metric", def.Name,
		"rows", len(rs.Rows),
		"duration", time.Since(start),
	)
	return rs, nil
}

// scan streams src and converts every entity row into a record.
func (e *Engine) scan(ctx context.Context, src metrics.Source, dim metrics.Dimension, measure metrics.Measure, fn func(record) error) error {
	switch src.Entity {
	case models.EntityUsers:
		return e.store.ScanUsers(ctx, src.Filter, func(u models.User) error {
			r := record{date: u.SignupDate}
			switch dim {
			case metrics.DimensionEmirate:
				r.dimension = u.Emirate
			case metrics.DimensionUserType:
				r.dimension = string(u.UserType)
			}
			return fn(r)
		})

	case models.EntityListings:
		return e.store.ScanListings(ctx, src.Filter, func(l models.Listing) error {
			return fn(listingRecord(l, dim, measure))
		})

	case models.EntityLeads:
		return e.store.ScanLeads(ctx, src.Filter, func(l models.Lead) error {
			r := record{date: l.LeadDate}
			if dim == metrics.DimensionEmirate {
				r.dimension = l.ListingEmirate
				if l.ListingMissing || r.dimension == "" {
					r.dimension = UnknownEmirate
				}
			}
			if l.ListingMissing {
				r.warnings = append(r.warnings, fmt.Sprintf("lead %d references missing listing %d", l.LeadID, l.ListingID))
			}
			if l.UserMissing {
				r.warnings = append(r.warnings, fmt.Sprintf("lead %d references missing user %d", l.LeadID, l.UserID))
			}
			return fn(r)
		})

	case models.EntityTransactions:
		return e.store.ScanTransactions(ctx, src.Filter, func(t models.Transaction) error {
			r := record{date: t.TransactionDate}
			if dim == metrics.DimensionTransactionType {
				r.dimension = string(t.TransactionType)
			}
			if measure == metrics.MeasureAmount {
				r.measure = t.Amount
			}
			if t.UserMissing {
				r.warnings = append(r.warnings, fmt.Sprintf("transaction %d references missing user %d", t.TransactionID, t.UserID))
			}
			return fn(r)
		})
	}

	return fmt.Errorf("unknown entity %q", src.Entity)
}

func listingRecord(l models.Listing, dim metrics.Dimension, measure metrics.Measure) record {
	r := record{date: l.CreatedDate}
	switch dim {
	case metrics.DimensionEmirate:
		r.dimension = l.Emirate
	case metrics.DimensionCategory:
		r.dimension = l.Category
	case metrics.DimensionStatus:
		r.dimension = string(l.Status)
	}
	if measure == metrics.MeasurePrice {
		r.measure = l.Price
	}
	if l.UserMissing {
		r.warnings = append(r.warnings, fmt.Sprintf("listing %d references missing user %d", l.ListingID, l.UserID))
	}
	return r
}

// daysToSell folds the days between creation and the first sold status
// change of every sold listing. Listings without a usable sold date are
// excluded and reported as warnings on their group.
func (e *Engine) daysToSell(ctx context.Context, def metrics.Definition, acc *accumulator) error {
	sold := make(map[int64]time.Time)
	err := e.store.ScanSales(ctx, func(s models.ListingSale) error {
		sold[s.ListingID] = models.Date(s.SoldDate)
		return nil
	})
	if err != nil {
		return err
	}

	src := def.Source
	src.Filter.Status = models.ListingStatusSold

	return e.store.ScanListings(ctx, src.Filter, func(l models.Listing) error {
		if l.Status != models.ListingStatusSold {
			return nil
		}

		r := listingRecord(l, def.Dimension, metrics.MeasureNone)
		soldDate, ok := sold[l.ListingID]
		if !ok {
			r.warnings = append(r.warnings, fmt.Sprintf("listing %d is sold but has no sold status change", l.ListingID))
			return acc.warn(r)
		}

		days := soldDate.Sub(models.Date(l.CreatedDate)).Hours() / 24
		if days < 0 {
			r.warnings = append(r.warnings, fmt.Sprintf("listing %d was sold before it was created", l.ListingID))
			return acc.warn(r)
		}

		r.measure = days
		return acc.add(r)
	})
}

type group struct {
	key       string
	dimension string
	period    string
	count     int
	sum       float64
	denom     int
	warnings  []string
}

type accumulator struct {
	def    metrics.Definition
	groups map[string]*group
}

func newAccumulator(def metrics.Definition) *accumulator {
	acc := &accumulator{def: def, groups: make(map[string]*group)}
	if acc.ungrouped() {
		// An ungrouped metric always has exactly one row.
		acc.groups[""] = &group{}
	}
	return acc
}

func (a *accumulator) ungrouped() bool {
	return a.def.Grouping == metrics.GroupNone && a.def.Dimension == metrics.DimensionNone
}

func (a *accumulator) group(r record) *group {
	var period string
	switch a.def.Grouping {
	case metrics.GroupDay:
		period = models.Date(r.date).Format(dayLayout)
	case metrics.GroupMonth:
		period = models.Month(r.date).Format(monthLayout)
	}

	key := r.dimension
	switch {
	case key != "" && period != "":
		key += keySep + period
	case period != "":
		key = period
	}

	g, ok := a.groups[key]
	if !ok {
		g = &group{key: key, dimension: r.dimension, period: period}
		a.groups[key] = g
	}
	g.warnings = append(g.warnings, r.warnings...)
	return g
}

func (a *accumulator) add(r record) error {
	g := a.group(r)
	g.count++
	g.sum += r.measure
	return nil
}

func (a *accumulator) addDenominator(r record) error {
	a.group(r).denom++
	return nil
}

// warn attaches the record's warnings without letting it contribute.
func (a *accumulator) warn(r record) error {
	a.group(r)
	return nil
}

func (a *accumulator) value(g *group) models.Value {
	switch a.def.Aggregation {
	case metrics.AggregationCount:
		return models.Defined(float64(g.count))
	case metrics.AggregationSum:
		return models.Defined(g.sum)
	case metrics.AggregationRatio:
		if g.denom == 0 {
			return models.Undefined()
		}
		return models.Defined(float64(g.count) / float64(g.denom))
	default:
		if g.count == 0 {
			return models.Undefined()
		}
		return models.Defined(g.sum / float64(g.count))
	}
}

func (a *accumulator) rows() []models.Row {
	keys := make([]string, 0, len(a.groups))
	for k := range a.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]models.Row, 0, len(keys))
	for _, k := range keys {
		g := a.groups[k]
		row := models.Row{
			Dimension: g.dimension,
			Period:    g.period,
			Value:     a.value(g),
			Warnings:  g.warnings,
		}
		if !a.ungrouped() {
			key := g.key
			row.Key = &key
		}
		rows = append(rows, row)
	}
	return rows
}
