package metrics

import "github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"

// Built-in metric names
const (
	TotalUsers                    = "total_users"
	DailyNewUsers                 = "daily_new_users"
	MonthlyNewUsers               = "monthly_new_users"
	UsersByType                   = "users_by_type"
	UsersByEmirate                = "users_by_emirate"
	TotalListings                 = "total_listings"
	ListingsByStatus              = "listings_by_status"
	ListingsByCategory            = "listings_by_category"
	MonthlyNewListings            = "monthly_new_listings"
	AverageListingPriceByCategory = "average_listing_price_by_category"
	AverageDaysToSell             = "average_days_to_sell"
	MonthlyLeads                  = "monthly_leads"
	SupplyVsDemandRatio           = "supply_vs_demand_ratio"
	AverageTransactionValue       = "average_transaction_value"
	AverageTransactionValueByType = "average_transaction_value_by_type"
	TotalRevenue                  = "total_revenue"
	MonthlyRevenue                = "monthly_revenue"
	RevenueByType                 = "revenue_by_type"
)

// DefaultReport is the metric list of the dashboard overview.
var DefaultReport = []string{
	TotalUsers,
	MonthlyNewUsers,
	AverageTransactionValue,
	AverageDaysToSell,
	SupplyVsDemandRatio,
}

var (
	users        = Source{Entity: models.EntityUsers}
	listings     = Source{Entity: models.EntityListings}
	leads        = Source{Entity: models.EntityLeads}
	transactions = Source{Entity: models.EntityTransactions}
)

// Builtin returns the built-in KPI definitions.
func Builtin() []Definition {
	return []Definition{
		{
			Name:        TotalUsers,
			Description: "Number of registered users",
			Aggregation: AggregationCount,
			Source:      users,
		},
		{
			Name:        DailyNewUsers,
			Description: "New users per signup day",
			Aggregation: AggregationCount,
			Source:      users,
			Grouping:    GroupDay,
		},
		{
			Name:        MonthlyNewUsers,
			Description: "New users per signup month",
			Aggregation: AggregationCount,
			Source:      users,
			Grouping:    GroupMonth,
		},
		{
			Name:        UsersByType,
			Description: "Users per user type",
			Aggregation: AggregationCount,
			Source:      users,
			Dimension:   DimensionUserType,
		},
		{
			Name:        UsersByEmirate,
			Description: "Users per emirate",
			Aggregation: AggregationCount,
			Source:      users,
			Dimension:   DimensionEmirate,
		},
		{
			Name:        TotalListings,
			Description: "Number of listings",
			Aggregation: AggregationCount,
			Source:      listings,
		},
		{
			Name:        ListingsByStatus,
			Description: "Listings per status",
			Aggregation: AggregationCount,
			Source:      listings,
			Dimension:   DimensionStatus,
		},
		{
			Name:        ListingsByCategory,
			Description: "Listings per property category",
			Aggregation: AggregationCount,
			Source:      listings,
			Dimension:   DimensionCategory,
		},
		{
			Name:        MonthlyNewListings,
			Description: "Listings created per month",
			Aggregation: AggregationCount,
			Source:      listings,
			Grouping:    GroupMonth,
		},
		{
			Name:        AverageListingPriceByCategory,
			Description: "Mean asking price per property category",
			Aggregation: AggregationAverage,
			Source:      listings,
			Dimension:   DimensionCategory,
			Measure:     MeasurePrice,
		},
		{
			Name:        AverageDaysToSell,
			Description: "Mean days from listing creation to first sold status change",
			Aggregation: AggregationAverageDaysToSell,
			Source: Source{
				Entity: models.EntityListings,
				Filter: models.Filter{Status: models.ListingStatusSold},
			},
		},
		{
			Name:        MonthlyLeads,
			Description: "Leads per month",
			Aggregation: AggregationCount,
			Source:      leads,
			Grouping:    GroupMonth,
		},
		{
			Name:        SupplyVsDemandRatio,
			Description: "Active listings created per lead, per emirate and month",
			Aggregation: AggregationRatio,
			Source: Source{
				Entity: models.EntityListings,
				Filter: models.Filter{Status: models.ListingStatusActive},
			},
			Denominator: &Source{Entity: models.EntityLeads},
			Grouping:    GroupMonth,
			Dimension:   DimensionEmirate,
		},
		{
			Name:        AverageTransactionValue,
			Description: "Mean transaction amount",
			Aggregation: AggregationAverage,
			Source:      transactions,
			Measure:     MeasureAmount,
		},
		{
			Name:        AverageTransactionValueByType,
			Description: "Mean transaction amount per transaction type",
			Aggregation: AggregationAverage,
			Source:      transactions,
			Dimension:   DimensionTransactionType,
			Measure:     MeasureAmount,
		},
		{
			Name:        TotalRevenue,
			Description: "Sum of transaction amounts",
			Aggregation: AggregationSum,
			Source:      transactions,
			Measure:     MeasureAmount,
		},
		{
			Name:        MonthlyRevenue,
			Description: "Sum of transaction amounts per month",
			Aggregation: AggregationSum,
			Source:      transactions,
			Grouping:    GroupMonth,
			Measure:     MeasureAmount,
		},
		{
			Name:        RevenueByType,
			Description: "Sum of transaction amounts per transaction type",
			Aggregation: AggregationSum,
			Source:      transactions,
			Dimension:   DimensionTransactionType,
			Measure:     MeasureAmount,
		},
	}
}

// NewBuiltinRegistry returns a registry of the built-in definitions.
func NewBuiltinRegistry() (*Registry, error) {
	return NewRegistry(Builtin()...)
}
