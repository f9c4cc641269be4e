package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics for the banking services.
var (
	MovementsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bancario_movements_registered_total",
		Help: "Total number of movements registered",
	})

	MovementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bancario_movements_rejected_total",
		Help: "Total number of movements rejected, by reason",
	}, []string{"reason"})

	StatementsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bancario_statements_built_total",
		Help: "Total number of statements built",
	})

	AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bancario_accounts_created_total",
		Help: "Total number of accounts created",
	})

	CustomersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bancario_customers_created_total",
		Help: "Total number of customers created",
	})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bancario_customer_events_published_total",
		Help: "Total number of customer lifecycle events published, by type",
	}, []string{"type"})

	CustomerEventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bancario_customer_events_consumed_total",
		Help: "Total number of customer lifecycle events consumed, by type and outcome",
	}, []string{"type", "outcome"})
)
