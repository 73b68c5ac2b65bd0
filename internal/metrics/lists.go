package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalListsCreated  = "total_lists_created"
	NameTotalItemsCreated  = "total_items_created"
	NameTotalRejectedItems = "total_rejected_items"
	LabelReason            = "reason"
)

var TotalListsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalListsCreated,
		Help:      "Total created lists",
		Namespace: Namespace,
	},
)

var TotalItemsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalItemsCreated,
		Help:      "Total created items, first items of new lists included",
		Namespace: Namespace,
	},
)

var TotalRejectedItems = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalRejectedItems,
		Help:      "Total item submissions rejected by validation",
		Namespace: Namespace,
	},
	[]string{LabelReason},
)
