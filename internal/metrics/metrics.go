package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Number of orders created",
		},
	)

	PaymentsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Number of payments recorded",
		},
	)

	PromotionsRedeemed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "promotions_redeemed_total",
			Help: "Number of promotion codes redeemed on orders",
		},
	)

	ReviewsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_written_total",
			Help: "Number of product reviews written",
		},
	)
)

func Register() {
	prometheus.MustRegister(OrdersCreated, PaymentsRecorded, PromotionsRedeemed, ReviewsWritten)
}
