package dashboard

import "github.com/itisal/itisal-backend/internal/order"

// FilterAll disables store filtering.
const FilterAll = "all"

// Metrics is the management dashboard card set plus the status
// distribution both chart projections share.
type Metrics struct {
	TotalOrders        int           `json:"totalOrders"`
	OpenOrders         int           `json:"openOrders"`
	DeliveredOrders    int           `json:"deliveredOrders"`
	TotalRevenue       float64       `json:"totalRevenue"`
	StatusDistribution []StatusCount `json:"statusDistribution"`
}

type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Aggregate derives dashboard metrics from the order collection in a
// single pass. It is a pure function of (orders, storeFilter): no
// caching, no dependence on input order beyond the workflow-ordered
// distribution.
func Aggregate(orders []order.Order, storeFilter string) Metrics {
	counts := make(map[order.Status]int)

	var m Metrics
	for _, o := range orders {
		if storeFilter != FilterAll && o.StoreID != storeFilter {
			continue
		}

		m.TotalOrders++
		m.TotalRevenue += o.TotalAmount
		counts[o.Status]++

		if o.Status.IsTerminal() {
			m.DeliveredOrders++
		} else if o.Status.IsOpen() {
			m.OpenOrders++
		}
	}

	m.StatusDistribution = make([]StatusCount, 0, len(counts))
	for _, s := range order.AllStatuses() {
		if counts[s] > 0 {
			m.StatusDistribution = append(m.StatusDistribution, StatusCount{
				Name:  string(s),
				Value: counts[s],
			})
		}
	}

	return m
}
