package dashboard

import (
	"math/rand"
	"testing"

	"github.com/itisal/itisal-backend/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateWorkedExample(t *testing.T) {
	orders := []order.Order{
		{Status: order.StatusOrderReceived, TotalAmount: 10},
		{Status: order.StatusOrderDelivered, TotalAmount: 20},
	}

	m := Aggregate(orders, FilterAll)

	assert.Equal(t, 2, m.TotalOrders)
	assert.Equal(t, 1, m.OpenOrders)
	assert.Equal(t, 1, m.DeliveredOrders)
	assert.InDelta(t, 30.0, m.TotalRevenue, 1e-9)
}

func TestAggregateStoreFilter(t *testing.T) {
	orders := []order.Order{
		{StoreID: "s1", Status: order.StatusOrderReceived, TotalAmount: 10},
		{StoreID: "s2", Status: order.StatusOrderStarted, TotalAmount: 15},
		{StoreID: "s1", Status: order.StatusOrderDelivered, TotalAmount: 20},
	}

	m := Aggregate(orders, "s1")

	assert.Equal(t, 2, m.TotalOrders)
	assert.Equal(t, 1, m.OpenOrders)
	assert.Equal(t, 1, m.DeliveredOrders)
	assert.InDelta(t, 30.0, m.TotalRevenue, 1e-9)

	// unknown store id matches nothing
	empty := Aggregate(orders, "s3")
	assert.Zero(t, empty.TotalOrders)
	assert.Empty(t, empty.StatusDistribution)
}

func TestAggregateCountsAddUp(t *testing.T) {
	statuses := order.AllStatuses()

	orders := make([]order.Order, 0, 60)
	for i := 0; i < 60; i++ {
		orders = append(orders, order.Order{
			StoreID:     "s1",
			Status:      statuses[i%len(statuses)],
			TotalAmount: float64(i),
		})
	}

	m := Aggregate(orders, FilterAll)

	assert.Equal(t, len(orders), m.TotalOrders)
	// every modeled status is either open or terminal
	assert.Equal(t, m.TotalOrders, m.OpenOrders+m.DeliveredOrders)

	var distributed int
	for _, sc := range m.StatusDistribution {
		distributed += sc.Value
	}
	assert.Equal(t, m.TotalOrders, distributed)
}

func TestAggregateIsOrderInvariant(t *testing.T) {
	orders := []order.Order{
		{StoreID: "s1", Status: order.StatusOrderReceived, TotalAmount: 12.5},
		{StoreID: "s1", Status: order.StatusStoreReceived, TotalAmount: 7.25},
		{StoreID: "s2", Status: order.StatusInvoicePrinted, TotalAmount: 31},
		{StoreID: "s1", Status: order.StatusOrderDelivered, TotalAmount: 44},
		{StoreID: "s2", Status: order.StatusOrderDelivered, TotalAmount: 3},
	}

	expected := Aggregate(orders, FilterAll)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]order.Order, len(orders))
		copy(shuffled, orders)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, expected, Aggregate(shuffled, FilterAll))
	}
}

func TestAggregateDistributionFollowsWorkflowOrder(t *testing.T) {
	orders := []order.Order{
		{Status: order.StatusOrderDelivered, TotalAmount: 1},
		{Status: order.StatusOrderReceived, TotalAmount: 1},
		{Status: order.StatusOrderReceived, TotalAmount: 1},
	}

	m := Aggregate(orders, FilterAll)

	require.Len(t, m.StatusDistribution, 2)
	assert.Equal(t, StatusCount{Name: "Order Received", Value: 2}, m.StatusDistribution[0])
	assert.Equal(t, StatusCount{Name: "Order Delivered", Value: 1}, m.StatusDistribution[1])
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil, FilterAll)

	assert.Zero(t, m.TotalOrders)
	assert.Zero(t, m.OpenOrders)
	assert.Zero(t, m.DeliveredOrders)
	assert.Zero(t, m.TotalRevenue)
	assert.Empty(t, m.StatusDistribution)
}
