package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressStepsMarkEveryReachedStep(t *testing.T) {
	steps := ProgressSteps(StatusPreparing)
	require.Len(t, steps, 5)

	assert.True(t, steps[0].Active, "pending stays lit after the order advances")
	assert.True(t, steps[1].Active)
	assert.True(t, steps[2].Active)
	assert.True(t, steps[2].Current)
	assert.False(t, steps[3].Active)
	assert.False(t, steps[4].Active)

	assert.Equal(t, "Order Placed", steps[0].Label)
}

func TestProgressStepsForCancelledOrder(t *testing.T) {
	assert.Nil(t, ProgressSteps(StatusCancelled), "cancelled has no progression to render")
}

func TestProgressStepsForUnknownStatus(t *testing.T) {
	steps := ProgressSteps("mystery")
	require.Len(t, steps, 5)
	for _, step := range steps {
		assert.False(t, step.Active)
	}
}

func TestStatusIndexOrdering(t *testing.T) {
	assert.Equal(t, 0, StatusIndex(StatusPending))
	assert.Equal(t, 4, StatusIndex(StatusDelivered))
	assert.Equal(t, -1, StatusIndex(StatusCancelled))
	assert.Equal(t, -1, StatusIndex("nope"))

	assert.Less(t, StatusIndex(StatusConfirmed), StatusIndex(StatusOutForDelivery))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus(""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Order Placed", StatusLabel(StatusPending))
	assert.Equal(t, "Out for Delivery", StatusLabel(StatusOutForDelivery))
	assert.Equal(t, "Cancelled", StatusLabel(StatusCancelled))
}
