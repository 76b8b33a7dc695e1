package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessNextWalksThePipelineInOrder(t *testing.T) {
	// Arrange
	expected := []Process{ProcessCollection, ProcessStorage, ProcessControl, ProcessLoading, ProcessDone}

	// Act & Assert
	current := ProcessUnloading
	for _, want := range expected {
		next, ok := current.Next()
		require.True(t, ok)
		assert.Equal(t, want, next)
		current = next
	}
}

func TestProcessNextStopsAtDone(t *testing.T) {
	// Act
	_, ok := ProcessDone.Next()

	// Assert
	assert.False(t, ok)
}

func TestProcessNextRejectsInvalidStation(t *testing.T) {
	// Act
	_, ok := ProcessNone.Next()

	// Assert
	assert.False(t, ok)
}

func TestProcessUsesConveyors(t *testing.T) {
	// Assert
	assert.True(t, ProcessUnloading.UsesConveyors())
	assert.False(t, ProcessCollection.UsesConveyors())
	assert.True(t, ProcessStorage.UsesConveyors())
	assert.False(t, ProcessControl.UsesConveyors())
	assert.True(t, ProcessLoading.UsesConveyors())
}

func TestProcessFromInt(t *testing.T) {
	// Act
	p, err := ProcessFromInt(2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ProcessStorage, p)

	// Act
	_, err = ProcessFromInt(9)

	// Assert
	assert.Error(t, err)
}
