package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeights_ComponentsSumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.ComponentSum(), 1e-9)
}

func TestDefaultWeights_AvailabilityNeverGates(t *testing.T) {
	assert.Zero(t, DefaultWeights().Availability)
}

func TestDefaultWeights_BlendsInRange(t *testing.T) {
	w := DefaultWeights()
	assert.Greater(t, w.JudgmentBlend, w.JudgmentBlendLowConfidence)
	assert.Greater(t, w.PriorStructuredShare, 0.5)
	assert.Less(t, w.RerankBlend, 0.5)
}
