package skeleton

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressAggregator_Mean(t *testing.T) {
	var got []float64
	agg := NewProgressAggregator(2, func(p float64) { got = append(got, p) })

	agg.OnBandProgress(0, 50)
	agg.OnBandProgress(1, 50)
	agg.OnBandProgress(0, 100)
	agg.OnBandProgress(1, 100)

	assert.Equal(t, []float64{25, 50, 75, 100}, got)
	assert.Equal(t, 100.0, agg.Percent())
}

func TestProgressAggregator_DropsNonIncreasing(t *testing.T) {
	var got []float64
	agg := NewProgressAggregator(2, func(p float64) { got = append(got, p) })

	agg.OnBandProgress(0, 40)
	agg.OnBandProgress(0, 40)
	agg.OnBandProgress(1, 0)
	agg.OnBandProgress(5, 100)
	agg.OnBandProgress(-1, 100)

	assert.Equal(t, []float64{20}, got)
}

func TestProgressAggregator_PlainObserver(t *testing.T) {
	agg := NewProgressAggregator(1, nil)
	assert.Equal(t, 0.0, agg.Percent())

	agg.OnProgress(30)
	agg.OnProgress(60)
	assert.Equal(t, 60.0, agg.Percent())
}

func TestProgressAggregator_Concurrent(t *testing.T) {
	const bands = 8
	agg := NewProgressAggregator(bands, nil)

	var wg sync.WaitGroup
	for b := range bands {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range 101 {
				agg.OnBandProgress(b, float64(p))
			}
		}()
	}
	wg.Wait()

	assert.InDelta(t, 100, agg.Percent(), 1e-9)
}

func TestProgressAggregator_ImplementsBandObserver(t *testing.T) {
	var obs ProgressObserver = NewProgressAggregator(1, nil)
	_, ok := obs.(BandObserver)
	assert.True(t, ok)
}
