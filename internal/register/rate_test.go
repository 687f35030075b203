package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentRate_FixedPointKey(t *testing.T) {
	assert.Equal(t, "22", PercentRate(22).String())
	assert.Equal(t, "24.2", PercentRate(24.2).String())
	assert.Equal(t, "4.1667", PercentRate(4.16666666).String())
	assert.Equal(t, "10", PercentRate(10.00001).String())
}

func TestPercentRate_NonPositiveCollapsesToZero(t *testing.T) {
	assert.True(t, PercentRate(0).IsZero())
	assert.True(t, PercentRate(-5).IsZero())
}

func TestRateKey_SentinelsAreDistinct(t *testing.T) {
	assert.NotEqual(t, ZeroRate(), NotSubjectRate())
	assert.Equal(t, "0", ZeroRate().String())
	assert.Equal(t, "ns", NotSubjectRate().String())
}

func TestRateKey_SameRateSameKey(t *testing.T) {
	buckets := make(Buckets)
	buckets.Add(PercentRate(22.0), 22, 122)
	buckets.Add(PercentRate(21.999999), 22, 122)
	assert.Len(t, buckets, 1)
	assert.Equal(t, 244.0, buckets[PercentRate(22)].Total)
}

func TestSortKeys_DescendingWithTrailingSentinels(t *testing.T) {
	keys := []RateKey{
		NotSubjectRate(),
		PercentRate(10),
		ZeroRate(),
		PercentRate(22),
		PercentRate(4),
	}
	SortKeys(keys)

	assert.Equal(t, []RateKey{
		PercentRate(22),
		PercentRate(10),
		PercentRate(4),
		ZeroRate(),
		NotSubjectRate(),
	}, keys)
}

func TestBuckets_AddAccumulates(t *testing.T) {
	buckets := make(Buckets)
	buckets.Add(ZeroRate(), 0, 50)
	buckets.Add(ZeroRate(), 0, 25)
	assert.Equal(t, Totals{Tax: 0, Total: 75}, buckets[ZeroRate()])
}
