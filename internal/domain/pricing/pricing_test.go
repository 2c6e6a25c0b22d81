package pricing_test

import (
	"testing"

	"github.com/playbill/playbill/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
)

func TestBaseCredits(t *testing.T) {
	tests := []struct {
		audience int
		want     int64
	}{
		{0, 0},
		{29, 0},
		{30, 0},
		{31, 1},
		{55, 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pricing.BaseCredits(tt.audience), "audience %d", tt.audience)
	}
}

func TestTragedy_Price(t *testing.T) {
	s := pricing.NewTragedy()
	assert.Equal(t, "tragedy", s.Genre())

	for a := 0; a <= 30; a++ {
		assert.Equal(t, int64(40000), s.Price(a), "audience %d", a)
	}
	for a := 31; a <= 200; a++ {
		assert.Equal(t, int64(40000+1000*(a-30)), s.Price(a), "audience %d", a)
	}
}

func TestTragedy_CreditsUseBaseRule(t *testing.T) {
	s := pricing.NewTragedy()
	for a := 0; a <= 200; a++ {
		assert.Equal(t, pricing.BaseCredits(a), s.Credits(a), "audience %d", a)
	}
}

func TestComedy_Price(t *testing.T) {
	s := pricing.NewComedy()
	assert.Equal(t, "comedy", s.Genre())

	for a := 0; a <= 20; a++ {
		assert.Equal(t, int64(30000+300*a), s.Price(a), "audience %d", a)
	}
	for a := 21; a <= 200; a++ {
		want := int64(30000 + 10000 + 500*(a-20) + 300*a)
		assert.Equal(t, want, s.Price(a), "audience %d", a)
	}
}

func TestComedy_CreditsAddFifthOfAudience(t *testing.T) {
	s := pricing.NewComedy()
	for a := 0; a <= 200; a++ {
		assert.Equal(t, pricing.BaseCredits(a)+int64(a/5), s.Credits(a), "audience %d", a)
	}
}

func TestReferenceInvoiceLines(t *testing.T) {
	tragedy := pricing.NewTragedy()
	comedy := pricing.NewComedy()

	assert.Equal(t, int64(65000), tragedy.Price(55))
	assert.Equal(t, int64(25), tragedy.Credits(55))

	assert.Equal(t, int64(58000), comedy.Price(35))
	assert.Equal(t, int64(12), comedy.Credits(35))

	assert.Equal(t, int64(50000), tragedy.Price(40))
	assert.Equal(t, int64(10), tragedy.Credits(40))
}
