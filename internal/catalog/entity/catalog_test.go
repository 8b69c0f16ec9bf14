package entity

import "testing"

func TestProductFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount int16
		want     int64
	}{
		{"no discount", 100000, 0, 100000},
		{"negative discount ignored", 100000, -5, 100000},
		{"flat percent", 100000, 25, 75000},
		{"rounds down", 999, 10, 900},
		{"full discount", 100000, 100, 0},
		{"one percent of small price", 50, 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, DiscountPercent: tt.discount}

			if got := p.FinalPrice(); got != tt.want {
				t.Fatalf("FinalPrice() = %d, want %d", got, tt.want)
			}
		})
	}
}
