package recommend

import (
	"time"

	"wasteless/models"
)

// ExpiryWindowDays is the number of calendar days, counting today, within
// which a product is considered about to spoil.
const ExpiryWindowDays = 3

// DaysUntil returns the whole calendar days between today and the expiration
// date, both taken in UTC. Expired products yield negative values.
func DaysUntil(expiration, today time.Time) int {
	exp := civilDate(expiration)
	ref := civilDate(today)
	return int(exp.Sub(ref).Hours() / 24)
}

// ExpiresSoon reports whether the product expires within ExpiryWindowDays of today.
func ExpiresSoon(product models.Product, today time.Time) bool {
	return DaysUntil(product.ExpirationDate, today) < ExpiryWindowDays
}

// ExpiringCategories collects the categories of every product that expires soon.
func ExpiringCategories(products []models.Product, today time.Time) CategorySet {
	set := CategorySet{}
	for _, product := range products {
		if !ExpiresSoon(product, today) {
			continue
		}
		for _, category := range product.Categories {
			set.Add(category)
		}
	}
	return set
}

// AvailableCategories collects the categories of every product regardless of expiry.
func AvailableCategories(products []models.Product) CategorySet {
	set := CategorySet{}
	for _, product := range products {
		for _, category := range product.Categories {
			set.Add(category)
		}
	}
	return set
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
