package services

import (
	"customer-directory-service/internal/domain"
	"time"
)

// ComputeStats aggregates the directory in a single pass.
//
// Day counts are taken over the raw dataset: a customer without usable
// coordinates still counts for its trip days even though CustomersByDay
// leaves it out. A customer counts once per day however often the code
// repeats in its trip days.
func ComputeStats(dir *domain.CustomerSet) domain.Stats {
	stats := domain.Stats{
		TotalCustomers: dir.Len(),
		ByDay:          make(map[time.Weekday]int, len(domain.DeliveryDays)),
	}
	for _, d := range domain.DeliveryDays {
		stats.ByDay[d] = 0
	}

	for _, c := range dir.All() {
		if c.Geolocated() {
			stats.WithCoordinates++
		}
		if c.HasRentalItems() {
			stats.WithRentalItems++
		}
		for _, d := range domain.DeliveryDays {
			code, _ := domain.DayCode(d)
			if c.DeliversOn(code) {
				stats.ByDay[d]++
			}
		}
	}

	stats.CoordinatesCoverage = percent(stats.WithCoordinates, stats.TotalCustomers)
	stats.RentalDataCoverage = percent(stats.WithRentalItems, stats.TotalCustomers)

	return stats
}

// percent is 0 when total is 0.
func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
