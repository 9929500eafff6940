package internals

import (
	"strings"

	"hotel-carbon-server/model"
)

// ComputeHotelStayCarbon estimates the emission of a stay from the hotel's
// utility bills. Every bill is assumed to cover one billing period of 30
// days; the average implied daily emission across bills is scaled by nights
// and rooms. Hotels with no usable bills get a flat per-room-night default.
func ComputeHotelStayCarbon(bills []model.UtilityBill, nights int, guests int) float64 {
	rooms := float64(guests) / guestsPerRoom

	totalDailyEmissions := 0.0
	usableBills := 0
	for _, bill := range bills {
		amount, err := ParseBillAmount(bill.BillAmount)
		if err != nil || amount <= 0 {
			continue
		}

		factor, ok := stayEmissionFactors[strings.ToLower(bill.BillType)]
		if !ok {
			factor = defaultStayFactor
		}

		totalDailyEmissions += amount * factor / assumedBillingPeriodDays
		usableBills++
	}

	if usableBills == 0 {
		return defaultRoomNightKg * float64(nights) * rooms
	}

	averageDailyEmission := totalDailyEmissions / float64(usableBills)
	return averageDailyEmission * float64(nights) * rooms
}
