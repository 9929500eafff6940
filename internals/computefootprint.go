package internals

import (
	"fmt"
	"sort"
	"strings"

	"hotel-carbon-server/model"
)

type FootprintTypeBreakdown struct {
	TotalConsumption string  `json:"total_consumption"`
	CO2EmissionsKg   float64 `json:"co2_emissions_kg"`
	Unit             string  `json:"unit"`
	FactorUsed       string  `json:"factor_used"`
}

type MonthlyFootprint struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	ElectricityKwh float64 `json:"electricity_kwh"`
	WaterLiters    float64 `json:"water_liters"`
	TotalCO2Kg     float64 `json:"total_co2_kg"`
}

type FootprintReport struct {
	TotalCO2Kg       float64                           `json:"total_co2_kg"`
	Breakdown        map[string]FootprintTypeBreakdown `json:"breakdown"`
	MonthlyBreakdown []MonthlyFootprint                `json:"monthly_breakdown"`
}

// ComputeFootprint sums amount x reporting factor over the given bills.
// Bills whose stored amount does not parse are skipped, they were accepted
// before amount validation existed.
func ComputeFootprint(bills []model.UtilityBill) FootprintReport {
	totalCO2 := 0.0
	consumptionByType := map[string]float64{}
	emissionsByType := map[string]float64{}
	monthly := map[string]*MonthlyFootprint{}

	for _, bill := range bills {
		amount, err := ParseBillAmount(bill.BillAmount)
		if err != nil {
			continue
		}

		billType := strings.ToLower(bill.BillType)
		factor := reportEmissionFactors[billType]
		co2 := amount * factor
		totalCO2 += co2

		if _, known := reportEmissionFactors[billType]; known {
			consumptionByType[billType] += amount
			emissionsByType[billType] += co2
		}

		monthKey := fmt.Sprintf("%d-%02d", bill.BillYear, bill.BillMonth)
		entry, ok := monthly[monthKey]
		if !ok {
			entry = &MonthlyFootprint{Month: bill.BillMonth, Year: bill.BillYear}
			monthly[monthKey] = entry
		}
		if billType == "electricity" {
			entry.ElectricityKwh += amount
		} else if billType == "water" {
			entry.WaterLiters += amount
		}
		entry.TotalCO2Kg += co2
	}

	breakdown := map[string]FootprintTypeBreakdown{}
	for billType, factor := range reportEmissionFactors {
		unit := reportUnits[billType]
		breakdown[billType] = FootprintTypeBreakdown{
			TotalConsumption: fmt.Sprintf("%g %s", consumptionByType[billType], unit),
			CO2EmissionsKg:   Round3(emissionsByType[billType]),
			Unit:             unit,
			FactorUsed:       fmt.Sprintf("%g kg CO2 per %s", factor, unit),
		}
	}

	// stable chronological order for the monthly breakdown
	keys := make([]string, 0, len(monthly))
	for key := range monthly {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	monthlyBreakdown := make([]MonthlyFootprint, 0, len(keys))
	for _, key := range keys {
		entry := *monthly[key]
		entry.TotalCO2Kg = Round3(entry.TotalCO2Kg)
		monthlyBreakdown = append(monthlyBreakdown, entry)
	}

	return FootprintReport{
		TotalCO2Kg:       Round3(totalCO2),
		Breakdown:        breakdown,
		MonthlyBreakdown: monthlyBreakdown,
	}
}
