package models

// Vehicle is a single marketplace listing. IDs are assigned by the store on
// creation and never change afterwards.
type Vehicle struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Price            float64  `json:"price"`
	Year             int      `json:"year"`
	Kilometers       int      `json:"kilometers"`
	FuelType         string   `json:"fuelType"`
	FinanceAvailable bool     `json:"financeAvailable"`
	Images           []string `json:"images"`
}
