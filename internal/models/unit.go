package models

import "time"

// Unit represents a sellable inventory unit (apartment, villa, office).
type Unit struct {
	ID                 int64     `json:"id"`
	Project            string    `json:"project"`
	UnitCode           string    `json:"unit_code"`
	Bedrooms           int       `json:"bedrooms"`
	AreaSqm            float64   `json:"area_sqm"`
	Price              float64   `json:"price"`
	DownPayment        float64   `json:"down_payment"`
	MonthlyInstallment float64   `json:"monthly_installment"`
	Available          bool      `json:"available"`
	CreatedAt          time.Time `json:"created_at"`
}
