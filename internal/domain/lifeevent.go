package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LifeEventCategory classifies a life event for reporting purposes.
type LifeEventCategory string

const (
	EventEducation  LifeEventCategory = "education"
	EventHousing    LifeEventCategory = "housing"
	EventVehicle    LifeEventCategory = "vehicle"
	EventRetirement LifeEventCategory = "retirement"
	EventOther      LifeEventCategory = "other"
)

// LifeEventType discriminates between a single dated cash impact and a
// recurring monthly one.
type LifeEventType string

const (
	EventOneTime   LifeEventType = "one_time"
	EventRecurring LifeEventType = "recurring"
)

// LifeEvent is a discrete cash impact tied to a real-world milestone.
//
// Sign convention: positive amounts are costs (cash out), negative amounts
// are income (cash in, e.g. a pension starting at retirement). A one-time
// event applies Cost exactly in the calendar month of Date; a recurring
// event applies MonthlyAmount every month from Date through EndDate, or
// indefinitely when EndDate is unset.
type LifeEvent struct {
	ID            string            `yaml:"id" json:"id"`
	Name          string            `yaml:"name" json:"name"`
	Date          time.Time         `yaml:"date" json:"date"`
	Category      LifeEventCategory `yaml:"category" json:"category"`
	Type          LifeEventType     `yaml:"type" json:"type"`
	Cost          decimal.Decimal   `yaml:"cost,omitempty" json:"cost,omitempty"`
	MonthlyAmount decimal.Decimal   `yaml:"monthly_amount,omitempty" json:"monthly_amount,omitempty"`
	EndDate       *time.Time        `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Memo          string            `yaml:"memo,omitempty" json:"memo,omitempty"`
}
