package domain

import (
	"time"

	"github.com/lifeplan/household-projection/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MemberRelation describes how a member relates to the plan owner.
type MemberRelation string

const (
	RelationSelf   MemberRelation = "self"
	RelationSpouse MemberRelation = "spouse"
	RelationChild  MemberRelation = "child"
	RelationParent MemberRelation = "parent"
	RelationOther  MemberRelation = "other"
)

// EmploymentStatus describes a member's current working situation.
type EmploymentStatus string

const (
	StatusEmployed     EmploymentStatus = "employed"
	StatusSelfEmployed EmploymentStatus = "self-employed"
	StatusUnemployed   EmploymentStatus = "unemployed"
	StatusStudent      EmploymentStatus = "student"
	StatusRetired      EmploymentStatus = "retired"
)

// HouseholdMember is one person in the household. Retirement and pension
// fields are optional context used when building scenarios; the engine
// itself consumes only the scenario settings derived from them.
type HouseholdMember struct {
	ID               string           `yaml:"id" json:"id"`
	Name             string           `yaml:"name" json:"name"`
	Relation         MemberRelation   `yaml:"relation" json:"relation"`
	BirthDate        time.Time        `yaml:"birth_date" json:"birth_date"`
	EmploymentStatus EmploymentStatus `yaml:"employment_status,omitempty" json:"employment_status,omitempty"`
	RetirementAge    int              `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty"`
	PensionStartAge  int              `yaml:"pension_start_age,omitempty" json:"pension_start_age,omitempty"`
	PensionMonthly   decimal.Decimal  `yaml:"pension_monthly,omitempty" json:"pension_monthly,omitempty"`
}

// Age returns the member's age at the given date.
func (m *HouseholdMember) Age(at time.Time) int {
	return dateutil.Age(m.BirthDate, at)
}

// RetirementDate returns the date the member reaches their retirement age,
// defaulting to 65 when unset.
func (m *HouseholdMember) RetirementDate() time.Time {
	age := m.RetirementAge
	if age == 0 {
		age = 65
	}
	return dateutil.DateAtAge(m.BirthDate, age)
}

// PensionStartDate returns the date the member's pension begins, defaulting
// to age 65 when unset.
func (m *HouseholdMember) PensionStartDate() time.Time {
	age := m.PensionStartAge
	if age == 0 {
		age = 65
	}
	return dateutil.DateAtAge(m.BirthDate, age)
}
