package game

import (
	"github.com/google/uuid"
)

// Contract type codes
const (
	ContractFullTime  = 0
	ContractHalfTime  = 1
	ContractTemporary = 2
)

// Employee holds the contractual data of a worker. The changeable,
// per-round data lives in EmployeeDynamic.
type Employee struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Female          bool   `json:"female"`
	Age             int    `json:"age"`
	EmploymentRound int    `json:"employment_round"`
	ContractType    int    `json:"contract_type"`
	EndRound        int    `json:"end_round"`
}

// EmployeeDynamic is the per-round state of one employee
type EmployeeDynamic struct {
	ID            string    `json:"id"`
	Employee      *Employee `json:"employee"`
	Qualification int       `json:"qualification"`
	Process       Process   `json:"process"`
	Motivation    int       `json:"motivation"`
	Salary        float64   `json:"salary"`
	QMRound       int       `json:"qm_round"`
	FPRound       int       `json:"fp_round"`
	SecRound      int       `json:"sec_round"`
}

// NewEmployeeDynamic creates a fresh applicant record with full motivation
func NewEmployeeDynamic(emp *Employee, qualification int) *EmployeeDynamic {
	return &EmployeeDynamic{
		ID:            uuid.NewString(),
		Employee:      emp,
		Qualification: qualification,
		Process:       ProcessUnloading,
		Motivation:    100,
		Salary:        SalaryByQualification[qualification],
	}
}

// IsReady reports whether the employee works in the given round. The first
// working round is the one after the employment round; the last working
// round is the one after the contract end.
func (e *Employee) IsReady(round int) bool {
	return e.EmploymentRound < round && round <= e.EndRound+1
}

// IsValidOrNew reports whether the employee belongs to the round's head
// count, which includes hires that start this round.
func (e *Employee) IsValidOrNew(round int) bool {
	return e.EmploymentRound <= round && round <= e.EndRound
}

// HasValidContract reports whether the contract type code is known
func (e *Employee) HasValidContract() bool {
	for _, t := range ValidContractTypes {
		if e.ContractType == t {
			return true
		}
	}
	return false
}

// HasForkliftPermit reports whether the qualification includes the forklift
// permit bit
func (d *EmployeeDynamic) HasForkliftPermit() bool {
	return d.Qualification%2 == 1
}

// HasSecurityTraining reports whether the qualification includes safety
// training
func (d *EmployeeDynamic) HasSecurityTraining() bool {
	for _, q := range SecurityQualifications {
		if d.Qualification == q {
			return true
		}
	}
	return false
}

// HasQMTraining reports whether the qualification includes the quality
// management seminar
func (d *EmployeeDynamic) HasQMTraining() bool {
	return d.Qualification > 3
}

// WorkTime returns the employee's working seconds for a round given the
// station's overtime hours. Temporary workers only give a reduced share of
// their overtime.
func (d *EmployeeDynamic) WorkTime(overtimeHours int) float64 {
	if d.Employee.ContractType == ContractTemporary {
		return WorkingTimeSeconds + float64(overtimeHours)*3600*HalfTimeSalaryFactor
	}
	return WorkingTimeSeconds + float64(overtimeHours)*3600
}

// Clone returns a deep copy of the dynamic and its employee
func (d *EmployeeDynamic) Clone() *EmployeeDynamic {
	emp := *d.Employee
	clone := *d
	clone.Employee = &emp
	return &clone
}
