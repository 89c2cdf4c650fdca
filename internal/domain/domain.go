// Package domain holds the value types of the Retirement Projection Engine's
// data model: career history, TSP state, tax and expense profiles, the
// resolved simulation configuration, and the per-year results the
// integrator emits. All entities are value types; the core never mutates
// persisted state (spec.md §3).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CareerEventKind enumerates the kinds of career events that can appear in
// a CareerProfile.
type CareerEventKind string

const (
	EventHire          CareerEventKind = "hire"
	EventPromotion     CareerEventKind = "promotion"
	EventStepIncrease  CareerEventKind = "step-increase"
	EventLocalityChange CareerEventKind = "locality-change"
	EventSeparation    CareerEventKind = "separation"
	EventRehire        CareerEventKind = "rehire"
)

// PaySystem enumerates the pay systems a CareerEvent may carry.
type PaySystem string

const (
	PaySystemGS      PaySystem = "GS"
	PaySystemLEO     PaySystem = "LEO"
	PaySystemTitle38 PaySystem = "Title38"
)

// LEOAvailabilityPayRate is the additional availability pay LEO employees
// receive on top of base-plus-locality pay, per spec.md §4.2.
const LEOAvailabilityPayRate = 0.25

// DefaultLocality is the fallback locality code for unrecognized areas.
const DefaultLocality = "RUS"

// CareerEvent is a single point in an employee's career history.
type CareerEvent struct {
	Kind          CareerEventKind `yaml:"kind" json:"kind"`
	EffectiveDate time.Time       `yaml:"effective_date" json:"effective_date"`
	Grade         int             `yaml:"grade" json:"grade"`
	Step          int             `yaml:"step" json:"step"`
	Locality      string          `yaml:"locality" json:"locality"`
	PaySystem     PaySystem       `yaml:"pay_system" json:"pay_system"`
	// ExplicitSalary is the annual salary used for Title38 pay; GS and LEO
	// pay are computed from the pay tables and do not read it.
	ExplicitSalary decimal.Decimal `yaml:"explicit_salary,omitempty" json:"explicit_salary,omitempty"`
	Notes          string          `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// CareerProfile aggregates an ordered sequence of CareerEvents plus the
// SCD anchor dates used for leave accrual and retirement eligibility.
type CareerProfile struct {
	Events          []CareerEvent `yaml:"events" json:"events"`
	LeaveSCD        time.Time     `yaml:"leave_scd" json:"leave_scd"`
	RetirementSCD   time.Time     `yaml:"retirement_scd" json:"retirement_scd"`
}

// SalaryYear is a derived (year, salary, grade, step, locality, pay system)
// tuple: one row per calendar year the employee is in pay status.
type SalaryYear struct {
	Year              int             `json:"year"`
	AnnualSalary      decimal.Decimal `json:"annual_salary"`
	Grade             int             `json:"grade"`
	Step              int             `json:"step"`
	Locality          string          `json:"locality"`
	PaySystem         PaySystem       `json:"pay_system"`
	Title38Override   bool            `json:"title38_override"`
}

// LeaveEntryType enumerates the kinds of LeaveCalendarEntry.
type LeaveEntryType string

const (
	LeavePlannedAnnual LeaveEntryType = "planned-annual"
	LeaveActualAnnual  LeaveEntryType = "actual-annual"
	LeavePlannedSick   LeaveEntryType = "planned-sick"
	LeaveActualSick    LeaveEntryType = "actual-sick"
)

// SickCode distinguishes sick leave used for self versus a dependent.
type SickCode string

const (
	SickSelf      SickCode = "LS"
	SickDependent SickCode = "DE"
)

// LeaveCalendarEntry is a single leave-ledger line.
type LeaveCalendarEntry struct {
	Date     time.Time      `yaml:"date" json:"date"`
	Type     LeaveEntryType `yaml:"type" json:"type"`
	Hours    decimal.Decimal `yaml:"hours" json:"hours"`
	SickCode SickCode       `yaml:"sick_code,omitempty" json:"sick_code,omitempty"`
}

// AnnualLeaveCarryoverCap is the statutory cap on carried-over annual leave.
const AnnualLeaveCarryoverCap = 240

// LeaveCalendarYear aggregates a year's leave activity.
type LeaveCalendarYear struct {
	Year               int                   `yaml:"year" json:"year"`
	AccrualRatePerPP    int                   `yaml:"accrual_rate_per_pp" json:"accrual_rate_per_pp"` // 4, 6, or 8
	AnnualCarryover     decimal.Decimal       `yaml:"annual_carryover" json:"annual_carryover"`
	SickCarryover       decimal.Decimal       `yaml:"sick_carryover" json:"sick_carryover"`
	Entries             []LeaveCalendarEntry  `yaml:"entries" json:"entries"`
}

// TSPFundCode enumerates the TSP fund identifiers used in allocations.
type TSPFundCode string

const (
	FundG TSPFundCode = "G"
	FundF TSPFundCode = "F"
	FundC TSPFundCode = "C"
	FundS TSPFundCode = "S"
	FundI TSPFundCode = "I"
)

// FundAllocation is a single fund's percentage of a TSP snapshot.
type FundAllocation struct {
	Fund    TSPFundCode     `yaml:"fund" json:"fund"`
	Percent decimal.Decimal `yaml:"percent" json:"percent"`
}

// TSPSnapshot is a point-in-time TSP account balance.
type TSPSnapshot struct {
	AsOf             time.Time         `yaml:"as_of" json:"as_of"`
	TraditionalBalance decimal.Decimal `yaml:"traditional_balance" json:"traditional_balance"`
	RothBalance        decimal.Decimal `yaml:"roth_balance" json:"roth_balance"`
	YTDContributions   decimal.Decimal `yaml:"ytd_contributions,omitempty" json:"ytd_contributions,omitempty"`
	Allocation         []FundAllocation `yaml:"allocation" json:"allocation"`
}

// TSPTransactionSource enumerates the "Source" column values TSP.gov's
// activity export uses, per spec.md §6.
type TSPTransactionSource string

const (
	SourceEmployeeContribution TSPTransactionSource = "employee_contribution"
	SourceAgencyAutomatic      TSPTransactionSource = "agency_automatic"
	SourceAgencyMatching       TSPTransactionSource = "agency_matching"
	SourceLoanPayment          TSPTransactionSource = "loan_payment"
	SourceDistribution         TSPTransactionSource = "distribution"
	SourceInterFundTransfer    TSPTransactionSource = "inter_fund_transfer"
	SourceNoFund               TSPTransactionSource = "no_fund"
)

// TSPTransaction is a single row of TSP.gov account activity, per spec.md
// §6's 8-column import contract.
type TSPTransaction struct {
	Date            time.Time            `json:"date"`
	Description     string               `json:"description"`
	Fund            TSPFundCode          `json:"fund"`
	Source          TSPTransactionSource `json:"source"`
	Amount          decimal.Decimal      `json:"amount"`
	SharePrice      decimal.Decimal      `json:"share_price"`
	Shares          decimal.Decimal      `json:"shares"`
	RunningBalance  decimal.Decimal      `json:"running_balance"`
}

// TSPContributionEvent records a change in contribution elections.
type TSPContributionEvent struct {
	EffectiveDate      time.Time       `yaml:"effective_date" json:"effective_date"`
	TraditionalPercent decimal.Decimal `yaml:"traditional_percent" json:"traditional_percent"`
	RothPercent        decimal.Decimal `yaml:"roth_percent" json:"roth_percent"`
	CatchUpEnabled     bool            `yaml:"catch_up_enabled" json:"catch_up_enabled"`
	AgencyMatchTrueUp  bool            `yaml:"agency_match_true_up" json:"agency_match_true_up"`
}

// FilingStatus enumerates tax filing statuses.
type FilingStatus string

const (
	FilingSingle           FilingStatus = "single"
	FilingMarriedJoint     FilingStatus = "married-joint"
	FilingMarriedSeparate  FilingStatus = "married-separate"
	FilingHeadOfHousehold  FilingStatus = "head-of-household"
)

// DeductionStrategy selects standard vs. itemized deductions.
type DeductionStrategy struct {
	UseStandard      bool            `yaml:"use_standard" json:"use_standard"`
	ItemizedAmount   decimal.Decimal `yaml:"itemized_amount,omitempty" json:"itemized_amount,omitempty"`
}

// TaxProfile carries the inputs the tax module needs beyond raw income.
type TaxProfile struct {
	FilingStatus    FilingStatus      `yaml:"filing_status" json:"filing_status"`
	StateCode       string            `yaml:"state_code,omitempty" json:"state_code,omitempty"` // empty means no state tax
	ResidencyYear   int               `yaml:"residency_year" json:"residency_year"`
	Deduction       DeductionStrategy `yaml:"deduction" json:"deduction"`
	ModelIRMAA      bool              `yaml:"model_irmaa" json:"model_irmaa"`
}

// ExpenseCategory is a single named recurring annual expense.
type ExpenseCategory struct {
	Category     string          `yaml:"category" json:"category"`
	AnnualAmount decimal.Decimal `yaml:"annual_amount" json:"annual_amount"`
}

// SmileCurveParams overrides the default Blanchett smile-curve phase
// multipliers and age boundaries.
type SmileCurveParams struct {
	GoGoEndAge      int             `yaml:"go_go_end_age" json:"go_go_end_age"`
	GoSlowEndAge    int             `yaml:"go_slow_end_age" json:"go_slow_end_age"`
	GoSlowMultiplier decimal.Decimal `yaml:"go_slow_multiplier" json:"go_slow_multiplier"`
	NoGoMultiplier   decimal.Decimal `yaml:"no_go_multiplier" json:"no_go_multiplier"`
}

// ExpenseProfile describes the retiree's recurring expenses.
type ExpenseProfile struct {
	BaseYear          int               `yaml:"base_year" json:"base_year"`
	Categories        []ExpenseCategory `yaml:"categories" json:"categories"`
	InflationRate     decimal.Decimal   `yaml:"inflation_rate" json:"inflation_rate"`
	SmileCurveEnabled bool              `yaml:"smile_curve_enabled" json:"smile_curve_enabled"`
	SmileCurve        *SmileCurveParams `yaml:"smile_curve,omitempty" json:"smile_curve,omitempty"`
}

// WithdrawalStrategyKind enumerates TSP withdrawal sequencing strategies.
type WithdrawalStrategyKind string

const (
	StrategyProportional     WithdrawalStrategyKind = "proportional"
	StrategyTraditionalFirst WithdrawalStrategyKind = "traditional-first"
	StrategyRothFirst        WithdrawalStrategyKind = "roth-first"
	StrategyTaxBracketFill   WithdrawalStrategyKind = "tax-bracket-fill"
	StrategyCustom           WithdrawalStrategyKind = "custom"
)

// WithdrawalStrategy selects a sequencing strategy and, for "custom", the
// fixed Traditional/Roth split.
type WithdrawalStrategy struct {
	Kind                WithdrawalStrategyKind `yaml:"kind" json:"kind"`
	CustomTraditionalPct decimal.Decimal       `yaml:"custom_traditional_pct,omitempty" json:"custom_traditional_pct,omitempty"`
	CustomRothPct        decimal.Decimal       `yaml:"custom_roth_pct,omitempty" json:"custom_roth_pct,omitempty"`
}

// SimulationConfig is the fully-resolved numeric form the integrator
// consumes: a superset of SimulationInput's assumptions plus TSP split
// fractions, phase boundaries, withdrawal strategy, time-step, and end age.
type SimulationConfig struct {
	BirthYear             int                 `json:"birth_year"`
	RetirementYear        int                 `json:"retirement_year"`
	RetirementAge         decimal.Decimal     `json:"retirement_age"`
	EndAge                int                 `json:"end_age"`

	High3Salary           decimal.Decimal     `json:"high3_salary"`
	CreditableServiceYears decimal.Decimal    `json:"creditable_service_years"`

	TSPBalanceAtRetirement decimal.Decimal    `json:"tsp_balance_at_retirement"`
	TraditionalFraction    decimal.Decimal    `json:"traditional_fraction"`
	HighRiskFraction       decimal.Decimal    `json:"high_risk_fraction"`
	HighRiskReturn         decimal.Decimal    `json:"high_risk_return"`
	LowRiskReturn          decimal.Decimal    `json:"low_risk_return"`
	WithdrawalRate         decimal.Decimal    `json:"withdrawal_rate"`
	WithdrawalStrategy     WithdrawalStrategy `json:"withdrawal_strategy"`

	ExpenseBase       decimal.Decimal     `json:"expense_base"`
	ExpenseBaseYear   int                 `json:"expense_base_year"`
	SmileCurveEnabled bool                `json:"smile_curve_enabled"`
	SmileCurve        SmileCurveParams    `json:"smile_curve"`

	COLARate          decimal.Decimal     `json:"cola_rate"`
	InflationRate     decimal.Decimal     `json:"inflation_rate"`
	TimeStepYears     int                 `json:"time_step_years"` // 1 or 2

	SSClaimingAge        int             `json:"ss_claiming_age"`
	SSMonthlyAt62         decimal.Decimal `json:"ss_monthly_at_62"`
	EstimatedSSAt62Monthly decimal.Decimal `json:"estimated_ss_at_62_monthly"`

	TaxProfile TaxProfile `json:"tax_profile"`
}

// CareerAssumptions carries the subset of SimulationInput assumptions that
// drive the career/pay projection rather than the post-retirement draw.
type CareerAssumptions struct {
	RetirementDate        time.Time       `yaml:"retirement_date" json:"retirement_date"`
	TSPGrowthRateHigh      decimal.Decimal `yaml:"tsp_growth_rate_high" json:"tsp_growth_rate_high"`
	TSPGrowthRateLow       decimal.Decimal `yaml:"tsp_growth_rate_low" json:"tsp_growth_rate_low"`
	COLARate               decimal.Decimal `yaml:"cola_rate" json:"cola_rate"`
	RetirementHorizonYears int             `yaml:"retirement_horizon_years" json:"retirement_horizon_years"`
	TSPWithdrawalRate      decimal.Decimal `yaml:"tsp_withdrawal_rate" json:"tsp_withdrawal_rate"`
	SSMonthlyEstimateAt62  decimal.Decimal `yaml:"ss_monthly_estimate_at_62" json:"ss_monthly_estimate_at_62"`
}

// SimulationInput is the raw, unresolved bundle of everything the engine
// needs before the career/pay projection and eligibility classification
// have been run. MilitaryServiceDays credit additional creditable
// service toward FERS eligibility.
type SimulationInput struct {
	ScenarioID             uuid.UUID              `yaml:"scenario_id" json:"scenario_id"`
	Label                  string                 `yaml:"label" json:"label"`
	BirthDate              time.Time              `yaml:"birth_date" json:"birth_date"`
	CareerProfile          CareerProfile          `yaml:"career_profile" json:"career_profile"`
	LeaveCalendar          []LeaveCalendarYear    `yaml:"leave_calendar,omitempty" json:"leave_calendar,omitempty"`
	TSPSnapshots           []TSPSnapshot          `yaml:"tsp_snapshots" json:"tsp_snapshots"`
	TSPContributionEvents  []TSPContributionEvent `yaml:"tsp_contribution_events,omitempty" json:"tsp_contribution_events,omitempty"`
	MilitaryServiceDays    int                    `yaml:"military_service_days,omitempty" json:"military_service_days,omitempty"`
	SickLeaveHoursAtRetirement decimal.Decimal    `yaml:"sick_leave_hours_at_retirement,omitempty" json:"sick_leave_hours_at_retirement,omitempty"`
	ExpenseProfile         ExpenseProfile         `yaml:"expense_profile" json:"expense_profile"`
	TaxProfile             *TaxProfile            `yaml:"tax_profile,omitempty" json:"tax_profile,omitempty"`
	Assumptions            CareerAssumptions      `yaml:"assumptions" json:"assumptions"`

	// WithdrawalStrategyOverride and SSClaimingAgeOverride let a what-if
	// transform steer resolution choices ResolveConfig would otherwise pick
	// by default (proportional sequencing, claiming at max(62, retirement
	// age)). Nil means "use the default."
	WithdrawalStrategyOverride *WithdrawalStrategy `yaml:"withdrawal_strategy_override,omitempty" json:"withdrawal_strategy_override,omitempty"`
	SSClaimingAgeOverride      *int                `yaml:"ss_claiming_age_override,omitempty" json:"ss_claiming_age_override,omitempty"`
}

// EligibilityClass enumerates FERS retirement eligibility classifications.
type EligibilityClass string

const (
	EligibilityAge62Plus5    EligibilityClass = "Age62+5"
	EligibilityAge60Plus20   EligibilityClass = "Age60+20"
	EligibilityMRAPlus30     EligibilityClass = "MRA+30"
	EligibilityMRAPlus10     EligibilityClass = "MRA+10-reduced"
	EligibilityNone          EligibilityClass = "None"
)

// IRMAARiskTier classifies proximity to the next IRMAA surcharge tier.
type IRMAARiskTier string

const (
	IRMAARiskSafe    IRMAARiskTier = "Safe"
	IRMAARiskWarning IRMAARiskTier = "Warning"
	IRMAARiskBreach  IRMAARiskTier = "Breach"
)

// YearResult holds every per-year observable quantity the integrator emits.
type YearResult struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	Annuity            decimal.Decimal `json:"annuity"`
	Supplement         decimal.Decimal `json:"supplement"`
	SocialSecurityGross decimal.Decimal `json:"social_security_gross"`
	TaxableSSFraction  decimal.Decimal `json:"taxable_ss_fraction"`

	TSPWithdrawalTraditional decimal.Decimal `json:"tsp_withdrawal_traditional"`
	TSPWithdrawalRoth        decimal.Decimal `json:"tsp_withdrawal_roth"`

	TaxableIncome decimal.Decimal `json:"taxable_income"`
	FederalTax    decimal.Decimal `json:"federal_tax"`
	StateTax      decimal.Decimal `json:"state_tax"`
	IRMAASurcharge decimal.Decimal `json:"irmaa_surcharge"`
	IRMAARiskTier  IRMAARiskTier   `json:"irmaa_risk_tier,omitempty"`

	GrossIncome    decimal.Decimal `json:"gross_income"`
	AfterTaxIncome decimal.Decimal `json:"after_tax_income"`

	MarginalBracketRate decimal.Decimal `json:"marginal_bracket_rate"`
	BracketHeadroom     decimal.Decimal `json:"bracket_headroom"`

	SmileMultiplier decimal.Decimal `json:"smile_multiplier"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`

	TradHighBalance decimal.Decimal `json:"trad_high_balance"`
	TradLowBalance  decimal.Decimal `json:"trad_low_balance"`
	RothHighBalance decimal.Decimal `json:"roth_high_balance"`
	RothLowBalance  decimal.Decimal `json:"roth_low_balance"`

	RMDRequired  decimal.Decimal `json:"rmd_required"`
	RMDSatisfied bool            `json:"rmd_satisfied"`

	Surplus         decimal.Decimal `json:"surplus"`
	AfterTaxSurplus decimal.Decimal `json:"after_tax_surplus"`
}

// TotalTSPBalance sums all four TSP sub-pots.
func (yr YearResult) TotalTSPBalance() decimal.Decimal {
	return yr.TradHighBalance.Add(yr.TradLowBalance).Add(yr.RothHighBalance).Add(yr.RothLowBalance)
}

// IsDepleted reports whether the total TSP balance is exhausted.
func (yr YearResult) IsDepleted() bool {
	return yr.TotalTSPBalance().LessThanOrEqual(decimal.Zero)
}

// LifetimeAggregates summarizes totals across a full projection.
type LifetimeAggregates struct {
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalTax            decimal.Decimal `json:"total_tax"`
	TotalAfterTaxIncome decimal.Decimal `json:"total_after_tax_income"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
}

// FullSimulationResult is the deterministic-path output.
type FullSimulationResult struct {
	Config             SimulationConfig      `json:"config"`
	Years              []YearResult          `json:"years"`
	FirstDepletionAge  *int                  `json:"first_depletion_age,omitempty"`
	BalanceAtAge85     decimal.Decimal       `json:"balance_at_age_85"`
	Lifetime           LifetimeAggregates    `json:"lifetime"`
	Warnings           []string              `json:"warnings,omitempty"`
}

// PercentileBand is the P10/P25/P50/P75/P90 distribution of balances at a
// single age across all Monte Carlo trials.
type PercentileBand struct {
	Age int             `json:"age"`
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
	SuccessRate decimal.Decimal `json:"success_rate"`
}

// MonteCarloResult is the stochastic-path output.
type MonteCarloResult struct {
	RunID               uuid.UUID        `json:"run_id"`
	NumTrials           int              `json:"num_trials"`
	Seed                int64            `json:"seed"`
	Bands               []PercentileBand `json:"bands"`
	OverallSuccessRate  decimal.Decimal  `json:"overall_success_rate"`
	SuccessRateAtAge85  decimal.Decimal  `json:"success_rate_at_age_85"`
	MedianDepletionAge  *int             `json:"median_depletion_age,omitempty"`
}
