package metrics

// Downstream consumers (the report worker, HTTP callers) depend on the JSON
// field names below verbatim; changing a tag is a breaking change.

// Output is the closed set of result envelopes the Engine produces:
// one per metric kind plus ErrorOutput.
type Output interface {
	isOutput()
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Per-period forecast status tags.
const (
	AboveForecast = "above_forecast"
	BelowForecast = "below_forecast"
	OnTarget      = "on_target"
)

// PeriodRef identifies the period a result row belongs to. Every per-period
// row carries both the label and the number.
type PeriodRef struct {
	PeriodLabel  string `json:"period_label"`
	PeriodNumber int    `json:"period_number"`
}

// Availability reports which requested years have underlying data,
// independently of the values being analyzed.
type Availability struct {
	DataAvailableFor []int  `json:"data_available_for"`
	DataMissingFor   []int  `json:"data_missing_for"`
	Note             string `json:"note,omitempty"`
}

type ForecastRow struct {
	PeriodRef
	Actual      float64 `json:"actual"`
	Forecast    float64 `json:"forecast"`
	Variance    float64 `json:"variance"`
	VariancePct float64 `json:"variance_pct"`
	Status      string  `json:"status"`
}

type ForecastSummary struct {
	TotalActual      float64 `json:"total_actual"`
	TotalForecast    float64 `json:"total_forecast"`
	TotalVariance    float64 `json:"total_variance"`
	TotalVariancePct float64 `json:"total_variance_pct"`
}

type ForecastOutput struct {
	Status  string          `json:"status"`
	Year    int             `json:"year"`
	Period  string          `json:"period"`
	Results []ForecastRow   `json:"results"`
	Summary ForecastSummary `json:"summary"`
	Availability
}

type YoYRow struct {
	PeriodRef
	CurrentYearValue float64 `json:"current_year_value"`
	CompareYearValue float64 `json:"compare_year_value"`
	Change           float64 `json:"change"`
	ChangePct        float64 `json:"change_pct"`
}

type YoYSummary struct {
	TotalCurrent   float64 `json:"total_current"`
	TotalCompare   float64 `json:"total_compare"`
	TotalChange    float64 `json:"total_change"`
	TotalChangePct float64 `json:"total_change_pct"`
}

type YoYOutput struct {
	Status      string     `json:"status"`
	CurrentYear int        `json:"current_year"`
	CompareYear int        `json:"compare_year"`
	Period      string     `json:"period"`
	Results     []YoYRow   `json:"results"`
	Summary     YoYSummary `json:"summary"`
	Availability
}

// GrowthRow uses pointers where the value is undefined rather than zero:
// the first chronological period has no previous, and growth against a zero
// previous is undefined. Both serialize as JSON null, distinguishable from
// 0% growth.
type GrowthRow struct {
	PeriodRef
	Current   float64  `json:"current"`
	Previous  *float64 `json:"previous"`
	GrowthPct *float64 `json:"growth_pct"`
}

type GrowthSummary struct {
	AverageGrowthPct *float64 `json:"average_growth_pct"`
}

type GrowthOutput struct {
	Status  string        `json:"status"`
	Year    int           `json:"year"`
	Period  string        `json:"period"`
	Results []GrowthRow   `json:"results"`
	Summary GrowthSummary `json:"summary"`
	Availability
}

type CategoryRow struct {
	Category          string  `json:"category"`
	Amount            float64 `json:"amount"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

type CategorySummary struct {
	Total         float64 `json:"total"`
	CategoryCount int     `json:"category_count"`
}

// CategoryOutput echoes the rendered period label ("January", "Q3") in
// Period alongside the raw period number.
type CategoryOutput struct {
	Status       string          `json:"status"`
	Year         int             `json:"year"`
	Period       string          `json:"period"`
	PeriodNumber int             `json:"period_number"`
	Results      []CategoryRow   `json:"results"`
	Summary      CategorySummary `json:"summary"`
	Availability
}

// ErrorOutput is the only envelope returned for a failed request; no
// partial results accompany it.
type ErrorOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	store bool
}

// StoreFailure reports whether the error came from the store boundary
// (transient, possibly worth retrying by the caller) rather than from
// input validation.
func (e ErrorOutput) StoreFailure() bool { return e.store }

func newValidationError(msg string) ErrorOutput {
	return ErrorOutput{Status: StatusError, Message: msg}
}

func newStoreError(err error) ErrorOutput {
	return ErrorOutput{Status: StatusError, Message: err.Error(), store: true}
}

func (ForecastOutput) isOutput() {}
func (YoYOutput) isOutput()      {}
func (GrowthOutput) isOutput()   {}
func (CategoryOutput) isOutput() {}
func (ErrorOutput) isOutput()    {}
