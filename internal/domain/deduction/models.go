package deduction

type Deduction struct {
	Code          string  `json:"code"`
	DeductionName string  `json:"deductionName"`
	Percentage    float64 `json:"percentage"`
}
