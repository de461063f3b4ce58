package exchangerate

// LatestResponse ответ ExchangeRate-API на запрос актуальных курсов.
type LatestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
