package affiliateservice

// Affiliate модель партнёра из AffiliateService
type Affiliate struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ErrorResponse модель ошибки от AffiliateService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
