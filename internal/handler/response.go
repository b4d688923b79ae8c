package handler

type analyzeResponse struct {
	ProductInfo  productInfo         `json:"product_info"`
	ReviewReport []reviewReportEntry `json:"review_report"`
	Message      string              `json:"message,omitempty"`
}

type productInfo struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

type reviewReportEntry struct {
	Username       string `json:"username"`
	Timestamp      string `json:"timestamp"`
	Classification string `json:"classification"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
