package httpdomain

// Endpoint describes the questionnaire target. URL is used verbatim.
type Endpoint struct {
	URL       string
	UserAgent string
}
