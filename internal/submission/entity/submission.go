package entity

// QuoteRequest is a single insurance quote inquiry captured from the
// public web form. It lives only for the duration of the request.
type QuoteRequest struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Needs string
}
