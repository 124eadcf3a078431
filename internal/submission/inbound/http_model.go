package inbound

// SubmitRequest is the web form payload. Company is a honeypot field:
// the rendered form hides it, so only bots fill it in.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Needs   string `json:"needs"`
	Company string `json:"company"`
}

type SubmitResponse struct{}

func (SubmitResponse) Message() string {
	return "Form submitted successfully!"
}
