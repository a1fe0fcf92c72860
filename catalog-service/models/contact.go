package models

// ContactRequest is the payload of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewsletterRequest is the payload of POST /api/newsletter.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// SubmissionResponse acknowledges a successful contact or newsletter
// submission.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
