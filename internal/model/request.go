package model

// CreateAdminRequest provisions an admin account. Name is the display name,
// split into first/last on the first whitespace run.
type CreateAdminRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	AccessLevel string `json:"accessLevel"`
}

// CreateCandidateRequest provisions a candidate account. Phone and Address
// are optional and default to empty strings.
type CreateCandidateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// DeleteAccountRequest identifies the account to tear down.
type DeleteAccountRequest struct {
	UserID    string `json:"userId"`
	ProfileID string `json:"profileId"`
}

// NotificationRequest carries the fields of the four candidate emails.
// DocumentDescription is required only for document requests; DenialReason is
// an optional block on denial notices.
type NotificationRequest struct {
	CandidateEmail      string `json:"candidateEmail"`
	CandidateName       string `json:"candidateName"`
	DocumentName        string `json:"documentName"`
	DocumentDescription string `json:"documentDescription"`
	DenialReason        string `json:"denialReason"`
}

// CreatedAdmin echoes the provisioned admin account.
type CreatedAdmin struct {
	ProfileID   string `json:"profileId"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	AccessLevel string `json:"accessLevel"`
	Email       string `json:"email"`
}

// CreatedCandidate echoes the provisioned candidate account.
type CreatedCandidate struct {
	ProfileID string `json:"profileId"`
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SentNotification reports a dispatched email.
type SentNotification struct {
	MessageID string `json:"messageId"`
}
