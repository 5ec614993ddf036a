package transport

type MentorLoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type MenteeLoginRequest struct {
	RegistrationNumber string `json:"registration_number"`
}

type MenteeCreateRequest struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
}

type AnswersRequest struct {
	Answers []int `json:"answers"`
}

type AssessmentConfirmRequest struct {
	Answers []int `json:"answers"`
	Level   int   `json:"level"`
}

type AttachmentPayload struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ActivityRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Steps       string             `json:"steps"`
	DueDate     string             `json:"due_date"`
	Attachment  *AttachmentPayload `json:"attachment"`
}

type ActivityUpdateRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Steps       *string            `json:"steps"`
	DueDate     *string            `json:"due_date"`
	Status      *string            `json:"status"`
	Attachment  *AttachmentPayload `json:"attachment"`
}

type StatusRequest struct {
	Status string `json:"status"`
}
