package domain

import "time"

// FormKind names one of the public forms.
type FormKind string

const (
	FormContact      FormKind = "contact"
	FormConsultation FormKind = "consultation"
	FormApplication  FormKind = "job_application"
)

// Contact is a contact-form submission.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Consultation is a consultation request.
type Consultation struct {
	ID               string     `json:"id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	Phone            *string    `json:"phone"`
	ConsultationType string     `json:"consultation_type"`
	OtherTypeDetails *string    `json:"other_type_details"`
	PreferredDate    *time.Time `json:"preferred_date"`
	MeetingMode      *string    `json:"meeting_mode"`
	ProjectMessage   string     `json:"project_message"`
	IsContacted      bool       `json:"is_contacted"`
	SubmittedAt      time.Time  `json:"submitted_at"`
}

// Application is a job application with its stored resume.
type Application struct {
	ID                   string    `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	Phone                *string   `json:"phone"`
	CurrentCity          *string   `json:"current_city"`
	PositionApplyingFor  string    `json:"position_applying_for"`
	HighestQualification *string   `json:"highest_qualification"`
	IsFresher            bool      `json:"is_fresher"`
	CompanyName          *string   `json:"company_name"`
	Designation          *string   `json:"designation"`
	YearsExperience      *float64  `json:"years_experience"`
	LastCTC              *float64  `json:"last_ctc"`
	ExpectedCTC          *float64  `json:"expected_ctc"`
	LinkedInURL          *string   `json:"linkedin_url"`
	PortfolioURL         *string   `json:"portfolio_url"`
	ResumePath           string    `json:"resume_path"`
	ResumeFileName       string    `json:"resume_file_name"`
	ResumeContentType    string    `json:"resume_content_type"`
	ResumeUploadedAt     time.Time `json:"resume_uploaded_at"`
	Declaration          bool      `json:"declaration"`
	Notes                *string   `json:"notes"`
	SubmittedAt          time.Time `json:"submitted_at"`
}

// StoredFile describes an uploaded file after it has been persisted.
type StoredFile struct {
	Path         string // relative to the storage root
	OriginalName string
	ContentType  string
	Size         int64
}
