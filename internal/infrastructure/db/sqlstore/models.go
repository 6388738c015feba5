package sqlstore

import (
	"time"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

type userRow struct {
	ID               string    `gorm:"primaryKey;size:36"`
	FullName         string    `gorm:"size:255;not null"`
	Email            string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash     string    `gorm:"size:255;not null"`
	Role             string    `gorm:"size:32;not null;index"`
	CreatedAt        time.Time `gorm:"not null"`
	CreatedByAdminID *string   `gorm:"size:36"`
}

func (userRow) TableName() string { return "users" }

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:               r.ID,
		FullName:         r.FullName,
		Email:            r.Email,
		PasswordHash:     r.PasswordHash,
		Role:             domain.Role(r.Role),
		CreatedAt:        r.CreatedAt,
		CreatedByAdminID: r.CreatedByAdminID,
	}
}

type jobRow struct {
	ID               string    `gorm:"primaryKey;size:36"`
	Title            string    `gorm:"size:255;not null"`
	Description      string    `gorm:"type:text;not null"`
	ShortDescription *string   `gorm:"size:500"`
	Location         string    `gorm:"size:255;not null"`
	Department       *string   `gorm:"size:255"`
	Type             string    `gorm:"size:100;not null"`
	IsActive         bool      `gorm:"not null;index"`
	PostedByUserID   string    `gorm:"size:36;not null"`
	PostedAt         time.Time `gorm:"not null;index"`
}

func (jobRow) TableName() string { return "jobs" }

func (r *jobRow) toDomain() *domain.Job {
	return &domain.Job{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Location:         r.Location,
		Department:       r.Department,
		Type:             r.Type,
		IsActive:         r.IsActive,
		PostedByUserID:   r.PostedByUserID,
		PostedAt:         r.PostedAt,
	}
}

type contactRow struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"size:255;not null"`
	Email       string    `gorm:"size:255;not null"`
	Phone       *string   `gorm:"size:50"`
	Message     string    `gorm:"type:text;not null"`
	IsRead      bool      `gorm:"not null"`
	SubmittedAt time.Time `gorm:"not null;index"`
}

func (contactRow) TableName() string { return "contacts" }

func (r *contactRow) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Message:     r.Message,
		IsRead:      r.IsRead,
		SubmittedAt: r.SubmittedAt,
	}
}

type consultationRow struct {
	ID               string     `gorm:"primaryKey;size:36"`
	FullName         string     `gorm:"size:255;not null"`
	Email            string     `gorm:"size:255;not null"`
	Phone            *string    `gorm:"size:50"`
	ConsultationType string     `gorm:"size:100;not null"`
	OtherTypeDetails *string    `gorm:"type:text"`
	PreferredDate    *time.Time `gorm:"type:date"`
	MeetingMode      *string    `gorm:"size:50"`
	ProjectMessage   string     `gorm:"type:text;not null"`
	IsContacted      bool       `gorm:"not null"`
	SubmittedAt      time.Time  `gorm:"not null;index"`
}

func (consultationRow) TableName() string { return "consultations" }

func (r *consultationRow) toDomain() *domain.Consultation {
	return &domain.Consultation{
		ID:               r.ID,
		FullName:         r.FullName,
		Email:            r.Email,
		Phone:            r.Phone,
		ConsultationType: r.ConsultationType,
		OtherTypeDetails: r.OtherTypeDetails,
		PreferredDate:    r.PreferredDate,
		MeetingMode:      r.MeetingMode,
		ProjectMessage:   r.ProjectMessage,
		IsContacted:      r.IsContacted,
		SubmittedAt:      r.SubmittedAt,
	}
}

type applicationRow struct {
	ID                   string    `gorm:"primaryKey;size:36"`
	FullName             string    `gorm:"size:255;not null"`
	Email                string    `gorm:"size:255;not null"`
	Phone                *string   `gorm:"size:50"`
	CurrentCity          *string   `gorm:"size:100"`
	PositionApplyingFor  string    `gorm:"size:255;not null"`
	HighestQualification *string   `gorm:"size:255"`
	IsFresher            bool      `gorm:"not null"`
	CompanyName          *string   `gorm:"size:255"`
	Designation          *string   `gorm:"size:255"`
	YearsExperience      *float64  `gorm:"column:years_experience"`
	LastCTC              *float64  `gorm:"column:last_ctc"`
	ExpectedCTC          *float64  `gorm:"column:expected_ctc"`
	LinkedInURL          *string   `gorm:"column:linkedin_url;size:500"`
	PortfolioURL         *string   `gorm:"size:500"`
	ResumePath           string    `gorm:"size:500;not null"`
	ResumeFileName       string    `gorm:"size:255;not null"`
	ResumeContentType    string    `gorm:"size:255;not null"`
	ResumeUploadedAt     time.Time `gorm:"not null"`
	Declaration          bool      `gorm:"not null"`
	Notes                *string   `gorm:"type:text"`
	SubmittedAt          time.Time `gorm:"not null;index"`
}

func (applicationRow) TableName() string { return "job_applications" }

func (r *applicationRow) toDomain() *domain.Application {
	return &domain.Application{
		ID:                   r.ID,
		FullName:             r.FullName,
		Email:                r.Email,
		Phone:                r.Phone,
		CurrentCity:          r.CurrentCity,
		PositionApplyingFor:  r.PositionApplyingFor,
		HighestQualification: r.HighestQualification,
		IsFresher:            r.IsFresher,
		CompanyName:          r.CompanyName,
		Designation:          r.Designation,
		YearsExperience:      r.YearsExperience,
		LastCTC:              r.LastCTC,
		ExpectedCTC:          r.ExpectedCTC,
		LinkedInURL:          r.LinkedInURL,
		PortfolioURL:         r.PortfolioURL,
		ResumePath:           r.ResumePath,
		ResumeFileName:       r.ResumeFileName,
		ResumeContentType:    r.ResumeContentType,
		ResumeUploadedAt:     r.ResumeUploadedAt,
		Declaration:          r.Declaration,
		Notes:                r.Notes,
		SubmittedAt:          r.SubmittedAt,
	}
}
