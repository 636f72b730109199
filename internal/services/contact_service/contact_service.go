package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Waleedanwar01/project-insurance-1/internal/domain/models"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/mailer"
	"github.com/Waleedanwar01/project-insurance-1/internal/metrics"
	"github.com/Waleedanwar01/project-insurance-1/internal/repository"
	"github.com/Waleedanwar01/project-insurance-1/internal/services"
	"github.com/Waleedanwar01/project-insurance-1/internal/transport/http/dto"

	"github.com/google/uuid"
)

const (
	MsgSubmitted         = "Contact form submitted successfully! We will get back to you soon."
	MsgSubmittedMailFail = "Contact form submitted successfully! However, there was an issue sending confirmation emails."

	minNameLen    = 2
	minMessageLen = 10
)

// SiteInfo names the site in outgoing mail.
type SiteInfo struct {
	Name       string
	URL        string
	AdminEmail string
}

type ContactService struct {
	log  *slog.Logger
	repo repository.ContactRepository
	mail mailer.Sender
	site SiteInfo
	now  func() time.Time
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository, mail mailer.Sender, site SiteInfo) *ContactService {
	return &ContactService{
		log:  log,
		repo: repo,
		mail: mail,
		site: site,
		now:  time.Now,
	}
}

func normalize(req dto.ContactRequest) models.ContactSubmission {
	sub := models.ContactSubmission{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		InquiryType: req.InquiryType,
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
	}
	if sub.InquiryType == "" {
		sub.InquiryType = models.InquiryGeneral
	}
	return sub
}

func validate(sub models.ContactSubmission) error {
	ve := &services.ValidationError{}
	if utf8.RuneCountInString(sub.Name) < minNameLen {
		ve.Add("name", "Name must be at least 2 characters long.")
	}
	if sub.Email == "" {
		ve.Add("email", "This field is required.")
	}
	if utf8.RuneCountInString(sub.Message) < minMessageLen {
		ve.Add("message", "Message must be at least 10 characters long.")
	}
	if !ve.Empty() {
		return ve
	}
	return nil
}

// Submit stores the message and then notifies the admin and the submitter.
// A delivery failure is reported in the response and never fails the call.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	const op = "contact_service.Submit"
	log := s.log.With(slog.String("op", op))

	sub := normalize(req)
	if err := validate(sub); err != nil {
		return nil, err
	}

	id, err := s.repo.SaveContact(ctx, sub)
	if err != nil {
		log.Error("failed to save contact submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sub.ID = id
	sub.CreatedAt = s.now()
	metrics.ContactSubmissions.Inc()

	resp := &dto.ContactResponse{ID: id, Message: MsgSubmitted}

	if err := s.notify(ctx, sub); err != nil {
		metrics.MailFailures.Inc()
		log.Warn("contact notification failed", slog.String("id", id.String()), sl.Err(err))
		resp.Message = MsgSubmittedMailFail
		resp.EmailError = err.Error()
	}

	return resp, nil
}

func (s *ContactService) notify(ctx context.Context, sub models.ContactSubmission) error {
	data := mailContext{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		InquiryType: string(sub.InquiryType),
		Subject:     sub.Subject,
		Message:     sub.Message,
		SubmittedAt: sub.CreatedAt.Format("January 02, 2006 at 03:04 PM"),
		SiteName:    s.site.Name,
		SiteURL:     s.site.URL,
	}

	subject := sub.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	adminHTML, err := render(adminTmpl, data)
	if err != nil {
		return err
	}
	err = s.mail.Send(ctx, mailer.Message{
		To:      []string{s.site.AdminEmail},
		ReplyTo: sub.Email,
		Subject: "New Contact Form Submission - " + subject,
		HTML:    adminHTML,
	})
	if err != nil {
		return err
	}

	userHTML, err := render(userTmpl, data)
	if err != nil {
		return err
	}
	return s.mail.Send(ctx, mailer.Message{
		To:      []string{sub.Email},
		Subject: "Thank you for contacting " + s.site.Name,
		HTML:    userHTML,
	})
}

func (s *ContactService) List(ctx context.Context, unreadOnly bool, page, perPage int) (*dto.ContactListResponse, error) {
	const op = "contact_service.List"

	page, perPage = services.Paginate(page, perPage)

	subs, total, err := s.repo.ListContacts(ctx, unreadOnly, page, perPage)
	if err != nil {
		s.log.Error("failed to list contact submissions", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dto.ContactListResponse{
		Submissions: subs,
		TotalCount:  total,
		Page:        page,
		PerPage:     perPage,
	}, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	const op = "contact_service.MarkRead"

	if err := s.repo.MarkContactRead(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
