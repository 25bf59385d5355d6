package service

import (
	"context"
	"log/slog"
	"strings"

	"hiredesk/internal/config"
	"hiredesk/internal/model"
)

// NotificationService formats and dispatches the four candidate emails.
// Mail configuration is resolved and validated on every call, before any
// network I/O; a missing configuration is an internal error, not a send
// attempt.
type NotificationService interface {
	SendDocumentDenial(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error)
	SendDocumentRequest(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error)
	SendDocumentRequestRevocation(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error)
	SendAdminDocumentUpload(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error)
}

type notificationService struct {
	authorizer Authorizer
	mailer     Mailer
	loadConfig func() (*config.SMTPConfig, error)
}

// NewNotificationService wires the dispatcher. loadConfig may be nil, in
// which case the environment is read per call.
func NewNotificationService(authorizer Authorizer, mailer Mailer, loadConfig func() (*config.SMTPConfig, error)) NotificationService {
	if loadConfig == nil {
		loadConfig = config.SMTPFromEnv
	}
	return &notificationService{
		authorizer: authorizer,
		mailer:     mailer,
		loadConfig: loadConfig,
	}
}

func (s *notificationService) SendDocumentDenial(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error) {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.CandidateEmail == "" || req.CandidateName == "" || req.DocumentName == "" {
		return nil, model.InvalidArgument("Missing required fields: candidateEmail, candidateName, documentName")
	}

	return s.dispatch(ctx, req.CandidateEmail, "Document Denial Notification - "+req.DocumentName,
		func(b *strings.Builder, fromName string) {
			b.WriteString("Dear " + req.CandidateName + ",\n\n")
			b.WriteString("We regret to inform you that your document \"" + req.DocumentName + "\" has been denied.\n\n")
			if reason := strings.TrimSpace(req.DenialReason); reason != "" {
				b.WriteString("Reason for denial:\n" + req.DenialReason + "\n\n")
			}
			b.WriteString("Please review the document requirements and re-upload the document with the necessary corrections.\n\n")
			b.WriteString("If you have any questions or need further clarification, please don't hesitate to contact us.\n\n")
			b.WriteString("Best regards,\n" + fromName)
		})
}

func (s *notificationService) SendDocumentRequest(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error) {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.CandidateEmail == "" || req.CandidateName == "" || req.DocumentName == "" || req.DocumentDescription == "" {
		return nil, model.InvalidArgument("Missing required fields: candidateEmail, candidateName, documentName, documentDescription")
	}

	return s.dispatch(ctx, req.CandidateEmail, "Document Request - "+req.DocumentName,
		func(b *strings.Builder, fromName string) {
			b.WriteString("Dear " + req.CandidateName + ",\n\n")
			b.WriteString("We are requesting that you provide the following document:\n\n")
			b.WriteString("Document Name: " + req.DocumentName + "\n")
			b.WriteString("Description: " + req.DocumentDescription + "\n\n")
			b.WriteString("Please log in to your account and upload this document through the \"My Documents\" section.\n\n")
			b.WriteString("This document is specifically required from you. You will see it marked as \"Requested\" in your documents list.\n\n")
			b.WriteString("If you have any questions or need further clarification, please don't hesitate to contact us.\n\n")
			b.WriteString("Best regards,\n" + fromName)
		})
}

func (s *notificationService) SendDocumentRequestRevocation(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error) {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.CandidateEmail == "" || req.CandidateName == "" || req.DocumentName == "" {
		return nil, model.InvalidArgument("Missing required fields: candidateEmail, candidateName, documentName")
	}

	return s.dispatch(ctx, req.CandidateEmail, "Document Request Revoked - "+req.DocumentName,
		func(b *strings.Builder, fromName string) {
			b.WriteString("Dear " + req.CandidateName + ",\n\n")
			b.WriteString("We are informing you that the document request for \"" + req.DocumentName + "\" has been revoked.\n\n")
			b.WriteString("You are no longer required to provide this document. If you have already uploaded it, you may choose to keep or remove it from your documents.\n\n")
			b.WriteString("If you have any questions, please don't hesitate to contact us.\n\n")
			b.WriteString("Best regards,\n" + fromName)
		})
}

func (s *notificationService) SendAdminDocumentUpload(ctx context.Context, callerID string, req *model.NotificationRequest) (*model.SentNotification, error) {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.CandidateEmail == "" || req.CandidateName == "" || req.DocumentName == "" {
		return nil, model.InvalidArgument("Missing required fields: candidateEmail, candidateName, documentName")
	}

	return s.dispatch(ctx, req.CandidateEmail, "Document Uploaded on Your Behalf - "+req.DocumentName,
		func(b *strings.Builder, fromName string) {
			b.WriteString("Dear " + req.CandidateName + ",\n\n")
			b.WriteString("We are informing you that a document has been uploaded on your behalf:\n\n")
			b.WriteString("Document Name: " + req.DocumentName + "\n\n")
			b.WriteString("This document has been uploaded by an administrator and is already approved. You can view it in your \"My Documents\" section.\n\n")
			b.WriteString("If you have any questions or concerns, please don't hesitate to contact us.\n\n")
			b.WriteString("Best regards,\n" + fromName)
		})
}

// dispatch resolves the mail configuration, renders the body and hands the
// message to the transport.
func (s *notificationService) dispatch(ctx context.Context, to, subject string, render func(*strings.Builder, string)) (*model.SentNotification, error) {
	cfg, err := s.loadConfig()
	if err != nil {
		slog.Error("mail configuration unavailable", "error", err)
		return nil, model.Internal("Failed to send email", err)
	}

	var b strings.Builder
	render(&b, cfg.FromName)

	messageID, err := s.mailer.Send(ctx, cfg, to, subject, b.String())
	if err != nil {
		slog.Error("failed to send email", "to", to, "subject", subject, "error", err)
		return nil, model.Internal("Failed to send email", err)
	}

	slog.Info("email sent successfully", "to", to, "subject", subject, "message_id", messageID)
	return &model.SentNotification{MessageID: messageID}, nil
}
