package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendMeetingReminder(email, agentName, leadName string, meetingAt time.Time) error
	SendReassignmentNotice(email, leadName, reason string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendMeetingReminder(email, agentName, leadName string, meetingAt time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Meeting scheduled with %s", leadName))

	body := fmt.Sprintf(`
		<h3>Meeting scheduled</h3>
		<p>Hi %s,</p>
		<p>A meeting with <strong>%s</strong> is scheduled for <strong>%s</strong>.</p>
		<p>A reminder action has been added to your task list.</p>
	`, agentName, leadName, meetingAt.Format("Mon, 02 Jan 2006 15:04"))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send meeting reminder: %w", err)
	}

	return nil
}

func (s *emailService) SendReassignmentNotice(email, leadName, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Reassignment suggested for lead %s", leadName))

	body := fmt.Sprintf(`
		<h3>Reassignment suggested</h3>
		<p>Lead <strong>%s</strong> was flagged for a possible owner change.</p>
		<p>Reason: %s</p>
		<p>Please review the lead and decide whether to reassign it.</p>
	`, leadName, reason)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reassignment notice: %w", err)
	}

	return nil
}
