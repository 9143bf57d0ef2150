package application

import (
	"fmt"

	"github.com/minseop-dev/userboard/internal/domain/port"
)

const certificationSubject = "Please certify your email address"

// CertificationService formats the verification URL for an account and
// hands the notification to the mail port. Delivery is fire-and-forget.
type CertificationService struct {
	Mail    port.MailSender
	BaseURL string // e.g. http://localhost:8080
}

func NewCertificationService(mail port.MailSender, baseURL string) *CertificationService {
	return &CertificationService{Mail: mail, BaseURL: baseURL}
}

func (s *CertificationService) Send(accountID, certificationCode, email string) {
	url := s.certificationURL(accountID, certificationCode)
	body := "Please click the following link to certify your email address: " + url
	s.Mail.Send(email, certificationSubject, body)
}

func (s *CertificationService) certificationURL(accountID, code string) string {
	return fmt.Sprintf("%s/api/accounts/%s/verify?certificationCode=%s", s.BaseURL, accountID, code)
}

var _ CertificationSender = (*CertificationService)(nil)
