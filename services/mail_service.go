package services

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"gopkg.in/gomail.v2"
	"io"
	"os"
	"strconv"
	"strings"
)

// MailService delivers a rendered report workbook over SMTP.
type MailService struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	recipients []string
}

func NewMailService() MailService {
	port, _ := strconv.Atoi(os.Getenv("smtpPort"))
	recipients := strings.Split(os.Getenv("mailRecipients"), ",")
	if recipients[0] == "" {
		recipients = []string{}
	}

	return MailService{
		host:       os.Getenv("smtpHost"),
		port:       port,
		username:   os.Getenv("smtpUser"),
		password:   os.Getenv("smtpPassword"),
		from:       os.Getenv("mailFrom"),
		recipients: recipients,
	}
}

func (ms *MailService) SendReport(subject string, body string, attachmentName string,
	workbook *excelize.File) error {

	if len(ms.recipients) == 0 {
		return fmt.Errorf("error: mailOutput set to true but mailRecipients parameter not found")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", ms.from)
	message.SetHeader("To", ms.recipients...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)
	message.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := workbook.WriteTo(w)
		return err
	}))

	dialer := gomail.NewDialer(ms.host, ms.port, ms.username, ms.password)
	return dialer.DialAndSend(message)
}
