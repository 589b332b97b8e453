package utils

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/smtp"
	"os"
	"strings"
)

const otpDigits = "0123456789"

// OTPLength is the number of single-digit boxes the reset form renders.
const OTPLength = 6

// GenerateOTP returns a 6-digit numeric code. crypto/rand + big.Int keeps
// the digit distribution unbiased.
func GenerateOTP() (string, error) {
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(otpDigits)))
	for i := 0; i < OTPLength; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(otpDigits[num.Int64()])
	}
	return sb.String(), nil
}

// IsValidOTPFormat accepts exactly six digits.
func IsValidOTPFormat(code string) bool {
	if len(code) != OTPLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// MaskEmail returns a masked email for safe display in logs and responses.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local := parts[0]
	domain := parts[1]

	maskedLocal := local
	if len(local) > 2 {
		maskedLocal = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	} else if len(local) == 2 {
		maskedLocal = local[:1] + "*"
	}

	domainParts := strings.Split(domain, ".")
	if len(domainParts) >= 2 && len(domainParts[0]) > 1 {
		domainParts[0] = domainParts[0][:1] + strings.Repeat("*", len(domainParts[0])-1)
	}

	return maskedLocal + "@" + strings.Join(domainParts, ".")
}

// SendOTPEmail delivers the reset code. Without SMTP configuration it falls
// back to a mock send (log only) so the flow stays usable in development.
func SendOTPEmail(recipientEmail, code string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "ServNex")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s otp:%s", MaskEmail(recipientEmail), code)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	body := fmt.Sprintf(
		"Your ServNex password reset code is: %s\n\n"+
			"The code expires in 10 minutes. If you did not request a reset, you can ignore this email.\n\n"+
			"Best regards,\n%s",
		code, fromName,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString("Subject: ServNex Password Reset Code\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipientEmail}, []byte(sb.String())); err != nil {
		log.Printf("❌ Failed to send OTP email to %s: %v", MaskEmail(recipientEmail), err)
		return err
	}

	log.Printf("📨 OTP email sent to %s", MaskEmail(recipientEmail))
	return nil
}
