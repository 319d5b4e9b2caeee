package mailer

import (
	"net/http"

	"go.uber.org/zap"
)

// LogMailer renders messages and writes them to the log instead of sending
// them. Used when no SMTP server is configured.
type LogMailer struct {
	logger *zap.SugaredLogger
}

func NewLogMailer(logger *zap.SugaredLogger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(templateFile, username, email string, data any) (int, error) {
	subject, _, err := Render(templateFile, data)
	if err != nil {
		return -1, err
	}
	m.logger.Infow("email not sent, smtp disabled", "to", email, "name", username, "subject", subject)
	return http.StatusOK, nil
}
