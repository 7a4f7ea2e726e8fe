package service

import (
	"fmt"
	"time"
)

func entryAlertEmailTemplate(riderName, horseName string, submittedAt time.Time, preview string) (string, string) {
	subject := fmt.Sprintf("New Journal Entry from %s (%s)", riderName, horseName)
	body := fmt.Sprintf(`Hello Michelle,

%s has just submitted a new journal entry for %s and would like your feedback.

Rider: %s
Horse: %s
Submitted: %s

Entry Preview:
%s

Please log in to the dashboard to review the full entry and add your comments.

Best regards,
Stablebook`,
		riderName, horseName,
		riderName, horseName,
		submittedAt.Format("January 2, 2006 at 3:04 PM"),
		preview,
	)

	return subject, body
}
