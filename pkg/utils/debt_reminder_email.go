package utils

import (
	"fmt"
	"time"
)

func SendDebtReminderEmail(to, firstName string, amount string, condoName string, concept string, dueDate time.Time) error {
	subject := fmt.Sprintf("Reminder: you still owe $%s for '%s'", amount, concept)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
	<meta charset="UTF-8">
	<title>Payment Reminder</title>
	<style>
		body { font-family: 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f6f8f7; margin: 0; color: #333; }
		.container { max-width: 480px; margin: 25px auto; background: #ffffff; border-radius: 12px; border-top: 5px solid #d9534f; overflow: hidden; }
		.header { background-color: #d9534f; color: #ffffff; text-align: center; padding: 18px 12px; }
		.header h1 { margin: 0; font-size: 18px; font-weight: 600; }
		.content { padding: 20px 18px; font-size: 14px; line-height: 1.6; color: #444; }
		.amount-box { background: #fff6f6; border: 1px solid #f1c1c1; border-radius: 8px; padding: 12px 14px; margin: 16px 0; text-align: center; }
		.amount-box h3 { margin: 0; color: #d9534f; font-size: 16px; font-weight: 700; }
		.footer { background: #f6f6f6; text-align: center; padding: 14px; font-size: 12px; color: #777; }
	</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Payment Reminder</h1></div>
			<div class="content">
				<p>Hi %s,<br><br>
				This is a friendly reminder that you still have an outstanding balance of
				$<b>%s</b> for <b>'%s'</b> in <b>%s</b>.</p>
				<div class="amount-box">
					<h3>$%s due</h3>
					<p>Condominium: %s</p>
					<p>Due date: %s</p>
				</div>
				<p>Please log in to settle your balance and keep your unit in good standing.</p>
			</div>
			<div class="footer">&copy; %d CondoAdmin</div>
		</div>
	</body>
	</html>
	`, firstName, amount, concept, condoName, amount, condoName, dueDate.Format("Jan 2, 2006"), time.Now().Year())

	return SendEmail(to, subject, body)
}
