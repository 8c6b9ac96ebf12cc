package utils

import (
	"fmt"
	"time"
)

func SendPaymentReceiptEmail(to, firstName string, amount string, concept string, receiptRef string, date time.Time) error {
	subject := fmt.Sprintf("Payment received — receipt %s", receiptRef)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
	<meta charset="UTF-8">
	<title>Payment Receipt</title>
	<style>
		body { font-family: 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f6f8f7; margin: 0; color: #333; }
		.container { max-width: 480px; margin: 25px auto; background: #ffffff; border-radius: 12px; border-top: 5px solid #0a4d3c; overflow: hidden; }
		.header { background-color: #0a4d3c; color: #ffffff; text-align: center; padding: 18px 12px; }
		.header h1 { margin: 0; font-size: 18px; font-weight: 600; }
		.content { padding: 20px 18px; font-size: 14px; line-height: 1.6; color: #444; }
		.amount-box { background: #f2faf7; border: 1px solid #bfe3d4; border-radius: 8px; padding: 12px 14px; margin: 16px 0; text-align: center; }
		.amount-box h3 { margin: 0; color: #0a4d3c; font-size: 16px; font-weight: 700; }
		.footer { background: #f6f6f6; text-align: center; padding: 14px; font-size: 12px; color: #777; }
	</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Payment Received</h1></div>
			<div class="content">
				<p>Hi %s,<br><br>
				We have recorded your payment of $<b>%s</b> toward <b>'%s'</b>.</p>
				<div class="amount-box">
					<h3>$%s paid</h3>
					<p>Receipt: %s</p>
					<p>Date: %s</p>
				</div>
				<p>Keep this receipt reference for your records.</p>
			</div>
			<div class="footer">&copy; %d CondoAdmin</div>
		</div>
	</body>
	</html>
	`, firstName, amount, concept, amount, receiptRef, date.Format("Jan 2, 2006 15:04"), time.Now().Year())

	return SendEmail(to, subject, body)
}
