package utils

import (
	"fmt"
	"time"
)

func SendWelcomeEmail(to, firstName string) error {
	subject := fmt.Sprintf("Welcome to CondoAdmin, %s!", firstName)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
	<meta charset="UTF-8">
	<title>Welcome to CondoAdmin</title>
	<style>
		body { font-family: 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f6f8f7; margin: 0; color: #333; }
		.container { max-width: 480px; margin: 25px auto; background: #ffffff; border-radius: 12px; border-top: 5px solid #0a4d3c; overflow: hidden; }
		.header { background-color: #0a4d3c; color: #ffffff; text-align: center; padding: 18px 12px; }
		.header h1 { margin: 0; font-size: 18px; font-weight: 600; }
		.content { padding: 20px 18px; font-size: 14px; line-height: 1.6; color: #444; }
		.footer { background: #f6f6f6; text-align: center; padding: 14px; font-size: 12px; color: #777; }
	</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Welcome to CondoAdmin</h1></div>
			<div class="content">
				<p>Hey %s,</p>
				<p>Your account is ready. With CondoAdmin you can follow your
				condominium's shared expenses, see what your unit owes, register
				payments with proof attached, and keep up with announcements from
				your administrator.</p>
				<p>Need help getting started? Just reply to this email.</p>
			</div>
			<div class="footer">&copy; %d CondoAdmin</div>
		</div>
	</body>
	</html>
	`, firstName, time.Now().Year())

	return SendEmail(to, subject, body)
}
