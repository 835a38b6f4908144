package routes

import (
	"fmt"
	"net/http"
)

// PrivacyPolicyHandler serves the Privacy Policy content
func PrivacyPolicyHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")

	// Serve Privacy Policy content as HTML
	html := `
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<title>Privacy Policy</title>
	</head>
	<body>
		<h1>Privacy Policy</h1>
		<p>Welcome to AnonChat. Chats are anonymous and never stored: messages only pass through the server on their way to your current partner.</p>
		<p>The device identifier sent by your client is used solely to enforce the daily filtered-match limit and is kept in memory only.</p>
		<p>Contact us at <a href="mailto:support@anonchat.app">support@anonchat.app</a> for questions.</p>
	</body>
	</html>
	`
	fmt.Fprint(w, html)
}
