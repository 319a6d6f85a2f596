package main

// User-facing copy for the form and admin responses.
var (
	ContactSuccess = `Thank you for your message! I'll get back to you soon.`

	ContactInvalid = `Please fill in your name, a valid email address and a message.`

	ContactError = `Sorry, there was an error sending your message. Please try again later,
	or email me directly.`

	AdminInvalidCredentials = `Invalid credentials`
)
