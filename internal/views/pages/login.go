package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"wasteless/internal/views/layout"
)

// Login renders the sign-in form with an optional flash message.
func Login(message, email string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html := `<h1>Sign in</h1>`
		if message != "" {
			html += `<p class="flash">` + templ.EscapeString(message) + `</p>`
		}
		html += `<form method="post" action="/login">` +
			`<label>Email <input type="email" name="email" value="` + templ.EscapeString(email) + `" required></label>` +
			`<label>Password <input type="password" name="password" required></label>` +
			`<button type="submit">Sign in</button></form>`
		_, err := io.WriteString(w, html)
		return err
	})
	return layout.Page("Sign in", body)
}
