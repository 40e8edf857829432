package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"wasteless/internal/views/layout"
)

// FridgeLink is a fridge listed on the landing page.
type FridgeLink struct {
	ID       uint
	Name     string
	Products int
}

// Fridges renders the signed-in user's fridges with links to their suggestions.
func Fridges(userName string, fridges []FridgeLink) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Hello, ` + templ.EscapeString(userName) + `</h1>`)
		if len(fridges) == 0 {
			b.WriteString(`<p class="empty">You have no fridges yet.</p>`)
		} else {
			b.WriteString(`<ul>`)
			for _, fridge := range fridges {
				b.WriteString(fmt.Sprintf(`<li><a href="/app/fridges/%d/recommendations">%s</a> <span>%d products</span></li>`,
					fridge.ID, templ.EscapeString(fridge.Name), fridge.Products))
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`<form method="post" action="/logout"><button type="submit">Sign out</button></form>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout.Page("Your fridges", body)
}
