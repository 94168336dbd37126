package email

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

var htmlBody = template.Must(template.New("contact").Parse(`<h2>New contact message</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>
{{end}}{{if .Address}}<p><strong>Address:</strong> {{.Address}}</p>
{{end}}<p><strong>Message:</strong></p>
<blockquote>{{.Comment}}</blockquote>
<p><em>Received {{.Received}}</em></p>
`))

type bodyData struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Comment  string
	Received string
}

func subject(msg *store.ContactMessage) string {
	return fmt.Sprintf("New contact message from %s", msg.Name)
}

// composeBodies renders the plain-text and HTML versions of the
// notification. The HTML path escapes the submitted fields.
func composeBodies(msg *store.ContactMessage) (text string, html string, err error) {
	data := &bodyData{
		Name:     msg.Name,
		Email:    msg.Email,
		Phone:    msg.Phone,
		Address:  msg.Address,
		Comment:  msg.Comment,
		Received: msg.Timestamp.Format(time.RFC1123),
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "New contact message\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", data.Name)
	fmt.Fprintf(&sb, "Email: %s\n", data.Email)
	if data.Phone != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", data.Phone)
	}
	if data.Address != "" {
		fmt.Fprintf(&sb, "Address: %s\n", data.Address)
	}
	fmt.Fprintf(&sb, "\n%s\n\nReceived %s\n", data.Comment, data.Received)

	var hb strings.Builder
	if err := htmlBody.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}

	return sb.String(), hb.String(), nil
}
