package services

import (
	"bytes"
	"html/template"
)

type mailContext struct {
	Name        string
	Email       string
	Phone       string
	InquiryType string
	Subject     string
	Message     string
	SubmittedAt string
	SiteName    string
	SiteURL     string
}

var adminTmpl = template.Must(template.New("admin").Parse(`<h2>New contact form submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Inquiry type:</strong> {{.InquiryType}}</p>
<p><strong>Subject:</strong> {{if .Subject}}{{.Subject}}{{else}}General Inquiry{{end}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<p>Submitted on {{.SubmittedAt}} via {{.SiteName}} ({{.SiteURL}})</p>
`))

var userTmpl = template.Must(template.New("user").Parse(`<p>Hi {{.Name}},</p>
<p>Thank you for contacting {{.SiteName}}. We received your message and will get back to you soon.</p>
<p><strong>Your message:</strong></p>
<p>{{.Message}}</p>
<p>{{.SiteName}}<br>{{.SiteURL}}</p>
`))

func render(t *template.Template, data mailContext) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
