package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/mahabubulhasibshawon/foodadmin/internal/application"
	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in descriptions is escaped: WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var funcs = template.FuncMap{
	"markdown": func(md string) template.HTML {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	},
	"money": func(minor int64) string {
		return fmt.Sprintf("%d.%02d", minor/100, abs(minor%100))
	},
	"price": func(p float64) string {
		return fmt.Sprintf("%.2f", p)
	},
	"categoryLabel": func(value string) string {
		for _, c := range domain.Categories {
			if c.Value == value {
				return c.Label
			}
		}
		return value
	},
	"statusClass": func(s domain.OrderStatus) string {
		switch s {
		case domain.StatusFoodPreparing:
			return "preparing"
		case domain.StatusOutForDelivery:
			return "delivering"
		case domain.StatusDelivered:
			return "delivered"
		}
		return "unknown"
	},
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

type pages struct {
	byName map[string]*template.Template
}

func loadPages() *pages {
	p := &pages{byName: map[string]*template.Template{}}
	for _, name := range []string{"login.html", "list.html", "food_form.html", "orders.html"} {
		p.byName[name] = template.Must(template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return p
}

// page is what the layout sees. Data is the page-specific payload.
type page struct {
	Title     string
	Identity  string
	Notices   []application.Notice
	CSRFField template.HTML
	Data      any
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	tpl, ok := h.pages.byName[name]
	if !ok {
		h.internalError(w, r, fmt.Errorf("unknown template %q", name))
		return
	}
	identity := ""
	if h.requestState(r).IsAuthenticated() {
		identity = h.session.Identity()
	}
	p := page{
		Title:     title,
		Identity:  identity,
		Notices:   h.notices.Drain(),
		CSRFField: csrf.TemplateField(r),
		Data:      data,
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, p); err != nil {
		h.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// internalError logs the real error and returns a generic message.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("internal_error", "error", err.Error(), "request_id", RequestID(r.Context()))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
