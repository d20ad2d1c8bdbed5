package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sisies/sisies-api/config"
	"github.com/sisies/sisies-api/models"
)

const resendEmailsURL = "https://api.resend.com/emails"

type Mailer struct {
	client *resty.Client
	cfg    config.MailConfig
}

func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{
		client: resty.New().SetTimeout(30 * time.Second),
		cfg:    cfg,
	}
}

// OrderEmailItem is one row of the items table in the confirmation email.
type OrderEmailItem struct {
	Name      string
	Variant   string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type OrderEmailData struct {
	OrderNumber      string
	CustomerFullName string
	CustomerEmail    string
	CustomerPhone    string
	Street           string
	Building         string
	Apartment        string
	City             string
	PostalCode       string
	Country          string
	Notes            string
	PaymentMethod    string
	Items            []OrderEmailItem
	Subtotal         string
	Discount         string
	HasDiscount      bool
	ShippingFee      string
	Total            string
}

type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendOrderConfirmation renders the order summary template and sends it to
// the customer. Returns the provider email id.
func (m *Mailer) SendOrderConfirmation(order *models.Order) (string, error) {
	data := buildOrderEmailData(order)
	templatePath := filepath.Join(m.cfg.TemplatesDir, "order_confirmation.html")
	body, err := renderTemplate(templatePath, data)
	if err != nil {
		return "", err
	}
	subject := fmt.Sprintf("Order Confirmed — #%s", order.OrderNumber)
	return m.send(order.CustomerEmail, subject, body)
}

// SendContactMessage forwards a contact-form submission to the shop inbox.
func (m *Mailer) SendContactMessage(data ContactEmailData) (string, error) {
	templatePath := filepath.Join(m.cfg.TemplatesDir, "contact_form.html")
	body, err := renderTemplate(templatePath, data)
	if err != nil {
		return "", err
	}
	return m.send(m.cfg.ContactRecipient, "New Contact Form Submission: "+data.Subject, body)
}

func (m *Mailer) send(to, subject, html string) (string, error) {
	if m.cfg.ResendAPIKey == "" {
		return "", fmt.Errorf("email service not configured: RESEND_API_KEY is missing")
	}

	resp, err := m.client.R().
		SetHeader("Authorization", "Bearer "+m.cfg.ResendAPIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"from":    m.cfg.SenderEmail,
			"to":      []string{to},
			"subject": subject,
			"html":    html,
		}).
		Post(resendEmailsURL)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("email provider returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse email provider response: %w", err)
	}
	return result.ID, nil
}

func renderTemplate(templatePath string, data any) (string, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

func buildOrderEmailData(order *models.Order) OrderEmailData {
	items := make([]OrderEmailItem, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, OrderEmailItem{
			Name:      item.ProductName,
			Variant:   variantLabel(item.VariantSize, item.VariantColor),
			Quantity:  item.Quantity,
			UnitPrice: FormatCurrency(item.UnitPrice),
			LineTotal: FormatCurrency(item.UnitPrice * float64(item.Quantity)),
		})
	}

	return OrderEmailData{
		OrderNumber:      order.OrderNumber,
		CustomerFullName: order.CustomerFullName,
		CustomerEmail:    order.CustomerEmail,
		CustomerPhone:    order.CustomerPhone,
		Street:           order.DeliveryStreet,
		Building:         order.DeliveryBuilding,
		Apartment:        derefString(order.DeliveryApartment),
		City:             order.DeliveryCity,
		PostalCode:       "",
		Country:          order.DeliveryCountry,
		Notes:            derefString(order.DeliveryNotes),
		PaymentMethod:    paymentMethodLabel(order.PaymentMethod),
		Items:            items,
		Subtotal:         FormatCurrency(order.Subtotal),
		Discount:         FormatCurrency(order.Discount),
		HasDiscount:      order.Discount > 0,
		ShippingFee:      FormatCurrency(order.ShippingFee),
		Total:            FormatCurrency(order.Total),
	}
}

func FormatCurrency(amount float64) string {
	return fmt.Sprintf("EGP %.2f", amount)
}

func paymentMethodLabel(method string) string {
	if method == models.PaymentInstapay {
		return "Instapay Wallet"
	}
	return "Cash on Delivery"
}

func variantLabel(size, color *string) string {
	label := ""
	if size != nil {
		label = *size
	}
	if color != nil {
		if label != "" {
			label += " "
		}
		label += *color
	}
	if label == "" {
		return "N/A"
	}
	return label
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
