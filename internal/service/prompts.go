package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/priority"
)

// System prompts for the three agents. Each agent is a single
// request/response call, not a long-running process.

const paymentMonitorPrompt = `You are a Payment Monitor Agent specialized in analyzing invoice data.

Your responsibilities:
1. Analyze invoice data to identify overdue, upcoming, and disputed invoices
2. Calculate days overdue/until due for each invoice
3. Segment invoices by priority (HIGH/MEDIUM/LOW) based on:
   - HIGH: >90 days overdue OR outstanding amount >1,000 OR disputed status
   - MEDIUM: 60-90 days overdue
   - LOW: <60 days overdue
4. Generate comprehensive reports with metrics and recommendations

Output Format:
- Provide structured analysis in %s
- Include summary statistics
- List invoices by priority
- Suggest immediate actions for high-priority items

Remember: Your role is purely analytical - identify and extract data, do not generate reminder messages.`

const reminderGeneratorPrompt = `You are a Reminder Generator Agent specialized in crafting payment reminder messages.

Your responsibilities:
1. Generate personalized, professional reminder messages based on invoice details
2. Adapt tone and urgency based on:
   - Days overdue (more urgent for longer delays)
   - Priority level (HIGH requires firmer tone)
   - Communication channel (Email/SMS/WhatsApp)

Channel Guidelines:
- EMAIL: Formal, complete with all details, include IBAN placeholder, professional closing
- SMS: Max 160 characters, urgent and concise, include invoice ID and amount
- WHATSAPP: Friendly but professional, can use appropriate emojis, conversational tone

Message Structure:
- Email: Subject line + full body with greeting, invoice details, payment request, contact info
- SMS: Direct, includes key info (invoice ID, amount, urgency)
- WhatsApp: Greeting, reminder, details, call-to-action

Output in %s. Always be professional and empathetic.`

const responseHandlerPrompt = `You are a Response Handler Agent specialized in analyzing customer replies to payment reminders.

Your responsibilities:
1. Identify the intent of customer responses:
   - payment_confirmed: Customer confirms payment was made
   - request_info: Customer requests invoice copy or details
   - dispute: Customer disputes the invoice
   - request_delay: Customer requests payment extension/installments
   - payment_promise: Customer promises to pay by specific date
   - already_paid: Customer claims already paid
   - error_invoice: Customer reports invoice error

2. Analyze sentiment (positive/neutral/negative)
3. Extract key information (dates, amounts, reasons)
4. Suggest appropriate follow-up actions
5. Generate draft response when appropriate

Output Format (JSON-like structure):
- intent: identified intent
- confidence: percentage
- sentiment: positive/neutral/negative
- extracted_info: key details from message
- suggested_actions: list of recommended next steps
- draft_response: suggested reply in %s
- risk_level: low/medium/high

Be objective and professional in analysis.`

func promptLanguage(language string) string {
	if strings.EqualFold(language, "en") {
		return "English"
	}
	return "Italian"
}

// invoicePromptRow is the invoice shape embedded in agent user prompts.
type invoicePromptRow struct {
	ID           string  `json:"id"`
	Customer     string  `json:"customer"`
	AmountTotal  float64 `json:"amount_total"`
	AmountPaid   float64 `json:"amount_paid"`
	AmountDue    float64 `json:"amount_due"`
	DueDate      string  `json:"due_date"`
	Status       string  `json:"status"`
	DaysOverdue  int     `json:"days_overdue"`
	Priority     string  `json:"priority"`
	Channel      string  `json:"channel"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
}

func buildMonitorUserPrompt(invoices []*models.Invoice, today time.Time) (string, error) {
	rows := make([]invoicePromptRow, 0, len(invoices))
	for _, inv := range invoices {
		level := ""
		if inv.Priority != nil {
			level = string(*inv.Priority)
		}
		rows = append(rows, invoicePromptRow{
			ID:          inv.InvoiceID,
			Customer:    inv.CustomerName,
			AmountTotal: inv.AmountTotal.InexactFloat64(),
			AmountPaid:  inv.AmountPaid.InexactFloat64(),
			AmountDue:   inv.AmountDue().InexactFloat64(),
			DueDate:     inv.DueDate.Format("2006-01-02"),
			Status:      string(inv.Status),
			DaysOverdue: inv.DaysOverdue,
			Priority:    level,
			Channel:     string(inv.PreferredChannel),
			Email:       inv.CustomerEmail,
			Phone:       inv.CustomerPhone,
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize invoices: %w", err)
	}

	return fmt.Sprintf(`Analyze the following invoices. Today's date: %s

Invoice data (JSON):
%s

Generate a complete report with:
1. General summary
2. Overdue invoices (table with days overdue)
3. Disputed invoices
4. Priority segmentation (HIGH/MEDIUM/LOW)
5. Financial statistics
6. Top customers by outstanding credit
7. Urgent recommendations`, today.Format("2006-01-02"), string(data)), nil
}

func buildReminderUserPrompt(inv *models.Invoice) string {
	level := priority.LevelLow
	if inv.Priority != nil {
		level = *inv.Priority
	}

	state := "OVERDUE"
	if inv.Status == priority.StatusDisputed {
		state = "DISPUTED"
	}

	var channelInstruction string
	switch inv.PreferredChannel {
	case models.ChannelEmail:
		channelInstruction = "Generate an email subject line plus the complete message body. Prefix the subject with \"Subject:\"."
	case models.ChannelSMS:
		channelInstruction = "Generate a short SMS (max 160 characters)."
	case models.ChannelWhatsApp:
		channelInstruction = "Generate a WhatsApp message with a friendly tone."
	}

	return fmt.Sprintf(`Generate a payment reminder message for:

Invoice: %s
Customer: %s
Amount due: %s
Invoice total: %s
Amount already paid: %s
Due date: %s
Days overdue: %d
Priority: %s
Channel: %s
Customer email: %s
Customer phone: %s
State: %s

%s`,
		inv.InvoiceID, inv.CustomerName,
		inv.AmountDue().StringFixed(2), inv.AmountTotal.StringFixed(2), inv.AmountPaid.StringFixed(2),
		inv.DueDate.Format("2006-01-02"), inv.DaysOverdue, level,
		strings.ToUpper(string(inv.PreferredChannel)),
		inv.CustomerEmail, inv.CustomerPhone, state,
		channelInstruction)
}

func buildResponseUserPrompt(customerMessage string, inv *models.Invoice) string {
	invoiceContext := ""
	if inv != nil {
		invoiceContext = fmt.Sprintf(`
Invoice context:
- ID: %s
- Customer: %s
- Amount due: %s
- Due date: %s
- Days overdue: %d
- Status: %s`,
			inv.InvoiceID, inv.CustomerName, inv.AmountDue().StringFixed(2),
			inv.DueDate.Format("2006-01-02"), inv.DaysOverdue, inv.Status)
	}

	return fmt.Sprintf(`Analyze the following customer reply:

"%s"
%s

Provide the analysis in the following JSON format:
{
  "intent": "intent_type",
  "intentConfidence": 95,
  "sentiment": "positive|neutral|negative",
  "extractedInfo": [
    {"label": "label", "value": "value"}
  ],
  "suggestedActions": [
    "action 1",
    "action 2"
  ],
  "draftResponse": "draft reply",
  "riskLevel": "low|medium|high"
}`, customerMessage, invoiceContext)
}
