package core

import (
	"errors"
	"strings"
	"time"
)

const (
	ProjectPending   ProjectStatus = "pending"
	ProjectActive    ProjectStatus = "active"
	ProjectInProcess ProjectStatus = "in_process"
	ProjectCompleted ProjectStatus = "completed"
)

const (
	BillSent        TransactionType = "bill_sent"
	Invoice         TransactionType = "invoice"
	PaymentReceived TransactionType = "payment_received"
	Advance         TransactionType = "advance"
	ByHand          TransactionType = "by_hand"
	CreditNote      TransactionType = "credit_note"
	Refund          TransactionType = "refund"
)

const (
	ModeCash   PaymentMode = "cash"
	ModeBank   PaymentMode = "bank"
	ModeUPI    PaymentMode = "upi"
	ModeByHand PaymentMode = "by_hand"
	ModeCheque PaymentMode = "cheque"
	ModeOther  PaymentMode = "other"
)

const (
	MilestonePending  MilestoneStatus = "pending"
	MilestoneInvoiced MilestoneStatus = "invoiced"
	MilestonePaid     MilestoneStatus = "paid"
)

const (
	ActionPending ActionStatus = "pending"
	ActionDone    ActionStatus = "done"
)

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteRevised  QuoteStatus = "revised"
)

const (
	DocumentUpload DocumentKind = "upload"
	DocumentLink   DocumentKind = "link"
)

type (
	ProjectStatus   string
	TransactionType string
	PaymentMode     string
	MilestoneStatus string
	ActionStatus    string
	QuoteStatus     string
	DocumentKind    string

	Date struct {
		time.Time
	}

	// Money is an amount in paise. All arithmetic stays in minor units;
	// rupees only appear at the format/parse boundary.
	Money struct {
		Paise int64
	}

	Project struct {
		ID           int64
		Name         string
		ClientName   string
		Notes        string
		TotalValue   Money
		Status       ProjectStatus
		QuotationRef string
		CreatedAt    time.Time
	}

	// DocumentRef points at a stored upload or an external link attached
	// to a transaction.
	DocumentRef struct {
		Name       string       `json:"name"`
		Location   string       `json:"location"`
		Kind       DocumentKind `json:"kind"`
		MimeType   string       `json:"mime_type,omitempty"`
		AttachedAt time.Time    `json:"attached_at"`
	}

	Transaction struct {
		ID            int64
		ProjectID     int64
		Date          Date
		Type          TransactionType
		Amount        Money
		Mode          PaymentMode
		Notes         string
		AttachmentRef string
		Documents     []DocumentRef
		CreatedAt     time.Time
	}

	Milestone struct {
		ID         int64
		ProjectID  int64
		Name       string
		Percentage float64
		Amount     Money
		Status     MilestoneStatus
		DueDate    Date
		Notes      string
		CreatedAt  time.Time
	}

	// ActionItem is a follow-up task. ProjectID 0 means unlinked.
	ActionItem struct {
		ID          int64
		ProjectID   int64
		Description string
		DueDate     Date
		Status      ActionStatus
		CreatedAt   time.Time
	}

	// Quotation precedes a project; ProjectID 0 until one is created from it.
	Quotation struct {
		ID          int64
		ProjectID   int64
		QuoteDate   Date
		Amount      Money
		Description string
		Status      QuoteStatus
		Notes       string
		DocumentRef string
		CreatedAt   time.Time
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidDate       = errors.New("invalid date")
	ErrEmptyName         = errors.New("empty name")
	ErrEmptyDescription  = errors.New("empty description")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidMode       = errors.New("invalid payment mode")
	ErrMissingProjectRef = errors.New("missing project reference")
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPending, ProjectActive, ProjectInProcess, ProjectCompleted:
		return true
	}
	return false
}

func (t TransactionType) Valid() bool {
	switch t {
	case BillSent, Invoice, PaymentReceived, Advance, ByHand, CreditNote, Refund:
		return true
	}
	return false
}

func (m PaymentMode) Valid() bool {
	switch m {
	case ModeCash, ModeBank, ModeUPI, ModeByHand, ModeCheque, ModeOther:
		return true
	}
	return false
}

func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestonePending, MilestoneInvoiced, MilestonePaid:
		return true
	}
	return false
}

func (s ActionStatus) Valid() bool {
	return s == ActionPending || s == ActionDone
}

// Toggle flips pending <-> done. Toggling twice is the identity.
func (s ActionStatus) Toggle() ActionStatus {
	if s == ActionDone {
		return ActionPending
	}
	return ActionDone
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected, QuoteRevised:
		return true
	}
	return false
}

func (k DocumentKind) Valid() bool {
	return k == DocumentUpload || k == DocumentLink
}

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts the storage format YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// IsEmpty reports whether the date is unset (optional dates).
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// String renders the storage format YYYY-MM-DD, empty for unset dates.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (m Money) Validate() error {
	if m.Paise < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Paise == 0
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if err := p.TotalValue.Validate(); err != nil {
		return err
	}
	return nil
}

func (t Transaction) Validate() error {
	if t.ProjectID <= 0 {
		return ErrMissingProjectRef
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Mode != "" && !t.Mode.Valid() {
		return ErrInvalidMode
	}
	if t.Amount.Paise <= 0 {
		return ErrInvalidAmount
	}
	for _, doc := range t.Documents {
		if !doc.Kind.Valid() {
			return errors.New("invalid document kind")
		}
		if strings.TrimSpace(doc.Location) == "" {
			return errors.New("document missing location")
		}
	}
	return nil
}

func (m Milestone) Validate() error {
	if m.ProjectID <= 0 {
		return ErrMissingProjectRef
	}
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Percentage < 0 || m.Percentage > 100 {
		return errors.New("percentage out of range")
	}
	if !m.Status.Valid() {
		return ErrInvalidStatus
	}
	if err := m.Amount.Validate(); err != nil {
		return err
	}
	return nil
}

func (a ActionItem) Validate() error {
	if strings.TrimSpace(a.Description) == "" {
		return ErrEmptyDescription
	}
	if len(a.Description) > 500 {
		return errors.New("description too long (max 500 characters)")
	}
	if !a.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (q Quotation) Validate() error {
	if strings.TrimSpace(q.Description) == "" {
		return ErrEmptyDescription
	}
	if err := q.QuoteDate.Validate(); err != nil {
		return err
	}
	if !q.Status.Valid() {
		return ErrInvalidStatus
	}
	if q.Amount.Paise <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
