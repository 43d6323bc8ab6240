package accounting

// Money is the service's amount representation: a decimal string plus a
// currency code.
type Money struct {
	Amount string `json:"amount"`
	Code   string `json:"code"`
}

// VisState is the visibility lifecycle the service keeps on most entities.
// Deletion is usually expressed as a transition to VisStateDeleted rather
// than a removal.
type VisState int

const (
	VisStateActive   VisState = 0
	VisStateDeleted  VisState = 1
	VisStateArchived VisState = 2
)

// Client is a customer record owned by a business.
type Client struct {
	ID           int64    `json:"id"`
	Organization string   `json:"organization"`
	FirstName    string   `json:"fname"`
	LastName     string   `json:"lname"`
	Email        string   `json:"email"`
	HomePhone    string   `json:"home_phone"`
	Language     string   `json:"language"`
	CurrencyCode string   `json:"currency_code"`
	Street       string   `json:"p_street"`
	City         string   `json:"p_city"`
	Province     string   `json:"p_province"`
	Country      string   `json:"p_country"`
	PostalCode   string   `json:"p_code"`
	Note         string   `json:"note"`
	SignupDate   string   `json:"signup_date"`
	Updated      string   `json:"updated"`
	VisState     VisState `json:"vis_state"`
}

type InvoiceLine struct {
	LineID      int64  `json:"lineid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    string `json:"qty"`
	UnitCost    Money  `json:"unit_cost"`
	Amount      Money  `json:"amount"`
	TaxName1    string `json:"taxName1"`
	TaxAmount1  string `json:"taxAmount1"`
	TaxName2    string `json:"taxName2"`
	TaxAmount2  string `json:"taxAmount2"`
}

// Invoice is billed against a client. The service models invoice deletion as
// a state transition, so its resource uses the DELETE verb rather than a
// vis_state update.
type Invoice struct {
	ID             int64         `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	CustomerID     int64         `json:"customerid"`
	CreateDate     string        `json:"create_date"`
	DueDate        string        `json:"due_date"`
	PONumber       string        `json:"po_number"`
	CurrencyCode   string        `json:"currency_code"`
	Amount         Money         `json:"amount"`
	Outstanding    Money         `json:"outstanding"`
	Paid           Money         `json:"paid"`
	Status         int           `json:"status"`
	Notes          string        `json:"notes"`
	Terms          string        `json:"terms"`
	Lines          []InvoiceLine `json:"lines"`
	Updated        string        `json:"updated"`
	VisState       VisState      `json:"vis_state"`
}

type Expense struct {
	ID         int64    `json:"id"`
	CategoryID int64    `json:"categoryid"`
	ClientID   int64    `json:"clientid"`
	StaffID    int64    `json:"staffid"`
	Amount     Money    `json:"amount"`
	Date       string   `json:"date"`
	Vendor     string   `json:"vendor"`
	Notes      string   `json:"notes"`
	Status     int      `json:"status"`
	Updated    string   `json:"updated"`
	VisState   VisState `json:"vis_state"`
}

type Payment struct {
	ID        int64    `json:"id"`
	InvoiceID int64    `json:"invoiceid"`
	ClientID  int64    `json:"clientid"`
	Amount    Money    `json:"amount"`
	Date      string   `json:"date"`
	Type      string   `json:"type"`
	Note      string   `json:"note"`
	Updated   string   `json:"updated"`
	VisState  VisState `json:"vis_state"`
}

// Tax is a named rate applied to invoice lines.
type Tax struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Rate     string   `json:"amount"`
	Number   string   `json:"number"`
	Updated  string   `json:"updated"`
	VisState VisState `json:"vis_state"`
}
