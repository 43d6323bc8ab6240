package accounting

import "github.com/goliatone/go-freshbooks/core"

// Per-resource descriptors. DeleteViaUpdate differs per entity kind for
// service-specific reasons; it is configuration data, not a rule.

func ClientsDescriptor() Descriptor {
	return Descriptor{
		SubPath:         "users/clients",
		SingleKey:       "client",
		ListKey:         "clients",
		DeleteViaUpdate: true,
	}
}

func InvoicesDescriptor() Descriptor {
	return Descriptor{
		SubPath:         "invoices/invoices",
		SingleKey:       "invoice",
		ListKey:         "invoices",
		DeleteViaUpdate: false,
	}
}

func ExpensesDescriptor() Descriptor {
	return Descriptor{
		SubPath:         "expenses/expenses",
		SingleKey:       "expense",
		ListKey:         "expenses",
		DeleteViaUpdate: true,
	}
}

func PaymentsDescriptor() Descriptor {
	return Descriptor{
		SubPath:         "payments/payments",
		SingleKey:       "payment",
		ListKey:         "payments",
		DeleteViaUpdate: true,
	}
}

func TaxesDescriptor() Descriptor {
	return Descriptor{
		SubPath:         "taxes/taxes",
		SingleKey:       "tax",
		ListKey:         "taxes",
		DeleteViaUpdate: true,
	}
}

func Clients(session *core.Session, tp core.Transport) *Resource[Client] {
	return NewResource[Client](session, tp, ClientsDescriptor())
}

func Invoices(session *core.Session, tp core.Transport) *Resource[Invoice] {
	return NewResource[Invoice](session, tp, InvoicesDescriptor())
}

func Expenses(session *core.Session, tp core.Transport) *Resource[Expense] {
	return NewResource[Expense](session, tp, ExpensesDescriptor())
}

func Payments(session *core.Session, tp core.Transport) *Resource[Payment] {
	return NewResource[Payment](session, tp, PaymentsDescriptor())
}

func Taxes(session *core.Session, tp core.Transport) *Resource[Tax] {
	return NewResource[Tax](session, tp, TaxesDescriptor())
}
