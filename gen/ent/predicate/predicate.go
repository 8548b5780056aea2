// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceFile is the predicate function for invoicefile builders.
type InvoiceFile func(*sql.Selector)
