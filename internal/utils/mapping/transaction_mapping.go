package mapping

import (
	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/models"
)

func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		Amount:            d.Amount,
		Type:              string(d.Type),
		SenderID:          d.SenderID,
		ReceiverID:        d.ReceiverID,
		Remark:            d.Remark,
		PaymentMethod:     string(d.PaymentMethod),
		BankAccountID:     d.BankAccountID,
		OrderID:           d.OrderID,
		SubOrderID:        d.SubOrderID,
		ExpenseCategoryID: d.ExpenseCategoryID,
		HasInvoice:        d.HasInvoice,
		InvoiceURL:        d.InvoiceURL,
		EntryDate:         d.EntryDate,
		TransactionDate:   d.TransactionDate,
		Status:            string(d.Status),
		AuditFields:       toModelAuditFields(d.AuditFields),
	}
}

func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		Amount:            m.Amount,
		Type:              domain.TransactionType(m.Type),
		SenderID:          m.SenderID,
		ReceiverID:        m.ReceiverID,
		Remark:            m.Remark,
		PaymentMethod:     domain.PaymentMethod(m.PaymentMethod),
		BankAccountID:     m.BankAccountID,
		OrderID:           m.OrderID,
		SubOrderID:        m.SubOrderID,
		ExpenseCategoryID: m.ExpenseCategoryID,
		HasInvoice:        m.HasInvoice,
		InvoiceURL:        m.InvoiceURL,
		EntryDate:         m.EntryDate,
		TransactionDate:   m.TransactionDate,
		Status:            domain.TransactionStatus(m.Status),
		AuditFields:       toDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
