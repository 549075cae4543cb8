package mapping

import (
	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/models"
)

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		PrintName:    d.PrintName,
		SenderID:     d.SenderID,
		Position:     d.Position,
		Phone:        d.Phone,
		Whatsapp:     d.Whatsapp,
		Address:      d.Address,
		PANNumber:    d.PANNumber,
		AadhaarNo:    d.AadhaarNo,
		AuditFields:  toModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		PrintName:    m.PrintName,
		SenderID:     m.SenderID,
		Position:     m.Position,
		Phone:        m.Phone,
		Whatsapp:     m.Whatsapp,
		Address:      m.Address,
		PANNumber:    m.PANNumber,
		AadhaarNo:    m.AadhaarNo,
		AuditFields:  toDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
